package brfmt

import "regexp"

// FormatCNPJ formata o CNPJ como "XX.XXX.XXX/XXXX-XX" quando há 14 dígitos;
// qualquer outra entrada volta como veio.
func FormatCNPJ(cnpj string) string {
	d := somenteDigitos(cnpj)
	if len(d) != 14 {
		return cnpj
	}
	return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:]
}

var pesosCNPJ = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

// ValidateCNPJ valida os dígitos verificadores (módulo 11). CNPJ vazio é
// válido: o campo é opcional no cadastro de clientes.
func ValidateCNPJ(cnpj string) bool {
	if cnpj == "" {
		return true
	}
	d := somenteDigitos(cnpj)
	if len(d) != 14 {
		return false
	}

	// Sequências de um mesmo dígito passam no módulo 11 mas não são CNPJs.
	iguais := true
	for i := 1; i < 14; i++ {
		if d[i] != d[0] {
			iguais = false
			break
		}
	}
	if iguais {
		return false
	}

	return digitoVerificador(d, 12) == int(d[12]-'0') &&
		digitoVerificador(d, 13) == int(d[13]-'0')
}

// digitoVerificador calcula o dígito da posição pos (12 ou 13) sobre os pos
// primeiros dígitos.
func digitoVerificador(d string, pos int) int {
	soma := 0
	for i := 0; i < pos; i++ {
		soma += int(d[i]-'0') * pesosCNPJ[13-pos+i]
	}
	resto := soma % 11
	if resto < 2 {
		return 0
	}
	return 11 - resto
}

var regexEmail = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail valida o formato do e-mail. Vazio é válido (campo opcional).
func ValidateEmail(email string) bool {
	if email == "" {
		return true
	}
	return regexEmail.MatchString(email)
}
