// Package brfmt reúne formatação e validação de dados no padrão brasileiro:
// moeda, datas, CNPJ, telefone e CEP, além da normalização de texto para a
// página de código cp1252 usada nos documentos gerados.
package brfmt

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatCurrency formata um valor monetário como "R$ 1.234,56" (milhar com
// ponto, decimal com vírgula).
func FormatCurrency(v decimal.Decimal) string {
	s := v.StringFixed(2)

	negativo := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	inteira, fracao, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString("R$ ")
	if negativo {
		b.WriteString("-")
	}
	for i, d := range inteira {
		if i > 0 && (len(inteira)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	b.WriteByte(',')
	b.WriteString(fracao)
	return b.String()
}

// ParseDecimal interpreta um valor monetário digitado no formato brasileiro
// ("R$ 1.000,50", "1000,50", "1000.50"). Entrada inválida vale zero, seguindo
// o comportamento tolerante dos formulários de origem.
func ParseDecimal(s string) decimal.Decimal {
	limpo := strings.TrimSpace(s)
	limpo = strings.ReplaceAll(limpo, "R$", "")
	limpo = strings.ReplaceAll(limpo, " ", "")
	if limpo == "" {
		return decimal.Zero
	}

	if strings.Contains(limpo, ",") {
		if strings.Count(limpo, ",") > 1 {
			return decimal.Zero
		}
		inteira, fracao, _ := strings.Cut(limpo, ",")
		limpo = strings.ReplaceAll(inteira, ".", "") + "." + fracao
	}

	d, err := decimal.NewFromString(limpo)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatDate formata a data como dd/mm/aaaa; data zero vira string vazia.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

var mesesPT = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatDateLongPT formata a data por extenso em português, por exemplo
// "7 de março de 2025". Usada no fecho do contrato de locação.
func FormatDateLongPT(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return strconv.Itoa(t.Day()) + " de " + mesesPT[int(t.Month())-1] + " de " + strconv.Itoa(t.Year())
}

// FormatPhone formata telefones com DDD: 11 dígitos como celular
// "(XX) XXXXX-XXXX", 10 dígitos como fixo "(XX) XXXX-XXXX". Qualquer outro
// tamanho volta como veio.
func FormatPhone(phone string) string {
	d := somenteDigitos(phone)
	switch len(d) {
	case 11:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	case 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	}
	return phone
}

// FormatCEP formata o CEP como "00000-000" quando há 8 dígitos.
func FormatCEP(cep string) string {
	d := somenteDigitos(cep)
	if len(d) == 8 {
		return d[:5] + "-" + d[5:]
	}
	return cep
}

func somenteDigitos(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
