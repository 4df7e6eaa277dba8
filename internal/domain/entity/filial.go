package entity

// Filial dados legais e de contato de uma filial da empresa, usados no
// rodapé, nos blocos de apresentação e no contrato de locação.
type Filial struct {
	ID                int
	Nome              string
	Endereco          string
	CEP               string
	CNPJ              string
	InscricaoEstadual string
	Telefones         string
	Email             string
	LogoPath          string
}

// PerfilUsuario configuração de capa/assinatura de um usuário que gera
// cotações.
type PerfilUsuario struct {
	NomeCompleto string
	Email        string
	TemplateCapa string // capa JPEG personalizada; vazio usa a capa padrão
}
