// Package filiais é o diretório estático de filiais e de usuários com capa
// personalizada. Os dados são constantes de código, carregados uma vez e
// nunca mutados em runtime; não há invalidação de cache a fazer.
package filiais

import (
	"strings"

	"github.com/worldcomp/crm-api/internal/domain/entity"
)

// CNPJs que identificam cada filial. O CNPJ é o identificador confiável
// quando o filial_id histórico está ausente ou inconsistente.
const (
	CNPJFilial1 = "10.644.944/0001-55"
	CNPJFilial2 = "22.790.603/0001-77"
)

var diretorio = map[int]entity.Filial{
	1: {
		ID:                1,
		Nome:              "WORLD COMP COMPRESSORES LTDA",
		Endereco:          "Rua Fernando Pessoa, nº 11 – Batistini – São Bernardo do Campo – SP",
		CEP:               "09844-390",
		CNPJ:              CNPJFilial1,
		InscricaoEstadual: "635.970.206.110",
		Telefones:         "(11) 4543-6893 / 4543-6857",
		Email:             "contato@worldcompressores.com.br",
		LogoPath:          "logos/world_comp_brasil.jpg",
	},
	2: {
		ID:                2,
		Nome:              "WORLD COMP DO BRASIL COMPRESSORES LTDA",
		Endereco:          "Rua Fernando Pessoa, nº 17 – Batistini – São Bernardo do Campo – SP",
		CEP:               "09844-390",
		CNPJ:              CNPJFilial2,
		InscricaoEstadual: "635.835.470.115",
		Telefones:         "(11) 4543-6896 / 4543-6857 / 4357-8062",
		Email:             "rogerio@worldcompressores.com.br",
		LogoPath:          "logos/world_comp_brasil.jpg",
	},
}

var usuarios = map[string]entity.PerfilUsuario{
	"valdir":    {NomeCompleto: "Valdir", TemplateCapa: "templates/capas/capa_valdir.jpg"},
	"vagner":    {NomeCompleto: "Vagner Cerqueira", TemplateCapa: "templates/capas/capa_vagner.jpg"},
	"rogerio":   {NomeCompleto: "Rogério Cerqueira", TemplateCapa: "templates/capas/capa_rogerio.jpg"},
	"raquel":    {NomeCompleto: "Raquel", TemplateCapa: "templates/capas/capa_raquel.jpg"},
	"jaqueline": {NomeCompleto: "Jaqueline", TemplateCapa: "templates/capas/capa_jaqueline.jpg"},
	"adam":      {NomeCompleto: "Adam", TemplateCapa: "templates/capas/capa_adam.jpg"},
	"cicero":    {NomeCompleto: "Cicero", TemplateCapa: "templates/capas/capa_cicero.jpg"},
}

// ObterFilial devolve o perfil completo da filial ou nil quando desconhecida.
// Os dados voltam sempre completos: é aqui, e não na camada de renderização,
// que os defaults por CNPJ estão consolidados.
func ObterFilial(id int) *entity.Filial {
	f, ok := diretorio[id]
	if !ok {
		return nil
	}
	return &f
}

// ObterPorCNPJ localiza a filial pelo CNPJ formatado.
func ObterPorCNPJ(cnpj string) *entity.Filial {
	for _, f := range diretorio {
		if f.CNPJ == cnpj {
			f := f
			return &f
		}
	}
	return nil
}

// ObterUsuarioCotacao devolve a configuração de capa/assinatura do usuário
// (busca case-insensitive) ou nil quando o usuário não tem perfil.
func ObterUsuarioCotacao(username string) *entity.PerfilUsuario {
	u, ok := usuarios[strings.ToLower(username)]
	if !ok {
		return nil
	}
	return &u
}

// Listar devolve as filiais cadastradas em ordem de id, para montagem de combos.
func Listar() []entity.Filial {
	out := make([]entity.Filial, 0, len(diretorio))
	for id := 1; id <= len(diretorio); id++ {
		if f, ok := diretorio[id]; ok {
			out = append(out, f)
		}
	}
	return out
}
