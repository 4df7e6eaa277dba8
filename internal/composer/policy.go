package composer

import (
	"github.com/worldcomp/crm-api/internal/domain/entity"
	"github.com/worldcomp/crm-api/internal/filiais"
)

// ModoColunas define quais colunas de imposto a tabela de itens exibe.
type ModoColunas int

const (
	// ColunasSemImposto mostra apenas Item, Descrição, Qtd., Valor Unit. e Total.
	ColunasSemImposto ModoColunas = iota
	// ColunasICMS acrescenta a coluna ICMS.
	ColunasICMS
	// ColunasICMSISS acrescenta as colunas ICMS e ISS.
	ColunasICMSISS
)

// DecideColunas aplica a regra fiscal da tabela de itens. A filial 1 nunca
// exibe colunas de imposto; nas demais, serviços trazem ICMS+ISS e produtos
// apenas ICMS, com serviços prevalecendo quando a cotação mistura os dois.
func DecideColunas(filial *entity.Filial, itens []entity.ItemCotacao) ModoColunas {
	filial1 := false
	if filial != nil {
		filial1 = filial.ID == 1 || filial.CNPJ == filiais.CNPJFilial1
	}
	if filial1 {
		return ColunasSemImposto
	}

	temServico := false
	temProduto := false
	for _, it := range itens {
		if it.EhServico() {
			temServico = true
		}
		if it.Tipo == entity.ItemProduto {
			temProduto = true
		}
	}
	switch {
	case temServico:
		return ColunasICMSISS
	case temProduto:
		return ColunasICMS
	default:
		return ColunasSemImposto
	}
}

// Larguras devolve as larguras de coluna em mm; a soma é sempre 200 para a
// tabela ir de borda a borda partindo de x=5.
func (m ModoColunas) Larguras() []float64 {
	switch m {
	case ColunasICMSISS:
		return []float64{15, 70, 15, 25, 20, 20, 35}
	case ColunasICMS:
		return []float64{15, 88, 15, 30, 22, 30}
	default:
		return []float64{15, 115, 15, 25, 30}
	}
}

// Cabecalhos devolve os títulos das colunas na ordem de Larguras.
func (m ModoColunas) Cabecalhos() []string {
	switch m {
	case ColunasICMSISS:
		return []string{"Item", "Descrição", "Qtd.", "Valor Unit.", "ICMS", "ISS", "Total"}
	case ColunasICMS:
		return []string{"Item", "Descrição", "Qtd.", "Valor Unit.", "ICMS", "Total"}
	default:
		return []string{"Item", "Descrição", "Qtd.", "Valor Unit.", "Total"}
	}
}
