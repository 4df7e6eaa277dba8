package entity

import "github.com/shopspring/decimal"

// TipoItem é a união fechada de tipos de item de cotação. A classificação é
// decidida uma única vez na resolução (a partir das colunas tipo e
// tipo_operacao do banco); o composer nunca compara strings.
type TipoItem int

const (
	ItemProduto TipoItem = iota
	ItemServico
	ItemKit
	ItemLocacao
)

// ItemCotacao é uma linha resolvida da cotação.
type ItemCotacao struct {
	ID        int64
	Tipo      TipoItem
	Nome      string
	Descricao string

	Quantidade    decimal.Decimal
	ValorUnitario decimal.Decimal
	// ValorTotal é o valor de exibição autoritativo do item. Para kits reflete
	// o preço de catálogo do kit; o composer nunca o recalcula.
	ValorTotal decimal.Decimal

	// Custos aditivos de serviço (zero quando não se aplicam)
	MaoObra      decimal.Decimal
	Deslocamento decimal.Decimal
	Estadia      decimal.Decimal

	ICMS decimal.Decimal
	ISS  decimal.Decimal

	// ProdutoID referencia o produto/kit de catálogo; zero quando o item foi
	// digitado livre. Um Kit sem ProdutoID válido é tratado como serviço.
	ProdutoID int64

	// Somente locação
	LocacaoMeses      int
	LocacaoImagemPath string
}

// EhServico indica se o item entra nas regras de serviço (coluna ISS, linhas
// de estadia/deslocamento/mão de obra). Kits sem produto de catálogo válido
// contam como serviço.
func (i ItemCotacao) EhServico() bool {
	return i.Tipo == ItemServico || (i.Tipo == ItemKit && i.ProdutoID == 0)
}

// ComponenteKit é um componente da composição de um kit, resolvido só no
// momento em que o item é renderizado.
type ComponenteKit struct {
	Nome       string
	Quantidade decimal.Decimal
}
