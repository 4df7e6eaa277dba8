package composer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/worldcomp/crm-api/internal/domain/entity"
	"github.com/worldcomp/crm-api/pkg/brfmt"
)

const (
	alturaLinha          = 6.0
	limiteInferiorTabela = 272.0
)

// ComposicaoKitFn resolve a composição de um kit de catálogo no momento em
// que o item é desenhado.
type ComposicaoKitFn func(produtoID int64) []entity.ComponenteKit

// desenharTabelaItens desenha a tabela de itens da proposta de borda a borda
// (x=5, 200mm de largura) e devolve a soma exibida na linha de total. A
// altura de cada linha segue o bloco de descrição; as demais colunas são
// esticadas até essa altura para manter a grade fechada.
func desenharTabelaItens(cv Canvas, modo ModoColunas, itens []entity.ItemCotacao, operacaoLocacao bool, composicao ComposicaoKitFn) decimal.Decimal {
	w := modo.Larguras()
	titulos := modo.Cabecalhos()

	cv.SetX(5)
	cv.SetFillColor(CorCabecalhoTabela)
	cv.SetTextColor(CorBranco)
	cv.SetFont("B", 11)
	for i, t := range titulos {
		align := AlinhaDireita
		switch i {
		case 0, 2:
			align = AlinhaCentro
		case 1:
			align = AlinhaEsquerda
		}
		cv.Cell(w[i], 8, brfmt.CleanText(t), true, true, align, i == len(titulos)-1)
	}
	cv.SetTextColor(CorPreto)
	cv.SetFont("", 11)

	soma := decimal.Zero
	for n, it := range itens {
		desc := descricaoItem(it, operacaoLocacao, composicao)
		linhas := strings.SplitN(desc, "\n", 2)
		primeira := linhas[0]
		resto := ""
		if len(linhas) > 1 {
			resto = linhas[1]
		}

		// Estimar a altura antes de desenhar para não partir a linha no
		// meio de uma quebra automática.
		estimadas := cv.MeasureLines(brfmt.CleanText(primeira), w[1])
		if resto != "" {
			estimadas += cv.MeasureLines(brfmt.CleanText(resto), w[1])
		}
		if cv.Y()+float64(estimadas)*alturaLinha > limiteInferiorTabela {
			cv.AddPage()
		}

		yPos := cv.Y()
		xDesc := 5 + w[0]

		// Descrição com a primeira linha em negrito e uma única borda ao
		// redor do bloco.
		cv.SetFont("B", 11)
		cv.SetXY(xDesc, yPos)
		cv.MultiCell(w[1], alturaLinha, brfmt.CleanText(primeira), false, AlinhaEsquerda)
		if resto != "" {
			cv.SetFont("", 11)
			cv.SetX(xDesc)
			cv.MultiCell(w[1], alturaLinha, brfmt.CleanText(resto), false, AlinhaEsquerda)
		}
		altura := cv.Y() - yPos
		if altura < alturaLinha {
			altura = alturaLinha
		}
		cv.Rect(xDesc, yPos, w[1], altura)

		cv.SetFont("", 11)
		cv.SetXY(5, yPos)
		cv.Cell(w[0], altura, fmt.Sprintf("%d", n+1), true, false, AlinhaCentro, false)

		cv.SetXY(xDesc+w[1], yPos)
		cv.SetFont("", 10)
		cv.Cell(w[2], altura, it.Quantidade.Truncate(0).String(), true, false, AlinhaCentro, false)
		cv.Cell(w[3], altura, brfmt.FormatCurrency(it.ValorUnitario), true, false, AlinhaDireita, false)

		switch modo {
		case ColunasICMSISS:
			cv.Cell(w[4], altura, brfmt.FormatCurrency(it.ICMS), true, false, AlinhaDireita, false)
			cv.Cell(w[5], altura, brfmt.FormatCurrency(it.ISS), true, false, AlinhaDireita, false)
			cv.Cell(w[6], altura, brfmt.FormatCurrency(it.ValorTotal), true, false, AlinhaDireita, true)
		case ColunasICMS:
			cv.Cell(w[4], altura, brfmt.FormatCurrency(it.ICMS), true, false, AlinhaDireita, false)
			cv.Cell(w[5], altura, brfmt.FormatCurrency(it.ValorTotal), true, false, AlinhaDireita, true)
		default:
			cv.Cell(w[4], altura, brfmt.FormatCurrency(it.ValorTotal), true, false, AlinhaDireita, true)
		}
		cv.SetFont("", 11)

		soma = soma.Add(it.ValorTotal)
	}

	// Linha de total ocupando todas as colunas menos a última.
	largRotulo := 0.0
	for _, x := range w[:len(w)-1] {
		largRotulo += x
	}
	cv.SetX(5)
	cv.SetFont("B", 12)
	cv.SetFillColor(CorFundoTotal)
	cv.SetTextColor(CorPreto)
	cv.Cell(largRotulo, 10, brfmt.CleanText("VALOR TOTAL DA PROPOSTA:"), true, true, AlinhaDireita, false)
	cv.Cell(w[len(w)-1], 10, brfmt.CleanText(brfmt.FormatCurrency(soma)), true, true, AlinhaDireita, true)
	cv.Ln(10)

	return soma
}

// descricaoItem monta o bloco de descrição de um item. Kits de catálogo
// listam a composição; serviços anexam estadia, deslocamento e mão de obra
// quando informados; kits sem produto de catálogo seguem a forma de serviço.
func descricaoItem(it entity.ItemCotacao, operacaoLocacao bool, composicao ComposicaoKitFn) string {
	nome := it.Nome
	if nome == "" {
		nome = "Descrição não informada"
	}

	prefixo := ""
	if operacaoLocacao {
		prefixo = "Locação - "
	}

	switch {
	case it.Tipo == entity.ItemKit && it.ProdutoID != 0:
		var b strings.Builder
		fmt.Fprintf(&b, "%sKit: %s\nComposição:", prefixo, nome)
		if composicao != nil {
			for _, c := range composicao(it.ProdutoID) {
				fmt.Fprintf(&b, "\n%s x %s", c.Quantidade.Truncate(0).String(), c.Nome)
			}
		}
		return b.String()

	case it.EhServico():
		rotulo := "Serviço"
		if it.Tipo == entity.ItemKit {
			rotulo = "Serviços"
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%s%s: %s", prefixo, rotulo, nome)
		if it.Estadia.IsPositive() {
			fmt.Fprintf(&b, "\nEstadia: R$ %s", it.Estadia.StringFixed(2))
		}
		if it.Deslocamento.IsPositive() {
			fmt.Fprintf(&b, "\nDeslocamento: R$ %s", it.Deslocamento.StringFixed(2))
		}
		if it.MaoObra.IsPositive() {
			fmt.Fprintf(&b, "\nMão de Obra: R$ %s", it.MaoObra.StringFixed(2))
		}
		return b.String()

	case operacaoLocacao || it.Tipo == entity.ItemLocacao:
		return "Nome do Equipamento\n" + nome

	default:
		return prefixo + nome
	}
}
