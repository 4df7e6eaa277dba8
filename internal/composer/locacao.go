package composer

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/worldcomp/crm-api/internal/domain/entity"
	"github.com/worldcomp/crm-api/pkg/brfmt"
)

// Larguras da tabela de equipamentos de locação (soma 200mm).
var largurasLocacao = []float64{90, 20, 50, 40}

var regexDDL = regexp.MustCompile(`(?i)(\d)\s*DDL`)

// extrairDDL lê a condição de pagamento e devolve o texto de vencimento do
// parágrafo de pagamento. Condição vazia vira "30 dias".
func extrairDDL(condicaoPagamento string) string {
	if m := regexDDL.FindStringSubmatch(condicaoPagamento); m != nil {
		return m[1] + " DDL"
	}
	if raw := strings.TrimSpace(condicaoPagamento); raw != "" {
		return raw
	}
	return "30 dias"
}

func itensLocacao(cot *entity.Cotacao) []entity.ItemCotacao {
	var out []entity.ItemCotacao
	for _, it := range cot.Itens {
		if it.Tipo == entity.ItemLocacao {
			out = append(out, it)
		}
	}
	return out
}

// totalMensalLocacao soma valor mensal x quantidade de cada equipamento.
func totalMensalLocacao(itens []entity.ItemCotacao) decimal.Decimal {
	total := decimal.Zero
	for _, it := range itens {
		total = total.Add(it.ValorUnitario.Mul(it.Quantidade))
	}
	return total
}

// totalGeralLocacao soma valor mensal x meses x quantidade de cada
// equipamento, o valor cheio do contrato.
func totalGeralLocacao(itens []entity.ItemCotacao) decimal.Decimal {
	total := decimal.Zero
	for _, it := range itens {
		meses := decimal.NewFromInt(int64(it.LocacaoMeses))
		total = total.Add(it.ValorUnitario.Mul(meses).Mul(it.Quantidade))
	}
	return total
}

// ── Página 4: cobertura e equipamento ofertado ──

func (co *Composer) paginaEquipamentoLocacao(cot *entity.Cotacao, p4 Pagina4) {
	cv := co.cv
	cv.AddPage()
	cv.SetY(50)

	co.tituloAzul("COBERTURA TOTAL", 12)
	cv.SetFont("", 11)
	cobertura := p4.Texto
	if cobertura == "" {
		cobertura = "O Contrato de Locação cobre todos os serviços e manutenções, isso significa que não existe custos inesperados com o seu sistema de ar comprimido. O cronograma de manutenções preventivas é seguido à risca e gerenciado por um time de engenheiros especializados para garantir o mais alto nível de eficiência. Além de você contar com a cobertura completa para reparos, intervenções emergenciais e atendimento proativo completa para reparos, intervenções emergenciais e atendimento proativo."
	}
	cv.MultiCell(0, 5, brfmt.CleanText(cobertura), false, AlinhaEsquerda)
	cv.Ln(4)

	co.tituloAzul("EQUIPAMENTO A SER OFERTADO:", 12)
	cv.Ln(2)

	equipamento := co.nomeEquipamentoLocacao(cot)
	if equipamento == "" {
		equipamento = "COMPRESSOR DE PARAFUSO LUBRIFICADO REFRIGERADO À AR"
	}
	cv.SetFont("B", 12)
	cv.MultiCell(0, 6, brfmt.CleanText(equipamento), false, AlinhaEsquerda)
	cv.Ln(3)

	if img := co.imagemEquipamento(cot, p4); img != "" {
		w, h := 70*1.3, 24*1.3*3.5
		x := (210 - w) / 2
		y := cv.Y() + 10
		if y+h > 270 {
			cv.AddPage()
			y = 35
		}
		_ = cv.Image(img, x, y, w, h)
		cv.SetY(y + h + 6)
	}
}

func (co *Composer) imagemEquipamento(cot *entity.Cotacao, p4 Pagina4) string {
	candidatos := []string{p4.Imagem, cot.LocacaoImagemPath}
	for _, it := range itensLocacao(cot) {
		candidatos = append(candidatos, it.LocacaoImagemPath)
	}
	for _, c := range candidatos {
		if strings.TrimSpace(c) == "" {
			continue
		}
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

// ── Página 5: tabela de equipamentos ──

func (co *Composer) paginaTabelaLocacao(cot *entity.Cotacao) {
	cv := co.cv
	cv.AddPage()
	cv.SetY(50)
	cv.SetTextColor(CorAzulBebe)
	cv.SetFont("B", 14)
	cv.Cell(0, 10, brfmt.CleanText("EQUIPAMENTOS"), false, false, AlinhaEsquerda, true)
	cv.Ln(2)
	cv.SetTextColor(CorPreto)

	itens := itensLocacao(cot)
	w := largurasLocacao

	cv.SetX(5)
	cv.SetFillColor(CorCabecalhoTabela)
	cv.SetTextColor(CorBranco)
	cv.SetFont("B", 11)
	cv.Cell(w[0], 8, brfmt.CleanText("Nome do Equipamento"), true, true, AlinhaCentro, false)
	cv.Cell(w[1], 8, brfmt.CleanText("Qtd"), true, true, AlinhaCentro, false)
	cv.Cell(w[2], 8, brfmt.CleanText("Valor Mensal"), true, true, AlinhaCentro, false)
	cv.Cell(w[3], 8, brfmt.CleanText("Período (meses)"), true, true, AlinhaCentro, true)

	cv.SetTextColor(CorPreto)
	cv.SetFont("", 11)
	for _, it := range itens {
		nome := brfmt.CleanText(it.Nome)
		valor := brfmt.CleanText(brfmt.FormatCurrency(it.ValorUnitario))

		linhas := cv.MeasureLines(nome, w[0])
		if l := cv.MeasureLines(valor, w[2]); l > linhas {
			linhas = l
		}
		if linhas < 1 {
			linhas = 1
		}
		h := float64(linhas) * alturaLinha

		// Mesma regra da tabela itemizada: estimar a altura antes de
		// desenhar para não partir a linha entre páginas.
		if cv.Y()+h > limiteInferiorTabela {
			cv.AddPage()
		}

		cv.SetX(5)
		x0, y0 := cv.X(), cv.Y()
		cv.MultiCell(w[0], alturaLinha, nome, true, AlinhaEsquerda)
		cv.SetXY(x0+w[0], y0)
		cv.Cell(w[1], h, it.Quantidade.Truncate(0).String(), true, false, AlinhaCentro, false)
		cv.MultiCell(w[2], alturaLinha, valor, true, AlinhaDireita)
		cv.SetXY(x0+w[0]+w[1]+w[2], y0)
		cv.Cell(w[3], h, strconv.Itoa(it.LocacaoMeses), true, false, AlinhaCentro, true)
	}

	cv.Ln(6)
	cv.SetX(5)
	cv.SetFont("B", 12)
	cv.SetFillColor(CorFundoTotal)
	cv.SetTextColor(CorPreto)
	cv.Cell(w[0]+w[1]+w[2], 10, brfmt.CleanText("TOTAL GERAL:"), true, true, AlinhaDireita, false)
	cv.Cell(w[3], 10, brfmt.CleanText(brfmt.FormatCurrency(totalGeralLocacao(itens))), true, true, AlinhaDireita, true)

	cv.Ln(6)
	co.condicoesComerciais(cot)
	co.observacoes(cot)
}

// ── Página 6: condições de pagamento ──

func (co *Composer) paginaPagamentoLocacao(cot *entity.Cotacao) {
	cv := co.cv
	cv.AddPage()
	cv.SetY(35)

	co.tituloAzul("CONDIÇÕES DE PAGAMENTO:", 12)
	cv.SetFont("", 11)

	mensal := brfmt.FormatCurrency(totalMensalLocacao(itensLocacao(cot)))
	vencimento := extrairDDL(cot.CondicaoPagamento)
	texto := "O preço inclui: Uso do equipamento listado no Resumo da Proposta Preço, partida técnica, serviços " +
		"preventivos e corretivos, peças, deslocamento e acomodação dos técnicos, quando necessário. " +
		"Pelos serviços objeto desta proposta, após a entrega do(s) equipamento(s) previsto neste contrato, o " +
		"CONTRATANTE deverá iniciar os respectivos pagamentos mensais referentes a locação no valor de " + mensal +
		" taxa fixa mensal, com vencimento à " + vencimento + ", Data esta que " +
		"contará a partir da entrega do equipamento nas dependencias da contratante, ( COM " +
		"FATURAMENTO ATRAVÉS DE RECIBO DE LOCAÇÃO)."
	cv.MultiCell(0, 6, brfmt.CleanText(texto), false, AlinhaEsquerda)
	cv.Ln(6)

	co.tituloAzul("CONDIÇÕES COMERCIAIS", 12)
	cv.SetFont("", 11)

	topicos := []string{
		"Os equipamentos objetos desta proposta serão fornecidos em caráter de Locação, cujas regras dessa modalidade estão descritas nos Termos e Condições Gerais de Locação de Equipamento, parte integrante deste documento.",
		"Assim que V. Sa. receber os equipamentos e materiais, entrar em contato conosco para agendar o serviço de partida(s) técnica(s).",
		"Validade do Contrato 5 anos",
		"Informar sobre a necessidade de envio de documentos necessários para integração de técnicos.",
		"Antes da compra do serviço, o cliente deve informar a World Comp, ou seu representante, se existem quaisquer riscos ou circunstâncias na sua operação que possam provocar acidentes envolvendo as pessoas que realizarão o serviço, assim como as medidas de proteção ou outras ações necessárias que a World Comp deva tomar a fim de reduzir tais riscos.",
		"É de responsabilidade do cliente fornecer todas as condições necessárias para a execução das manutenções, tais como equipamentos para elevação/transporte interno, iluminação, água e local adequados para limpeza de resfriadores e demais componentes, mão de obra para eventuais necessidades, etc.",
		"Os resíduos gerados pelas atividades da World Comp são de responsabilidade do cliente.",
		"Todos os preços são para horário de trabalho definido como horário comercial, de segunda a sexta-feira, das 8h às 17h.",
		"A World Comp não se responsabiliza perante o cliente, seus funcionários ou terceiros por perdas ou danos pessoais, diretos e indiretos, de imagem, lucros cessantes e perda econômica decorrentes dos serviços ora contratados ou de acidentes de qualquer tipo causados pelos equipamentos que sofrerão manutenção.",
	}
	for _, t := range topicos {
		cv.MultiCell(0, 6, brfmt.CleanText("- "+t), false, AlinhaEsquerda)
		cv.Ln(1)
	}
}
