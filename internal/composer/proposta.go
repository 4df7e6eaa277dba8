package composer

import (
	"os"
	"strings"

	"github.com/worldcomp/crm-api/internal/domain/entity"
	"github.com/worldcomp/crm-api/internal/filiais"
	"github.com/worldcomp/crm-api/pkg/brfmt"
)

// Pagina4 permite sobrescrever o conteúdo da página de equipamento das
// propostas de locação. Campos vazios caem nos dados da cotação.
type Pagina4 struct {
	Texto  string
	Imagem string
}

// Composer monta o documento completo de uma proposta sobre um canvas.
type Composer struct {
	cv         Canvas
	pg         *Paginator
	filial     *entity.Filial
	usuario    *entity.PerfilUsuario
	rec        Recursos
	composicao ComposicaoKitFn
}

// NovoComposer prepara o composer com a filial emissora, o perfil do usuário
// responsável (pode ser nil) e o resolvedor de composição de kits.
func NovoComposer(cv Canvas, filial *entity.Filial, usuario *entity.PerfilUsuario, rec Recursos, composicao ComposicaoKitFn) *Composer {
	return &Composer{
		cv:         cv,
		pg:         NovoPaginator(cv, filial, rec),
		filial:     filial,
		usuario:    usuario,
		rec:        rec,
		composicao: composicao,
	}
}

// Montar desenha o documento inteiro da cotação. Propostas de compra e de
// locação compartilham capa, apresentação e página institucional; a partir
// da quarta página cada fluxo segue seu próprio roteiro.
func (co *Composer) Montar(cot *entity.Cotacao, p4 Pagina4) {
	co.paginaCapa(cot)
	co.paginaApresentacao(cot)
	co.paginaInstitucional(cot)

	if cot.EhLocacao() {
		co.paginaEquipamentoLocacao(cot, p4)
		co.paginaTabelaLocacao(cot)
		co.paginaPagamentoLocacao(cot)
		co.contratoLocacao(cot)
		return
	}

	co.secaoEsboco(cot)
	co.secaoRelacaoPecas(cot)
	co.paginasDetalhes(cot)
}

// ── Página 1: capa ──

func (co *Composer) paginaCapa(cot *entity.Cotacao) {
	cv := co.cv
	cv.AddPage()

	capa := co.rec.Capa
	if co.usuario != nil && co.usuario.TemplateCapa != "" {
		capa = co.usuario.TemplateCapa
	}
	if capa != "" {
		if _, err := os.Stat(capa); err == nil {
			_ = cv.Image(capa, 0, 0, 210, 297)
		}
	}

	// Bloco dinâmico no canto inferior esquerdo, sem deixar a quebra
	// automática empurrar as linhas para uma página nova.
	cv.SetAutoPageBreak(false, 0)
	cv.SetTextColor(CorBranco)
	cv.SetFont("B", 12)
	cv.SetXY(14, 254)

	if nome := strings.TrimSpace(cot.NomeExibicaoCliente()); nome != "" {
		cv.SetX(14)
		cv.Cell(0, 6, brfmt.CleanText(nome), false, false, AlinhaEsquerda, true)
	}
	if contato := strings.TrimSpace(cot.ContatoNome); contato != "" {
		cv.SetX(14)
		cv.Cell(0, 6, brfmt.CleanText("A/C : "+contato), false, false, AlinhaEsquerda, true)
	}
	cv.SetX(14)
	cv.Cell(0, 6, brfmt.CleanText("Data: "+brfmt.FormatDate(cot.DataCriacao)), false, false, AlinhaEsquerda, true)

	cv.SetAutoPageBreak(true, margemFundoPadrao)
	cv.SetTextColor(CorPreto)
}

// ── Página 2: apresentação ──

func (co *Composer) paginaApresentacao(cot *entity.Cotacao) {
	cv := co.cv
	cv.AddPage()
	cv.SetY(40)

	// Duas colunas: cliente à esquerda, filial emissora à direita.
	cv.SetFont("B", 10)
	cv.Cell(95, 7, brfmt.CleanText("APRESENTADO PARA:"), false, false, AlinhaEsquerda, false)
	cv.SetX(105)
	cv.Cell(95, 7, brfmt.CleanText("APRESENTADO POR:"), false, false, AlinhaEsquerda, true)

	cv.Cell(95, 5, brfmt.CleanText(cot.NomeExibicaoCliente()), false, false, AlinhaEsquerda, false)
	cv.SetX(105)
	cv.Cell(95, 5, brfmt.CleanText(co.nomeFilial()), false, false, AlinhaEsquerda, true)

	cv.SetFont("", 10)
	cnpjCliente := "CNPJ: N/A"
	if cot.Cliente.CNPJ != "" {
		cnpjCliente = "CNPJ: " + brfmt.FormatCNPJ(cot.Cliente.CNPJ)
	}
	cv.Cell(95, 5, brfmt.CleanText(cnpjCliente), false, false, AlinhaEsquerda, false)
	cv.SetX(105)
	cnpjFilial := "CNPJ: " + co.cnpjFilial()
	if co.filialEhPrimeira() {
		cnpjFilial += "  |  I.E: 635970206110"
	}
	cv.Cell(95, 5, brfmt.CleanText(cnpjFilial), false, false, AlinhaEsquerda, true)

	foneCliente := "FONE: N/A"
	if cot.Cliente.Telefone != "" {
		foneCliente = "FONE: " + brfmt.FormatPhone(cot.Cliente.Telefone)
	}
	cv.Cell(95, 5, brfmt.CleanText(foneCliente), false, false, AlinhaEsquerda, false)
	cv.SetX(105)
	cv.Cell(95, 5, brfmt.CleanText("FONE: "+co.telefonesFilial()), false, false, AlinhaEsquerda, true)

	contato := "Contato: N/A"
	if cot.ContatoNome != "" {
		contato = "Sr(a). " + cot.ContatoNome
	}
	cv.Cell(95, 5, brfmt.CleanText(contato), false, false, AlinhaEsquerda, false)
	cv.SetX(105)
	cv.Cell(95, 5, brfmt.CleanText("E-mail: "+co.emailResponsavel(cot)), false, false, AlinhaEsquerda, true)

	cv.Cell(95, 5, "", false, false, AlinhaEsquerda, false)
	cv.SetX(105)
	cv.Cell(95, 5, brfmt.CleanText("Responsável: "+cot.Responsavel.NomeCompleto), false, false, AlinhaEsquerda, true)

	cv.Ln(10)

	if cot.EhLocacao() {
		co.textoApresentacaoLocacao(cot)
	} else {
		co.textoApresentacaoCompra(cot)
	}

	co.assinaturaApresentacao(cot)
}

func (co *Composer) textoApresentacaoCompra(cot *entity.Cotacao) {
	cv := co.cv
	cv.SetFont("", 11)

	modelo := ""
	if cot.ModeloCompressor != "" {
		modelo = " " + cot.ModeloCompressor
	}
	paragrafos := []string{
		"Prezados,",
		"Agradecemos a sua solicitação e, conforme requerido, apresentamos nossas condições comerciais para fornecimento de serviços e mão de obra para seu compressor" + modelo + ".",
		"A Word Comp Compressores é especializada em manutenção de compressores de parafuso das principais marcas do mercado, como Atlas Copco, Ingersoll Rand, Chicago. Atuamos também com revisão de equipamentos e unidades compressoras, venda de peças, bem como venda e locação de compressores de parafuso isento de óleo e lubrificados",
		"Com profissionais altamente qualificados e atendimento especializado, colocamo-nos à disposição para analisar, corrigir e prestar os devidos esclarecimentos, sempre buscando atender às especificações e necessidades dos nossos clientes.",
		"Atenciosamente,",
	}
	for i, par := range paragrafos {
		if i == 1 && modelo != "" {
			// Modelo do compressor em negrito dentro do parágrafo.
			alvo := "compressor" + modelo
			antes, depois, ok := strings.Cut(par, alvo)
			if ok {
				cv.SetFont("", 11)
				cv.Write(5, brfmt.CleanText(antes+"compressor"))
				cv.SetFont("B", 11)
				cv.Write(5, brfmt.CleanText(modelo))
				cv.SetFont("", 11)
				cv.Write(5, brfmt.CleanText(depois))
			} else {
				cv.MultiCell(0, 5, brfmt.CleanText(par), false, AlinhaEsquerda)
			}
		} else {
			cv.MultiCell(0, 5, brfmt.CleanText(par), false, AlinhaEsquerda)
		}
		cv.Ln(5)
		if i == 1 {
			cv.Ln(20)
		}
	}
}

func (co *Composer) textoApresentacaoLocacao(cot *entity.Cotacao) {
	cv := co.cv
	cv.SetFont("", 11)

	equipamento := strings.TrimSpace(co.nomeEquipamentoLocacao(cot))
	paragrafos := []string{
		"Prezados Senhores:",
		"Agradecemos por nos conceder a oportunidade de apresentarmos nossa proposta para fornecimento de Locação de Compressor de Ar " + equipamento + ".",
		"A World Comp Compressores e especializada em manutencao de compressores de parafuso das principais marcas do mercado, como Atlas Copco, Ingersoll Rand, Chicago. Atuamos tambem com revisao de equipamentos e unidades compressoras, venda de pecas, bem como venda e locacao de compressores de parafuso isentos de oleo e lubrificados.",
		"Com profissionais altamente qualificados e atendimento especializado, colocamo-nos a disposicao para analisar, corrigir e prestar os devidos esclarecimentos, sempre buscando atender as especificacoes e necessidades dos nossos clientes.",
	}
	for i, par := range paragrafos {
		par = substituirNomeEmpresa(par, co.nomeFilial())
		if i == 1 && equipamento != "" && strings.Contains(par, equipamento) {
			antes, depois, _ := strings.Cut(par, equipamento)
			cv.SetFont("", 11)
			cv.Write(5, brfmt.CleanText(antes))
			cv.SetFont("B", 11)
			cv.Write(5, brfmt.CleanText(equipamento))
			cv.SetFont("", 11)
			cv.Write(5, brfmt.CleanText(depois))
		} else {
			cv.MultiCell(0, 5, brfmt.CleanText(par), false, AlinhaEsquerda)
		}
		cv.Ln(5)
		if i == 1 {
			cv.Ln(20)
		}
	}
}

func (co *Composer) assinaturaApresentacao(cot *entity.Cotacao) {
	cv := co.cv
	cv.SetY(240)
	if cot.EhLocacao() {
		// "Atenciosamente" sobe para separar do bloco do responsável.
		cv.Ln(-60)
		cv.SetFont("", 11)
		cv.Cell(0, 5, brfmt.CleanText("Atenciosamente,"), false, false, AlinhaEsquerda, true)
		cv.SetY(240)
	}

	nome := cot.Responsavel.NomeCompleto
	if nome == "" && co.usuario != nil {
		nome = co.usuario.NomeCompleto
	}
	cv.SetFont("B", 11)
	cv.Cell(0, 6, brfmt.CleanText(strings.ToUpper(nome)), false, false, AlinhaEsquerda, true)
	cv.SetFont("", 11)
	cv.Cell(0, 5, brfmt.CleanText("Vendas"), false, false, AlinhaEsquerda, true)
	cv.Cell(0, 5, brfmt.CleanText("Fone: "+co.telefonesFilial()), false, false, AlinhaEsquerda, true)
	if cot.EhLocacao() {
		cv.Cell(0, 5, brfmt.CleanText("WORLD COMP DO BRASIL COMPRESSORES LTDA"), false, false, AlinhaEsquerda, true)
	} else {
		cv.Cell(0, 5, brfmt.CleanText(co.nomeFilial()), false, false, AlinhaEsquerda, true)
	}
}

// ── Página 3: institucional ──

func (co *Composer) paginaInstitucional(cot *entity.Cotacao) {
	cv := co.cv
	cv.AddPage()
	cv.SetY(45)

	if cot.EhLocacao() {
		secoes := []struct{ titulo, texto string }{
			{"SOBRE A WORLD COMP", "A World Comp Compressores e uma empresa com mais de uma decada de atuacao no mercado nacional, especializada na manutencao de compressores de ar do tipo parafuso. Seu atendimento abrange todo o territorio brasileiro, oferecendo solucoes tecnicas e comerciais voltadas a maximizacao do desempenho e da confiabilidade dos sistemas de ar comprimido utilizados por seus clientes."},
			{"NOSSOS SERVICOS", "A empresa oferece um portfolio completo de servicos, que contempla a manutencao preventiva e corretiva de compressores e unidades compressoras, a venda de pecas de reposicao para diversas marcas, a locacao de compressores de parafuso, incluindo modelos lubrificados e isentos de oleo, alem da recuperacao de unidades compressoras e trocadores de calor. A World Comp tambem disponibiliza contratos de manutencao personalizados, adaptados as necessidades operacionais especificas de cada cliente. Dentre os principais fabricantes atendidos, destacam-se marcas reconhecidas como Atlas Copco, Ingersoll Rand e Chicago Pneumatic."},
			{"QUALIDADE DOS SERVICOS & MELHORIA CONTINUA", "A empresa investe continuamente na capacitacao de sua equipe, na modernizacao de processos e no aprimoramento da estrutura de atendimento, assegurando alto padrao de qualidade, agilidade e eficacia nos servicos. Mantem ainda uma politica ativa de melhoria continua, com avaliacoes periodicas que visam atualizar tecnologias, aperfeicoar metodos e garantir excelencia tecnica."},
			{"CONTE CONOSCO PARA UMA PARCERIA!", "Nossa missao e ser sua melhor parceria com sinonimo de qualidade, garantia e o melhor custo beneficio."},
		}
		for _, s := range secoes {
			co.tituloAzul(s.titulo, 12)
			cv.SetFont("", 11)
			cv.MultiCell(0, 5, brfmt.CleanText(substituirNomeEmpresa(s.texto, co.nomeFilial())), false, AlinhaEsquerda)
			cv.Ln(3)
		}
		cv.Ln(7)
		return
	}

	cv.SetFont("B", 12)
	cv.Cell(0, 8, brfmt.CleanText("SOBRE A WORLD COMP"), false, false, AlinhaEsquerda, true)
	cv.SetFont("", 11)
	cv.MultiCell(0, 5, brfmt.CleanText("Há mais de uma década no mercado de manutenção de compressores de ar de parafuso, de diversas marcas, atendemos clientes em todo território brasileiro."), false, AlinhaEsquerda)
	cv.Ln(5)

	secoes := []struct{ titulo, texto string }{
		{"FORNECIMENTO, SERVIÇO E LOCAÇÃO", "A World Comp oferece os serviços de Manutenção Preventiva e Corretiva em Compressores e Unidades Compressoras, Venda de peças, Locação de compressores, Recuperação de Unidades Compressoras, Recuperação de Trocadores de Calor e Contrato de Manutenção em compressores de marcas como: Atlas Copco, Ingersoll Rand, Chicago Pneumatic entre outros."},
		{"CONTE CONOSCO PARA UMA PARCERIA", "Adaptamos nossa oferta para suas necessidades, objetivos e planejamento. Trabalhamos para que seu processo seja eficiente."},
		{"MELHORIA CONTÍNUA", "Continuamente investindo em comprometimento, competência e eficiência de nossos serviços, produtos e estrutura para garantirmos a máxima eficiência de sua produtividade."},
		{"QUALIDADE DE SERVIÇOS", "Com uma equipe de técnicos altamente qualificados e constantemente treinados para atendimentos em todos os modelos de compressores de ar, a World Comp oferece garantia de excelente atendimento e produtividade superior com rapidez e eficácia."},
	}
	for _, s := range secoes {
		co.tituloAzul(s.titulo, 12)
		cv.SetFont("", 11)
		cv.MultiCell(0, 5, brfmt.CleanText(s.texto), false, AlinhaEsquerda)
		cv.Ln(3)
	}
	cv.MultiCell(0, 5, brfmt.CleanText("Nossa missão é ser sua melhor parceria com sinônimo de qualidade, garantia e o melhor custo benefício."), false, AlinhaEsquerda)
	cv.Ln(10)
}

// ── Seções de compra ──

func (co *Composer) secaoEsboco(cot *entity.Cotacao) {
	if strings.TrimSpace(cot.EsbocoServico) == "" {
		return
	}
	cv := co.cv
	cv.AddPage()
	co.pg.BeginSection("esboco", 35, 40, 130, 40, "ESBOÇO DO SERVIÇO A SER EXECUTADO")
	cv.SetY(35)
	cv.SetFont("B", 14)
	cv.Cell(0, 8, brfmt.CleanText("ESBOÇO DO SERVIÇO A SER EXECUTADO"), false, false, AlinhaEsquerda, true)
	cv.Ln(5)
	cv.SetFont("", 11)
	cv.MultiCell(0, 6, brfmt.CleanText(cot.EsbocoServico), false, AlinhaEsquerda)
	co.pg.EndSection()
}

func (co *Composer) secaoRelacaoPecas(cot *entity.Cotacao) {
	if strings.TrimSpace(cot.RelacaoPecasSubstituir) == "" {
		return
	}
	cv := co.cv
	cv.AddPage()
	co.pg.BeginSection("relacao", 35, 40, 130, 40, "RELAÇÃO DE PEÇAS A SEREM SUBSTITUÍDAS")
	cv.SetY(35)
	cv.SetFont("B", 14)
	cv.Cell(0, 8, brfmt.CleanText("RELAÇÃO DE PEÇAS A SEREM SUBSTITUÍDAS"), false, false, AlinhaEsquerda, true)
	cv.Ln(5)
	cv.SetFont("", 11)
	cv.MultiCell(0, 6, brfmt.CleanText(cot.RelacaoPecasSubstituir), false, AlinhaEsquerda)
	co.pg.EndSection()
}

func (co *Composer) paginasDetalhes(cot *entity.Cotacao) {
	cv := co.cv
	cv.AddPage()

	cv.SetFont("B", 12)
	cv.Cell(0, 8, brfmt.CleanText("PROPOSTA Nº "+cot.NumeroProposta), false, false, AlinhaEsquerda, true)
	cv.SetFont("", 11)
	cv.Cell(0, 6, brfmt.CleanText("Data: "+brfmt.FormatDate(cot.DataCriacao)), false, false, AlinhaEsquerda, true)
	cv.Cell(0, 6, brfmt.CleanText("Responsável: "+cot.Responsavel.NomeCompleto), false, false, AlinhaEsquerda, true)
	cv.Cell(0, 6, brfmt.CleanText("Telefone Responsável: "+brfmt.FormatPhone(cot.Responsavel.Telefone)), false, false, AlinhaEsquerda, true)
	cv.Ln(10)

	cv.SetFont("B", 11)
	cv.Cell(0, 6, brfmt.CleanText("DADOS DO CLIENTE:"), false, false, AlinhaEsquerda, true)
	cv.SetFont("", 11)
	cv.Cell(0, 5, brfmt.CleanText("Empresa: "+cot.NomeExibicaoCliente()), false, false, AlinhaEsquerda, true)
	if cot.Cliente.CNPJ != "" {
		cv.Cell(0, 5, brfmt.CleanText("CNPJ: "+brfmt.FormatCNPJ(cot.Cliente.CNPJ)), false, false, AlinhaEsquerda, true)
	}
	if cot.ContatoNome != "" && cot.ContatoNome != "Não informado" {
		cv.Cell(0, 5, brfmt.CleanText("Contato: "+cot.ContatoNome), false, false, AlinhaEsquerda, true)
	}
	cv.Ln(5)

	if cot.ModeloCompressor != "" || cot.NumeroSerieCompressor != "" {
		cv.SetFont("B", 11)
		cv.Cell(0, 6, brfmt.CleanText("DADOS DO COMPRESSOR:"), false, false, AlinhaEsquerda, true)
		cv.SetFont("", 11)
		if cot.ModeloCompressor != "" {
			cv.Cell(0, 5, brfmt.CleanText("Modelo: "+cot.ModeloCompressor), false, false, AlinhaEsquerda, true)
		}
		if cot.NumeroSerieCompressor != "" {
			cv.Cell(0, 5, brfmt.CleanText("Nº de Série: "+cot.NumeroSerieCompressor), false, false, AlinhaEsquerda, true)
		}
		cv.Ln(5)
	}

	cv.SetFont("B", 11)
	cv.Cell(0, 6, brfmt.CleanText("DESCRIÇÃO DO SERVIÇO:"), false, false, AlinhaEsquerda, true)
	cv.SetFont("", 11)
	cv.MultiCell(0, 5, brfmt.CleanText(co.descricaoAtividade(cot)), false, AlinhaEsquerda)
	cv.Ln(10)

	if rel := strings.TrimSpace(cot.RelacaoPecas); rel != "" {
		semPrefixo := strings.NewReplacer("Serviço: ", "", "Produto: ", "", "Kit: ", "").Replace(rel)
		cv.SetFont("B", 11)
		cv.Cell(0, 6, brfmt.CleanText("RELAÇÃO DE PEÇAS A SEREM SUBSTITUÍDAS:"), false, false, AlinhaEsquerda, true)
		cv.SetFont("", 11)
		cv.MultiCell(0, 5, brfmt.CleanText(semPrefixo), false, AlinhaEsquerda)
		cv.Ln(5)
	}

	if len(cot.Itens) > 0 {
		cv.SetFont("B", 12)
		cv.Cell(0, 8, brfmt.CleanText("ITENS DA PROPOSTA"), false, false, AlinhaCentro, true)
		cv.Ln(5)
		modo := DecideColunas(co.filial, cot.Itens)
		desenharTabelaItens(cv, modo, cot.Itens, false, co.composicao)
		cv.Ln(10)
	}

	co.condicoesComerciais(cot)
	co.observacoes(cot)
	cv.Ln(5)
}

// condicoesComerciais imprime o bloco comum de frete, pagamento, prazo e
// moeda. A filial 1 acrescenta as linhas de imposto incluso; locações
// acrescentam a linha do recibo de locação.
func (co *Composer) condicoesComerciais(cot *entity.Cotacao) {
	cv := co.cv
	cv.SetFont("B", 11)
	cv.Cell(0, 6, brfmt.CleanText("CONDIÇÕES COMERCIAIS:"), false, false, AlinhaEsquerda, true)
	cv.SetFont("", 11)

	linha := func(rotulo, valor, padrao string) {
		if valor == "" {
			valor = padrao
		}
		cv.Cell(0, 5, brfmt.CleanText(rotulo+": "+valor), false, false, AlinhaEsquerda, true)
	}
	linha("Tipo de Frete", cot.TipoFrete, "FOB")
	linha("Condição de Pagamento", cot.CondicaoPagamento, "A combinar")
	linha("Prazo de Entrega", cot.PrazoEntrega, "A combinar")
	linha("Moeda", cot.Moeda, "BRL (Real Brasileiro)")

	if cot.EhLocacao() {
		cv.Cell(0, 5, brfmt.CleanText(`O faturamento será realizado através de "recibo de locação"`), false, false, AlinhaEsquerda, true)
	}

	if co.filialEhPrimeira() && !cot.EhLocacao() {
		temProduto := false
		temServico := false
		for _, it := range cot.Itens {
			if it.Tipo == entity.ItemProduto {
				temProduto = true
			}
			if it.EhServico() {
				temServico = true
			}
		}
		if temProduto || temServico {
			cv.Cell(0, 5, brfmt.CleanText("Imposto Incluso"), false, false, AlinhaEsquerda, true)
		}
		if temProduto {
			cv.Cell(0, 5, brfmt.CleanText("ICMS: Imposto Incluso"), false, false, AlinhaEsquerda, true)
		}
	}
}

func (co *Composer) observacoes(cot *entity.Cotacao) {
	if strings.TrimSpace(cot.Observacoes) == "" {
		return
	}
	cv := co.cv
	cv.Ln(5)
	cv.SetFont("B", 11)
	cv.Cell(0, 6, brfmt.CleanText("OBSERVAÇÕES:"), false, false, AlinhaEsquerda, true)
	cv.SetFont("", 11)
	cv.MultiCell(0, 5, brfmt.CleanText(cot.Observacoes), false, AlinhaEsquerda)
}

// ── apoio ──

func (co *Composer) tituloAzul(titulo string, tam float64) {
	cv := co.cv
	cv.SetTextColor(CorAzulBebe)
	cv.SetFont("B", tam)
	cv.Cell(0, 8, brfmt.CleanText(titulo), false, false, AlinhaEsquerda, true)
	cv.SetTextColor(CorPreto)
}

func (co *Composer) descricaoAtividade(cot *entity.Cotacao) string {
	if strings.TrimSpace(cot.DescricaoAtividade) != "" {
		return cot.DescricaoAtividade
	}
	for _, it := range cot.Itens {
		if it.Tipo == entity.ItemProduto {
			return "Fornecimento de peças para compressores"
		}
	}
	return "Fornecimento de serviços para compressor"
}

func (co *Composer) nomeFilial() string {
	if co.filial != nil {
		return co.filial.Nome
	}
	return "N/A"
}

func (co *Composer) cnpjFilial() string {
	if co.filial != nil && co.filial.CNPJ != "" {
		return co.filial.CNPJ
	}
	return "N/A"
}

func (co *Composer) telefonesFilial() string {
	if co.filial != nil {
		return co.filial.Telefones
	}
	return ""
}

func (co *Composer) filialEhPrimeira() bool {
	return co.filial != nil && co.filial.CNPJ == filiais.CNPJFilial1
}

func (co *Composer) emailResponsavel(cot *entity.Cotacao) string {
	if cot.Responsavel.Email != "" {
		return cot.Responsavel.Email
	}
	if co.usuario != nil && co.usuario.Email != "" {
		return co.usuario.Email
	}
	return "N/A"
}

func (co *Composer) nomeEquipamentoLocacao(cot *entity.Cotacao) string {
	for _, it := range cot.Itens {
		if it.Tipo == entity.ItemLocacao && it.Nome != "" {
			return it.Nome
		}
	}
	if cot.LocacaoNomeEquipamento != "" {
		return cot.LocacaoNomeEquipamento
	}
	return ""
}
