package composer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldcomp/crm-api/internal/domain/entity"
	"github.com/worldcomp/crm-api/internal/filiais"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func cotacaoCompraTeste() *entity.Cotacao {
	return &entity.Cotacao{
		ID:             10,
		NumeroProposta: "2025/001",
		Tipo:           entity.CotacaoCompra,
		FilialID:       2,
		DataCriacao:    time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC),
		Cliente: entity.Cliente{
			ID:       3,
			Nome:     "Metalúrgica Horizonte Ltda",
			CNPJ:     "11222333000181",
			Telefone: "1145436893",
		},
		Responsavel: entity.Responsavel{
			NomeCompleto: "Rogério Cerqueira",
			Email:        "rogerio@worldcompressores.com.br",
			Telefone:     "11987654321",
			Username:     "rogerio",
		},
		ContatoNome:      "João",
		ModeloCompressor: "GA 30 VSD",
		Itens: []entity.ItemCotacao{
			{
				Tipo:          entity.ItemProduto,
				Nome:          "Elemento de filtro de óleo",
				Quantidade:    dec("2"),
				ValorUnitario: dec("400"),
				ValorTotal:    dec("800"),
				ICMS:          dec("96"),
			},
			{
				Tipo:          entity.ItemServico,
				Nome:          "Revisão geral da unidade compressora",
				Quantidade:    dec("1"),
				ValorUnitario: dec("1500"),
				ValorTotal:    dec("1500"),
				Estadia:       dec("350"),
				Deslocamento:  dec("120.50"),
			},
			{
				Tipo:          entity.ItemKit,
				Nome:          "Kit Revisão 8000h",
				ProdutoID:     77,
				Quantidade:    dec("1"),
				ValorUnitario: dec("2200"),
				ValorTotal:    dec("2200"),
			},
		},
	}
}

func composicaoTeste(t *testing.T) ComposicaoKitFn {
	t.Helper()
	return func(produtoID int64) []entity.ComponenteKit {
		require.EqualValues(t, 77, produtoID, "só o kit de catálogo consulta a composição")
		return []entity.ComponenteKit{
			{Nome: "Filtro de ar", Quantidade: dec("2")},
			{Nome: "Filtro de óleo", Quantidade: dec("1")},
		}
	}
}

func TestMontarCompra(t *testing.T) {
	cv := novoCanvasGravacao()
	co := NovoComposer(cv, filiais.ObterFilial(2), filiais.ObterUsuarioCotacao("rogerio"), Recursos{}, composicaoTeste(t))

	cot := cotacaoCompraTeste()
	co.Montar(cot, Pagina4{})

	require.GreaterOrEqual(t, cv.PageNo(), 4, "capa, apresentação, institucional e detalhes")

	t.Run("capa", func(t *testing.T) {
		capa := cv.textosDaPagina(1)
		assert.Contains(t, capa, "Metalúrgica Horizonte Ltda")
		assert.Contains(t, capa, "A/C : João")
		assert.Contains(t, capa, "Data: 07/03/2025")
	})

	t.Run("apresentação", func(t *testing.T) {
		assert.True(t, cv.contemTexto("APRESENTADO PARA:"))
		assert.True(t, cv.contemTexto("APRESENTADO POR:"))
		assert.True(t, cv.contemTexto("CNPJ: 11.222.333/0001-81"), "CNPJ do cliente formatado")
		assert.True(t, cv.contemTexto("Sr(a). João"))
		assert.True(t, cv.contemTexto("GA 30 VSD"), "modelo do compressor destacado no texto")
		assert.True(t, cv.contemTexto("ROGÉRIO CERQUEIRA"), "assinatura em caixa alta")
	})

	t.Run("detalhes e tabela", func(t *testing.T) {
		assert.True(t, cv.contemTexto("PROPOSTA Nº 2025/001"))
		assert.True(t, cv.contemTexto("ITENS DA PROPOSTA"))
		assert.True(t, cv.contemTexto("VALOR TOTAL DA PROPOSTA:"))
		assert.True(t, cv.contemTexto("R$ 4.500,00"), "total é a soma dos valores de exibição")
	})

	t.Run("descrições de item", func(t *testing.T) {
		assert.True(t, cv.contemTexto("Serviço: Revisão geral da unidade compressora"))
		assert.True(t, cv.contemTexto("Estadia: R$ 350.00"))
		assert.True(t, cv.contemTexto("Deslocamento: R$ 120.50"))
		assert.True(t, cv.contemTexto("Kit: Kit Revisão 8000h"))
		assert.True(t, cv.contemTexto("Composição:"))
		assert.True(t, cv.contemTexto("2 x Filtro de ar"))
	})

	t.Run("condições comerciais padrão", func(t *testing.T) {
		assert.True(t, cv.contemTexto("Tipo de Frete: FOB"))
		assert.True(t, cv.contemTexto("Condição de Pagamento: A combinar"))
		assert.True(t, cv.contemTexto("Moeda: BRL (Real Brasileiro)"))
	})

	t.Run("colunas de imposto da filial 2", func(t *testing.T) {
		assert.True(t, cv.contemTexto("ISS"), "cotação com serviço exibe a coluna ISS")
		assert.False(t, cv.contemTexto("Imposto Incluso"), "linha exclusiva da filial 1")
	})
}

func TestMontarCompraFilial1SemImpostos(t *testing.T) {
	cv := novoCanvasGravacao()
	co := NovoComposer(cv, filiais.ObterFilial(1), nil, Recursos{}, composicaoTeste(t))

	co.Montar(cotacaoCompraTeste(), Pagina4{})

	assert.False(t, cv.contemTexto("ISS"), "filial 1 não exibe colunas de imposto")
	assert.True(t, cv.contemTexto("Imposto Incluso"))
	assert.True(t, cv.contemTexto("ICMS: Imposto Incluso"), "linha extra quando há produtos")
	assert.True(t, cv.contemTexto("|  I.E: 635970206110"), "inscrição estadual junto ao CNPJ da filial 1")
}

func TestMontarCompraSecoesOpcionais(t *testing.T) {
	t.Run("sem esboço nem relação não abre seções", func(t *testing.T) {
		cv := novoCanvasGravacao()
		co := NovoComposer(cv, filiais.ObterFilial(2), nil, Recursos{}, nil)

		cot := cotacaoCompraTeste()
		cot.Itens = nil
		co.Montar(cot, Pagina4{})

		assert.False(t, cv.contemTexto("ESBOÇO DO SERVIÇO A SER EXECUTADO"))
		assert.False(t, cv.contemTexto("RELAÇÃO DE PEÇAS A SEREM SUBSTITUÍDAS"))
	})

	t.Run("esboço e relação ganham páginas próprias", func(t *testing.T) {
		cv := novoCanvasGravacao()
		co := NovoComposer(cv, filiais.ObterFilial(2), nil, Recursos{}, composicaoTeste(t))

		cot := cotacaoCompraTeste()
		cot.EsbocoServico = "Desmontagem completa da unidade compressora."
		cot.RelacaoPecasSubstituir = "Rolamentos, vedações e filtros."
		co.Montar(cot, Pagina4{})

		assert.True(t, cv.contemTexto("ESBOÇO DO SERVIÇO A SER EXECUTADO"))
		assert.True(t, cv.contemTexto("Desmontagem completa da unidade compressora."))
		assert.True(t, cv.contemTexto("RELAÇÃO DE PEÇAS A SEREM SUBSTITUÍDAS"))
		assert.True(t, cv.contemTexto("Rolamentos, vedações e filtros."))
		assert.GreaterOrEqual(t, cv.PageNo(), 6, "cada seção abre em página nova")
	})
}

func TestMontarDescricaoAtividadePadrao(t *testing.T) {
	t.Run("produtos", func(t *testing.T) {
		cv := novoCanvasGravacao()
		co := NovoComposer(cv, filiais.ObterFilial(2), nil, Recursos{}, nil)

		cot := cotacaoCompraTeste()
		cot.Itens = cot.Itens[:1]
		co.Montar(cot, Pagina4{})

		assert.True(t, cv.contemTexto("Fornecimento de peças para compressores"))
	})

	t.Run("serviços", func(t *testing.T) {
		cv := novoCanvasGravacao()
		co := NovoComposer(cv, filiais.ObterFilial(2), nil, Recursos{}, nil)

		cot := cotacaoCompraTeste()
		cot.Itens = cot.Itens[1:2]
		co.Montar(cot, Pagina4{})

		assert.True(t, cv.contemTexto("Fornecimento de serviços para compressor"))
	})
}

func TestDescricaoItem(t *testing.T) {
	t.Run("produto em operação de locação ganha o prefixo", func(t *testing.T) {
		it := entity.ItemCotacao{Tipo: entity.ItemProduto, Nome: "Mangueira"}
		assert.Equal(t, "Locação - Mangueira", descricaoItem(it, true, nil))
	})

	t.Run("kit sem catálogo segue a forma de serviço", func(t *testing.T) {
		it := entity.ItemCotacao{Tipo: entity.ItemKit, Nome: "Preventiva completa"}
		assert.Equal(t, "Serviços: Preventiva completa", descricaoItem(it, false, nil))
	})

	t.Run("item de locação vira bloco de equipamento", func(t *testing.T) {
		it := entity.ItemCotacao{Tipo: entity.ItemLocacao, Nome: "GA 55"}
		assert.Equal(t, "Nome do Equipamento\nGA 55", descricaoItem(it, false, nil))
	})

	t.Run("nome vazio ganha o texto padrão", func(t *testing.T) {
		it := entity.ItemCotacao{Tipo: entity.ItemProduto}
		assert.Equal(t, "Descrição não informada", descricaoItem(it, false, nil))
	})
}
