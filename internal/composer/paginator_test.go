package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldcomp/crm-api/internal/domain/entity"
)

func filialTeste() *entity.Filial {
	return &entity.Filial{
		ID:                2,
		Nome:              "WORLD COMP DO BRASIL COMPRESSORES LTDA",
		CNPJ:              "22.790.603/0001-77",
		InscricaoEstadual: "635.835.470.115",
		Endereco:          "Rua Fernando Pessoa, 11 - Batistini - São Bernardo do Campo - SP",
		Email:             "vendas@worldcompressores.com.br",
		Telefones:         "(11) 4543-6896",
	}
}

func TestPaginatorCapaSemMoldura(t *testing.T) {
	cv := novoCanvasGravacao()
	NovoPaginator(cv, filialTeste(), Recursos{Cabecalho: "faixa.jpeg"})

	cv.AddPage()

	assert.Zero(t, cv.rects, "a capa não leva borda")
	assert.Empty(t, cv.imagens, "a capa não leva faixa de cabeçalho")
	assert.Empty(t, cv.textosDaPagina(1), "a capa não leva rodapé institucional")
}

func TestPaginatorPaginasInternas(t *testing.T) {
	cv := novoCanvasGravacao()
	NovoPaginator(cv, filialTeste(), Recursos{Cabecalho: "faixa.jpeg"})

	cv.AddPage()
	cv.AddPage()

	assert.Equal(t, 1, cv.rects, "página interna leva a moldura")
	assert.Equal(t, []string{"faixa.jpeg"}, cv.imagens, "página interna leva a faixa do cabeçalho")
	require.GreaterOrEqual(t, cv.Y(), topoCabecalho, "o cursor começa abaixo da faixa")
}

func TestPaginatorRodapeInstitucional(t *testing.T) {
	cv := novoCanvasGravacao()
	NovoPaginator(cv, filialTeste(), Recursos{})

	cv.AddPage()
	cv.AddPage()
	cv.AddPage() // fecha a página 2 e dispara o rodapé dela

	textos := cv.textosDaPagina(2)
	require.NotEmpty(t, textos)
	assert.Contains(t, textos, "WORLD COMP DO BRASIL COMPRESSORES LTDA")
	assert.Contains(t, textos, "CNPJ: 22.790.603/0001-77  |  IE: 635.835.470.115")
	assert.Contains(t, textos, "E-mail: vendas@worldcompressores.com.br | Fone: (11) 4543-6896")
	assert.Equal(t, 1, cv.linhas, "uma linha divisória acima do rodapé")
}

func TestPaginatorSecaoComContinuacao(t *testing.T) {
	cv := novoCanvasGravacao()
	p := NovoPaginator(cv, filialTeste(), Recursos{})

	cv.AddPage()
	cv.AddPage()
	p.BeginSection("esboco", 35, 40, 130, 40, "ESBOÇO DO SERVIÇO A SER EXECUTADO")

	assert.True(t, p.EmSecao())
	assert.Equal(t, 35.0, cv.margemTopo, "primeira página da seção usa o topo próprio")
	assert.Equal(t, 40.0, cv.fundo, "primeira página da seção usa o fundo próprio")

	cv.quebrarPagina()

	assert.Contains(t, cv.textosDaPagina(3), "ESBOÇO DO SERVIÇO A SER EXECUTADO",
		"a continuação repete o título da seção")
	assert.GreaterOrEqual(t, cv.Y(), 130.0, "o cursor da continuação respeita o topo da seção")

	p.EndSection()
	assert.False(t, p.EmSecao())
	assert.Equal(t, margemTopoPadrao, cv.margemTopo, "EndSection restaura as margens padrão")
	assert.Equal(t, margemFundoPadrao, cv.fundo)
}

func TestPaginatorContinuacaoAbaixoDoTopoSeguro(t *testing.T) {
	cv := novoCanvasGravacao()
	p := NovoPaginator(cv, filialTeste(), Recursos{})

	cv.AddPage()
	cv.AddPage()
	p.BeginSection("relacao", 35, 40, 41, 40, "RELAÇÃO DE PEÇAS A SEREM SUBSTITUÍDAS")
	cv.quebrarPagina()

	assert.GreaterOrEqual(t, cv.Y(), topoSeguroSecao,
		"o título da continuação nunca invade a faixa do cabeçalho")
}
