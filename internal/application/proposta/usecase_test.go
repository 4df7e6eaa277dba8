package proposta

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldcomp/crm-api/internal/composer"
	"github.com/worldcomp/crm-api/internal/domain"
	"github.com/worldcomp/crm-api/internal/domain/entity"
	"github.com/worldcomp/crm-api/pkg/logger"
)

// repoStub implementa repository.CotacaoRepository em memória.
type repoStub struct {
	cot            *entity.Cotacao
	itens          []entity.ItemCotacao
	contato        string
	erroSnapshot   error
	erroAtualizar  error
	caminhoGravado string
}

func (r *repoStub) ObterSnapshot(_ context.Context, _ int64) (*entity.Cotacao, error) {
	return r.cot, r.erroSnapshot
}

func (r *repoStub) ObterItens(_ context.Context, _ int64) ([]entity.ItemCotacao, error) {
	return r.itens, nil
}

func (r *repoStub) ObterComposicaoKit(_ context.Context, _ int64) ([]entity.ComponenteKit, error) {
	return nil, nil
}

func (r *repoStub) ObterContatoPrincipal(_ context.Context, _ int64) (string, error) {
	return r.contato, nil
}

func (r *repoStub) AtualizarCaminhoPDF(_ context.Context, _ int64, caminho string) error {
	if r.erroAtualizar != nil {
		return r.erroAtualizar
	}
	r.caminhoGravado = caminho
	return nil
}

// canvasNulo ignora todo o desenho; só o Output produz bytes.
type canvasNulo struct {
	paginas int
}

var _ composer.Canvas = (*canvasNulo)(nil)

func (c *canvasNulo) AddPage() { c.paginas++ }

func (c *canvasNulo) PageNo() int { return c.paginas }

func (c *canvasNulo) SetFont(string, float64) {}

func (c *canvasNulo) SetTextColor(composer.Color) {}

func (c *canvasNulo) SetDrawColor(composer.Color) {}

func (c *canvasNulo) SetFillColor(composer.Color) {}

func (c *canvasNulo) SetLineWidth(float64) {}

func (c *canvasNulo) Cell(float64, float64, string, bool, bool, string, bool) {}

func (c *canvasNulo) MultiCell(float64, float64, string, bool, string) {}

func (c *canvasNulo) Write(float64, string) {}

func (c *canvasNulo) Ln(float64) {}

func (c *canvasNulo) Line(float64, float64, float64, float64) {}

func (c *canvasNulo) Rect(float64, float64, float64, float64) {}

func (c *canvasNulo) Image(string, float64, float64, float64, float64) error { return nil }

func (c *canvasNulo) X() float64 { return 10 }

func (c *canvasNulo) Y() float64 { return 10 }

func (c *canvasNulo) SetX(float64) {}

func (c *canvasNulo) SetY(float64) {}

func (c *canvasNulo) SetXY(float64, float64) {}

func (c *canvasNulo) SetTopMargin(float64) {}

func (c *canvasNulo) SetAutoPageBreak(bool, float64) {}

func (c *canvasNulo) MeasureLines(string, float64) int { return 1 }

func (c *canvasNulo) StringWidth(s string) float64 { return float64(len(s)) }

func (c *canvasNulo) OnHeader(func()) {}

func (c *canvasNulo) OnFooter(func()) {}

func (c *canvasNulo) OnPageBreak(func() bool) {}

func (c *canvasNulo) Output(w io.Writer) error {
	_, err := w.Write([]byte("%PDF-teste"))
	return err
}

// canvasPanico derruba a montagem para exercitar a recuperação de pânico.
type canvasPanico struct{ canvasNulo }

func (c *canvasPanico) AddPage() { panic("página inválida") }

func logTeste() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func cotacaoTeste() *entity.Cotacao {
	return &entity.Cotacao{
		ID:             10,
		NumeroProposta: "2025/001",
		Tipo:           entity.CotacaoCompra,
		FilialID:       2,
		DataCriacao:    time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC),
		Cliente:        entity.Cliente{ID: 3, Nome: "Metalúrgica Horizonte Ltda"},
		Responsavel:    entity.Responsavel{NomeCompleto: "Rogério Cerqueira", Username: "rogerio"},
	}
}

func itensTeste() []entity.ItemCotacao {
	return []entity.ItemCotacao{{
		Tipo:          entity.ItemProduto,
		Nome:          "Compressor GA 30",
		Quantidade:    decimal.NewFromInt(1),
		ValorUnitario: decimal.NewFromInt(1000),
		ValorTotal:    decimal.NewFromInt(1000),
	}}
}

func novoUseCaseTeste(t *testing.T, repo *repoStub) *GerarPropostaUseCase {
	t.Helper()
	dir := t.TempDir()
	return NewGerarPropostaUseCase(repo, logTeste(),
		func() composer.Canvas { return &canvasNulo{} },
		filepath.Join(dir, "cotacoes"), filepath.Join(dir, "assets"))
}

func TestGerarCotacaoInexistente(t *testing.T) {
	uc := novoUseCaseTeste(t, &repoStub{})

	_, err := uc.Gerar(context.Background(), 99, Opcoes{})
	assert.ErrorIs(t, err, domain.ErrCotacaoNaoEncontrada)
}

func TestGerarCotacaoSemItens(t *testing.T) {
	uc := novoUseCaseTeste(t, &repoStub{cot: cotacaoTeste()})

	_, err := uc.Gerar(context.Background(), 10, Opcoes{})
	assert.ErrorIs(t, err, domain.ErrCotacaoSemItens, "cotação sem itens não gera proposta")
}

func TestGerarErroDeLeitura(t *testing.T) {
	uc := novoUseCaseTeste(t, &repoStub{erroSnapshot: errors.New("conexão perdida")})

	_, err := uc.Gerar(context.Background(), 10, Opcoes{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conexão perdida")
}

func TestGerarGravaEAtualizaCaminho(t *testing.T) {
	repo := &repoStub{cot: cotacaoTeste(), itens: itensTeste(), contato: "João"}
	uc := novoUseCaseTeste(t, repo)

	caminho, err := uc.Gerar(context.Background(), 10, Opcoes{})
	require.NoError(t, err)

	assert.Equal(t, "Proposta_2025_001.pdf", filepath.Base(caminho), "barra do número vira underscore")

	conteudo, err := os.ReadFile(caminho)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-teste", string(conteudo))

	assert.Equal(t, caminho, repo.caminhoGravado, "o caminho final volta para a cotação")
}

func TestGerarNomeDeArquivoSemEspacos(t *testing.T) {
	cot := cotacaoTeste()
	cot.NumeroProposta = "2025 / 002"
	repo := &repoStub{cot: cot, itens: itensTeste()}
	uc := novoUseCaseTeste(t, repo)

	caminho, err := uc.Gerar(context.Background(), 10, Opcoes{})
	require.NoError(t, err)
	assert.Equal(t, "Proposta_2025_002.pdf", filepath.Base(caminho))
}

func TestGerarSubstituiArquivoExistente(t *testing.T) {
	repo := &repoStub{cot: cotacaoTeste(), itens: itensTeste()}
	uc := novoUseCaseTeste(t, repo)

	require.NoError(t, os.MkdirAll(uc.OutputDir, 0o755))
	existente := filepath.Join(uc.OutputDir, "Proposta_2025_001.pdf")
	require.NoError(t, os.WriteFile(existente, []byte("versão antiga"), 0o644))

	caminho, err := uc.Gerar(context.Background(), 10, Opcoes{})
	require.NoError(t, err)
	assert.Equal(t, existente, caminho, "regerar substitui o arquivo no mesmo caminho")

	conteudo, err := os.ReadFile(caminho)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-teste", string(conteudo))
}

func TestGerarFalhaAoGravarCaminhoNaoInvalida(t *testing.T) {
	repo := &repoStub{cot: cotacaoTeste(), itens: itensTeste(), erroAtualizar: errors.New("timeout")}
	uc := novoUseCaseTeste(t, repo)

	caminho, err := uc.Gerar(context.Background(), 10, Opcoes{})
	require.NoError(t, err, "falha na escrita do caminho não invalida o PDF gerado")
	assert.FileExists(t, caminho)
}

func TestGerarRecuperaPanico(t *testing.T) {
	repo := &repoStub{cot: cotacaoTeste(), itens: itensTeste()}
	uc := novoUseCaseTeste(t, repo)
	uc.NovoCanvas = func() composer.Canvas { return &canvasPanico{} }

	_, err := uc.Gerar(context.Background(), 10, Opcoes{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "página inválida")
}
