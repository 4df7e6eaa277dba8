package relatorio

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldcomp/crm-api/internal/domain"
	"github.com/worldcomp/crm-api/internal/domain/entity"
	"github.com/worldcomp/crm-api/pkg/logger"
)

type repoStub struct {
	rel *entity.RelatorioTecnico
	err error
}

func (r *repoStub) ObterPorID(_ context.Context, _ int64) (*entity.RelatorioTecnico, error) {
	return r.rel, r.err
}

type geradorStub struct {
	filialRecebida *entity.Filial
	err            error
}

func (g *geradorStub) GerarRelatorioPDF(_ context.Context, _ *entity.RelatorioTecnico, filial *entity.Filial) ([]byte, error) {
	g.filialRecebida = filial
	return []byte("%PDF-relatorio"), g.err
}

func logTeste() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func TestGerarRelatorioInexistente(t *testing.T) {
	uc := NewGerarRelatorioUseCase(&repoStub{}, &geradorStub{}, logTeste())

	_, _, err := uc.Gerar(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrRelatorioNaoEncontrado)
}

func TestGerarRelatorio(t *testing.T) {
	rel := &entity.RelatorioTecnico{ID: 45, NumeroRelatorio: "2025/12", FilialID: 1}
	gerador := &geradorStub{}
	uc := NewGerarRelatorioUseCase(&repoStub{rel: rel}, gerador, logTeste())

	pdfBytes, nome, err := uc.Gerar(context.Background(), 45)
	require.NoError(t, err)

	assert.Equal(t, "%PDF-relatorio", string(pdfBytes))
	assert.Equal(t, "Relatorio_2025_12.pdf", nome, "barra do número vira underscore")
	require.NotNil(t, gerador.filialRecebida)
	assert.Equal(t, 1, gerador.filialRecebida.ID)
}

func TestGerarRelatorioFilialDesconhecida(t *testing.T) {
	rel := &entity.RelatorioTecnico{ID: 7, NumeroRelatorio: "2025/13", FilialID: 9}
	gerador := &geradorStub{}
	uc := NewGerarRelatorioUseCase(&repoStub{rel: rel}, gerador, logTeste())

	_, _, err := uc.Gerar(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, gerador.filialRecebida)
	assert.Equal(t, 2, gerador.filialRecebida.ID, "filial desconhecida cai na filial 2")
}

func TestGerarRelatorioErroDoGerador(t *testing.T) {
	rel := &entity.RelatorioTecnico{ID: 8, NumeroRelatorio: "2025/14", FilialID: 2}
	uc := NewGerarRelatorioUseCase(&repoStub{rel: rel}, &geradorStub{err: errors.New("sem fonte")}, logTeste())

	_, _, err := uc.Gerar(context.Background(), 8)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sem fonte")
}
