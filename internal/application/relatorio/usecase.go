// Package relatorio gera o PDF do relatório técnico de peritagem.
package relatorio

import (
	"context"
	"fmt"
	"strings"

	"github.com/worldcomp/crm-api/internal/domain"
	"github.com/worldcomp/crm-api/internal/domain/entity"
	"github.com/worldcomp/crm-api/internal/domain/repository"
	"github.com/worldcomp/crm-api/internal/filiais"
	"github.com/worldcomp/crm-api/pkg/logger"
)

// PDFGenerator renderiza o relatório técnico em PDF.
type PDFGenerator interface {
	GerarRelatorioPDF(ctx context.Context, rel *entity.RelatorioTecnico, filial *entity.Filial) ([]byte, error)
}

// GerarRelatorioUseCase carrega o relatório e delega a renderização.
type GerarRelatorioUseCase struct {
	relatorios repository.RelatorioRepository
	gerador    PDFGenerator
	log        *logger.Logger
}

// NewGerarRelatorioUseCase constrói o caso de uso.
func NewGerarRelatorioUseCase(relatorios repository.RelatorioRepository, gerador PDFGenerator, log *logger.Logger) *GerarRelatorioUseCase {
	return &GerarRelatorioUseCase{relatorios: relatorios, gerador: gerador, log: log}
}

// Gerar devolve os bytes do PDF e o nome de arquivo sugerido.
func (uc *GerarRelatorioUseCase) Gerar(ctx context.Context, relatorioID int64) ([]byte, string, error) {
	rel, err := uc.relatorios.ObterPorID(ctx, relatorioID)
	if err != nil {
		return nil, "", fmt.Errorf("relatório: obter registro: %w", err)
	}
	if rel == nil {
		return nil, "", domain.ErrRelatorioNaoEncontrado
	}

	filial := filiais.ObterFilial(rel.FilialID)
	if filial == nil {
		filial = filiais.ObterFilial(2)
	}

	pdfBytes, err := uc.gerador.GerarRelatorioPDF(ctx, rel, filial)
	if err != nil {
		return nil, "", fmt.Errorf("relatório: gerar pdf: %w", err)
	}

	nome := "Relatorio_" + strings.ReplaceAll(rel.NumeroRelatorio, "/", "_") + ".pdf"
	uc.log.Info().Int64("relatorio_id", relatorioID).Str("arquivo", nome).Msg("relatório técnico gerado")
	return pdfBytes, nome, nil
}
