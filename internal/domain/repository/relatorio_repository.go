package repository

import (
	"context"

	"github.com/worldcomp/crm-api/internal/domain/entity"
)

// RelatorioRepository contrato de leitura do relatório técnico.
// ObterPorID devolve (nil, nil) quando o registro não existe.
type RelatorioRepository interface {
	ObterPorID(ctx context.Context, relatorioID int64) (*entity.RelatorioTecnico, error)
}
