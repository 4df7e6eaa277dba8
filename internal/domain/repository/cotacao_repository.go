package repository

import (
	"context"

	"github.com/worldcomp/crm-api/internal/domain/entity"
)

// CotacaoRepository contrato de leitura consumido pelo gerador de propostas.
// Métodos Obter* devolvem (nil, nil) quando o registro não existe; lista de
// itens vazia é um resultado válido, distinto de cotação inexistente.
type CotacaoRepository interface {
	// ObterSnapshot monta o cabeçalho da cotação com cliente e responsável.
	ObterSnapshot(ctx context.Context, cotacaoID int64) (*entity.Cotacao, error)
	// ObterItens carrega os itens na ordem de inserção, com a classificação
	// TipoItem já decidida.
	ObterItens(ctx context.Context, cotacaoID int64) ([]entity.ItemCotacao, error)
	// ObterComposicaoKit resolve os componentes de um kit; chamado apenas
	// quando o item Kit está sendo renderizado.
	ObterComposicaoKit(ctx context.Context, kitID int64) ([]entity.ComponenteKit, error)
	// ObterContatoPrincipal devolve o nome do primeiro contato do cliente
	// ("" quando não há).
	ObterContatoPrincipal(ctx context.Context, clienteID int64) (string, error)
	// AtualizarCaminhoPDF grava o caminho do arquivo gerado de volta na
	// cotação (escrita de colaborador; falha não invalida o PDF já gerado).
	AtualizarCaminhoPDF(ctx context.Context, cotacaoID int64, caminho string) error
}
