package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/worldcomp/crm-api/internal/domain/entity"
	"github.com/worldcomp/crm-api/internal/domain/repository"
)

var _ repository.RelatorioRepository = (*RelatorioRepo)(nil)

// RelatorioRepo implementação do porto RelatorioRepository sobre PostgreSQL.
type RelatorioRepo struct {
	q Querier
}

// NewRelatorioRepository constrói o adaptador de relatórios técnicos.
func NewRelatorioRepository(q Querier) *RelatorioRepo {
	return &RelatorioRepo{q: q}
}

// ObterPorID carrega o relatório técnico completo com cliente e responsável.
func (r *RelatorioRepo) ObterPorID(ctx context.Context, relatorioID int64) (*entity.RelatorioTecnico, error) {
	query := `
		SELECT
			rel.id, rel.numero_relatorio, COALESCE(rel.filial_id, 2), rel.data_criacao,
			COALESCE(rel.formulario_servico, ''), COALESCE(rel.tipo_servico, ''),
			COALESCE(rel.descricao_servico, ''), rel.data_recebimento,
			COALESCE(rel.condicao_encontrada, ''), COALESCE(rel.placa_identificacao, ''),
			COALESCE(rel.acoplamento, ''), COALESCE(rel.aspectos_rotores, ''),
			COALESCE(rel.valvulas_acopladas, ''),
			COALESCE(rel.parafusos_pinos, ''), COALESCE(rel.superficie_vedacao, ''),
			COALESCE(rel.engrenagens, ''), COALESCE(rel.bico_injetor, ''),
			COALESCE(rel.rolamentos, ''), COALESCE(rel.aspecto_oleo, ''),
			COALESCE(rel.interf_desmontagem, ''), COALESCE(rel.aspecto_rotores, ''),
			COALESCE(rel.aspecto_carcaca, ''), COALESCE(rel.interf_mancais, ''),
			COALESCE(rel.galeria_hidraulica, ''),
			COALESCE(rel.servicos_propostos, ''), COALESCE(rel.pecas_recomendadas, ''),
			COALESCE(rel.anexos_etapa1, '[]'::jsonb), COALESCE(rel.anexos_etapa2, '[]'::jsonb),
			COALESCE(rel.anexos_etapa3, '[]'::jsonb), COALESCE(rel.anexos_etapa4, '[]'::jsonb),
			COALESCE(rel.tempo_trabalho_total, ''), COALESCE(rel.tempo_deslocamento_total, ''),
			cli.id, cli.nome, COALESCE(cli.nome_fantasia, ''), COALESCE(cli.cnpj, ''),
			COALESCE(cli.email, ''), COALESCE(cli.telefone, ''),
			usr.id, usr.nome_completo, COALESCE(usr.email, ''), usr.username
		FROM relatorios_tecnicos AS rel
		JOIN clientes AS cli ON rel.cliente_id = cli.id
		JOIN usuarios AS usr ON rel.responsavel_id = usr.id
		WHERE rel.id = $1`

	var rel entity.RelatorioTecnico
	err := r.q.QueryRow(ctx, query, relatorioID).Scan(
		&rel.ID, &rel.NumeroRelatorio, &rel.FilialID, &rel.DataCriacao,
		&rel.FormularioServico, &rel.TipoServico,
		&rel.DescricaoServico, &rel.DataRecebimento,
		&rel.CondicaoEncontrada, &rel.PlacaIdentificacao,
		&rel.Acoplamento, &rel.AspectosRotores,
		&rel.ValvulasAcopladas,
		&rel.ParafusosPinos, &rel.SuperficieVedacao,
		&rel.Engrenagens, &rel.BicoInjetor,
		&rel.Rolamentos, &rel.AspectoOleo,
		&rel.InterfDesmontagem, &rel.AspectoRotores,
		&rel.AspectoCarcaca, &rel.InterfMancais,
		&rel.GaleriaHidraulica,
		&rel.ServicosPropostos, &rel.PecasRecomendadas,
		&rel.AnexosEtapa1, &rel.AnexosEtapa2,
		&rel.AnexosEtapa3, &rel.AnexosEtapa4,
		&rel.TempoTrabalhoTotal, &rel.TempoDeslocamentoTotal,
		&rel.Cliente.ID, &rel.Cliente.Nome, &rel.Cliente.NomeFantasia, &rel.Cliente.CNPJ,
		&rel.Cliente.Email, &rel.Cliente.Telefone,
		&rel.Responsavel.ID, &rel.Responsavel.NomeCompleto, &rel.Responsavel.Email,
		&rel.Responsavel.Username,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get relatório: %w", err)
	}
	return &rel, nil
}
