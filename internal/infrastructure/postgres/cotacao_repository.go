package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/worldcomp/crm-api/internal/domain/entity"
	"github.com/worldcomp/crm-api/internal/domain/repository"
)

var _ repository.CotacaoRepository = (*CotacaoRepo)(nil)

// CotacaoRepo implementação do porto CotacaoRepository sobre PostgreSQL
// (usável com pool ou tx).
type CotacaoRepo struct {
	q Querier
}

// NewCotacaoRepository constrói o adaptador de persistência de cotações.
func NewCotacaoRepository(q Querier) *CotacaoRepo {
	return &CotacaoRepo{q: q}
}

// ObterSnapshot monta o cabeçalho da cotação com cliente e responsável.
func (r *CotacaoRepo) ObterSnapshot(ctx context.Context, cotacaoID int64) (*entity.Cotacao, error) {
	query := `
		SELECT
			cot.id, cot.numero_proposta, COALESCE(cot.tipo_cotacao, 'Compra'),
			COALESCE(cot.filial_id, 2), cot.data_criacao, cot.data_validade,
			COALESCE(cot.modelo_compressor, ''), COALESCE(cot.numero_serie_compressor, ''),
			COALESCE(cot.descricao_atividade, ''), COALESCE(cot.observacoes, ''),
			COALESCE(cot.relacao_pecas, ''), COALESCE(cot.esboco_servico, ''),
			COALESCE(cot.relacao_pecas_substituir, ''),
			cot.valor_total,
			COALESCE(cot.tipo_frete, ''), COALESCE(cot.condicao_pagamento, ''),
			COALESCE(cot.prazo_entrega, ''), COALESCE(cot.moeda, ''),
			COALESCE(cot.locacao_nome_equipamento, ''), COALESCE(cot.locacao_imagem_path, ''),
			cli.id, cli.nome, COALESCE(cli.nome_fantasia, ''), COALESCE(cli.cnpj, ''),
			COALESCE(cli.endereco, ''), COALESCE(cli.cidade, ''), COALESCE(cli.estado, ''),
			COALESCE(cli.cep, ''), COALESCE(cli.email, ''), COALESCE(cli.telefone, ''),
			usr.id, usr.nome_completo, COALESCE(usr.email, ''), COALESCE(usr.telefone, ''), usr.username
		FROM cotacoes AS cot
		JOIN clientes AS cli ON cot.cliente_id = cli.id
		JOIN usuarios AS usr ON cot.responsavel_id = usr.id
		WHERE cot.id = $1`

	var c entity.Cotacao
	var tipo string
	err := r.q.QueryRow(ctx, query, cotacaoID).Scan(
		&c.ID, &c.NumeroProposta, &tipo,
		&c.FilialID, &c.DataCriacao, &c.DataValidade,
		&c.ModeloCompressor, &c.NumeroSerieCompressor,
		&c.DescricaoAtividade, &c.Observacoes,
		&c.RelacaoPecas, &c.EsbocoServico,
		&c.RelacaoPecasSubstituir,
		&c.ValorTotal,
		&c.TipoFrete, &c.CondicaoPagamento,
		&c.PrazoEntrega, &c.Moeda,
		&c.LocacaoNomeEquipamento, &c.LocacaoImagemPath,
		&c.Cliente.ID, &c.Cliente.Nome, &c.Cliente.NomeFantasia, &c.Cliente.CNPJ,
		&c.Cliente.Endereco, &c.Cliente.Cidade, &c.Cliente.Estado,
		&c.Cliente.CEP, &c.Cliente.Email, &c.Cliente.Telefone,
		&c.Responsavel.ID, &c.Responsavel.NomeCompleto, &c.Responsavel.Email,
		&c.Responsavel.Telefone, &c.Responsavel.Username,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cotação: %w", err)
	}
	c.Tipo = classificarCotacao(tipo)
	return &c, nil
}

// ObterItens carrega os itens na ordem de inserção com a classificação de
// tipo já resolvida.
func (r *CotacaoRepo) ObterItens(ctx context.Context, cotacaoID int64) ([]entity.ItemCotacao, error) {
	query := `
		SELECT
			id, COALESCE(tipo, ''), COALESCE(item_nome, ''), quantidade,
			COALESCE(descricao, ''), valor_unitario, valor_total_item,
			COALESCE(mao_obra, 0), COALESCE(deslocamento, 0), COALESCE(estadia, 0),
			COALESCE(produto_id, 0), COALESCE(tipo_operacao, ''),
			COALESCE(icms, 0), COALESCE(iss, 0),
			COALESCE(locacao_qtd_meses, 0), COALESCE(locacao_imagem_path, '')
		FROM itens_cotacao
		WHERE cotacao_id = $1
		ORDER BY id`
	rows, err := r.q.Query(ctx, query, cotacaoID)
	if err != nil {
		return nil, fmt.Errorf("list itens: %w", err)
	}
	defer rows.Close()

	var itens []entity.ItemCotacao
	for rows.Next() {
		var it entity.ItemCotacao
		var tipo, tipoOperacao, descricao string
		err := rows.Scan(
			&it.ID, &tipo, &it.Nome, &it.Quantidade,
			&descricao, &it.ValorUnitario, &it.ValorTotal,
			&it.MaoObra, &it.Deslocamento, &it.Estadia,
			&it.ProdutoID, &tipoOperacao,
			&it.ICMS, &it.ISS,
			&it.LocacaoMeses, &it.LocacaoImagemPath,
		)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.Tipo = classificarItem(tipo, tipoOperacao)
		it.Descricao = descricao
		if strings.TrimSpace(it.Nome) == "" {
			it.Nome = strings.TrimSpace(descricao)
		}
		itens = append(itens, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate itens: %w", err)
	}
	return itens, nil
}

// ObterComposicaoKit resolve os componentes de um kit de catálogo.
func (r *CotacaoRepo) ObterComposicaoKit(ctx context.Context, kitID int64) ([]entity.ComponenteKit, error) {
	query := `
		SELECT p.nome, kc.quantidade
		FROM kit_items AS kc
		JOIN produtos AS p ON kc.produto_id = p.id
		WHERE kc.kit_id = $1
		ORDER BY p.nome`
	rows, err := r.q.Query(ctx, query, kitID)
	if err != nil {
		return nil, fmt.Errorf("list composição kit: %w", err)
	}
	defer rows.Close()

	var comp []entity.ComponenteKit
	for rows.Next() {
		var c entity.ComponenteKit
		if err := rows.Scan(&c.Nome, &c.Quantidade); err != nil {
			return nil, fmt.Errorf("scan componente: %w", err)
		}
		comp = append(comp, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate composição: %w", err)
	}
	return comp, nil
}

// ObterContatoPrincipal devolve o nome do primeiro contato cadastrado do
// cliente; "" quando o cliente não tem contatos.
func (r *CotacaoRepo) ObterContatoPrincipal(ctx context.Context, clienteID int64) (string, error) {
	var nome string
	err := r.q.QueryRow(ctx,
		`SELECT nome FROM contatos WHERE cliente_id = $1 ORDER BY id LIMIT 1`,
		clienteID,
	).Scan(&nome)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get contato principal: %w", err)
	}
	return nome, nil
}

// AtualizarCaminhoPDF grava o caminho do arquivo gerado na cotação.
func (r *CotacaoRepo) AtualizarCaminhoPDF(ctx context.Context, cotacaoID int64, caminho string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE cotacoes SET caminho_arquivo_pdf = $2 WHERE id = $1`,
		cotacaoID, caminho,
	)
	if err != nil {
		return fmt.Errorf("update caminho pdf: %w", err)
	}
	return nil
}

// classificarCotacao normaliza o texto livre de tipo_cotacao.
func classificarCotacao(tipo string) entity.TipoCotacao {
	switch strings.ToLower(strings.TrimSpace(tipo)) {
	case "locação", "locacao":
		return entity.CotacaoLocacao
	default:
		return entity.CotacaoCompra
	}
}

// classificarItem decide o TipoItem a partir das colunas tipo e
// tipo_operacao. Produtos em operação de locação viram ItemLocacao; o tipo
// textual dos demais decide direto.
func classificarItem(tipo, tipoOperacao string) entity.TipoItem {
	t := strings.ToLower(strings.TrimSpace(tipo))
	locacao := strings.HasPrefix(strings.ToLower(strings.TrimSpace(tipoOperacao)), "loca")
	switch t {
	case "serviço", "servico", "serviços", "servicos":
		return entity.ItemServico
	case "kit":
		return entity.ItemKit
	default:
		if locacao {
			return entity.ItemLocacao
		}
		return entity.ItemProduto
	}
}
