package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cotação suportados pelo gerador de propostas.
type TipoCotacao string

const (
	CotacaoCompra  TipoCotacao = "Compra"
	CotacaoLocacao TipoCotacao = "Locação"
)

// Cotacao é o snapshot imutável de uma cotação montado para a composição do
// documento: cabeçalho, cliente, responsável e itens já resolvidos. O composer
// nunca altera os registros de origem; este agregado é remontado a cada
// geração e descartado ao final.
type Cotacao struct {
	ID             int64
	NumeroProposta string
	Tipo           TipoCotacao
	FilialID       int
	DataCriacao    time.Time
	DataValidade   *time.Time

	Cliente     Cliente
	Responsavel Responsavel
	ContatoNome string

	// Somente compra
	ModeloCompressor      string
	NumeroSerieCompressor string

	DescricaoAtividade     string
	Observacoes            string
	RelacaoPecas           string
	EsbocoServico          string
	RelacaoPecasSubstituir string

	ValorTotal        decimal.Decimal
	TipoFrete         string
	CondicaoPagamento string
	PrazoEntrega      string
	Moeda             string

	// Somente locação
	LocacaoNomeEquipamento string
	LocacaoImagemPath      string

	Itens []ItemCotacao
}

// EhLocacao indica se a cotação segue o fluxo de documento de locação.
func (c *Cotacao) EhLocacao() bool { return c.Tipo == CotacaoLocacao }

// NomeExibicaoCliente prefere o nome fantasia quando cadastrado.
func (c *Cotacao) NomeExibicaoCliente() string {
	if c.Cliente.NomeFantasia != "" {
		return c.Cliente.NomeFantasia
	}
	return c.Cliente.Nome
}

// Cliente dados do cliente embutidos no snapshot.
type Cliente struct {
	ID           int64
	Nome         string
	NomeFantasia string
	CNPJ         string
	Endereco     string
	Cidade       string
	Estado       string
	CEP          string
	Email        string
	Telefone     string
}

// Responsavel usuário dono da cotação (assina a proposta).
type Responsavel struct {
	ID           int64
	NomeCompleto string
	Email        string
	Telefone     string
	Username     string
}
