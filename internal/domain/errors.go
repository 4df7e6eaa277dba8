package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrCotacaoNaoEncontrada   = errors.New("cotação não encontrada")
	ErrRelatorioNaoEncontrado = errors.New("relatório técnico não encontrado")
	ErrFilialNaoEncontrada    = errors.New("dados da filial não encontrados")
	ErrCotacaoSemItens        = errors.New("cotação não possui itens")
)
