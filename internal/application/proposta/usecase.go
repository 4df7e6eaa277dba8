// Package proposta orquestra a geração do PDF de proposta comercial de uma
// cotação: carrega o snapshot, monta o documento e grava o arquivo.
package proposta

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/worldcomp/crm-api/internal/composer"
	"github.com/worldcomp/crm-api/internal/domain"
	"github.com/worldcomp/crm-api/internal/domain/entity"
	"github.com/worldcomp/crm-api/internal/domain/repository"
	"github.com/worldcomp/crm-api/internal/filiais"
	"github.com/worldcomp/crm-api/pkg/logger"
)

// Opcoes parametriza uma geração pontual sem alterar a cotação.
type Opcoes struct {
	// ContatoNome força o contato exibido; vazio usa o contato principal
	// do cliente.
	ContatoNome string
	// TextoPagina4 e ImagemPagina4 sobrescrevem a página de equipamento
	// das propostas de locação.
	TextoPagina4  string
	ImagemPagina4 string
}

// GerarPropostaUseCase gera o PDF de uma cotação e grava o caminho de volta.
type GerarPropostaUseCase struct {
	cotacoes repository.CotacaoRepository
	log      *logger.Logger

	// NovoCanvas fabrica o canvas de desenho; os testes trocam por um
	// canvas de gravação.
	NovoCanvas func() composer.Canvas

	// OutputDir raiz onde as propostas são gravadas.
	OutputDir string
	// AssetsDir raiz das imagens (capa, faixa de cabeçalho, templates).
	AssetsDir string
}

// NewGerarPropostaUseCase constrói o caso de uso.
func NewGerarPropostaUseCase(cotacoes repository.CotacaoRepository, log *logger.Logger, novoCanvas func() composer.Canvas, outputDir, assetsDir string) *GerarPropostaUseCase {
	return &GerarPropostaUseCase{
		cotacoes:   cotacoes,
		log:        log,
		NovoCanvas: novoCanvas,
		OutputDir:  outputDir,
		AssetsDir:  assetsDir,
	}
}

// Gerar monta e grava a proposta da cotação, devolvendo o caminho final do
// arquivo. Qualquer pânico da montagem vira erro comum: a geração nunca
// derruba o processo chamador.
func (uc *GerarPropostaUseCase) Gerar(ctx context.Context, cotacaoID int64, opts Opcoes) (caminho string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("gerar proposta %d: %v", cotacaoID, rec)
		}
	}()

	cot, err := uc.cotacoes.ObterSnapshot(ctx, cotacaoID)
	if err != nil {
		return "", fmt.Errorf("proposta: obter cotação: %w", err)
	}
	if cot == nil {
		return "", domain.ErrCotacaoNaoEncontrada
	}

	filial := filiais.ObterFilial(cot.FilialID)
	if filial == nil {
		// Cotações antigas sem filial seguem pela filial 2.
		filial = filiais.ObterFilial(2)
	}
	if filial == nil {
		return "", domain.ErrFilialNaoEncontrada
	}

	cot.ContatoNome = opts.ContatoNome
	if cot.ContatoNome == "" {
		nome, err := uc.cotacoes.ObterContatoPrincipal(ctx, cot.Cliente.ID)
		if err != nil {
			return "", fmt.Errorf("proposta: obter contato: %w", err)
		}
		cot.ContatoNome = nome
		if cot.ContatoNome == "" {
			cot.ContatoNome = "Não informado"
		}
	}

	cot.Itens, err = uc.cotacoes.ObterItens(ctx, cotacaoID)
	if err != nil {
		return "", fmt.Errorf("proposta: obter itens: %w", err)
	}
	if len(cot.Itens) == 0 {
		return "", domain.ErrCotacaoSemItens
	}

	usuario := filiais.ObterUsuarioCotacao(cot.Responsavel.Username)
	if usuario != nil && usuario.TemplateCapa != "" {
		// O perfil guarda o caminho relativo à raiz de assets.
		u := *usuario
		u.TemplateCapa = filepath.Join(uc.AssetsDir, u.TemplateCapa)
		usuario = &u
	}

	cv := uc.NovoCanvas()
	comp := composer.NovoComposer(cv, filial, usuario, uc.recursos(), uc.composicaoFn(ctx))
	comp.Montar(cot, composer.Pagina4{Texto: opts.TextoPagina4, Imagem: opts.ImagemPagina4})

	var buf bytes.Buffer
	if err := cv.Output(&buf); err != nil {
		return "", fmt.Errorf("proposta: render pdf: %w", err)
	}

	caminho, err = uc.salvarComFallback(nomeArquivo(cot.NumeroProposta), buf.Bytes())
	if err != nil {
		return "", err
	}

	// Falha ao gravar o caminho não invalida o PDF já em disco.
	if err := uc.cotacoes.AtualizarCaminhoPDF(ctx, cotacaoID, caminho); err != nil {
		uc.log.Warn().Err(err).Int64("cotacao_id", cotacaoID).Msg("não foi possível atualizar o caminho do PDF")
	}

	uc.log.Info().Int64("cotacao_id", cotacaoID).Str("arquivo", caminho).Msg("proposta gerada")
	return caminho, nil
}

// recursos resolve os caminhos das imagens padrão dentro de AssetsDir.
func (uc *GerarPropostaUseCase) recursos() composer.Recursos {
	rec := composer.Recursos{
		Capa:      filepath.Join(uc.AssetsDir, "caploc.jpg"),
		Cabecalho: filepath.Join(uc.AssetsDir, "cabecalho.jpeg"),
	}
	if _, err := os.Stat(rec.Cabecalho); err != nil {
		rec.Cabecalho = ""
	}
	return rec
}

func (uc *GerarPropostaUseCase) composicaoFn(ctx context.Context) composer.ComposicaoKitFn {
	return func(produtoID int64) []entity.ComponenteKit {
		comp, err := uc.cotacoes.ObterComposicaoKit(ctx, produtoID)
		if err != nil {
			uc.log.Warn().Err(err).Int64("kit_id", produtoID).Msg("erro ao carregar composição do kit")
			return []entity.ComponenteKit{{Nome: "Erro ao carregar composição"}}
		}
		return comp
	}
}

// nomeArquivo deriva o nome do PDF do número da proposta: barras viram
// underscore e espaços somem.
func nomeArquivo(numeroProposta string) string {
	n := strings.ReplaceAll(numeroProposta, "/", "_")
	n = strings.ReplaceAll(n, " ", "")
	return "Proposta_" + n + ".pdf"
}

// salvarComFallback grava o PDF tolerando arquivos presos e diretórios sem
// escrita: arquivo existente é removido ou ganha sufixo de timestamp, e um
// diretório sem permissão cai para o diretório temporário do sistema.
func (uc *GerarPropostaUseCase) salvarComFallback(nome string, conteudo []byte) (string, error) {
	if err := os.MkdirAll(uc.OutputDir, 0o755); err != nil {
		return uc.salvarEmTemp(nome, conteudo, err)
	}

	caminho := filepath.Join(uc.OutputDir, nome)
	if _, err := os.Stat(caminho); err == nil {
		if err := os.Remove(caminho); err != nil {
			sufixo := fmt.Sprintf("_%d.pdf", time.Now().Unix())
			nome = strings.TrimSuffix(nome, ".pdf") + sufixo
			caminho = filepath.Join(uc.OutputDir, nome)
		}
	}

	if err := os.WriteFile(caminho, conteudo, 0o644); err != nil {
		return uc.salvarEmTemp(nome, conteudo, err)
	}
	return caminho, nil
}

func (uc *GerarPropostaUseCase) salvarEmTemp(nome string, conteudo []byte, causa error) (string, error) {
	caminho := filepath.Join(os.TempDir(), nome)
	if err := os.WriteFile(caminho, conteudo, 0o644); err != nil {
		return "", fmt.Errorf("proposta: salvar pdf: %w (fallback: %v)", causa, err)
	}
	uc.log.Warn().Err(causa).Str("arquivo", caminho).Msg("pdf salvo em diretório temporário")
	return caminho, nil
}
