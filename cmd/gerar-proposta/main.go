// gerar-proposta gera o PDF de proposta de uma cotação a partir da linha de
// comando, gravando o arquivo e registrando o caminho de volta na cotação.
//
// Uso: go run ./cmd/gerar-proposta -cotacao 123 [-contato "Sr. Fulano"]
// Configuração via variáveis de ambiente ou .env (DATABASE_URL, PDF_OUTPUT_DIR,
// PDF_ASSETS_DIR).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/worldcomp/crm-api/internal/application/proposta"
	"github.com/worldcomp/crm-api/internal/composer"
	infrapdf "github.com/worldcomp/crm-api/internal/infrastructure/pdf"
	"github.com/worldcomp/crm-api/internal/infrastructure/postgres"
	"github.com/worldcomp/crm-api/pkg/config"
	"github.com/worldcomp/crm-api/pkg/logger"
)

func main() {
	var (
		cotacaoID   = flag.Int64("cotacao", 0, "ID da cotação a gerar (obrigatório)")
		contato     = flag.String("contato", "", "nome do contato A/C (padrão: contato principal do cliente)")
		textoPag4   = flag.String("texto-pagina4", "", "texto de cobertura da página de equipamento (locação)")
		imagemPag4  = flag.String("imagem-pagina4", "", "caminho da imagem do equipamento (locação)")
		tempoLimite = flag.Duration("timeout", 30*time.Second, "tempo limite da geração")
	)
	flag.Parse()

	if *cotacaoID <= 0 {
		fmt.Fprintln(os.Stderr, "informe -cotacao com o ID da cotação")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "carregar configuração: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), *tempoLimite)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	cotacaoRepo := postgres.NewCotacaoRepository(pool)
	uc := proposta.NewGerarPropostaUseCase(
		cotacaoRepo,
		log,
		func() composer.Canvas { return infrapdf.NovoCanvas() },
		cfg.PDF.OutputDir,
		cfg.PDF.AssetsDir,
	)

	caminho, err := uc.Gerar(ctx, *cotacaoID, proposta.Opcoes{
		ContatoNome:   *contato,
		TextoPagina4:  *textoPag4,
		ImagemPagina4: *imagemPag4,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Error().Dur("timeout", *tempoLimite).Msg("geração excedeu o tempo limite")
			os.Exit(1)
		}
		log.Error().Err(err).Int64("cotacao_id", *cotacaoID).Msg("falha na geração da proposta")
		os.Exit(1)
	}

	fmt.Println(caminho)
}
