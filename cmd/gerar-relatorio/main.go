// gerar-relatorio gera o PDF de um relatório técnico de peritagem e grava o
// arquivo no diretório de saída configurado.
//
// Uso: go run ./cmd/gerar-relatorio -relatorio 45
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/worldcomp/crm-api/internal/application/relatorio"
	infrapdf "github.com/worldcomp/crm-api/internal/infrastructure/pdf"
	"github.com/worldcomp/crm-api/internal/infrastructure/postgres"
	"github.com/worldcomp/crm-api/pkg/config"
	"github.com/worldcomp/crm-api/pkg/logger"
)

func main() {
	relatorioID := flag.Int64("relatorio", 0, "ID do relatório técnico (obrigatório)")
	flag.Parse()

	if *relatorioID <= 0 {
		fmt.Fprintln(os.Stderr, "informe -relatorio com o ID do relatório")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "carregar configuração: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	uc := relatorio.NewGerarRelatorioUseCase(
		postgres.NewRelatorioRepository(pool),
		infrapdf.NovoMarotoRelatorioGenerator(),
		log,
	)

	pdfBytes, nome, err := uc.Gerar(ctx, *relatorioID)
	if err != nil {
		log.Error().Err(err).Int64("relatorio_id", *relatorioID).Msg("falha na geração do relatório")
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.PDF.OutputDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("criar diretório de saída")
	}
	caminho := filepath.Join(cfg.PDF.OutputDir, nome)
	if err := os.WriteFile(caminho, pdfBytes, 0o644); err != nil {
		log.Fatal().Err(err).Str("arquivo", caminho).Msg("gravar relatório")
	}

	fmt.Println(caminho)
}
