package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/worldcomp/crm-api/internal/domain/entity"
	"github.com/worldcomp/crm-api/pkg/brfmt"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	corPrimaria = &props.Color{Red: 50, Green: 100, Blue: 150}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoRelatorioGenerator gera o PDF do relatório técnico de peritagem
// usando Maroto v2.
type MarotoRelatorioGenerator struct{}

// NovoMarotoRelatorioGenerator constrói o gerador.
func NovoMarotoRelatorioGenerator() *MarotoRelatorioGenerator { return &MarotoRelatorioGenerator{} }

// GerarRelatorioPDF gera o PDF e devolve seus bytes.
func (g *MarotoRelatorioGenerator) GerarRelatorioPDF(
	_ context.Context,
	rel *entity.RelatorioTecnico,
	filial *entity.Filial,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório Técnico "+rel.NumeroRelatorio, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(cabecalhoRelatorio(rel, filial))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))
	m.AddRows(clienteRelatorio(rel))
	m.AddRows(servicoRelatorio(rel))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))

	etapas := []struct {
		titulo       string
		tituloAnexos string
		campos       []campoRelatorio
		anexos       []entity.Anexo
	}{
		{"ETAPA 1 - CONDIÇÃO INICIAL", "ANEXOS - CONDIÇÃO INICIAL", []campoRelatorio{
			{"Condição encontrada", rel.CondicaoEncontrada},
			{"Placa de identificação", rel.PlacaIdentificacao},
			{"Acoplamento", rel.Acoplamento},
			{"Aspectos dos rotores", rel.AspectosRotores},
			{"Válvulas acopladas", rel.ValvulasAcopladas},
		}, rel.AnexosEtapa1},
		{"ETAPA 2 - PERITAGEM DO SUBCONJUNTO", "ANEXOS - PERITAGEM DO SUBCONJUNTO", []campoRelatorio{
			{"Parafusos e pinos", rel.ParafusosPinos},
			{"Superfície de vedação", rel.SuperficieVedacao},
			{"Engrenagens", rel.Engrenagens},
			{"Bico injetor", rel.BicoInjetor},
			{"Rolamentos", rel.Rolamentos},
			{"Aspecto do óleo", rel.AspectoOleo},
		}, rel.AnexosEtapa2},
		{"ETAPA 3 - DESMEMBRANDO A UNIDADE COMPRESSORA", "ANEXOS - DESMEMBRAÇÃO DA UNIDADE", []campoRelatorio{
			{"Interferência na desmontagem", rel.InterfDesmontagem},
			{"Aspecto dos rotores", rel.AspectoRotores},
			{"Aspecto da carcaça", rel.AspectoCarcaca},
			{"Interferência dos mancais", rel.InterfMancais},
			{"Galeria hidráulica", rel.GaleriaHidraulica},
		}, rel.AnexosEtapa3},
		{"ETAPA 4 - RELAÇÃO DE PEÇAS E SERVIÇOS", "ANEXOS - PEÇAS E SERVIÇOS", []campoRelatorio{
			{"Serviços propostos", rel.ServicosPropostos},
			{"Peças recomendadas", rel.PecasRecomendadas},
		}, rel.AnexosEtapa4},
	}
	for _, etapa := range etapas {
		for _, r := range etapaRows(etapa.titulo, etapa.campos) {
			m.AddRows(r)
		}
		for _, r := range anexosRows(etapa.tituloAnexos, etapa.anexos) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: corCinza, Thickness: 0.3}))
	m.AddRows(temposRelatorio(rel))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar relatório: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

type campoRelatorio struct {
	rotulo string
	valor  string
}

// cabecalhoRelatorio: razão social da filial (esq) e número + data (dir).
func cabecalhoRelatorio(rel *entity.RelatorioTecnico, filial *entity.Filial) core.Row {
	nome := "WORLD COMP"
	cnpj := ""
	if filial != nil {
		nome = filial.Nome
		cnpj = filial.CNPJ
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nome, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: corPrimaria, Top: 1,
			}),
			text.New("CNPJ: "+cnpj, props.Text{
				Size: 9, Top: 9, Color: corCinza,
			}),
		),
		col.New(5).Add(
			text.New("RELATÓRIO TÉCNICO DE PERITAGEM", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: corPrimaria, Top: 1,
			}),
			text.New(rel.NumeroRelatorio, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Data: "+brfmt.FormatDate(rel.DataCriacao), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: corCinza,
			}),
		),
	)
}

// clienteRelatorio: dados do cliente atendido.
func clienteRelatorio(rel *entity.RelatorioTecnico) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: corPrimaria, Top: 1,
			}),
			text.New(rel.Cliente.Nome, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("CNPJ: %s   |   Fone: %s   |   E-mail: %s",
				seNaoVazio(brfmt.FormatCNPJ(rel.Cliente.CNPJ), "N/A"),
				seNaoVazio(rel.Cliente.Telefone, "N/A"),
				seNaoVazio(rel.Cliente.Email, "N/A"),
			), props.Text{Size: 8, Top: 12, Color: corCinza}),
		),
	)
}

// servicoRelatorio: formulário, tipo e descrição do serviço.
func servicoRelatorio(rel *entity.RelatorioTecnico) core.Row {
	recebimento := "N/A"
	if rel.DataRecebimento != nil {
		recebimento = brfmt.FormatDate(*rel.DataRecebimento)
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("SERVIÇO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: corPrimaria, Top: 1,
			}),
			text.New(fmt.Sprintf("Formulário: %s   |   Tipo: %s   |   Recebimento: %s",
				seNaoVazio(rel.FormularioServico, "N/A"),
				seNaoVazio(rel.TipoServico, "N/A"),
				recebimento,
			), props.Text{Size: 8, Top: 7, Color: corCinza}),
			text.New(seNaoVazio(rel.DescricaoServico, "Sem descrição."), props.Text{
				Size: 8, Top: 12,
			}),
		),
	)
}

// etapaRows: título da etapa seguido de uma linha rótulo/valor por campo.
func etapaRows(titulo string, campos []campoRelatorio) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 9, Color: corPrimaria, Top: 2,
			}),
		)),
	}
	for _, c := range campos {
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(text.New(c.rotulo+":", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1,
			})),
			col.New(8).Add(text.New(seNaoVazio(c.valor, "—"), props.Text{
				Size: 8, Top: 1,
			})),
		))
	}
	return rows
}

// anexosRows: fotos da etapa com nome numerado, descrição opcional e legenda.
// Anexos sem imagem legível no disco são pulados em silêncio, como nos demais
// recursos de arquivo do gerador.
func anexosRows(titulo string, anexos []entity.Anexo) []core.Row {
	visiveis := anexosComImagem(anexos)
	if len(visiveis) == 0 {
		return nil
	}
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 9, Color: corPrimaria, Top: 2,
			}),
		)),
	}
	for i, a := range visiveis {
		nome := seNaoVazio(a.Nome, fmt.Sprintf("Anexo %d", i+1))
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%d. %s", i+1, nome), props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			}),
		)))
		if a.Descricao != "" {
			rows = append(rows, row.New(5).Add(col.New(12).Add(
				text.New(a.Descricao, props.Text{
					Size: 8, Top: 1, Left: 2, Color: corCinza,
				}),
			)))
		}
		rows = append(rows,
			image.NewFromFileRow(60, a.Caminho, props.Rect{Center: true, Percent: 90}),
			row.New(5).Add(col.New(12).Add(
				text.New(fmt.Sprintf("Figura %d: %s", i+1, nome), props.Text{
					Style: fontstyle.Italic, Size: 8, Align: align.Center,
					Color: corCinza, Top: 1,
				}),
			)),
		)
	}
	return rows
}

// anexosComImagem filtra os anexos cujo caminho existe e é uma imagem.
func anexosComImagem(anexos []entity.Anexo) []entity.Anexo {
	var out []entity.Anexo
	for _, a := range anexos {
		switch strings.ToLower(filepath.Ext(a.Caminho)) {
		case ".jpg", ".jpeg", ".png":
		default:
			continue
		}
		if _, err := os.Stat(a.Caminho); err != nil {
			continue
		}
		out = append(out, a)
	}
	return out
}

// temposRelatorio: totais de horas apontados pelo técnico.
func temposRelatorio(rel *entity.RelatorioTecnico) core.Row {
	return row.New(10).Add(
		col.New(6).Add(text.New("Tempo total de trabalho: "+seNaoVazio(rel.TempoTrabalhoTotal, "—"), props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 2,
		})),
		col.New(6).Add(text.New("Tempo total de deslocamento: "+seNaoVazio(rel.TempoDeslocamentoTotal, "—"), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func seNaoVazio(s, padrao string) string {
	if s != "" {
		return s
	}
	return padrao
}
