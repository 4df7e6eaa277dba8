package composer

import (
	"fmt"

	"github.com/worldcomp/crm-api/internal/domain/entity"
	"github.com/worldcomp/crm-api/pkg/brfmt"
)

// Margens padrão do documento, em mm.
const (
	margemTopoPadrao  = 10.0
	margemFundoPadrao = 25.0
	topoCabecalho     = 40.0
	topoSeguroSecao   = 45.0
)

type secao struct {
	nome          string
	topoPrimeira  float64
	fundoPrimeira float64
	topoCont      float64
	fundoCont     float64
	titulo        string
}

// Paginator gerencia cabeçalho, rodapé e seções com margens diferenciadas.
// Uma seção declara margens para a primeira página e para as páginas de
// continuação; na quebra automática o hook troca para as margens de
// continuação e o cabeçalho da página nova repete o título da seção.
type Paginator struct {
	cv     Canvas
	filial *entity.Filial
	rec    Recursos

	secao        *secao
	contPendente bool
}

// NovoPaginator instala os ganchos de página no canvas e devolve o
// paginador pronto. As margens padrão ficam valendo até BeginSection.
func NovoPaginator(cv Canvas, filial *entity.Filial, rec Recursos) *Paginator {
	p := &Paginator{cv: cv, filial: filial, rec: rec}
	cv.SetAutoPageBreak(true, margemFundoPadrao)
	cv.SetTopMargin(margemTopoPadrao)
	cv.OnHeader(p.cabecalho)
	cv.OnFooter(p.rodape)
	cv.OnPageBreak(p.aceitarQuebra)
	return p
}

// BeginSection entra numa seção nomeada. A primeira página da seção usa
// (topoPrimeira, fundoPrimeira); as continuações usam (topoCont, fundoCont)
// e repetem titulo no topo quando titulo não é vazio.
func (p *Paginator) BeginSection(nome string, topoPrimeira, fundoPrimeira, topoCont, fundoCont float64, titulo string) {
	p.secao = &secao{
		nome:          nome,
		topoPrimeira:  topoPrimeira,
		fundoPrimeira: fundoPrimeira,
		topoCont:      topoCont,
		fundoCont:     fundoCont,
		titulo:        titulo,
	}
	p.cv.SetTopMargin(topoPrimeira)
	p.cv.SetAutoPageBreak(true, fundoPrimeira)
}

// EndSection restaura as margens padrão do documento.
func (p *Paginator) EndSection() {
	p.cv.SetTopMargin(margemTopoPadrao)
	p.cv.SetAutoPageBreak(true, margemFundoPadrao)
	p.secao = nil
	p.contPendente = false
}

// EmSecao informa se há seção aberta.
func (p *Paginator) EmSecao() bool { return p.secao != nil }

func (p *Paginator) aceitarQuebra() bool {
	if p.secao != nil {
		p.cv.SetTopMargin(p.secao.topoCont)
		p.cv.SetAutoPageBreak(true, p.secao.fundoCont)
		p.contPendente = true
	}
	return true
}

// cabecalho desenha a borda da página e a faixa superior. A capa (página 1)
// fica limpa. Em páginas de continuação de seção o título volta a ser
// impresso abaixo da faixa.
func (p *Paginator) cabecalho() {
	if p.cv.PageNo() == 1 {
		return
	}

	p.cv.SetLineWidth(0.5)
	p.cv.Rect(5, 5, 200, 287)

	if p.rec.Cabecalho != "" {
		// Faixa dentro da borda, sem cobrir a linha.
		_ = p.cv.Image(p.rec.Cabecalho, 5.5, 5.5, 199, 29)
	}

	p.cv.SetTopMargin(topoCabecalho)
	if p.cv.Y() < topoCabecalho {
		p.cv.SetY(topoCabecalho)
	}

	if p.secao != nil && p.contPendente {
		topo := p.secao.topoCont
		if topo < topoSeguroSecao {
			topo = topoSeguroSecao
		}
		p.cv.SetY(topo)
		if p.secao.titulo != "" {
			p.cv.SetFont("B", 14)
			p.cv.Cell(0, 8, brfmt.CleanText(p.secao.titulo), false, false, AlinhaEsquerda, true)
			p.cv.Ln(5)
		}
		p.contPendente = false
	}
}

// rodape imprime as linhas institucionais da filial centralizadas em azul
// bebê, acima de uma linha divisória.
func (p *Paginator) rodape() {
	if p.cv.PageNo() == 1 {
		return
	}

	p.cv.SetY(-25)
	p.cv.Line(10, p.cv.Y()-5, 200, p.cv.Y()-5)

	p.cv.SetFont("", 10)
	p.cv.SetTextColor(CorAzulBebe)

	if p.filial != nil {
		if p.filial.Nome != "" {
			p.linhaRodape(p.filial.Nome)
		}
		if p.filial.CNPJ != "" {
			p.linhaRodape(fmt.Sprintf("CNPJ: %s  |  IE: %s", p.filial.CNPJ, p.filial.InscricaoEstadual))
		}
		if p.filial.Endereco != "" {
			p.linhaRodape(p.filial.Endereco)
		}
		if p.filial.Email != "" || p.filial.Telefones != "" {
			p.linhaRodape(fmt.Sprintf("E-mail: %s | Fone: %s", p.filial.Email, p.filial.Telefones))
		}
	}

	p.cv.SetTextColor(CorPreto)
}

func (p *Paginator) linhaRodape(txt string) {
	p.cv.Cell(0, 5, brfmt.CleanText(txt), false, false, AlinhaCentro, true)
}
