package composer

import (
	"io"
	"strings"
)

// canvasGravacao é um Canvas em memória para os testes: registra todo texto
// desenhado por página e simula o cursor vertical com a mesma aritmética de
// células e MultiCells da implementação real.
type canvasGravacao struct {
	pagina     int
	x, y       float64
	margemTopo float64
	fundo      float64
	quebraOn   bool

	estiloFonte  string
	tamanhoFonte float64

	textos    []string
	porPagina map[int][]string
	rects     int
	linhas    int
	imagens   []string

	cabecalho func()
	rodape    func()
	quebra    func() bool
}

var _ Canvas = (*canvasGravacao)(nil)

func novoCanvasGravacao() *canvasGravacao {
	return &canvasGravacao{porPagina: map[int][]string{}, margemTopo: 10}
}

func (c *canvasGravacao) AddPage() {
	if c.pagina > 0 && c.rodape != nil {
		c.rodape()
	}
	c.pagina++
	c.x = 10
	c.y = c.margemTopo
	if c.cabecalho != nil {
		c.cabecalho()
	}
}

// quebrarPagina simula a quebra automática do motor de PDF: consulta o
// gancho e, se aceita, abre a página seguinte.
func (c *canvasGravacao) quebrarPagina() {
	if c.quebra == nil || c.quebra() {
		c.AddPage()
	}
}

func (c *canvasGravacao) PageNo() int { return c.pagina }

func (c *canvasGravacao) SetFont(style string, size float64) {
	c.estiloFonte = style
	c.tamanhoFonte = size
}

func (c *canvasGravacao) SetTextColor(Color)   {}
func (c *canvasGravacao) SetDrawColor(Color)   {}
func (c *canvasGravacao) SetFillColor(Color)   {}
func (c *canvasGravacao) SetLineWidth(float64) {}

func (c *canvasGravacao) registrar(txt string) {
	c.textos = append(c.textos, txt)
	c.porPagina[c.pagina] = append(c.porPagina[c.pagina], txt)
}

func (c *canvasGravacao) Cell(w, h float64, txt string, _ bool, _ bool, _ string, ln bool) {
	c.registrar(txt)
	if ln {
		c.y += h
		c.x = 10
	} else {
		c.x += w
	}
}

func (c *canvasGravacao) MultiCell(w, h float64, txt string, _ bool, _ string) {
	c.registrar(txt)
	c.y += float64(c.MeasureLines(txt, w)) * h
	c.x = 10
}

func (c *canvasGravacao) Write(_ float64, txt string) { c.registrar(txt) }

func (c *canvasGravacao) Ln(h float64) { c.y += h }

func (c *canvasGravacao) Line(_, _, _, _ float64) { c.linhas++ }

func (c *canvasGravacao) Rect(_, _, _, _ float64) { c.rects++ }

func (c *canvasGravacao) Image(path string, _, _, _, _ float64) error {
	c.imagens = append(c.imagens, path)
	return nil
}

func (c *canvasGravacao) X() float64 { return c.x }
func (c *canvasGravacao) Y() float64 { return c.y }

func (c *canvasGravacao) SetX(x float64) { c.x = x }

func (c *canvasGravacao) SetY(y float64) {
	if y < 0 {
		y = 297 + y
	}
	c.y = y
}

func (c *canvasGravacao) SetXY(x, y float64) {
	c.SetX(x)
	c.SetY(y)
}

func (c *canvasGravacao) SetTopMargin(m float64) { c.margemTopo = m }

func (c *canvasGravacao) SetAutoPageBreak(on bool, bottom float64) {
	c.quebraOn = on
	c.fundo = bottom
}

// MeasureLines aproxima a métrica por 2mm por caractere, suficiente para os
// testes de altura de linha.
func (c *canvasGravacao) MeasureLines(txt string, w float64) int {
	if w <= 0 {
		// Largura zero significa até a margem direita.
		w = 190
	}
	porLinha := int(w / 2)
	if porLinha < 1 {
		porLinha = 1
	}
	total := 0
	for _, seg := range strings.Split(txt, "\n") {
		n := len([]rune(seg))
		l := (n + porLinha - 1) / porLinha
		if l < 1 {
			l = 1
		}
		total += l
	}
	return total
}

func (c *canvasGravacao) StringWidth(s string) float64 { return float64(len([]rune(s))) * 2 }

func (c *canvasGravacao) OnHeader(fn func())         { c.cabecalho = fn }
func (c *canvasGravacao) OnFooter(fn func())         { c.rodape = fn }
func (c *canvasGravacao) OnPageBreak(fn func() bool) { c.quebra = fn }

func (c *canvasGravacao) Output(w io.Writer) error {
	_, err := w.Write([]byte("%PDF-gravacao"))
	return err
}

// contemTexto procura substr em qualquer texto registrado.
func (c *canvasGravacao) contemTexto(substr string) bool {
	for _, t := range c.textos {
		if strings.Contains(t, substr) {
			return true
		}
	}
	return false
}

// textosDaPagina devolve os textos registrados numa página específica.
func (c *canvasGravacao) textosDaPagina(n int) []string { return c.porPagina[n] }

// paginaComTexto devolve a primeira página contendo substr, ou zero.
func (c *canvasGravacao) paginaComTexto(substr string) int {
	menor := 0
	for p, textos := range c.porPagina {
		for _, t := range textos {
			if strings.Contains(t, substr) && (menor == 0 || p < menor) {
				menor = p
			}
		}
	}
	return menor
}

// canvasQuebraAutomatica estende o canvas de gravação com a quebra automática
// do motor real: cada linha de uma MultiCell que alcança a margem inferior
// dispara o gancho de quebra antes de ser desenhada. Células com borda que
// terminam em página diferente da inicial são acumuladas em cortadas.
type canvasQuebraAutomatica struct {
	canvasGravacao
	cortadas []string
}

func novoCanvasQuebraAutomatica() *canvasQuebraAutomatica {
	return &canvasQuebraAutomatica{
		canvasGravacao: canvasGravacao{porPagina: map[int][]string{}, margemTopo: 10},
	}
}

func (c *canvasQuebraAutomatica) MultiCell(w, h float64, txt string, borda bool, _ string) {
	c.registrar(txt)
	inicio := c.pagina
	for i := 0; i < c.MeasureLines(txt, w); i++ {
		if c.quebraOn && c.y+h > 297-c.fundo {
			c.quebrarPagina()
		}
		c.y += h
	}
	c.x = 10
	if borda && c.pagina != inicio {
		c.cortadas = append(c.cortadas, txt)
	}
}
