// Package pdf contém os geradores físicos de documento: o canvas fpdf usado
// pelas propostas e o gerador maroto dos relatórios técnicos.
package pdf

import (
	"io"

	"codeberg.org/go-pdf/fpdf"

	"github.com/worldcomp/crm-api/internal/composer"
)

// FpdfCanvas implementa composer.Canvas sobre um documento fpdf A4 retrato
// em milímetros. Os textos chegam em UTF-8 e são traduzidos para cp1252, o
// encoding das fontes core.
type FpdfCanvas struct {
	doc *fpdf.Fpdf
	tr  func(string) string
}

var _ composer.Canvas = (*FpdfCanvas)(nil)

// NovoCanvas cria um canvas A4 vazio pronto para a montagem.
func NovoCanvas() *FpdfCanvas {
	doc := fpdf.New("P", "mm", "A4", "")
	return &FpdfCanvas{
		doc: doc,
		tr:  doc.UnicodeTranslatorFromDescriptor(""),
	}
}

func (c *FpdfCanvas) AddPage()    { c.doc.AddPage() }
func (c *FpdfCanvas) PageNo() int { return c.doc.PageNo() }

func (c *FpdfCanvas) SetFont(style string, size float64) {
	c.doc.SetFont("Arial", style, size)
}

func (c *FpdfCanvas) SetTextColor(cor composer.Color) { c.doc.SetTextColor(cor.R, cor.G, cor.B) }
func (c *FpdfCanvas) SetDrawColor(cor composer.Color) { c.doc.SetDrawColor(cor.R, cor.G, cor.B) }
func (c *FpdfCanvas) SetFillColor(cor composer.Color) { c.doc.SetFillColor(cor.R, cor.G, cor.B) }
func (c *FpdfCanvas) SetLineWidth(w float64)          { c.doc.SetLineWidth(w) }

func (c *FpdfCanvas) Cell(w, h float64, txt string, border bool, fill bool, align string, ln bool) {
	borderStr := ""
	if border {
		borderStr = "1"
	}
	lnInt := 0
	if ln {
		lnInt = 1
	}
	c.doc.CellFormat(w, h, c.tr(txt), borderStr, lnInt, align, fill, 0, "")
}

func (c *FpdfCanvas) MultiCell(w, h float64, txt string, border bool, align string) {
	borderStr := ""
	if border {
		borderStr = "1"
	}
	c.doc.MultiCell(w, h, c.tr(txt), borderStr, align, false)
}

func (c *FpdfCanvas) Write(h float64, txt string) { c.doc.Write(h, c.tr(txt)) }
func (c *FpdfCanvas) Ln(h float64)                { c.doc.Ln(h) }

func (c *FpdfCanvas) Line(x1, y1, x2, y2 float64) { c.doc.Line(x1, y1, x2, y2) }
func (c *FpdfCanvas) Rect(x, y, w, h float64)     { c.doc.Rect(x, y, w, h, "D") }

func (c *FpdfCanvas) Image(path string, x, y, w, h float64) error {
	c.doc.ImageOptions(path, x, y, w, h, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
	return c.doc.Error()
}

func (c *FpdfCanvas) X() float64         { return c.doc.GetX() }
func (c *FpdfCanvas) Y() float64         { return c.doc.GetY() }
func (c *FpdfCanvas) SetX(x float64)     { c.doc.SetX(x) }
func (c *FpdfCanvas) SetY(y float64)     { c.doc.SetY(y) }
func (c *FpdfCanvas) SetXY(x, y float64) { c.doc.SetXY(x, y) }

func (c *FpdfCanvas) SetTopMargin(m float64)                   { c.doc.SetTopMargin(m) }
func (c *FpdfCanvas) SetAutoPageBreak(on bool, bottom float64) { c.doc.SetAutoPageBreak(on, bottom) }

// MeasureLines conta as linhas que txt ocuparia numa MultiCell de largura w.
// Quando a quebra de texto não é calculável, estima pelo tamanho médio do
// caractere para nunca devolver zero.
func (c *FpdfCanvas) MeasureLines(txt string, w float64) int {
	if txt == "" {
		return 1
	}
	lines := c.doc.SplitText(c.tr(txt), w)
	if len(lines) > 0 {
		return len(lines)
	}
	charW := c.doc.GetStringWidth("M")
	if charW <= 0 {
		return 1
	}
	porLinha := int(w / charW * 0.8)
	if porLinha <= 0 {
		porLinha = 20
	}
	n := len(txt)/porLinha + 1
	if n < 1 {
		n = 1
	}
	return n
}

func (c *FpdfCanvas) StringWidth(s string) float64 { return c.doc.GetStringWidth(c.tr(s)) }

func (c *FpdfCanvas) OnHeader(fn func()) { c.doc.SetHeaderFunc(fn) }
func (c *FpdfCanvas) OnFooter(fn func()) { c.doc.SetFooterFunc(fn) }

func (c *FpdfCanvas) OnPageBreak(fn func() bool) { c.doc.SetAcceptPageBreakFunc(fn) }

func (c *FpdfCanvas) Output(w io.Writer) error { return c.doc.Output(w) }
