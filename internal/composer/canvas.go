// Package composer monta as propostas comerciais (compra e locação) sobre um
// canvas de página A4. Toda a lógica de seções, quebras de página, tabelas e
// textos vive aqui; a escrita física do PDF fica atrás da interface Canvas.
package composer

import "io"

// Alinhamentos de célula.
const (
	AlinhaEsquerda = "L"
	AlinhaCentro   = "C"
	AlinhaDireita  = "R"
)

// Color é uma cor RGB de 0 a 255 por componente.
type Color struct {
	R, G, B int
}

// Cores fixas da identidade visual das propostas.
var (
	CorAzulBebe        = Color{R: 137, G: 207, B: 240}
	CorCabecalhoTabela = Color{R: 50, G: 100, B: 150}
	CorFundoTotal      = Color{R: 200, G: 200, B: 200}
	CorBranco          = Color{R: 255, G: 255, B: 255}
	CorPreto           = Color{R: 0, G: 0, B: 0}
)

// Canvas é a superfície de desenho de uma página A4 em milímetros, com a
// origem no canto superior esquerdo. A implementação concreta fica em
// infrastructure/pdf; os testes usam um canvas de gravação.
type Canvas interface {
	AddPage()
	PageNo() int

	SetFont(style string, size float64)
	SetTextColor(c Color)
	SetDrawColor(c Color)
	SetFillColor(c Color)
	SetLineWidth(w float64)

	// Cell desenha uma célula de largura w. Com ln o cursor desce para a
	// linha seguinte; sem ln ele avança para a direita.
	Cell(w, h float64, txt string, border bool, fill bool, align string, ln bool)
	MultiCell(w, h float64, txt string, border bool, align string)
	Write(h float64, txt string)
	Ln(h float64)

	Line(x1, y1, x2, y2 float64)
	Rect(x, y, w, h float64)
	Image(path string, x, y, w, h float64) error

	X() float64
	Y() float64
	SetX(x float64)
	SetY(y float64)
	SetXY(x, y float64)

	SetTopMargin(m float64)
	SetAutoPageBreak(on bool, bottom float64)

	// MeasureLines conta quantas linhas txt ocupa numa MultiCell de
	// largura w, sem desenhar nada.
	MeasureLines(txt string, w float64) int
	StringWidth(s string) float64

	// Ganchos de página. OnPageBreak é chamado antes da quebra automática
	// e decide se ela acontece; OnHeader e OnFooter rodam a cada página.
	OnHeader(fn func())
	OnFooter(fn func())
	OnPageBreak(fn func() bool)

	Output(w io.Writer) error
}

// Recursos localiza os arquivos de imagem usados na montagem. Caminhos
// vazios são tolerados: a página correspondente sai sem a imagem.
type Recursos struct {
	// Capa é o template de capa do usuário da cotação.
	Capa string
	// Cabecalho é a faixa desenhada no topo das páginas internas.
	Cabecalho string
}
