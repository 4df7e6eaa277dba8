package brfmt

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Símbolos fora do cp1252 com substituto tipográfico razoável.
var substituicoes = strings.NewReplacer(
	"\t", "    ",
	"•", "- ",
	"●", "- ",
	"◦", "- ",
	"◆", "- ",
	"▪", "- ",
	"▫", "- ",
	"★", "* ",
	"☆", "* ",
	"–", "-",
	"—", "-",
	"…", "...",
	"®", "(R)",
	"™", "(TM)",
	"©", "(C)",
)

// CleanText normaliza o texto para renderização em fontes cp1252: tabs viram
// espaços, marcadores e símbolos comuns ganham equivalentes simples e qualquer
// rune fora do cp1252 vira '?'. Acentuação do português passa intacta.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = substituicoes.Replace(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if _, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteRune(r)
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}
