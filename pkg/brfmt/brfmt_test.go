package brfmt

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	casos := []struct {
		valor    string
		esperado string
	}{
		{"0", "R$ 0,00"},
		{"10", "R$ 10,00"},
		{"1234.56", "R$ 1.234,56"},
		{"1000000.5", "R$ 1.000.000,50"},
		{"999.999", "R$ 1.000,00"},
		{"-1234.56", "R$ -1.234,56"},
	}
	for _, c := range casos {
		v, err := decimal.NewFromString(c.valor)
		require.NoError(t, err)
		assert.Equal(t, c.esperado, FormatCurrency(v), "valor %s", c.valor)
	}
}

func TestParseDecimal(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"R$ 1.000,50", "1000.5"},
		{"1000,50", "1000.5"},
		{"1000.50", "1000.5"},
		{"R$1.234.567,89", "1234567.89"},
		{"  250  ", "250"},
		{"", "0"},
		{"abc", "0"},
		{"1,2,3", "0"},
	}
	for _, c := range casos {
		esperado, err := decimal.NewFromString(c.esperado)
		require.NoError(t, err)
		assert.True(t, ParseDecimal(c.entrada).Equal(esperado),
			"entrada %q: esperado %s, obtido %s", c.entrada, esperado, ParseDecimal(c.entrada))
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", FormatDate(time.Time{}), "data zero deve virar string vazia")

	d := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "07/03/2025", FormatDate(d))
}

func TestFormatDateLongPT(t *testing.T) {
	assert.Equal(t, "", FormatDateLongPT(time.Time{}))

	d := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "7 de março de 2025", FormatDateLongPT(d))

	d = time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "25 de dezembro de 2024", FormatDateLongPT(d))
}

func TestFormatCNPJ(t *testing.T) {
	assert.Equal(t, "10.644.944/0001-55", FormatCNPJ("10644944000155"))
	assert.Equal(t, "10.644.944/0001-55", FormatCNPJ("10.644.944/0001-55"), "já formatado permanece")
	assert.Equal(t, "123", FormatCNPJ("123"), "tamanho errado volta como veio")
	assert.Equal(t, "", FormatCNPJ(""))
}

func TestValidateCNPJ(t *testing.T) {
	assert.True(t, ValidateCNPJ(""), "CNPJ é opcional")
	assert.True(t, ValidateCNPJ("11.222.333/0001-81"))
	assert.True(t, ValidateCNPJ("10.644.944/0001-55"))
	assert.True(t, ValidateCNPJ("11222333000181"), "sem máscara também vale")

	assert.False(t, ValidateCNPJ("11.222.333/0001-80"), "dígito verificador errado")
	assert.False(t, ValidateCNPJ("11.111.111/1111-11"), "sequência de um mesmo dígito")
	assert.False(t, ValidateCNPJ("123"), "menos de 14 dígitos")
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail(""), "e-mail é opcional")
	assert.True(t, ValidateEmail("vendas@worldcomp.com.br"))
	assert.True(t, ValidateEmail("fulano.tal+tag@example.org"))

	assert.False(t, ValidateEmail("sem-arroba"))
	assert.False(t, ValidateEmail("a@b"))
	assert.False(t, ValidateEmail("a b@example.com"))
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(11) 4543-6893", FormatPhone("1145436893"), "fixo com 10 dígitos")
	assert.Equal(t, "(11) 98765-4321", FormatPhone("11987654321"), "celular com 11 dígitos")
	assert.Equal(t, "(11) 4543-6893", FormatPhone("(11) 4543-6893"), "reformatar mantém o padrão")
	assert.Equal(t, "12345", FormatPhone("12345"), "tamanho fora do padrão volta como veio")
	assert.Equal(t, "", FormatPhone(""))
}

func TestFormatCEP(t *testing.T) {
	assert.Equal(t, "09862-000", FormatCEP("09862000"))
	assert.Equal(t, "09862-000", FormatCEP("09862-000"))
	assert.Equal(t, "123", FormatCEP("123"))
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "manutenção preventiva à risca", CleanText("manutenção preventiva à risca"),
		"acentuação do português passa intacta")
	assert.Equal(t, "a    b", CleanText("a\tb"), "tab vira quatro espaços")
	assert.Equal(t, "- item", CleanText("•item"))
	assert.Equal(t, "compressor - parafuso", CleanText("compressor – parafuso"))
	assert.Equal(t, "marca(R)", CleanText("marca®"))
	assert.Equal(t, "seta ?", CleanText("seta →"), "rune fora do cp1252 vira interrogação")
}
