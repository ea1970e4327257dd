package cnpj_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecogestor/licenciamento-api/internal/domain/cnpj"
)

// CNPJs reais com dígitos verificadores corretos (Petrobras, Vale, Bradesco).
var cnpjsValidos = map[string]string{
	"Petrobras": "33.000.167/0001-01",
	"Vale":      "33.592.510/0001-54",
	"Bradesco":  "60.746.948/0001-12",
}

func TestValid_CNPJsReais(t *testing.T) {
	for nome, pontuado := range cnpjsValidos {
		assert.True(t, cnpj.Valid(pontuado), "CNPJ da %s (%s) deveria ser válido", nome, pontuado)

		limpo := cnpj.Normalize(pontuado)
		assert.True(t, cnpj.Valid(limpo), "CNPJ limpo da %s (%s) deveria ser válido", nome, limpo)
	}
}

func TestValid_DigitoVerificadorAlterado(t *testing.T) {
	invalidos := []string{
		"33.000.167/0001-00", // Petrobras com último dígito errado
		"33.000.167/0001-11", // primeiro DV errado
		"48.136.030/0001-00",
		"12.345.678/0001-00",
		"99.999.999/9999-99",
	}
	for _, c := range invalidos {
		assert.False(t, cnpj.Valid(c), "CNPJ %s deveria ser inválido", c)
	}
}

func TestValid_SequenciaDeUmMesmoDigito(t *testing.T) {
	// Passaria no cálculo dos DVs, mas a Receita não emite essas sequências.
	assert.False(t, cnpj.Valid("11.111.111/1111-11"))
	assert.False(t, cnpj.Valid("00000000000000"))
}

func TestValid_TamanhoErrado(t *testing.T) {
	assert.False(t, cnpj.Valid(""))
	assert.False(t, cnpj.Valid("123"))
	assert.False(t, cnpj.Valid("33.000.167/0001-011")) // 15 dígitos
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "33000167000101", cnpj.Normalize("33.000.167/0001-01"))
	assert.Equal(t, "33000167000101", cnpj.Normalize("33000167000101"))
	assert.Equal(t, "", cnpj.Normalize("abc"))
}
