package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecogestor/licenciamento-api/internal/domain/entity"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func TestCalcularDataLimite_ComDataBase(t *testing.T) {
	prazo := 90
	c := entity.Condicionante{PrazoDias: &prazo}
	base := dia(2024, time.January, 1)

	c.CalcularDataLimite(&base, dia(2026, time.August, 29))

	require.NotNil(t, c.DataLimite)
	assert.Equal(t, dia(2024, time.March, 31), *c.DataLimite, "2024-01-01 + 90 dias = 2024-03-31")
}

func TestCalcularDataLimite_SemDataBaseUsaHoje(t *testing.T) {
	prazo := 10
	c := entity.Condicionante{PrazoDias: &prazo}
	hoje := dia(2025, time.June, 15)

	c.CalcularDataLimite(nil, hoje)

	require.NotNil(t, c.DataLimite)
	assert.Equal(t, dia(2025, time.June, 25), *c.DataLimite)
}

func TestCalcularDataLimite_SemPrazoNaoAltera(t *testing.T) {
	limite := dia(2025, time.December, 1)
	c := entity.Condicionante{DataLimite: &limite}

	c.CalcularDataLimite(nil, dia(2025, time.June, 15))

	require.NotNil(t, c.DataLimite)
	assert.Equal(t, limite, *c.DataLimite)
}

func TestDiasParaVencimento_Condicionante(t *testing.T) {
	hoje := dia(2025, time.March, 1)

	limite := dia(2025, time.March, 31)
	c := entity.Condicionante{DataLimite: &limite}
	d := c.DiasParaVencimento(hoje)
	require.NotNil(t, d)
	assert.Equal(t, 30, *d)

	// Data limite no passado: valor negativo (condicionante vencida).
	atras := dia(2025, time.February, 24)
	c = entity.Condicionante{DataLimite: &atras}
	d = c.DiasParaVencimento(hoje)
	require.NotNil(t, d)
	assert.Equal(t, -5, *d)

	// Sem data limite: nil.
	c = entity.Condicionante{}
	assert.Nil(t, c.DiasParaVencimento(hoje))
}

func TestDiasParaVencimento_Licenca(t *testing.T) {
	l := entity.Licenca{DataVencimento: dia(2025, time.March, 31)}
	assert.Equal(t, 30, l.DiasParaVencimento(dia(2025, time.March, 1)))
	assert.Equal(t, 0, l.DiasParaVencimento(dia(2025, time.March, 31)))
	assert.Equal(t, -1, l.DiasParaVencimento(dia(2025, time.April, 1)))
}
