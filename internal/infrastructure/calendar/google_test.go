package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecogestor/licenciamento-api/internal/domain/entity"
)

func TestMontarEventoMeioDiaNoFusoDoCalendario(t *testing.T) {
	limite := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	cond := &entity.Condicionante{
		ID:         "cond-1",
		Descricao:  "Entregar relatório de monitoramento",
		DataLimite: &limite,
	}

	ev := montarEvento(cond, "Usina Boa Vista S.A.")

	assert.Equal(t, "Condicionante: Usina Boa Vista S.A.", ev.Summary)
	assert.Equal(t, "Entregar relatório de monitoramento", ev.Description)

	// Meio-dia no fuso do calendário, independente do fuso do servidor.
	assert.Equal(t, "2026-09-15T12:00:00-03:00", ev.Start.DateTime)
	assert.Equal(t, "2026-09-15T13:00:00-03:00", ev.End.DateTime)
	assert.Equal(t, nomeFusoEvento, ev.Start.TimeZone)
	assert.Equal(t, nomeFusoEvento, ev.End.TimeZone)
}

func TestMontarEventoLembretes(t *testing.T) {
	limite := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	ev := montarEvento(&entity.Condicionante{ID: "cond-1", DataLimite: &limite}, "Empresa")

	assert.False(t, ev.Reminders.UseDefault)
	require.Len(t, ev.Reminders.Overrides, 3)
	assert.Equal(t, eventoLembrete{Method: "email", Minutes: lembrete7Dias}, ev.Reminders.Overrides[0])
	assert.Equal(t, eventoLembrete{Method: "email", Minutes: lembrete3Dias}, ev.Reminders.Overrides[1])
	assert.Equal(t, eventoLembrete{Method: "popup", Minutes: lembrete1Dia}, ev.Reminders.Overrides[2])
}
