// Package calendar fornece os clientes de calendário externo: o cliente
// HTTP real do Google Calendar e o simulado para desenvolvimento/offline.
package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/ecogestor/licenciamento-api/internal/application/agenda"
	"github.com/ecogestor/licenciamento-api/internal/domain/entity"
	"github.com/ecogestor/licenciamento-api/pkg/logger"
)

// Garante que SimuladoClient implementa agenda.Client.
var _ agenda.Client = (*SimuladoClient)(nil)

// SimuladoClient simula as operações de calendário sem rede. Sempre tem
// sucesso; os eventos existem apenas nos logs e nas notificações gravadas.
type SimuladoClient struct {
	log *logger.Logger
}

// NewSimuladoClient constrói o cliente simulado.
func NewSimuladoClient(log *logger.Logger) *SimuladoClient {
	return &SimuladoClient{log: log}
}

// CriarEvento gera um id sintético e registra a criação simulada.
func (c *SimuladoClient) CriarEvento(_ context.Context, cond *entity.Condicionante, empresaNome string) (string, error) {
	eventID := fmt.Sprintf("sim_%s_%d", cond.ID, time.Now().Unix())
	c.log.Info().
		Str("event_id", eventID).
		Str("condicionante_id", cond.ID).
		Str("empresa", empresaNome).
		Msg("evento de calendário simulado criado")
	return eventID, nil
}

// AtualizarEvento registra a atualização simulada.
func (c *SimuladoClient) AtualizarEvento(_ context.Context, eventID string, cond *entity.Condicionante, empresaNome string) error {
	c.log.Info().
		Str("event_id", eventID).
		Str("condicionante_id", cond.ID).
		Str("empresa", empresaNome).
		Msg("evento de calendário simulado atualizado")
	return nil
}

// RemoverEvento registra a remoção simulada.
func (c *SimuladoClient) RemoverEvento(_ context.Context, eventID string) error {
	c.log.Info().
		Str("event_id", eventID).
		Msg("evento de calendário simulado removido")
	return nil
}

// Modo identifica a implementação.
func (c *SimuladoClient) Modo() string {
	return "simulado"
}
