// Package agenda orquestra a sincronização de prazos de condicionantes
// com um calendário externo (Google Calendar).
package agenda

import (
	"context"

	"github.com/ecogestor/licenciamento-api/internal/domain/entity"
	"github.com/ecogestor/licenciamento-api/internal/domain/repository"
)

// Client capacidade de calendário externo. Duas implementações em
// infrastructure/calendar: o cliente HTTP real e o simulado (dev/offline),
// selecionadas por configuração.
type Client interface {
	// CriarEvento cria o lembrete da condicionante e devolve o id externo.
	CriarEvento(ctx context.Context, cond *entity.Condicionante, empresaNome string) (string, error)
	// AtualizarEvento atualiza um lembrete existente pelo id externo.
	AtualizarEvento(ctx context.Context, eventID string, cond *entity.Condicionante, empresaNome string) error
	// RemoverEvento remove o lembrete pelo id externo.
	RemoverEvento(ctx context.Context, eventID string) error
	// Modo identifica a implementação ("simulado" ou "google").
	Modo() string
}

// TxRunner executa escritas de notificações dentro de uma transação:
// tudo da requisição comita ou sofre rollback junto.
type TxRunner interface {
	Run(ctx context.Context, fn func(notifRepo repository.NotificacaoRepository) error) error
}
