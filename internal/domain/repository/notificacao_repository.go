package repository

import "github.com/ecogestor/licenciamento-api/internal/domain/entity"

// NotificacaoRepository define o porto de persistência para Notificacao.
type NotificacaoRepository interface {
	Create(n *entity.Notificacao) error
	Update(n *entity.Notificacao) error
	Delete(id string) error
	// GetCalendarByCondicionante devolve a notificação tipo calendar da
	// condicionante, ou (nil, nil) se ainda não existe.
	GetCalendarByCondicionante(condicionanteID string) (*entity.Notificacao, error)
	// CountCalendarEnviadas conta notificações calendar enviadas com event id.
	CountCalendarEnviadas() (int, error)
	// UltimasSincronizacoes devolve as notificações calendar enviadas mais
	// recentes, por data de envio descendente.
	UltimasSincronizacoes(limit int) ([]*entity.Notificacao, error)
}
