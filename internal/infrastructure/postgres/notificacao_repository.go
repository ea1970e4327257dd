package postgres

import (
	"context"
	"fmt"

	"github.com/ecogestor/licenciamento-api/internal/domain/entity"
	"github.com/ecogestor/licenciamento-api/internal/domain/repository"
)

// Garante que NotificacaoRepo implementa repository.NotificacaoRepository.
var _ repository.NotificacaoRepository = (*NotificacaoRepo)(nil)

// NotificacaoRepo implementação do porto NotificacaoRepository sobre PostgreSQL.
type NotificacaoRepo struct {
	db dbtx
}

// NewNotificacaoRepository constrói o adaptador de persistência para notificações.
func NewNotificacaoRepository(db dbtx) *NotificacaoRepo {
	return &NotificacaoRepo{db: db}
}

const notificacaoCols = `id, condicionante_id, tipo, data_envio, status, google_event_id, mensagem, created_at`

// Create persiste uma nova notificação.
func (r *NotificacaoRepo) Create(n *entity.Notificacao) error {
	query := `
		INSERT INTO notificacoes (id, condicionante_id, tipo, data_envio, status,
			google_event_id, mensagem, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		n.ID, n.CondicionanteID, n.Tipo, n.DataEnvio, n.Status,
		n.GoogleEventID, n.Mensagem, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notificação: %w", err)
	}
	return nil
}

// Update atualiza uma notificação existente.
func (r *NotificacaoRepo) Update(n *entity.Notificacao) error {
	query := `
		UPDATE notificacoes SET data_envio = $2, status = $3, google_event_id = $4, mensagem = $5
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		n.ID, n.DataEnvio, n.Status, n.GoogleEventID, n.Mensagem,
	)
	if err != nil {
		return fmt.Errorf("update notificação: %w", err)
	}
	return nil
}

// Delete remove uma notificação por ID.
func (r *NotificacaoRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM notificacoes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete notificação: %w", err)
	}
	return nil
}

// GetCalendarByCondicionante obtém a notificação calendar da condicionante.
// Devolve (nil, nil) se ainda não houve sincronização.
func (r *NotificacaoRepo) GetCalendarByCondicionante(condicionanteID string) (*entity.Notificacao, error) {
	query := `SELECT ` + notificacaoCols + ` FROM notificacoes
		WHERE condicionante_id = $1 AND tipo = 'calendar'`
	var n entity.Notificacao
	err := r.db.QueryRow(context.Background(), query, condicionanteID).Scan(
		&n.ID, &n.CondicionanteID, &n.Tipo, &n.DataEnvio, &n.Status,
		&n.GoogleEventID, &n.Mensagem, &n.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notificação calendar: %w", err)
	}
	return &n, nil
}

// CountCalendarEnviadas conta notificações calendar enviadas com evento criado.
func (r *NotificacaoRepo) CountCalendarEnviadas() (int, error) {
	var n int
	err := r.db.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM notificacoes
		 WHERE tipo = 'calendar' AND status = 'enviada' AND google_event_id <> ''`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count notificações calendar: %w", err)
	}
	return n, nil
}

// UltimasSincronizacoes devolve as sincronizações mais recentes, descendente.
func (r *NotificacaoRepo) UltimasSincronizacoes(limit int) ([]*entity.Notificacao, error) {
	query := `SELECT ` + notificacaoCols + ` FROM notificacoes
		WHERE tipo = 'calendar' AND status = 'enviada' AND google_event_id <> ''
		ORDER BY data_envio DESC NULLS LAST
		LIMIT $1`
	rows, err := r.db.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list sincronizações: %w", err)
	}
	defer rows.Close()

	var list []*entity.Notificacao
	for rows.Next() {
		var n entity.Notificacao
		if err := rows.Scan(
			&n.ID, &n.CondicionanteID, &n.Tipo, &n.DataEnvio, &n.Status,
			&n.GoogleEventID, &n.Mensagem, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan notificação: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}
