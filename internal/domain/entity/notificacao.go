package entity

import "time"

// Tipos e status de notificação.
const (
	NotificacaoEmail    = "email"
	NotificacaoCalendar = "calendar"

	NotificacaoPendente = "pendente"
	NotificacaoEnviada  = "enviada"
	NotificacaoErro     = "erro"
)

// Notificacao registra uma tentativa de alerta/sincronização sobre o prazo
// de uma condicionante. Existe no máximo uma notificação tipo calendar por
// condicionante; sincronizações seguintes a atualizam pelo GoogleEventID.
type Notificacao struct {
	ID              string
	CondicionanteID string
	Tipo            string // ver NotificacaoEmail / NotificacaoCalendar
	DataEnvio       *time.Time
	Status          string
	GoogleEventID   string // vazio = evento ainda não criado
	Mensagem        string
	CreatedAt       time.Time
}
