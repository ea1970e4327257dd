package dto

// SyncResponse resultado da sincronização de uma condicionante.
type SyncResponse struct {
	Mensagem string `json:"mensagem"`
	EventID  string `json:"event_id"`
	// Criado indica se um evento novo foi criado (201) ou atualizado (200).
	Criado bool `json:"-"`
}

// SyncAllResponse resultado da sincronização em lote.
type SyncAllResponse struct {
	Mensagem           string `json:"mensagem"`
	EventosCriados     int    `json:"eventos_criados"`
	EventosAtualizados int    `json:"eventos_atualizados"`
	Erros              int    `json:"erros"`
	TotalProcessados   int    `json:"total_processados"`
}

// SincronizacaoInfo última sincronização registrada.
type SincronizacaoInfo struct {
	CondicionanteID string  `json:"condicionante_id"`
	DataEnvio       *string `json:"data_envio"`
	EventID         string  `json:"event_id"`
	Mensagem        string  `json:"mensagem"`
}

// CalendarStatusResponse status da sincronização com o Google Calendar.
type CalendarStatusResponse struct {
	TotalCondicionantes    int                 `json:"total_condicionantes"`
	Sincronizadas          int                 `json:"sincronizadas"`
	NaoSincronizadas       int                 `json:"nao_sincronizadas"`
	PercentualSincronizado float64             `json:"percentual_sincronizado"`
	UltimasSincronizacoes  []SincronizacaoInfo `json:"ultimas_sincronizacoes"`
}

// CalendarConfigResponse informações sobre a configuração da integração.
type CalendarConfigResponse struct {
	Status          string   `json:"status"`
	Modo            string   `json:"modo"`
	Observacao      string   `json:"observacao"`
	Funcionalidades []string `json:"funcionalidades"`
}
