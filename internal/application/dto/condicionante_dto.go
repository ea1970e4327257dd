package dto

// CreateCondicionanteRequest entrada para criar uma condicionante.
// PrazoDias e DataLimite são alternativas: com PrazoDias a data limite é
// derivada da emissão da licença; DataLimite informa a data absoluta.
type CreateCondicionanteRequest struct {
	LicencaID   string `json:"licenca_id"`
	Descricao   string `json:"descricao"`
	PrazoDias   *int   `json:"prazo_dias"`
	DataLimite  string `json:"data_limite"`
	Status      string `json:"status"`
	Responsavel string `json:"responsavel"`
	Observacoes string `json:"observacoes"`
}

// UpdateCondicionanteRequest atualização parcial de condicionante.
type UpdateCondicionanteRequest struct {
	Descricao            *string `json:"descricao"`
	PrazoDias            *int    `json:"prazo_dias"`
	DataLimite           *string `json:"data_limite"`
	Status               *string `json:"status"`
	Responsavel          *string `json:"responsavel"`
	Observacoes          *string `json:"observacoes"`
	DataEnvioCumprimento *string `json:"data_envio_cumprimento"`
}

// CondicionanteResponse projeção externa de uma condicionante.
type CondicionanteResponse struct {
	ID                   string           `json:"id"`
	LicencaID            string           `json:"licenca_id"`
	Descricao            string           `json:"descricao"`
	PrazoDias            *int             `json:"prazo_dias"`
	DataLimite           *string          `json:"data_limite"`
	Status               string           `json:"status"`
	Responsavel          string           `json:"responsavel"`
	Observacoes          string           `json:"observacoes"`
	DataEnvioCumprimento *string          `json:"data_envio_cumprimento"`
	ComprovantePath      string           `json:"comprovante_path"`
	DiasParaVencimento   *int             `json:"dias_para_vencimento"`
	CreatedAt            *string          `json:"created_at"`
	UpdatedAt            *string          `json:"updated_at"`
	Licenca              *LicencaResponse `json:"licenca,omitempty"`
	Empresa              *EmpresaResponse `json:"empresa,omitempty"`
}
