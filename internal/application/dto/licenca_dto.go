package dto

// CreateLicencaRequest entrada para criar uma licença. Datas em YYYY-MM-DD.
type CreateLicencaRequest struct {
	EmpresaID      string `json:"empresa_id"`
	TipoLicenca    string `json:"tipo_licenca"`
	NumeroLicenca  string `json:"numero_licenca"`
	OrgaoEmissor   string `json:"orgao_emissor"`
	DataEmissao    string `json:"data_emissao"`
	DataVencimento string `json:"data_vencimento"`
	Status         string `json:"status"`
	Observacoes    string `json:"observacoes"`
}

// UpdateLicencaRequest atualização parcial de licença.
type UpdateLicencaRequest struct {
	TipoLicenca    *string `json:"tipo_licenca"`
	NumeroLicenca  *string `json:"numero_licenca"`
	OrgaoEmissor   *string `json:"orgao_emissor"`
	DataEmissao    *string `json:"data_emissao"`
	DataVencimento *string `json:"data_vencimento"`
	Status         *string `json:"status"`
	Observacoes    *string `json:"observacoes"`
}

// LicencaResponse projeção externa de uma licença.
// DiasParaVencimento é derivado em toda leitura, nunca armazenado.
type LicencaResponse struct {
	ID                 string                  `json:"id"`
	EmpresaID          string                  `json:"empresa_id"`
	TipoLicenca        string                  `json:"tipo_licenca"`
	NumeroLicenca      string                  `json:"numero_licenca"`
	OrgaoEmissor       string                  `json:"orgao_emissor"`
	DataEmissao        *string                 `json:"data_emissao"`
	DataVencimento     *string                 `json:"data_vencimento"`
	Status             string                  `json:"status"`
	Observacoes        string                  `json:"observacoes"`
	DiasParaVencimento *int                    `json:"dias_para_vencimento"`
	CreatedAt          *string                 `json:"created_at"`
	UpdatedAt          *string                 `json:"updated_at"`
	Empresa            *EmpresaResponse        `json:"empresa,omitempty"`
	Condicionantes     []CondicionanteResponse `json:"condicionantes,omitempty"`
}
