package dto

// CreateEmpresaRequest entrada para criar uma empresa.
type CreateEmpresaRequest struct {
	RazaoSocial string `json:"razao_social"`
	CNPJ        string `json:"cnpj"`
	Email       string `json:"email"`
	Endereco    string `json:"endereco"`
}

// UpdateEmpresaRequest entrada para atualização parcial: apenas os campos
// presentes no corpo são aplicados (chave ausente nunca toca o campo).
type UpdateEmpresaRequest struct {
	RazaoSocial *string `json:"razao_social"`
	CNPJ        *string `json:"cnpj"`
	Email       *string `json:"email"`
	Endereco    *string `json:"endereco"`
}

// EmpresaResponse projeção externa de uma empresa.
type EmpresaResponse struct {
	ID          string  `json:"id"`
	RazaoSocial string  `json:"razao_social"`
	CNPJ        string  `json:"cnpj"`
	Email       string  `json:"email"`
	Endereco    string  `json:"endereco"`
	CreatedAt   *string `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
}
