package entity

import "time"

// Empresa representa a organização regulada, detentora das licenças ambientais.
// O CNPJ é armazenado normalizado (apenas dígitos) e é único.
type Empresa struct {
	ID          string
	RazaoSocial string
	CNPJ        string
	Email       string
	Endereco    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
