package entity

import "time"

// Papéis de usuário.
const (
	RoleAdmin        = "admin"
	RoleGestor       = "gestor"
	RoleVisualizador = "visualizador"
)

// Usuario conta de acesso à aplicação.
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string
	NomeCompleto string
	Role         string // ver constantes Role*
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
