package dto

// RegisterRequest entrada de registro de usuário.
type RegisterRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	NomeCompleto string `json:"nome_completo"`
	Role         string `json:"role"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse projeção de usuário (sem dados sensíveis).
type UserResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	NomeCompleto string  `json:"nome_completo"`
	Role         string  `json:"role"`
	CreatedAt    *string `json:"created_at"`
	UpdatedAt    *string `json:"updated_at"`
}

// LoginResponse token JWT mais o usuário autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
