package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecogestor/licenciamento-api/internal/application/auth"
	"github.com/ecogestor/licenciamento-api/internal/application/dto"
)

// AuthHandler trata registro, login e consulta de usuários.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Dados do usuário"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "Corpo da requisição não é JSON válido")
	}
	if in.Email == "" || in.Password == "" {
		return erro(c, fiber.StatusBadRequest, "Email e senha são obrigatórios")
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return erroDominio(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Autenticar usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciais"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "Corpo da requisição não é JSON válido")
	}
	// Credenciais ausentes são falha de autenticação, não de validação.
	if in.Email == "" || in.Password == "" {
		return erro(c, fiber.StatusUnauthorized, "Email e senha são obrigatórios")
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return erroDominio(c, err)
	}
	return c.JSON(out)
}

// ListUsers godoc
// @Summary      Listar usuários
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers()
	if err != nil {
		return erroDominio(c, err)
	}
	return c.JSON(out)
}

// GetUser godoc
// @Summary      Obter usuário por ID
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do usuário"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *AuthHandler) GetUser(c *fiber.Ctx) error {
	out, err := h.uc.GetUser(c.Params("id"))
	if err != nil {
		return erroDominio(c, err)
	}
	if out == nil {
		return erro(c, fiber.StatusNotFound, "Usuário não encontrado")
	}
	return c.JSON(out)
}
