package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ecogestor/licenciamento-api/internal/application/dto"
	"github.com/ecogestor/licenciamento-api/internal/domain"
)

// erro responde o envelope {"erro": msg} com o status dado.
func erro(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Erro: msg})
}

// erroDominio traduz erros de domínio para status e mensagem da API.
// Erros desconhecidos viram 500 genérico.
func erroDominio(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrCNPJInvalido):
		return erro(c, fiber.StatusBadRequest, "CNPJ inválido")
	case errors.Is(err, domain.ErrCNPJDuplicado):
		return erro(c, fiber.StatusBadRequest, "CNPJ já cadastrado")
	case errors.Is(err, domain.ErrDataInvalida):
		return erro(c, fiber.StatusBadRequest, "Formato de data inválido. Use YYYY-MM-DD")
	case errors.Is(err, domain.ErrEmpresaComLicencas):
		return erro(c, fiber.StatusBadRequest, "Não é possível deletar empresa com licenças associadas")
	case errors.Is(err, domain.ErrArquivoNaoPermitido):
		return erro(c, fiber.StatusBadRequest, "Tipo de arquivo não permitido")
	case errors.Is(err, domain.ErrEmailJaRegistrado):
		return erro(c, fiber.StatusBadRequest, "Este email já está registrado")
	case errors.Is(err, domain.ErrCredenciaisInvalidas):
		return erro(c, fiber.StatusUnauthorized, "Credenciais inválidas")
	default:
		return erro(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}
}
