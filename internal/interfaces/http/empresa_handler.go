package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ecogestor/licenciamento-api/internal/application/dto"
	"github.com/ecogestor/licenciamento-api/internal/application/usecase"
	"github.com/ecogestor/licenciamento-api/internal/domain"
)

// EmpresaHandler trata as requisições HTTP para Empresa.
type EmpresaHandler struct {
	uc        *usecase.EmpresaUseCase
	licencaUC *usecase.LicencaUseCase
}

// NewEmpresaHandler constrói o handler.
func NewEmpresaHandler(uc *usecase.EmpresaUseCase, licencaUC *usecase.LicencaUseCase) *EmpresaHandler {
	return &EmpresaHandler{uc: uc, licencaUC: licencaUC}
}

// List godoc
// @Summary      Listar empresas
// @Tags         empresas
// @Produce      json
// @Success      200  {array}  dto.EmpresaResponse
// @Router       /api/empresas [get]
func (h *EmpresaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return erroDominio(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Cadastrar empresa
// @Tags         empresas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmpresaRequest  true  "Dados da empresa"
// @Success      201   {object}  dto.EmpresaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/empresas [post]
func (h *EmpresaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "Corpo da requisição não é JSON válido")
	}
	if in.RazaoSocial == "" {
		return erro(c, fiber.StatusBadRequest, "Razão social é obrigatória")
	}
	if in.CNPJ == "" {
		return erro(c, fiber.StatusBadRequest, "CNPJ é obrigatório")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return erroDominio(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter empresa por ID
// @Tags         empresas
// @Produce      json
// @Param        id   path  string  true  "ID da empresa"
// @Success      200  {object}  dto.EmpresaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresas/{id} [get]
func (h *EmpresaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return erroDominio(c, err)
	}
	if out == nil {
		return erro(c, fiber.StatusNotFound, "Empresa não encontrada")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar empresa (parcial)
// @Tags         empresas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da empresa"
// @Param        body  body  dto.UpdateEmpresaRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.EmpresaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/empresas/{id} [put]
func (h *EmpresaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "Corpo da requisição não é JSON válido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return erro(c, fiber.StatusNotFound, "Empresa não encontrada")
		}
		return erroDominio(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Deletar empresa
// @Tags         empresas
// @Produce      json
// @Param        id   path  string  true  "ID da empresa"
// @Success      200  {object}  dto.MensagemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresas/{id} [delete]
func (h *EmpresaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return erro(c, fiber.StatusNotFound, "Empresa não encontrada")
		}
		return erroDominio(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Empresa deletada com sucesso"})
}

// ListLicencas godoc
// @Summary      Listar licenças de uma empresa
// @Tags         empresas
// @Produce      json
// @Param        id   path  string  true  "ID da empresa"
// @Success      200  {array}  dto.LicencaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresas/{id}/licencas [get]
func (h *EmpresaHandler) ListLicencas(c *fiber.Ctx) error {
	out, err := h.licencaUC.ListByEmpresa(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return erro(c, fiber.StatusNotFound, "Empresa não encontrada")
		}
		return erroDominio(c, err)
	}
	return c.JSON(out)
}
