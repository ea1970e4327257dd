package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ecogestor/licenciamento-api/internal/application/dto"
	"github.com/ecogestor/licenciamento-api/internal/application/usecase"
	"github.com/ecogestor/licenciamento-api/internal/domain"
	"github.com/ecogestor/licenciamento-api/internal/domain/repository"
)

// LicencaHandler trata as requisições HTTP para Licenca.
type LicencaHandler struct {
	uc *usecase.LicencaUseCase
}

// NewLicencaHandler constrói o handler.
func NewLicencaHandler(uc *usecase.LicencaUseCase) *LicencaHandler {
	return &LicencaHandler{uc: uc}
}

// List godoc
// @Summary      Listar licenças
// @Tags         licencas
// @Produce      json
// @Param        empresa_id  query  string  false  "Filtra por empresa"
// @Param        status      query  string  false  "Filtra por status"
// @Success      200  {array}  dto.LicencaResponse
// @Router       /api/licencas [get]
func (h *LicencaHandler) List(c *fiber.Ctx) error {
	filtro := repository.LicencaFiltro{
		EmpresaID: c.Query("empresa_id"),
		Status:    c.Query("status"),
	}
	out, err := h.uc.List(filtro)
	if err != nil {
		return erroDominio(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Cadastrar licença
// @Tags         licencas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLicencaRequest  true  "Dados da licença"
// @Success      201   {object}  dto.LicencaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/licencas [post]
func (h *LicencaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLicencaRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "Corpo da requisição não é JSON válido")
	}
	if in.EmpresaID == "" {
		return erro(c, fiber.StatusBadRequest, "ID da empresa é obrigatório")
	}
	if in.TipoLicenca == "" {
		return erro(c, fiber.StatusBadRequest, "Tipo de licença é obrigatório")
	}
	if in.DataVencimento == "" {
		return erro(c, fiber.StatusBadRequest, "Data de vencimento é obrigatória")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return erro(c, fiber.StatusNotFound, "Empresa não encontrada")
		}
		return erroDominio(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter licença por ID (com condicionantes)
// @Tags         licencas
// @Produce      json
// @Param        id   path  string  true  "ID da licença"
// @Success      200  {object}  dto.LicencaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/licencas/{id} [get]
func (h *LicencaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return erroDominio(c, err)
	}
	if out == nil {
		return erro(c, fiber.StatusNotFound, "Licença não encontrada")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar licença (parcial)
// @Tags         licencas
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da licença"
// @Param        body  body  dto.UpdateLicencaRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.LicencaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/licencas/{id} [put]
func (h *LicencaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLicencaRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "Corpo da requisição não é JSON válido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return erro(c, fiber.StatusNotFound, "Licença não encontrada")
		}
		return erroDominio(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Deletar licença
// @Tags         licencas
// @Produce      json
// @Param        id   path  string  true  "ID da licença"
// @Success      200  {object}  dto.MensagemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/licencas/{id} [delete]
func (h *LicencaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return erro(c, fiber.StatusNotFound, "Licença não encontrada")
		}
		return erroDominio(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Licença deletada com sucesso"})
}

// Vencimento godoc
// @Summary      Licenças ativas vencendo nos próximos dias
// @Tags         licencas
// @Produce      json
// @Param        dias  query  int  false  "Janela em dias"  default(30)
// @Success      200   {array}  dto.LicencaResponse
// @Router       /api/licencas/vencimento [get]
func (h *LicencaHandler) Vencimento(c *fiber.Ctx) error {
	dias := c.QueryInt("dias", usecase.DiasVencimentoPadrao)
	out, err := h.uc.ListVencimento(dias)
	if err != nil {
		return erroDominio(c, err)
	}
	return c.JSON(out)
}

// ListCondicionantes godoc
// @Summary      Listar condicionantes de uma licença
// @Tags         licencas
// @Produce      json
// @Param        id   path  string  true  "ID da licença"
// @Success      200  {array}  dto.CondicionanteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/licencas/{id}/condicionantes [get]
func (h *LicencaHandler) ListCondicionantes(c *fiber.Ctx) error {
	out, err := h.uc.ListCondicionantes(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return erro(c, fiber.StatusNotFound, "Licença não encontrada")
		}
		return erroDominio(c, err)
	}
	return c.JSON(out)
}
