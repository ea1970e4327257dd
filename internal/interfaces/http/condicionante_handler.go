package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ecogestor/licenciamento-api/internal/application/dto"
	"github.com/ecogestor/licenciamento-api/internal/application/usecase"
	"github.com/ecogestor/licenciamento-api/internal/domain"
	"github.com/ecogestor/licenciamento-api/internal/domain/repository"
)

// CondicionanteHandler trata as requisições HTTP para Condicionante.
type CondicionanteHandler struct {
	uc *usecase.CondicionanteUseCase
}

// NewCondicionanteHandler constrói o handler.
func NewCondicionanteHandler(uc *usecase.CondicionanteUseCase) *CondicionanteHandler {
	return &CondicionanteHandler{uc: uc}
}

// List godoc
// @Summary      Listar condicionantes (com licença e empresa)
// @Tags         condicionantes
// @Produce      json
// @Param        licenca_id  query  string  false  "Filtra por licença"
// @Param        status      query  string  false  "Filtra por status"
// @Success      200  {array}  dto.CondicionanteResponse
// @Router       /api/condicionantes [get]
func (h *CondicionanteHandler) List(c *fiber.Ctx) error {
	filtro := repository.CondicionanteFiltro{
		LicencaID: c.Query("licenca_id"),
		Status:    c.Query("status"),
	}
	out, err := h.uc.List(filtro)
	if err != nil {
		return erroDominio(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Cadastrar condicionante
// @Tags         condicionantes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCondicionanteRequest  true  "Dados da condicionante"
// @Success      201   {object}  dto.CondicionanteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/condicionantes [post]
func (h *CondicionanteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCondicionanteRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "Corpo da requisição não é JSON válido")
	}
	if in.LicencaID == "" {
		return erro(c, fiber.StatusBadRequest, "ID da licença é obrigatório")
	}
	if in.Descricao == "" {
		return erro(c, fiber.StatusBadRequest, "Descrição é obrigatória")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return erro(c, fiber.StatusNotFound, "Licença não encontrada")
		}
		return erroDominio(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter condicionante por ID (com licença e empresa)
// @Tags         condicionantes
// @Produce      json
// @Param        id   path  string  true  "ID da condicionante"
// @Success      200  {object}  dto.CondicionanteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/condicionantes/{id} [get]
func (h *CondicionanteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return erroDominio(c, err)
	}
	if out == nil {
		return erro(c, fiber.StatusNotFound, "Condicionante não encontrada")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar condicionante (parcial)
// @Tags         condicionantes
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da condicionante"
// @Param        body  body  dto.UpdateCondicionanteRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.CondicionanteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/condicionantes/{id} [put]
func (h *CondicionanteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCondicionanteRequest
	if err := c.BodyParser(&in); err != nil {
		return erro(c, fiber.StatusBadRequest, "Corpo da requisição não é JSON válido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return erro(c, fiber.StatusNotFound, "Condicionante não encontrada")
		}
		if errors.Is(err, domain.ErrDataInvalida) && in.DataEnvioCumprimento != nil {
			return erro(c, fiber.StatusBadRequest, "Formato de data de envio/cumprimento inválido. Use YYYY-MM-DD")
		}
		return erroDominio(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Deletar condicionante
// @Tags         condicionantes
// @Produce      json
// @Param        id   path  string  true  "ID da condicionante"
// @Success      200  {object}  dto.MensagemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/condicionantes/{id} [delete]
func (h *CondicionanteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return erro(c, fiber.StatusNotFound, "Condicionante não encontrada")
		}
		return erroDominio(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Condicionante deletada com sucesso"})
}

// Vencimento godoc
// @Summary      Condicionantes pendentes vencendo nos próximos dias
// @Tags         condicionantes
// @Produce      json
// @Param        dias  query  int  false  "Janela em dias"  default(30)
// @Success      200   {array}  dto.CondicionanteResponse
// @Router       /api/condicionantes/vencimento [get]
func (h *CondicionanteHandler) Vencimento(c *fiber.Ctx) error {
	dias := c.QueryInt("dias", usecase.DiasVencimentoPadrao)
	out, err := h.uc.ListVencimento(dias)
	if err != nil {
		return erroDominio(c, err)
	}
	return c.JSON(out)
}

// MarcarCumprida godoc
// @Summary      Marcar condicionante como cumprida (comprovante opcional)
// @Tags         condicionantes
// @Accept       mpfd
// @Produce      json
// @Param        id           path      string  true   "ID da condicionante"
// @Param        comprovante  formData  file    false  "Comprovante (png, jpg, jpeg, gif, pdf)"
// @Success      200  {object}  dto.CondicionanteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/condicionantes/{id}/marcar-cumprida [post]
func (h *CondicionanteHandler) MarcarCumprida(c *fiber.Ctx) error {
	var arquivo *usecase.Comprovante
	fh, err := c.FormFile("comprovante")
	if err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return erro(c, fiber.StatusInternalServerError, "Erro interno do servidor")
		}
		defer f.Close()
		arquivo = &usecase.Comprovante{Nome: fh.Filename, Conteudo: f}
	}
	return h.marcarCumprida(c, arquivo)
}

// MarcarCumpridaRapido godoc
// @Summary      Marcar condicionante como cumprida sem comprovante
// @Tags         condicionantes
// @Produce      json
// @Param        id   path  string  true  "ID da condicionante"
// @Success      200  {object}  dto.CondicionanteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/condicionantes/{id}/marcar-cumprida-rapido [post]
func (h *CondicionanteHandler) MarcarCumpridaRapido(c *fiber.Ctx) error {
	return h.marcarCumprida(c, nil)
}

func (h *CondicionanteHandler) marcarCumprida(c *fiber.Ctx, arquivo *usecase.Comprovante) error {
	out, err := h.uc.MarcarCumprida(c.Params("id"), arquivo)
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return erro(c, fiber.StatusNotFound, "Condicionante não encontrada")
		}
		return erroDominio(c, err)
	}
	return c.JSON(out)
}

// MarcarPendente godoc
// @Summary      Reverter condicionante para pendente
// @Tags         condicionantes
// @Produce      json
// @Param        id   path  string  true  "ID da condicionante"
// @Success      200  {object}  dto.CondicionanteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/condicionantes/{id}/marcar-pendente [post]
func (h *CondicionanteHandler) MarcarPendente(c *fiber.Ctx) error {
	out, err := h.uc.MarcarPendente(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return erro(c, fiber.StatusNotFound, "Condicionante não encontrada")
		}
		return erroDominio(c, err)
	}
	return c.JSON(out)
}
