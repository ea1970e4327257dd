package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ecogestor/licenciamento-api/internal/application/agenda"
	"github.com/ecogestor/licenciamento-api/internal/application/dto"
	"github.com/ecogestor/licenciamento-api/internal/domain"
)

// CalendarHandler trata as requisições de sincronização com o calendário.
type CalendarHandler struct {
	uc *agenda.SyncUseCase
}

// NewCalendarHandler constrói o handler.
func NewCalendarHandler(uc *agenda.SyncUseCase) *CalendarHandler {
	return &CalendarHandler{uc: uc}
}

// SyncCondicionante godoc
// @Summary      Sincronizar uma condicionante com o Google Calendar
// @Tags         calendar
// @Produce      json
// @Param        id   path  string  true  "ID da condicionante"
// @Success      200  {object}  dto.SyncResponse  "Evento atualizado"
// @Success      201  {object}  dto.SyncResponse  "Evento criado"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/calendar/sync-condicionante/{id} [post]
func (h *CalendarHandler) SyncCondicionante(c *fiber.Ctx) error {
	out, err := h.uc.SincronizarCondicionante(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return erro(c, fiber.StatusNotFound, "Condicionante não encontrada")
		}
		return erroDominio(c, err)
	}
	status := fiber.StatusOK
	if out.Criado {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(out)
}

// SyncAll godoc
// @Summary      Sincronizar todas as condicionantes pendentes com data limite
// @Tags         calendar
// @Produce      json
// @Success      200  {object}  dto.SyncAllResponse
// @Router       /api/calendar/sync-all [post]
func (h *CalendarHandler) SyncAll(c *fiber.Ctx) error {
	out, err := h.uc.SincronizarTodas(c.Context())
	if err != nil {
		return erroDominio(c, err)
	}
	return c.JSON(out)
}

// RemoveCondicionante godoc
// @Summary      Remover o evento de calendário de uma condicionante
// @Tags         calendar
// @Produce      json
// @Param        id   path  string  true  "ID da condicionante"
// @Success      200  {object}  dto.MensagemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/calendar/remove-condicionante/{id} [delete]
func (h *CalendarHandler) RemoveCondicionante(c *fiber.Ctx) error {
	if err := h.uc.RemoverEvento(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return erro(c, fiber.StatusNotFound, "Evento não encontrado no Google Calendar")
		}
		return erroDominio(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Evento removido do Google Calendar"})
}

// Status godoc
// @Summary      Status da sincronização com o Google Calendar
// @Tags         calendar
// @Produce      json
// @Success      200  {object}  dto.CalendarStatusResponse
// @Router       /api/calendar/status [get]
func (h *CalendarHandler) Status(c *fiber.Ctx) error {
	out, err := h.uc.Status(c.Context())
	if err != nil {
		return erroDominio(c, err)
	}
	return c.JSON(out)
}

// Config godoc
// @Summary      Configuração da integração com o Google Calendar
// @Tags         calendar
// @Produce      json
// @Success      200  {object}  dto.CalendarConfigResponse
// @Router       /api/calendar/config [get]
func (h *CalendarHandler) Config(c *fiber.Ctx) error {
	return c.JSON(h.uc.Config())
}
