package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecogestor/licenciamento-api/internal/application/usecase"
)

// DashboardHandler trata as requisições do resumo gerencial.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Resumo godoc
// @Summary      Resumo gerencial: totais, alertas e próximas ações
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.ResumoResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/resumo [get]
func (h *DashboardHandler) Resumo(c *fiber.Ctx) error {
	out, err := h.uc.GetResumo(c.Context())
	if err != nil {
		return erroDominio(c, err)
	}
	return c.JSON(out)
}
