package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecogestor/licenciamento-api/internal/application/agenda"
	"github.com/ecogestor/licenciamento-api/internal/application/auth"
	"github.com/ecogestor/licenciamento-api/internal/application/usecase"
	"github.com/ecogestor/licenciamento-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	EmpresaUC       *usecase.EmpresaUseCase
	LicencaUC       *usecase.LicencaUseCase
	CondicionanteUC *usecase.CondicionanteUseCase
	DashboardUC     *usecase.DashboardUseCase
	SyncUC          *agenda.SyncUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	// Empresas
	empresas := api.Group("/empresas")
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC, deps.LicencaUC)
	empresas.Get("/", empresaHandler.List)
	empresas.Post("/", empresaHandler.Create)
	empresas.Get("/:id", empresaHandler.GetByID)
	empresas.Put("/:id", empresaHandler.Update)
	empresas.Delete("/:id", empresaHandler.Delete)
	empresas.Get("/:id/licencas", empresaHandler.ListLicencas)

	// Licenças (/vencimento antes de /:id para não colidir)
	licencas := api.Group("/licencas")
	licencaHandler := NewLicencaHandler(deps.LicencaUC)
	licencas.Get("/", licencaHandler.List)
	licencas.Post("/", licencaHandler.Create)
	licencas.Get("/vencimento", licencaHandler.Vencimento)
	licencas.Get("/:id", licencaHandler.GetByID)
	licencas.Put("/:id", licencaHandler.Update)
	licencas.Delete("/:id", licencaHandler.Delete)
	licencas.Get("/:id/condicionantes", licencaHandler.ListCondicionantes)

	// Condicionantes (/vencimento antes de /:id para não colidir)
	condicionantes := api.Group("/condicionantes")
	condHandler := NewCondicionanteHandler(deps.CondicionanteUC)
	condicionantes.Get("/", condHandler.List)
	condicionantes.Post("/", condHandler.Create)
	condicionantes.Get("/vencimento", condHandler.Vencimento)
	condicionantes.Get("/:id", condHandler.GetByID)
	condicionantes.Put("/:id", condHandler.Update)
	condicionantes.Delete("/:id", condHandler.Delete)
	condicionantes.Post("/:id/marcar-cumprida", condHandler.MarcarCumprida)
	condicionantes.Post("/:id/marcar-cumprida-rapido", condHandler.MarcarCumpridaRapido)
	condicionantes.Post("/:id/marcar-pendente", condHandler.MarcarPendente)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/resumo", dashboardHandler.Resumo)

	// Google Calendar
	calendar := api.Group("/calendar")
	calendarHandler := NewCalendarHandler(deps.SyncUC)
	calendar.Post("/sync-condicionante/:id", calendarHandler.SyncCondicionante)
	calendar.Post("/sync-all", calendarHandler.SyncAll)
	calendar.Delete("/remove-condicionante/:id", calendarHandler.RemoveCondicionante)
	calendar.Get("/status", calendarHandler.Status)
	calendar.Get("/config", calendarHandler.Config)

	// Usuários (requer Bearer Token de admin)
	users := api.Group("/users", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))
	users.Get("/", authHandler.ListUsers)
	users.Get("/:id", authHandler.GetUser)
}
