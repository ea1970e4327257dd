package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ecogestor/licenciamento-api/internal/application/agenda"
	"github.com/ecogestor/licenciamento-api/internal/application/auth"
	"github.com/ecogestor/licenciamento-api/internal/application/usecase"
	"github.com/ecogestor/licenciamento-api/internal/infrastructure/calendar"
	"github.com/ecogestor/licenciamento-api/internal/infrastructure/postgres"
	"github.com/ecogestor/licenciamento-api/internal/infrastructure/storage"
	httpRouter "github.com/ecogestor/licenciamento-api/internal/interfaces/http"
	"github.com/ecogestor/licenciamento-api/pkg/config"
	"github.com/ecogestor/licenciamento-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migração do esquema")
	}

	empresaRepo := postgres.NewEmpresaRepository(pool)
	licencaRepo := postgres.NewLicencaRepository(pool)
	condRepo := postgres.NewCondicionanteRepository(pool)
	notifRepo := postgres.NewNotificacaoRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	comprovantes := storage.NewComprovanteStorage(cfg.Upload.Dir)

	var agendaClient agenda.Client
	if cfg.Calendar.Mode == "google" {
		agendaClient = calendar.NewGoogleClient(calendar.GoogleConfig{
			CalendarID:   cfg.Calendar.CalendarID,
			ClientID:     cfg.Calendar.ClientID,
			ClientSecret: cfg.Calendar.ClientSecret,
			RefreshToken: cfg.Calendar.RefreshToken,
		}, log)
	} else {
		agendaClient = calendar.NewSimuladoClient(log)
	}
	log.Info().Str("modo", agendaClient.Modo()).Msg("cliente de calendário selecionado")

	empresaUC := usecase.NewEmpresaUseCase(empresaRepo)
	licencaUC := usecase.NewLicencaUseCase(licencaRepo, empresaRepo, condRepo)
	condUC := usecase.NewCondicionanteUseCase(condRepo, licencaRepo, comprovantes)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)
	syncUC := agenda.NewSyncUseCase(condRepo, notifRepo, txRunner, agendaClient)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:          cfg.JWT.Secret,
		ExpirationHours: cfg.JWT.ExpirationHours,
		Issuer:          cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "EcoGestor API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmpresaUC:       empresaUC,
		LicencaUC:       licencaUC,
		CondicionanteUC: condUC,
		DashboardUC:     dashboardUC,
		SyncUC:          syncUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	// Frontend SPA: assets estáticos com fallback para index.html
	// em rotas que não são da API.
	app.Static("/", cfg.Static.Dir)
	app.Use(func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(cfg.Static.Dir, "index.html"))
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
