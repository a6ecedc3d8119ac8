package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/supervisor-bit/HairBook-New/internal/application/auth"
	"github.com/supervisor-bit/HairBook-New/internal/application/ledger"
	"github.com/supervisor-bit/HairBook-New/internal/application/usecase"
	"github.com/supervisor-bit/HairBook-New/internal/infrastructure/backup"
	infrapdf "github.com/supervisor-bit/HairBook-New/internal/infrastructure/pdf"
	"github.com/supervisor-bit/HairBook-New/internal/infrastructure/postgres"
	httpRouter "github.com/supervisor-bit/HairBook-New/internal/interfaces/http"
	"github.com/supervisor-bit/HairBook-New/pkg/config"
	"github.com/supervisor-bit/HairBook-New/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.ApplySchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}

	materialRepo := postgres.NewMaterialRepository(pool)
	materialGroupRepo := postgres.NewMaterialGroupRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	visitRepo := postgres.NewVisitRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	clientGroupRepo := postgres.NewClientGroupRepository(pool)
	homeProductRepo := postgres.NewHomeProductRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)

	txRunner := postgres.NewTxRunner(pool)
	coordinator := ledger.NewCoordinator(txRunner, orderRepo, visitRepo)

	pdfGenerator := infrapdf.NewMarotoOrderPDFGenerator()
	materialUC := usecase.NewMaterialUseCase(materialRepo, materialGroupRepo, movementRepo)
	clientUC := usecase.NewClientUseCase(clientRepo, clientGroupRepo, homeProductRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, materialRepo, settingsRepo, pdfGenerator)
	visitUC := usecase.NewVisitUseCase(visitRepo, clientRepo, serviceRepo)
	catalogUC := usecase.NewCatalogUseCase(serviceRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	historyUC := usecase.NewHistoryUseCase(movementRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	exporter := backup.NewXMLExporter(
		materialRepo, materialGroupRepo, movementRepo,
		clientRepo, clientGroupRepo, homeProductRepo,
		visitRepo, orderRepo, serviceRepo, settingsRepo,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "HairBook API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MaterialUC:  materialUC,
		ClientUC:    clientUC,
		OrderUC:     orderUC,
		VisitUC:     visitUC,
		CatalogUC:   catalogUC,
		SettingsUC:  settingsUC,
		HistoryUC:   historyUC,
		Coordinator: coordinator,
		AuthUC:      authUC,
		Exporter:    exporter,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
