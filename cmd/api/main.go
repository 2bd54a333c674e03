package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/compcleared/compcleared-api/internal/application/auth"
	"github.com/compcleared/compcleared-api/internal/application/billing"
	"github.com/compcleared/compcleared-api/internal/application/report"
	"github.com/compcleared/compcleared-api/internal/application/usecase"
	infrapdf "github.com/compcleared/compcleared-api/internal/infrastructure/pdf"
	"github.com/compcleared/compcleared-api/internal/infrastructure/postgres"
	infrastripe "github.com/compcleared/compcleared-api/internal/infrastructure/stripe"
	httpRouter "github.com/compcleared/compcleared-api/internal/interfaces/http"
	"github.com/compcleared/compcleared-api/pkg/config"
	"github.com/compcleared/compcleared-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
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

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	incidentRepo := postgres.NewIncidentRepository(pool)
	trainingRepo := postgres.NewTrainingRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	stripeClient := infrastripe.NewCheckoutClient(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo)
	checkoutUC := billing.NewCheckoutUseCase(companyRepo, stripeClient, cfg.Stripe)
	incidentUC := usecase.NewIncidentUseCase(incidentRepo)
	trainingUC := usecase.NewTrainingUseCase(trainingRepo)
	statsUC := usecase.NewStatsUseCase(statsRepo)
	subscriptionSvc := usecase.NewSubscriptionService(companyRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := report.NewReportUseCase(companyRepo, incidentRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los PDFs pueden tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// CORS con credenciales: la cookie de sesión viaja cross-origin desde el
	// frontend, así que la allow-list es explícita (nunca "*").
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.HTTP.CORSOrigins, ","),
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Stripe-Signature",
		AllowMethods:     "GET, POST, OPTIONS",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CompCleared API",
	}))

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CheckoutUC:   checkoutUC,
		Verifier:     stripeClient,
		IncidentUC:   incidentUC,
		TrainingUC:   trainingUC,
		StatsUC:      statsUC,
		ReportUC:     reportUC,
		Subscription: subscriptionSvc,
		SessionCfg:   cfg.Session,
		SecureCookie: cfg.App.Env == "production",
		Logger:       log,
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
