package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/compcleared/compcleared-api/internal/application/auth"
	"github.com/compcleared/compcleared-api/internal/application/billing"
	"github.com/compcleared/compcleared-api/internal/application/report"
	"github.com/compcleared/compcleared-api/internal/application/usecase"
	"github.com/compcleared/compcleared-api/pkg/config"
	"github.com/compcleared/compcleared-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CheckoutUC   *billing.CheckoutUseCase
	Verifier     billing.WebhookVerifier
	IncidentUC   *usecase.IncidentUseCase
	TrainingUC   *usecase.TrainingUseCase
	StatsUC      *usecase.StatsUseCase
	ReportUC     *report.ReportUseCase
	Subscription *usecase.SubscriptionService
	SessionCfg   config.SessionConfig
	SecureCookie bool
	Logger       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (signup/login públicos, cookie de sesión en la respuesta)
	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionCfg, deps.SecureCookie)
	api.Post("/signup", authHandler.Signup)
	api.Post("/login", authHandler.Login)

	// Billing (público: checkout ocurre antes del signup; el webhook lo firma el procesador)
	billingHandler := NewBillingHandler(deps.CheckoutUC, deps.Verifier, deps.Logger)
	api.Post("/create-checkout-session", billingHandler.CreateCheckout)
	api.Get("/verify-session", billingHandler.VerifySession)
	api.Post("/webhook", billingHandler.Webhook)

	// Sesión requerida pero sin gating de suscripción: el frontend necesita
	// /api/me para decidir si mandar al usuario a billing.
	authenticated := api.Group("/", RequireSession(deps.SessionCfg.Secret))
	authenticated.Get("/me", authHandler.Me)
	authenticated.Post("/logout", authHandler.Logout)

	// Rutas de cumplimiento: sesión + suscripción activa.
	protected := authenticated.Group("/", RequireActiveSubscription(deps.Subscription))

	incidentHandler := NewIncidentHandler(deps.IncidentUC)
	protected.Post("/incidents", incidentHandler.Create)
	protected.Get("/incidents", incidentHandler.List)
	protected.Get("/incidents/:id", incidentHandler.GetByID)

	trainingHandler := NewTrainingHandler(deps.TrainingUC)
	protected.Post("/training", trainingHandler.Create)
	protected.Get("/training", trainingHandler.List)

	statsHandler := NewStatsHandler(deps.StatsUC)
	protected.Get("/stats", statsHandler.Get)

	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/report/pdf", reportHandler.IncidentLog)
	protected.Get("/report/plan", reportHandler.WrittenPlan)
}
