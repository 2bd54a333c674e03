package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compcleared/compcleared-api/internal/application/auth"
	"github.com/compcleared/compcleared-api/internal/application/billing"
	"github.com/compcleared/compcleared-api/internal/application/report"
	"github.com/compcleared/compcleared-api/internal/application/usecase"
	"github.com/compcleared/compcleared-api/internal/domain/entity"
	apphttp "github.com/compcleared/compcleared-api/internal/interfaces/http"
	"github.com/compcleared/compcleared-api/pkg/config"
	"github.com/compcleared/compcleared-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para montar el router completo
// ──────────────────────────────────────────────────────────────────────────────

type routerCompanyRepo struct{}

func (r *routerCompanyRepo) Create(_ context.Context, _ *entity.Company) error { return nil }
func (r *routerCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return &entity.Company{
		ID: id, Name: "Acme Corp", Tier: entity.TierStarter,
		SubscriptionStatus: entity.SubscriptionActive, CreatedAt: time.Now(),
	}, nil
}
func (r *routerCompanyRepo) MarkActive(_ context.Context, _, _, _ string) error { return nil }
func (r *routerCompanyRepo) MarkCanceledBySubscription(_ context.Context, _ string) error {
	return nil
}
func (r *routerCompanyRepo) HasActiveSubscription(_ context.Context, _ string) (bool, error) {
	return true, nil
}

type routerUserRepo struct{}

func (r *routerUserRepo) Create(_ context.Context, _ *entity.User) error { return nil }
func (r *routerUserRepo) GetByID(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}
func (r *routerUserRepo) GetByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}

type routerIncidentRepo struct{}

func (r *routerIncidentRepo) Create(_ context.Context, _ *entity.Incident) error { return nil }
func (r *routerIncidentRepo) GetByID(_ context.Context, _, _ string) (*entity.Incident, error) {
	return nil, nil
}
func (r *routerIncidentRepo) ListByCompany(_ context.Context, _ string) ([]*entity.Incident, error) {
	return nil, nil
}

type routerTrainingRepo struct{}

func (r *routerTrainingRepo) Create(_ context.Context, _ *entity.TrainingRecord) error { return nil }
func (r *routerTrainingRepo) ListByCompany(_ context.Context, _ string) ([]*entity.TrainingRecord, error) {
	return nil, nil
}

type routerStatsRepo struct{}

func (r *routerStatsRepo) CountIncidents(_ context.Context, _ string) (int, error) { return 0, nil }
func (r *routerStatsRepo) CountIncidentsByType(_ context.Context, _ string) ([]entity.ViolenceTypeCount, error) {
	return nil, nil
}
func (r *routerStatsRepo) CountIncidentsSince(_ context.Context, _, _ string) (int, error) {
	return 0, nil
}

type routerProvider struct{}

func (p *routerProvider) CreateCheckoutSession(_ context.Context, _ billing.CreateSessionInput) (*billing.CheckoutSession, error) {
	return &billing.CheckoutSession{ID: "cs_test", URL: "https://checkout.test/cs_test"}, nil
}
func (p *routerProvider) GetCheckoutSession(_ context.Context, id string) (*billing.CheckoutSession, error) {
	return &billing.CheckoutSession{ID: id, PaymentStatus: "paid"}, nil
}

type routerVerifier struct{}

func (v *routerVerifier) VerifyAndParse(_ []byte, _ string) (*billing.WebhookEvent, error) {
	return &billing.WebhookEvent{Type: "ping"}, nil
}

type routerPDF struct{}

func (g *routerPDF) GenerateIncidentLog(_ context.Context, _ *entity.Company, _ []*entity.Incident, _ time.Time) ([]byte, error) {
	return []byte("%PDF-1.7 log"), nil
}
func (g *routerPDF) GenerateWrittenPlan(_ context.Context, _ *entity.Company, _ time.Time) ([]byte, error) {
	return []byte("%PDF-1.7 plan"), nil
}

// buildRouterApp monta la aplicación con el router real y dependencias fake.
func buildRouterApp() *fiber.App {
	companyRepo := &routerCompanyRepo{}
	sessionCfg := config.SessionConfig{
		Secret: testSessionSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
	}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       auth.NewAuthUseCase(&routerUserRepo{}, companyRepo),
		CheckoutUC:   billing.NewCheckoutUseCase(companyRepo, &routerProvider{}, config.StripeConfig{}),
		Verifier:     &routerVerifier{},
		IncidentUC:   usecase.NewIncidentUseCase(&routerIncidentRepo{}),
		TrainingUC:   usecase.NewTrainingUseCase(&routerTrainingRepo{}),
		StatsUC:      usecase.NewStatsUseCase(&routerStatsRepo{}),
		ReportUC:     report.NewReportUseCase(companyRepo, &routerIncidentRepo{}, &routerPDF{}),
		Subscription: usecase.NewSubscriptionService(companyRepo),
		SessionCfg:   sessionCfg,
		SecureCookie: false,
		Logger:       logger.New(logger.Config{Env: "production", Level: "error"}),
	})
	return app
}

func routerRequest(t *testing.T, app *fiber.App, method, path, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "cc_session", Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas de reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_ReportPDF_RutaYCabeceras(t *testing.T) {
	app := buildRouterApp()
	resp := routerRequest(t, app, http.MethodGet, "/api/report/pdf", sessionToken(t, testCompanyID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "sb553-incident-log")
}

func TestRouter_ReportPlan_RutaYCabeceras(t *testing.T) {
	app := buildRouterApp()
	resp := routerRequest(t, app, http.MethodGet, "/api/report/plan", sessionToken(t, testCompanyID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "sb553-written-plan")
}

// Las rutas de descarga son /api/report/pdf y /api/report/plan; cualquier
// variante no existe.
func TestRouter_RutasDeReporteAlternativas_NoExisten(t *testing.T) {
	app := buildRouterApp()
	for _, path := range []string{"/api/reports/incident-log", "/api/reports/written-plan"} {
		resp := routerRequest(t, app, http.MethodGet, path, sessionToken(t, testCompanyID))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		resp.Body.Close()
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout requiere sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_Logout_SinSesion_Retorna401(t *testing.T) {
	app := buildRouterApp()
	resp := routerRequest(t, app, http.MethodPost, "/api/logout", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_Logout_ConSesion_Retorna200(t *testing.T) {
	app := buildRouterApp()
	resp := routerRequest(t, app, http.MethodPost, "/api/logout", sessionToken(t, testCompanyID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
