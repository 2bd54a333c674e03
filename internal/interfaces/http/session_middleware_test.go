package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/compcleared/compcleared-api/internal/interfaces/http"
	"github.com/compcleared/compcleared-api/pkg/session"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSessionSecret = "test-secret-key-for-unit-tests"
	testUserID        = "00000000-0000-0000-0000-000000000001"
	testCompanyID     = "00000000-0000-0000-0000-000000000002"
	testEmail         = "admin@acme.test"
	testIssuer        = "compcleared-test"
	testExpMin        = 60
)

// fakeChecker implementa el contrato del middleware de suscripción.
type fakeChecker struct {
	active bool
	err    error
}

func (f *fakeChecker) HasActiveSubscription(_ context.Context, _ string) (bool, error) {
	return f.active, f.err
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - RequireSession para parsear la cookie y cargar locals
//   - RequireActiveSubscription para el gating de suscripción
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(checker *fakeChecker) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.RequireSession(testSessionSecret),
		apphttp.RequireActiveSubscription(checker),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":         true,
				"company_id": apphttp.GetCompanyID(c),
			})
		},
	)
	return app
}

// sessionToken genera un token de sesión firmado para los tests.
func sessionToken(t *testing.T, companyID string) string {
	t.Helper()
	tok, err := session.Generate(testSessionSecret, testUserID, companyID, testEmail, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token de sesión válido")
	return tok
}

// doRequest lanza una petición GET /protected con la cookie indicada.
func doRequest(t *testing.T, app *fiber.App, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "cc_session", Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireSession
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: cookie válida + suscripción activa → HTTP 200 y locals cargados.
func TestRequireSession_CookieValida_Pasa(t *testing.T) {
	app := buildTestApp(&fakeChecker{active: true})
	resp := doRequest(t, app, sessionToken(t, testCompanyID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testCompanyID, body["company_id"],
		"el company_id de la sesión debe quedar en locals")
}

// Caso 2: sin cookie → HTTP 401.
func TestRequireSession_SinCookie_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeChecker{active: true})
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNAUTHORIZED")
}

// Caso 3: cookie con token malformado → HTTP 401, misma respuesta que sin cookie.
func TestRequireSession_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeChecker{active: true})
	resp := doRequest(t, app, "token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: token firmado con otro secret → HTTP 401.
func TestRequireSession_SecretIncorrecto_Retorna401(t *testing.T) {
	tok, err := session.Generate("otro-secret", testUserID, testCompanyID, testEmail, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp(&fakeChecker{active: true})
	resp := doRequest(t, app, tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireActiveSubscription
// ──────────────────────────────────────────────────────────────────────────────

// Caso 5: suscripción no activa (pending o canceled) → HTTP 402.
func TestRequireActiveSubscription_SinSuscripcion_Retorna402(t *testing.T) {
	app := buildTestApp(&fakeChecker{active: false})
	resp := doRequest(t, app, sessionToken(t, testCompanyID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "PAYMENT_REQUIRED")
}

// Caso 6: sesión sin empresa asociada (registro antes de billing) → HTTP 402.
func TestRequireActiveSubscription_SinEmpresa_Retorna402(t *testing.T) {
	app := buildTestApp(&fakeChecker{active: true})
	resp := doRequest(t, app, sessionToken(t, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
}

// Caso 7: fallo de infraestructura al verificar → HTTP 503, nunca 402.
func TestRequireActiveSubscription_ErrorDB_Retorna503(t *testing.T) {
	app := buildTestApp(&fakeChecker{err: errors.New("db caída")})
	resp := doRequest(t, app, sessionToken(t, testCompanyID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SUBSCRIPTION_CHECK_FAILED")
}
