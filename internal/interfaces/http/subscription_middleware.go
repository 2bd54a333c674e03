package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/compcleared/compcleared-api/internal/application/dto"
)

// subscriptionChecker es el contrato mínimo que necesita el middleware de gating.
// Lo implementa *usecase.SubscriptionService; el uso de interfaz evita el import circular.
type subscriptionChecker interface {
	HasActiveSubscription(ctx context.Context, companyID string) (bool, error)
}

// RequireActiveSubscription devuelve un middleware Fiber que verifica que la
// empresa de la sesión tenga suscripción activa. Debe usarse DESPUÉS de
// RequireSession (necesita LocalCompanyID).
//
// Comportamiento:
//   - 402 Payment Required → sin empresa, suscripción pending o canceled.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
func RequireActiveSubscription(checker subscriptionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		companyID := GetCompanyID(c)
		if companyID == "" {
			return c.Status(fiber.StatusPaymentRequired).JSON(
				dto.Fail("PAYMENT_REQUIRED", "active subscription required"))
		}

		active, err := checker.HasActiveSubscription(c.Context(), companyID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(
				dto.Fail("SUBSCRIPTION_CHECK_FAILED", "could not verify subscription, try again later"))
		}
		if !active {
			return c.Status(fiber.StatusPaymentRequired).JSON(
				dto.Fail("PAYMENT_REQUIRED", "active subscription required"))
		}
		return c.Next()
	}
}
