package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/compcleared/compcleared-api/internal/application/billing"
	"github.com/compcleared/compcleared-api/internal/application/dto"
	"github.com/compcleared/compcleared-api/internal/domain"
	"github.com/compcleared/compcleared-api/pkg/logger"
)

// BillingHandler maneja el flujo de suscripción: checkout, verify y webhook.
type BillingHandler struct {
	uc       *billing.CheckoutUseCase
	verifier billing.WebhookVerifier
	log      *logger.Logger
}

// NewBillingHandler construye el handler de billing.
func NewBillingHandler(uc *billing.CheckoutUseCase, verifier billing.WebhookVerifier, log *logger.Logger) *BillingHandler {
	return &BillingHandler{uc: uc, verifier: verifier, log: log}
}

// CreateCheckout godoc
// @Summary      Crear empresa pending y abrir checkout de suscripción
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCheckoutRequest  true  "company_name, tier, employee_count"
// @Success      200   {object}  dto.CreateCheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/create-checkout-session [post]
func (h *BillingHandler) CreateCheckout(c *fiber.Ctx) error {
	var in dto.CreateCheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "invalid request body"))
	}
	out, err := h.uc.CreateCheckout(c.Context(), in)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", ve.Error()))
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", err.Error()))
		}
		h.log.Error().Err(err).Msg("create checkout failed")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", "could not start checkout"))
	}
	return c.JSON(out)
}

// VerifySession godoc
// @Summary      Verificar pago post-redirect y activar la empresa
// @Tags         billing
// @Produce      json
// @Param        session_id  query  string  true  "checkout session id"
// @Param        company_id  query  string  true  "company id"
// @Success      200  {object}  dto.VerifySessionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/verify-session [get]
func (h *BillingHandler) VerifySession(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	companyID := c.Query("company_id")
	out, err := h.uc.VerifySession(c.Context(), sessionID, companyID)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", ve.Error()))
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "checkout session does not match company"))
		}
		h.log.Error().Err(err).Str("session_id", sessionID).Msg("verify session failed")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", "could not verify payment"))
	}
	return c.JSON(out)
}

// Webhook godoc
// @Summary      Recibir eventos del procesador de pagos
// @Tags         billing
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.WebhookAckResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/webhook [post]
//
// El cuerpo crudo y el header Stripe-Signature van juntos al verificador;
// firma inválida responde 400 sin procesar nada. Eventos desconocidos se
// confirman con 200 para que el procesador no reintente.
func (h *BillingHandler) Webhook(c *fiber.Ctx) error {
	event, err := h.verifier.VerifyAndParse(c.Body(), c.Get("Stripe-Signature"))
	if err != nil {
		h.log.Warn().Err(err).Msg("webhook signature rejected")
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_SIGNATURE", "webhook signature verification failed"))
	}
	if err := h.uc.HandleEvent(c.Context(), event); err != nil {
		// 500 fuerza el reintento del procesador.
		h.log.Error().Err(err).Str("event", event.Type).Msg("webhook processing failed")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", "event processing failed"))
	}
	return c.JSON(dto.WebhookAckResponse{Success: true, Event: event.Type})
}
