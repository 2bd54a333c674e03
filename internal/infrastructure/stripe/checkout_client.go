// Package stripe adapta el SDK oficial de Stripe a los puertos de billing:
// apertura y consulta de checkout sessions y verificación de webhooks.
package stripe

import (
	"context"
	"encoding/json"
	"fmt"

	stripeapi "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/compcleared/compcleared-api/internal/application/billing"
)

// Asegura que CheckoutClient implementa ambos puertos de billing.
var (
	_ billing.CheckoutProvider = (*CheckoutClient)(nil)
	_ billing.WebhookVerifier  = (*CheckoutClient)(nil)
)

// CheckoutClient cliente del procesador de pagos.
// No se configuran timeouts explícitos: un cuelgue del procesador bloquea
// solo la petición en curso (el SDK usa su http.Client por defecto).
type CheckoutClient struct {
	webhookSecret string
}

// NewCheckoutClient configura la API key global del SDK y construye el cliente.
func NewCheckoutClient(secretKey, webhookSecret string) *CheckoutClient {
	stripeapi.Key = secretKey
	return &CheckoutClient{webhookSecret: webhookSecret}
}

// CreateCheckoutSession abre un checkout hosteado en modo suscripción.
// El company id viaja como client_reference_id Y como metadata; el consumidor
// del webhook depende de ese doble registro.
func (c *CheckoutClient) CreateCheckoutSession(ctx context.Context, in billing.CreateSessionInput) (*billing.CheckoutSession, error) {
	params := &stripeapi.CheckoutSessionParams{
		Mode: stripeapi.String(string(stripeapi.CheckoutSessionModeSubscription)),
		LineItems: []*stripeapi.CheckoutSessionLineItemParams{
			{
				Price:    stripeapi.String(in.PriceID),
				Quantity: stripeapi.Int64(1),
			},
		},
		SuccessURL:        stripeapi.String(in.SuccessURL),
		CancelURL:         stripeapi.String(in.CancelURL),
		ClientReferenceID: stripeapi.String(in.CompanyID),
	}
	params.Context = ctx
	params.AddMetadata("company_id", in.CompanyID)

	s, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: create checkout session: %w", err)
	}
	return toCheckoutSession(s), nil
}

// GetCheckoutSession recupera una checkout session por id.
func (c *CheckoutClient) GetCheckoutSession(ctx context.Context, sessionID string) (*billing.CheckoutSession, error) {
	params := &stripeapi.CheckoutSessionParams{}
	params.Context = ctx
	s, err := session.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("stripe: retrieve checkout session: %w", err)
	}
	return toCheckoutSession(s), nil
}

// VerifyAndParse valida la firma del payload contra el webhook secret y
// decodifica el evento. Firma inválida = error, sin procesamiento parcial.
// Tipos no manejados se devuelven con Session/SubscriptionID vacíos para que
// el caso de uso los reconozca como no-op.
func (c *CheckoutClient) VerifyAndParse(payload []byte, signature string) (*billing.WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, c.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("stripe: webhook signature verification: %w", err)
	}

	out := &billing.WebhookEvent{Type: string(event.Type)}
	switch out.Type {
	case billing.EventCheckoutCompleted:
		var s stripeapi.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
			return nil, fmt.Errorf("stripe: decode checkout session: %w", err)
		}
		out.Session = toCheckoutSession(&s)
	case billing.EventSubscriptionDeleted:
		var sub stripeapi.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return nil, fmt.Errorf("stripe: decode subscription: %w", err)
		}
		out.SubscriptionID = sub.ID
	}
	return out, nil
}

func toCheckoutSession(s *stripeapi.CheckoutSession) *billing.CheckoutSession {
	out := &billing.CheckoutSession{
		ID:                s.ID,
		URL:               s.URL,
		PaymentStatus:     string(s.PaymentStatus),
		ClientReferenceID: s.ClientReferenceID,
		Metadata:          s.Metadata,
	}
	if s.Customer != nil {
		out.CustomerID = s.Customer.ID
	}
	if s.Subscription != nil {
		out.SubscriptionID = s.Subscription.ID
	}
	return out
}
