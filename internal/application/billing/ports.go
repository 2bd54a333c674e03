package billing

import "context"

// Tipos de evento del procesador que este sistema maneja. Cualquier otro
// tipo se reconoce como no-op (el procesador no debe reintentar).
const (
	EventCheckoutCompleted   = "checkout.session.completed"
	EventSubscriptionDeleted = "customer.subscription.deleted"
)

// CreateSessionInput parámetros para abrir un checkout hosteado.
// CompanyID debe viajar como client_reference_id Y como metadata: el consumo
// del webhook depende de ese fallback.
type CreateSessionInput struct {
	CompanyID  string
	PriceID    string
	SuccessURL string
	CancelURL  string
}

// CheckoutSession vista neutra de una sesión de checkout del procesador.
type CheckoutSession struct {
	ID                string
	URL               string
	PaymentStatus     string // "paid" cuando el cobro se confirmó
	CustomerID        string
	SubscriptionID    string
	ClientReferenceID string
	Metadata          map[string]string
}

// WebhookEvent evento de webhook ya verificado y decodificado.
type WebhookEvent struct {
	Type           string
	Session        *CheckoutSession // presente en checkout.session.completed
	SubscriptionID string           // presente en customer.subscription.deleted
}

// CheckoutProvider puerto hacia el procesador de pagos (Stripe en producción).
type CheckoutProvider interface {
	CreateCheckoutSession(ctx context.Context, in CreateSessionInput) (*CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}

// WebhookVerifier verifica la firma de un payload de webhook contra el secreto
// compartido y lo decodifica. Falla cerrado: firma inválida = error, sin
// procesamiento parcial.
type WebhookVerifier interface {
	VerifyAndParse(payload []byte, signature string) (*WebhookEvent, error)
}
