package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/compcleared/compcleared-api/internal/application/dto"
	"github.com/compcleared/compcleared-api/internal/domain"
	"github.com/compcleared/compcleared-api/internal/domain/entity"
	"github.com/compcleared/compcleared-api/internal/domain/repository"
	"github.com/compcleared/compcleared-api/pkg/config"
)

// PaymentStatusPaid valor con el que el procesador reporta un cobro confirmado.
const PaymentStatusPaid = "paid"

// CheckoutUseCase orquesta el flujo de suscripción: apertura del checkout,
// verificación síncrona post-redirect y eventos asíncronos del webhook.
type CheckoutUseCase struct {
	companyRepo repository.CompanyRepository
	provider    CheckoutProvider
	cfg         config.StripeConfig
}

// NewCheckoutUseCase construye el caso de uso de billing.
func NewCheckoutUseCase(companyRepo repository.CompanyRepository, provider CheckoutProvider, cfg config.StripeConfig) *CheckoutUseCase {
	return &CheckoutUseCase{companyRepo: companyRepo, provider: provider, cfg: cfg}
}

// CreateCheckout crea la empresa en estado pending y abre un checkout hosteado
// para el price del tier. El company id viaja como client_reference_id y como
// metadata; el webhook usa metadata con fallback a client_reference_id.
func (uc *CheckoutUseCase) CreateCheckout(ctx context.Context, in dto.CreateCheckoutRequest) (*dto.CreateCheckoutResponse, error) {
	if in.CompanyName == "" {
		return nil, domain.NewValidationError("company_name")
	}
	if in.Tier == "" {
		return nil, domain.NewValidationError("tier")
	}
	if !entity.ValidTier(in.Tier) {
		return nil, fmt.Errorf("%w: unknown tier %q", domain.ErrInvalidInput, in.Tier)
	}
	priceID, err := uc.cfg.PriceForTier(in.Tier)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	company := &entity.Company{
		ID:                 uuid.New().String(),
		Name:               in.CompanyName,
		Tier:               in.Tier,
		EmployeeCount:      in.EmployeeCount,
		SubscriptionStatus: entity.SubscriptionPending,
		CreatedAt:          time.Now(),
	}
	if err := uc.companyRepo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("create pending company: %w", err)
	}

	session, err := uc.provider.CreateCheckoutSession(ctx, CreateSessionInput{
		CompanyID:  company.ID,
		PriceID:    priceID,
		SuccessURL: uc.cfg.FrontendURL + "/billing/success?session_id={CHECKOUT_SESSION_ID}&company_id=" + company.ID,
		CancelURL:  uc.cfg.FrontendURL + "/pricing",
	})
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	return &dto.CreateCheckoutResponse{
		Success:     true,
		CompanyID:   company.ID,
		CheckoutURL: session.URL,
	}, nil
}

// VerifySession camino síncrono de reconciliación: el usuario vuelve del
// checkout antes de que el webhook llegue (o llegue nunca). Si el procesador
// reporta el pago como "paid" y la sesión referencia a la empresa pedida,
// activa la empresa y guarda los identificadores.
// Activar dos veces es inocuo (overwrite simple).
func (uc *CheckoutUseCase) VerifySession(ctx context.Context, sessionID, companyID string) (*dto.VerifySessionResponse, error) {
	if sessionID == "" {
		return nil, domain.NewValidationError("session_id")
	}
	if companyID == "" {
		return nil, domain.NewValidationError("company_id")
	}
	session, err := uc.provider.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("retrieve checkout session: %w", err)
	}

	// La sesión debe referir a la empresa que se pide activar: un session id
	// pagado de otra empresa no puede activar esta.
	if owner := sessionCompanyID(session); owner != "" && owner != companyID {
		return nil, fmt.Errorf("%w: checkout session does not reference company %s", domain.ErrInvalidInput, companyID)
	}

	status := entity.SubscriptionPending
	if session.PaymentStatus == PaymentStatusPaid {
		if err := uc.companyRepo.MarkActive(ctx, companyID, session.CustomerID, session.SubscriptionID); err != nil {
			return nil, fmt.Errorf("activate company: %w", err)
		}
		status = entity.SubscriptionActive
	}

	return &dto.VerifySessionResponse{
		Success:            true,
		CompanyID:          companyID,
		SubscriptionStatus: status,
	}, nil
}

// HandleEvent procesa un evento de webhook ya verificado. Tipos no
// reconocidos se aceptan como no-op para que el procesador no reintente.
func (uc *CheckoutUseCase) HandleEvent(ctx context.Context, event *WebhookEvent) error {
	switch event.Type {
	case EventCheckoutCompleted:
		return uc.handleCheckoutCompleted(ctx, event.Session)
	case EventSubscriptionDeleted:
		return uc.handleSubscriptionDeleted(ctx, event.SubscriptionID)
	default:
		return nil
	}
}

// handleCheckoutCompleted activa la empresa referida por la sesión.
// El company id se lee de metadata con fallback a client_reference_id; si
// ambos están presentes y difieren, gana metadata (ver DESIGN.md).
func (uc *CheckoutUseCase) handleCheckoutCompleted(ctx context.Context, session *CheckoutSession) error {
	if session == nil {
		return nil
	}
	companyID := sessionCompanyID(session)
	if companyID == "" {
		return fmt.Errorf("checkout completed without company reference (session %s)", session.ID)
	}
	if err := uc.companyRepo.MarkActive(ctx, companyID, session.CustomerID, session.SubscriptionID); err != nil {
		return fmt.Errorf("activate company %s: %w", companyID, err)
	}
	return nil
}

// sessionCompanyID resuelve la empresa referida por una checkout session:
// metadata primero, client_reference_id como fallback.
func sessionCompanyID(session *CheckoutSession) string {
	if id := session.Metadata["company_id"]; id != "" {
		return id
	}
	return session.ClientReferenceID
}

func (uc *CheckoutUseCase) handleSubscriptionDeleted(ctx context.Context, subscriptionID string) error {
	if subscriptionID == "" {
		return nil
	}
	if err := uc.companyRepo.MarkCanceledBySubscription(ctx, subscriptionID); err != nil {
		return fmt.Errorf("cancel subscription %s: %w", subscriptionID, err)
	}
	return nil
}
