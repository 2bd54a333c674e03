package repository

import (
	"context"

	"github.com/compcleared/compcleared-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// MarkActive activa la suscripción y guarda los identificadores del
	// procesador. Es un overwrite simple: aplicarlo dos veces es inocuo
	// (el verify síncrono y el webhook pueden llegar ambos).
	MarkActive(ctx context.Context, id, stripeCustomerID, stripeSubscriptionID string) error
	// MarkCanceledBySubscription cancela la company cuyo subscription ID
	// del procesador coincida. No-op si ninguna coincide.
	MarkCanceledBySubscription(ctx context.Context, stripeSubscriptionID string) error
	// HasActiveSubscription informa si la empresa existe y su suscripción está activa.
	HasActiveSubscription(ctx context.Context, companyID string) (bool, error)
}
