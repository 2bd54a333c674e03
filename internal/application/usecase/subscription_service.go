package usecase

import (
	"context"
	"fmt"

	"github.com/compcleared/compcleared-api/internal/domain/repository"
)

// SubscriptionService verifica si una empresa tiene suscripción activa.
// Es el único punto de la aplicación que conoce la regla de gating.
type SubscriptionService struct {
	companyRepo repository.CompanyRepository
}

// NewSubscriptionService construye el servicio.
func NewSubscriptionService(companyRepo repository.CompanyRepository) *SubscriptionService {
	return &SubscriptionService{companyRepo: companyRepo}
}

// HasActiveSubscription informa si la empresa existe y su estado es "active".
// Devuelve false (sin error) para empresas inexistentes, pending o canceled.
// Devuelve error solo ante fallos de infraestructura (DB caída, timeout, etc.).
func (s *SubscriptionService) HasActiveSubscription(ctx context.Context, companyID string) (bool, error) {
	if companyID == "" {
		return false, fmt.Errorf("subscription: companyID es obligatorio")
	}
	return s.companyRepo.HasActiveSubscription(ctx, companyID)
}
