package entity

import "time"

// Tiers de suscripción disponibles (deben coincidir con el CHECK de companies.tier).
const (
	TierStarter      = "starter"
	TierProfessional = "professional"
	TierEnterprise   = "enterprise"
)

// Estados de suscripción. Una company nace en pending al iniciar el checkout,
// pasa a active con el pago confirmado y a canceled cuando el procesador
// reporta la eliminación de la suscripción.
const (
	SubscriptionPending  = "pending"
	SubscriptionActive   = "active"
	SubscriptionCanceled = "canceled"
)

// Company representa una empresa suscriptora (tenant). Todos los datos
// protegidos del sistema están scoped a una Company.
type Company struct {
	ID                   string
	Name                 string
	Tier                 string // starter, professional, enterprise
	EmployeeCount        int
	Locations            string
	SubscriptionStatus   string // pending, active, canceled
	StripeCustomerID     string
	StripeSubscriptionID string
	CreatedAt            time.Time
}

// ValidTier informa si el string corresponde a un tier conocido.
func ValidTier(tier string) bool {
	switch tier {
	case TierStarter, TierProfessional, TierEnterprise:
		return true
	}
	return false
}
