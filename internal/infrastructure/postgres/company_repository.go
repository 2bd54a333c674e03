package postgres

import (
	"context"
	"fmt"

	"github.com/compcleared/compcleared-api/internal/domain/entity"
	"github.com/compcleared/compcleared-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool db
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool db) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Create persiste una nueva empresa (nace en pending desde el checkout).
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, tier, employee_count, locations, subscription_status,
			stripe_customer_id, stripe_subscription_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		company.ID, company.Name, company.Tier, company.EmployeeCount, company.Locations,
		company.SubscriptionStatus, company.StripeCustomerID, company.StripeSubscriptionID,
		company.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `
		SELECT id, name, tier, employee_count, locations, subscription_status,
			stripe_customer_id, stripe_subscription_id, created_at
		FROM companies WHERE id = $1`
	var c entity.Company
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Tier, &c.EmployeeCount, &c.Locations, &c.SubscriptionStatus,
		&c.StripeCustomerID, &c.StripeSubscriptionID, &c.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// MarkActive activa la suscripción y guarda los identificadores del procesador.
// Overwrite simple: aplicarlo dos veces deja el mismo estado.
func (r *CompanyRepo) MarkActive(ctx context.Context, id, stripeCustomerID, stripeSubscriptionID string) error {
	query := `
		UPDATE companies
		SET subscription_status = 'active', stripe_customer_id = $2, stripe_subscription_id = $3
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, stripeCustomerID, stripeSubscriptionID)
	if err != nil {
		return fmt.Errorf("mark company active: %w", err)
	}
	return nil
}

// MarkCanceledBySubscription cancela la empresa cuyo subscription ID coincida.
// No-op si ninguna empresa tiene ese subscription ID.
func (r *CompanyRepo) MarkCanceledBySubscription(ctx context.Context, stripeSubscriptionID string) error {
	query := `
		UPDATE companies
		SET subscription_status = 'canceled'
		WHERE stripe_subscription_id = $1`
	_, err := r.pool.Exec(ctx, query, stripeSubscriptionID)
	if err != nil {
		return fmt.Errorf("mark company canceled: %w", err)
	}
	return nil
}

// HasActiveSubscription informa si la empresa existe con estado "active".
// Respuesta O(1) vía índice sobre la primary key.
func (r *CompanyRepo) HasActiveSubscription(ctx context.Context, companyID string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM companies
			 WHERE id = $1
			   AND subscription_status = 'active'
		)`
	var active bool
	if err := r.pool.QueryRow(ctx, query, companyID).Scan(&active); err != nil {
		return false, fmt.Errorf("check subscription: %w", err)
	}
	return active, nil
}
