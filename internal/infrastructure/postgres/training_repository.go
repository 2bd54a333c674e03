package postgres

import (
	"context"
	"fmt"

	"github.com/compcleared/compcleared-api/internal/domain/entity"
	"github.com/compcleared/compcleared-api/internal/domain/repository"
)

var _ repository.TrainingRepository = (*TrainingRepo)(nil)

// TrainingRepo implementación del puerto TrainingRepository sobre PostgreSQL.
type TrainingRepo struct {
	pool db
}

// NewTrainingRepository construye el adaptador de persistencia para capacitaciones.
func NewTrainingRepository(pool db) *TrainingRepo {
	return &TrainingRepo{pool: pool}
}

// Create persiste un registro de capacitación.
func (r *TrainingRepo) Create(ctx context.Context, rec *entity.TrainingRecord) error {
	query := `
		INSERT INTO training_records (id, company_id, employee_name, employee_id,
			training_date, training_type, completed, certificate_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.CompanyID, rec.EmployeeName, rec.EmployeeID,
		rec.TrainingDate, rec.TrainingType, rec.Completed, rec.CertificateURL,
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert training record: %w", err)
	}
	return nil
}

// ListByCompany devuelve los registros de la empresa ordenados por fecha descendente.
func (r *TrainingRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.TrainingRecord, error) {
	query := `
		SELECT id, company_id, employee_name, employee_id,
			training_date, training_type, completed, certificate_url, created_at
		FROM training_records WHERE company_id = $1
		ORDER BY training_date DESC`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list training records: %w", err)
	}
	defer rows.Close()

	var list []*entity.TrainingRecord
	for rows.Next() {
		var rec entity.TrainingRecord
		if err := rows.Scan(&rec.ID, &rec.CompanyID, &rec.EmployeeName, &rec.EmployeeID,
			&rec.TrainingDate, &rec.TrainingType, &rec.Completed, &rec.CertificateURL,
			&rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan training record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
