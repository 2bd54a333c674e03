package postgres

import (
	"context"
	"fmt"

	"github.com/compcleared/compcleared-api/internal/domain/entity"
	"github.com/compcleared/compcleared-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo agregaciones de solo lectura sobre la tabla incidents.
type StatsRepo struct {
	pool db
}

// NewStatsRepository construye el adaptador de agregaciones.
func NewStatsRepository(pool db) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// CountIncidents total de incidentes de la empresa.
func (r *StatsRepo) CountIncidents(ctx context.Context, companyID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM incidents WHERE company_id = $1`, companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count incidents: %w", err)
	}
	return count, nil
}

// CountIncidentsByType conteo agrupado por tipo de violencia.
func (r *StatsRepo) CountIncidentsByType(ctx context.Context, companyID string) ([]entity.ViolenceTypeCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT violence_type, COUNT(*)
		FROM incidents
		WHERE company_id = $1
		GROUP BY violence_type
		ORDER BY violence_type`, companyID)
	if err != nil {
		return nil, fmt.Errorf("count incidents by type: %w", err)
	}
	defer rows.Close()

	var list []entity.ViolenceTypeCount
	for rows.Next() {
		var tc entity.ViolenceTypeCount
		if err := rows.Scan(&tc.ViolenceType, &tc.Count); err != nil {
			return nil, fmt.Errorf("scan type count: %w", err)
		}
		list = append(list, tc)
	}
	return list, rows.Err()
}

// CountIncidentsSince incidentes con incident_date >= sinceDate (inclusive).
// Las fechas son texto ISO YYYY-MM-DD, así que la comparación lexicográfica
// coincide con la cronológica.
func (r *StatsRepo) CountIncidentsSince(ctx context.Context, companyID, sinceDate string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM incidents WHERE company_id = $1 AND incident_date >= $2`,
		companyID, sinceDate).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count recent incidents: %w", err)
	}
	return count, nil
}
