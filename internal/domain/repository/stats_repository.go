package repository

import (
	"context"

	"github.com/compcleared/compcleared-api/internal/domain/entity"
)

// StatsRepository agregaciones de solo lectura sobre incidentes, siempre
// scoped por empresa. Se recalculan en cada petición, sin caché.
type StatsRepository interface {
	CountIncidents(ctx context.Context, companyID string) (int, error)
	CountIncidentsByType(ctx context.Context, companyID string) ([]entity.ViolenceTypeCount, error)
	// CountIncidentsSince cuenta incidentes con incident_date >= sinceDate (YYYY-MM-DD, inclusive).
	CountIncidentsSince(ctx context.Context, companyID, sinceDate string) (int, error)
}
