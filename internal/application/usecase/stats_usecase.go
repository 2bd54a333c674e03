package usecase

import (
	"context"
	"time"

	"github.com/compcleared/compcleared-api/internal/application/dto"
	"github.com/compcleared/compcleared-api/internal/domain/repository"
)

// StatsUseCase agregados del dashboard: tres agregaciones independientes de
// solo lectura, recalculadas en cada petición.
type StatsUseCase struct {
	repo repository.StatsRepository
	now  func() time.Time
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo, now: time.Now}
}

// WithClock fija la fuente de tiempo (tests).
func (uc *StatsUseCase) WithClock(now func() time.Time) *StatsUseCase {
	uc.now = now
	return uc
}

// Get computa total de incidentes, conteo por tipo de violencia y conteo de
// los últimos 30 días (incident_date >= hoy-30d, inclusive).
func (uc *StatsUseCase) Get(ctx context.Context, companyID string) (*dto.StatsResponse, error) {
	total, err := uc.repo.CountIncidents(ctx, companyID)
	if err != nil {
		return nil, err
	}
	byType, err := uc.repo.CountIncidentsByType(ctx, companyID)
	if err != nil {
		return nil, err
	}
	cutoff := uc.now().AddDate(0, 0, -30).Format("2006-01-02")
	recent, err := uc.repo.CountIncidentsSince(ctx, companyID, cutoff)
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		Success: true,
		Stats: dto.Stats{
			TotalIncidents: total,
			ByType:         byType,
			Recent30Days:   recent,
		},
	}, nil
}
