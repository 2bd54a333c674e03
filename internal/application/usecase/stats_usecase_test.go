package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compcleared/compcleared-api/internal/application/usecase"
	"github.com/compcleared/compcleared-api/internal/domain/entity"
)

// fakeStatsRepo registra el cutoff recibido para verificar la ventana de 30 días.
type fakeStatsRepo struct {
	total      int
	byType     []entity.ViolenceTypeCount
	recent     int
	lastCutoff string
}

func (r *fakeStatsRepo) CountIncidents(_ context.Context, _ string) (int, error) {
	return r.total, nil
}

func (r *fakeStatsRepo) CountIncidentsByType(_ context.Context, _ string) ([]entity.ViolenceTypeCount, error) {
	return r.byType, nil
}

func (r *fakeStatsRepo) CountIncidentsSince(_ context.Context, _ string, sinceDate string) (int, error) {
	r.lastCutoff = sinceDate
	return r.recent, nil
}

func TestStatsGet_AgregaLasTresMetricas(t *testing.T) {
	repo := &fakeStatsRepo{
		total: 7,
		byType: []entity.ViolenceTypeCount{
			{ViolenceType: entity.ViolenceType2Customer, Count: 4},
			{ViolenceType: entity.ViolenceType3Worker, Count: 3},
		},
		recent: 2,
	}
	uc := usecase.NewStatsUseCase(repo)

	out, err := uc.Get(context.Background(), "c-1")
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, 7, out.Stats.TotalIncidents)
	assert.Equal(t, 2, out.Stats.Recent30Days)
	require.Len(t, out.Stats.ByType, 2)
	assert.Equal(t, entity.ViolenceType2Customer, out.Stats.ByType[0].ViolenceType)
	assert.Equal(t, 4, out.Stats.ByType[0].Count)
}

// Con reloj fijo, el cutoff de la ventana reciente es exactamente hoy-30d.
func TestStatsGet_CutoffDe30Dias(t *testing.T) {
	repo := &fakeStatsRepo{}
	fixed := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	uc := usecase.NewStatsUseCase(repo).WithClock(func() time.Time { return fixed })

	_, err := uc.Get(context.Background(), "c-1")
	require.NoError(t, err)

	assert.Equal(t, "2026-08-01", repo.lastCutoff)
}
