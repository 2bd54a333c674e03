package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compcleared/compcleared-api/internal/application/report"
	"github.com/compcleared/compcleared-api/internal/domain"
	"github.com/compcleared/compcleared-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	byID map[string]*entity.Company
}

func (r *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return r.byID[id], nil
}

func (r *fakeCompanyRepo) MarkActive(_ context.Context, _, _, _ string) error { return nil }

func (r *fakeCompanyRepo) MarkCanceledBySubscription(_ context.Context, _ string) error { return nil }

func (r *fakeCompanyRepo) HasActiveSubscription(_ context.Context, _ string) (bool, error) {
	return true, nil
}

type fakeIncidentRepo struct {
	incidents []*entity.Incident
}

func (r *fakeIncidentRepo) Create(_ context.Context, _ *entity.Incident) error { return nil }

func (r *fakeIncidentRepo) GetByID(_ context.Context, _, _ string) (*entity.Incident, error) {
	return nil, nil
}

func (r *fakeIncidentRepo) ListByCompany(_ context.Context, _ string) ([]*entity.Incident, error) {
	return r.incidents, nil
}

// fakeGenerator registra lo que recibe y devuelve bytes fijos.
type fakeGenerator struct {
	lastIncidents []*entity.Incident
	lastCompany   *entity.Company
}

func (g *fakeGenerator) GenerateIncidentLog(_ context.Context, company *entity.Company, incidents []*entity.Incident, _ time.Time) ([]byte, error) {
	g.lastCompany = company
	g.lastIncidents = incidents
	return []byte("%PDF-fake-log"), nil
}

func (g *fakeGenerator) GenerateWrittenPlan(_ context.Context, company *entity.Company, _ time.Time) ([]byte, error) {
	g.lastCompany = company
	return []byte("%PDF-fake-plan"), nil
}

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestDownloadIncidentLog_GeneraConDatosDeLaEmpresa(t *testing.T) {
	companies := &fakeCompanyRepo{byID: map[string]*entity.Company{
		"c-1": {ID: "c-1", Name: "Acme Corp"},
	}}
	incidents := &fakeIncidentRepo{incidents: []*entity.Incident{{ID: "i-1"}, {ID: "i-2"}}}
	gen := &fakeGenerator{}
	uc := report.NewReportUseCase(companies, incidents, gen).WithClock(fixedClock())

	pdf, filename, err := uc.DownloadIncidentLog(context.Background(), "c-1")
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-fake-log"), pdf)
	assert.Equal(t, "sb553-incident-log-2026-08-31.pdf", filename,
		"el filename lleva la fecha de generación")
	assert.Equal(t, "Acme Corp", gen.lastCompany.Name)
	assert.Len(t, gen.lastIncidents, 2)
}

func TestDownloadIncidentLog_EmpresaInexistente_NotFound(t *testing.T) {
	companies := &fakeCompanyRepo{byID: map[string]*entity.Company{}}
	uc := report.NewReportUseCase(companies, &fakeIncidentRepo{}, &fakeGenerator{})

	_, _, err := uc.DownloadIncidentLog(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDownloadWrittenPlan_GeneraConFilenameFechado(t *testing.T) {
	companies := &fakeCompanyRepo{byID: map[string]*entity.Company{
		"c-1": {ID: "c-1", Name: "Acme Corp"},
	}}
	gen := &fakeGenerator{}
	uc := report.NewReportUseCase(companies, &fakeIncidentRepo{}, gen).WithClock(fixedClock())

	pdf, filename, err := uc.DownloadWrittenPlan(context.Background(), "c-1")
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-fake-plan"), pdf)
	assert.Equal(t, "sb553-written-plan-2026-08-31.pdf", filename)
	assert.Equal(t, "Acme Corp", gen.lastCompany.Name)
}

func TestDownloadWrittenPlan_EmpresaInexistente_NotFound(t *testing.T) {
	companies := &fakeCompanyRepo{byID: map[string]*entity.Company{}}
	uc := report.NewReportUseCase(companies, &fakeIncidentRepo{}, &fakeGenerator{})

	_, _, err := uc.DownloadWrittenPlan(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
