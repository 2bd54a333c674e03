package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compcleared/compcleared-api/internal/domain/entity"
	infrapdf "github.com/compcleared/compcleared-api/internal/infrastructure/pdf"
)

func sampleCompany() *entity.Company {
	return &entity.Company{
		ID:                 "c-1",
		Name:               "Acme Corp",
		Tier:               entity.TierProfessional,
		SubscriptionStatus: entity.SubscriptionActive,
	}
}

func sampleIncident() *entity.Incident {
	return &entity.Incident{
		ID:                      "i-1",
		CompanyID:               "c-1",
		LocationID:              "main",
		IncidentDate:            "2026-08-15",
		IncidentTime:            "14:30",
		ExactLocation:           "Warehouse dock 3",
		ViolenceType:            entity.ViolenceType2Customer,
		OffenderClassification:  "customer",
		Description:             "Customer threw a pallet jack at staff",
		Consequences:            "No injuries, police report filed",
		LawEnforcementContacted: true,
		EmployeesInvolved:       `["E-100","E-200"]`,
		CorrectiveActions:       "Added security presence at dock",
		LoggedByName:            "Ada Supervisor",
		LoggedByTitle:           "Shift Lead",
		LogDate:                 time.Date(2026, 8, 15, 16, 0, 0, 0, time.UTC),
	}
}

func TestGenerateIncidentLog_ProduceUnPDF(t *testing.T) {
	gen := infrapdf.NewMarotoReportGenerator()

	out, err := gen.GenerateIncidentLog(context.Background(), sampleCompany(),
		[]*entity.Incident{sampleIncident()}, time.Now())
	require.NoError(t, err)

	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]), "la salida debe ser un PDF válido")
}

// Sin incidentes igual se genera el documento (log vacío certificado).
func TestGenerateIncidentLog_SinIncidentes(t *testing.T) {
	gen := infrapdf.NewMarotoReportGenerator()

	out, err := gen.GenerateIncidentLog(context.Background(), sampleCompany(), nil, time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateWrittenPlan_ProduceUnPDF(t *testing.T) {
	gen := infrapdf.NewMarotoReportGenerator()

	out, err := gen.GenerateWrittenPlan(context.Background(), sampleCompany(), time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}
