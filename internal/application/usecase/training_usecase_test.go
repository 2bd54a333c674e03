package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compcleared/compcleared-api/internal/application/dto"
	"github.com/compcleared/compcleared-api/internal/application/usecase"
	"github.com/compcleared/compcleared-api/internal/domain"
	"github.com/compcleared/compcleared-api/internal/domain/entity"
)

type fakeTrainingRepo struct {
	byCompany map[string][]*entity.TrainingRecord
	creates   int
}

func newFakeTrainingRepo() *fakeTrainingRepo {
	return &fakeTrainingRepo{byCompany: map[string][]*entity.TrainingRecord{}}
}

func (r *fakeTrainingRepo) Create(_ context.Context, rec *entity.TrainingRecord) error {
	r.creates++
	r.byCompany[rec.CompanyID] = append(r.byCompany[rec.CompanyID], rec)
	return nil
}

func (r *fakeTrainingRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.TrainingRecord, error) {
	return r.byCompany[companyID], nil
}

func TestTrainingCreate_Persiste(t *testing.T) {
	repo := newFakeTrainingRepo()
	uc := usecase.NewTrainingUseCase(repo)

	out, err := uc.Create(context.Background(), "c-1", dto.CreateTrainingRequest{
		EmployeeName: "Ada",
		EmployeeID:   "E-100",
		TrainingDate: "2026-08-01",
		TrainingType: "initial",
		Completed:    true,
	})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.NotEmpty(t, out.TrainingID)
	assert.Equal(t, "Training record created", out.Message)

	require.Len(t, repo.byCompany["c-1"], 1)
	assert.Equal(t, "c-1", repo.byCompany["c-1"][0].CompanyID,
		"el registro queda scoped a la empresa de la sesión")
}

func TestTrainingCreate_CamposRequeridos_NoInserta(t *testing.T) {
	cases := []struct {
		field string
		in    dto.CreateTrainingRequest
	}{
		{"employee_name", dto.CreateTrainingRequest{TrainingDate: "2026-08-01", TrainingType: "annual"}},
		{"training_date", dto.CreateTrainingRequest{EmployeeName: "Ada", TrainingType: "annual"}},
		{"training_type", dto.CreateTrainingRequest{EmployeeName: "Ada", TrainingDate: "2026-08-01"}},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			repo := newFakeTrainingRepo()
			uc := usecase.NewTrainingUseCase(repo)

			_, err := uc.Create(context.Background(), "c-1", tc.in)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
			assert.Zero(t, repo.creates)
		})
	}
}

func TestTrainingList_EmpresaSinRegistros_ListaVacia(t *testing.T) {
	uc := usecase.NewTrainingUseCase(newFakeTrainingRepo())

	out, err := uc.List(context.Background(), "c-sin-datos")
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Empty(t, out.TrainingRecords)
	assert.NotNil(t, out.TrainingRecords)
}
