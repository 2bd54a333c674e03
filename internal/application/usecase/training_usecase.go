package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/compcleared/compcleared-api/internal/application/dto"
	"github.com/compcleared/compcleared-api/internal/domain"
	"github.com/compcleared/compcleared-api/internal/domain/entity"
	"github.com/compcleared/compcleared-api/internal/domain/repository"
)

// TrainingUseCase casos de uso de registros de capacitación SB 553.
// Inmutables: solo create y list.
type TrainingUseCase struct {
	repo repository.TrainingRepository
}

// NewTrainingUseCase construye el caso de uso.
func NewTrainingUseCase(repo repository.TrainingRepository) *TrainingUseCase {
	return &TrainingUseCase{repo: repo}
}

// Create valida campos requeridos y persiste el registro scoped a la empresa.
func (uc *TrainingUseCase) Create(ctx context.Context, companyID string, in dto.CreateTrainingRequest) (*dto.CreateTrainingResponse, error) {
	switch {
	case in.EmployeeName == "":
		return nil, domain.NewValidationError("employee_name")
	case in.TrainingDate == "":
		return nil, domain.NewValidationError("training_date")
	case in.TrainingType == "":
		return nil, domain.NewValidationError("training_type")
	}

	record := &entity.TrainingRecord{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		EmployeeName:   in.EmployeeName,
		EmployeeID:     in.EmployeeID,
		TrainingDate:   in.TrainingDate,
		TrainingType:   in.TrainingType,
		Completed:      in.Completed,
		CertificateURL: in.CertificateURL,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return &dto.CreateTrainingResponse{
		Success:    true,
		TrainingID: record.ID,
		Message:    "Training record created",
	}, nil
}

// List devuelve los registros de la empresa ordenados por training_date DESC.
func (uc *TrainingUseCase) List(ctx context.Context, companyID string) (*dto.TrainingListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TrainingResponse, 0, len(list))
	for _, r := range list {
		items = append(items, dto.TrainingResponse{
			ID:             r.ID,
			CompanyID:      r.CompanyID,
			EmployeeName:   r.EmployeeName,
			EmployeeID:     r.EmployeeID,
			TrainingDate:   r.TrainingDate,
			TrainingType:   r.TrainingType,
			Completed:      r.Completed,
			CertificateURL: r.CertificateURL,
			CreatedAt:      r.CreatedAt,
		})
	}
	return &dto.TrainingListResponse{Success: true, TrainingRecords: items}, nil
}
