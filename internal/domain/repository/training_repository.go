package repository

import (
	"context"

	"github.com/compcleared/compcleared-api/internal/domain/entity"
)

// TrainingRepository define el puerto de persistencia para TrainingRecord.
// Inmutable: solo create y list.
type TrainingRepository interface {
	Create(ctx context.Context, record *entity.TrainingRecord) error
	// ListByCompany devuelve los registros de la empresa ordenados por training_date DESC.
	ListByCompany(ctx context.Context, companyID string) ([]*entity.TrainingRecord, error)
}
