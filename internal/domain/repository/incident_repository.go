package repository

import (
	"context"

	"github.com/compcleared/compcleared-api/internal/domain/entity"
)

// IncidentRepository define el puerto de persistencia para Incident.
// No hay Update ni Delete: el log de incidentes es inmutable.
type IncidentRepository interface {
	Create(ctx context.Context, incident *entity.Incident) error
	// GetByID filtra también por companyID: un id de otra empresa responde
	// igual que un id inexistente (no se puede enumerar tenants).
	GetByID(ctx context.Context, companyID, id string) (*entity.Incident, error)
	// ListByCompany devuelve todos los incidentes de la empresa ordenados
	// por (incident_date DESC, incident_time DESC). Sin paginación.
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Incident, error)
}
