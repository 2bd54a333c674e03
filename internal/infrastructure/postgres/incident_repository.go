package postgres

import (
	"context"
	"fmt"

	"github.com/compcleared/compcleared-api/internal/domain/entity"
	"github.com/compcleared/compcleared-api/internal/domain/repository"
)

var _ repository.IncidentRepository = (*IncidentRepo)(nil)

const incidentColumns = `id, company_id, location_id,
	incident_date, incident_time, exact_location,
	violence_type, offender_classification, description,
	circumstances, violence_nature, consequences,
	law_enforcement_contacted, injuries, protective_measures,
	employees_involved, corrective_actions,
	logged_by_name, logged_by_title, log_date, created_at`

// IncidentRepo implementación del puerto IncidentRepository sobre PostgreSQL.
type IncidentRepo struct {
	pool db
}

// NewIncidentRepository construye el adaptador de persistencia para incidentes.
func NewIncidentRepository(pool db) *IncidentRepo {
	return &IncidentRepo{pool: pool}
}

// Create persiste un nuevo incidente (insert de una sola fila, sin transacción).
func (r *IncidentRepo) Create(ctx context.Context, inc *entity.Incident) error {
	query := `
		INSERT INTO incidents (` + incidentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.pool.Exec(ctx, query,
		inc.ID, inc.CompanyID, inc.LocationID,
		inc.IncidentDate, inc.IncidentTime, inc.ExactLocation,
		inc.ViolenceType, inc.OffenderClassification, inc.Description,
		inc.Circumstances, inc.ViolenceNature, inc.Consequences,
		inc.LawEnforcementContacted, inc.Injuries, inc.ProtectiveMeasures,
		inc.EmployeesInvolved, inc.CorrectiveActions,
		inc.LoggedByName, inc.LoggedByTitle, inc.LogDate, inc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert incident: %w", err)
	}
	return nil
}

// GetByID obtiene un incidente filtrando también por empresa: un id ajeno
// responde (nil, nil) igual que un id inexistente.
func (r *IncidentRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents WHERE id = $1 AND company_id = $2`
	var inc entity.Incident
	err := r.pool.QueryRow(ctx, query, id, companyID).Scan(scanTargets(&inc)...)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get incident: %w", err)
	}
	return &inc, nil
}

// ListByCompany devuelve todos los incidentes de la empresa en el orden del
// log SB 553: fecha descendente, hora descendente como desempate.
func (r *IncidentRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents WHERE company_id = $1
		ORDER BY incident_date DESC, incident_time DESC`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}
	defer rows.Close()

	var list []*entity.Incident
	for rows.Next() {
		var inc entity.Incident
		if err := rows.Scan(scanTargets(&inc)...); err != nil {
			return nil, fmt.Errorf("scan incident: %w", err)
		}
		list = append(list, &inc)
	}
	return list, rows.Err()
}

// scanTargets devuelve los destinos de Scan en el orden de incidentColumns.
func scanTargets(inc *entity.Incident) []any {
	return []any{
		&inc.ID, &inc.CompanyID, &inc.LocationID,
		&inc.IncidentDate, &inc.IncidentTime, &inc.ExactLocation,
		&inc.ViolenceType, &inc.OffenderClassification, &inc.Description,
		&inc.Circumstances, &inc.ViolenceNature, &inc.Consequences,
		&inc.LawEnforcementContacted, &inc.Injuries, &inc.ProtectiveMeasures,
		&inc.EmployeesInvolved, &inc.CorrectiveActions,
		&inc.LoggedByName, &inc.LoggedByTitle, &inc.LogDate, &inc.CreatedAt,
	}
}
