package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/compcleared/compcleared-api/internal/application/dto"
	"github.com/compcleared/compcleared-api/internal/domain"
	"github.com/compcleared/compcleared-api/internal/domain/entity"
	"github.com/compcleared/compcleared-api/internal/domain/repository"
)

// IncidentUseCase casos de uso del violent incident log. Solo create, list y
// get: los incidentes son inmutables después de creados.
type IncidentUseCase struct {
	repo repository.IncidentRepository
}

// NewIncidentUseCase construye el caso de uso.
func NewIncidentUseCase(repo repository.IncidentRepository) *IncidentUseCase {
	return &IncidentUseCase{repo: repo}
}

// Create valida los campos requeridos por SB 553 (la ausencia nombra el campo),
// aplica defaults, serializa employees_involved y estampa log_date/created_at
// del lado del servidor. Scoped a la empresa de la sesión.
func (uc *IncidentUseCase) Create(ctx context.Context, companyID string, in dto.CreateIncidentRequest) (*dto.CreateIncidentResponse, error) {
	if err := validateIncident(in); err != nil {
		return nil, err
	}

	employees, err := json.Marshal(emptyIfNil(in.EmployeesInvolved))
	if err != nil {
		return nil, err
	}

	locationID := in.LocationID
	if locationID == "" {
		locationID = "main"
	}

	now := time.Now()
	incident := &entity.Incident{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		LocationID: locationID,

		IncidentDate:           in.IncidentDate,
		IncidentTime:           in.IncidentTime,
		ExactLocation:          in.ExactLocation,
		ViolenceType:           in.ViolenceType,
		OffenderClassification: in.OffenderClassification,
		Description:            in.Description,

		Circumstances:           in.Circumstances,
		ViolenceNature:          in.ViolenceNature,
		Consequences:            in.Consequences,
		LawEnforcementContacted: in.LawEnforcementContacted,
		Injuries:                in.Injuries,
		ProtectiveMeasures:      in.ProtectiveMeasures,
		EmployeesInvolved:       string(employees),
		CorrectiveActions:       in.CorrectiveActions,

		LoggedByName:  in.LoggedByName,
		LoggedByTitle: in.LoggedByTitle,
		LogDate:       now,
		CreatedAt:     now,
	}
	if err := uc.repo.Create(ctx, incident); err != nil {
		return nil, err
	}
	return &dto.CreateIncidentResponse{
		Success:    true,
		IncidentID: incident.ID,
		Message:    "Incident logged successfully",
	}, nil
}

// List devuelve todos los incidentes de la empresa en el orden del log:
// incident_date DESC, incident_time DESC. Sin paginación.
func (uc *IncidentUseCase) List(ctx context.Context, companyID string) (*dto.IncidentListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IncidentResponse, 0, len(list))
	for _, inc := range list {
		items = append(items, *ToIncidentResponse(inc))
	}
	return &dto.IncidentListResponse{Success: true, Incidents: items}, nil
}

// GetByID obtiene un incidente de la empresa. Un id inexistente y un id de
// otra empresa responden ambos ErrNotFound, indistinguibles.
func (uc *IncidentUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.IncidentDetailResponse, error) {
	incident, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if incident == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.IncidentDetailResponse{Success: true, Incident: *ToIncidentResponse(incident)}, nil
}

func validateIncident(in dto.CreateIncidentRequest) error {
	required := []struct {
		field string
		value string
	}{
		{"incident_date", in.IncidentDate},
		{"incident_time", in.IncidentTime},
		{"exact_location", in.ExactLocation},
		{"violence_type", in.ViolenceType},
		{"offender_classification", in.OffenderClassification},
		{"description", in.Description},
		{"logged_by_name", in.LoggedByName},
		{"logged_by_title", in.LoggedByTitle},
	}
	for _, r := range required {
		if r.value == "" {
			return domain.NewValidationError(r.field)
		}
	}
	return nil
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// ToIncidentResponse convierte la entidad a DTO, deserializando employees_involved.
func ToIncidentResponse(inc *entity.Incident) *dto.IncidentResponse {
	if inc == nil {
		return nil
	}
	var employees []string
	if inc.EmployeesInvolved != "" {
		// Datos propios: si el JSON guardado está corrupto se devuelve lista vacía.
		_ = json.Unmarshal([]byte(inc.EmployeesInvolved), &employees)
	}
	if employees == nil {
		employees = []string{}
	}
	return &dto.IncidentResponse{
		ID:                      inc.ID,
		CompanyID:               inc.CompanyID,
		LocationID:              inc.LocationID,
		IncidentDate:            inc.IncidentDate,
		IncidentTime:            inc.IncidentTime,
		ExactLocation:           inc.ExactLocation,
		ViolenceType:            inc.ViolenceType,
		OffenderClassification:  inc.OffenderClassification,
		Description:             inc.Description,
		Circumstances:           inc.Circumstances,
		ViolenceNature:          inc.ViolenceNature,
		Consequences:            inc.Consequences,
		LawEnforcementContacted: inc.LawEnforcementContacted,
		Injuries:                inc.Injuries,
		ProtectiveMeasures:      inc.ProtectiveMeasures,
		EmployeesInvolved:       employees,
		CorrectiveActions:       inc.CorrectiveActions,
		LoggedByName:            inc.LoggedByName,
		LoggedByTitle:           inc.LoggedByTitle,
		LogDate:                 inc.LogDate,
		CreatedAt:               inc.CreatedAt,
	}
}
