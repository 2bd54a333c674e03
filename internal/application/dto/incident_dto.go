package dto

import "time"

// CreateIncidentRequest entrada para registrar un incidente SB 553.
type CreateIncidentRequest struct {
	LocationID string `json:"location_id" validate:"omitempty,max=100"`

	IncidentDate           string `json:"incident_date" validate:"required"`
	IncidentTime           string `json:"incident_time" validate:"required"`
	ExactLocation          string `json:"exact_location" validate:"required"`
	ViolenceType           string `json:"violence_type" validate:"required"`
	OffenderClassification string `json:"offender_classification" validate:"required"`
	Description            string `json:"description" validate:"required"`

	Circumstances           string   `json:"circumstances"`
	ViolenceNature          string   `json:"violence_nature"`
	Consequences            string   `json:"consequences"`
	LawEnforcementContacted bool     `json:"law_enforcement_contacted"`
	Injuries                string   `json:"injuries"`
	ProtectiveMeasures      string   `json:"protective_measures"`
	EmployeesInvolved       []string `json:"employees_involved"`
	CorrectiveActions       string   `json:"corrective_actions"`

	LoggedByName  string `json:"logged_by_name" validate:"required"`
	LoggedByTitle string `json:"logged_by_title" validate:"required"`
}

// CreateIncidentResponse salida al registrar un incidente.
type CreateIncidentResponse struct {
	Success    bool   `json:"success"`
	IncidentID string `json:"incident_id"`
	Message    string `json:"message"`
}

// IncidentResponse salida de un incidente.
type IncidentResponse struct {
	ID                      string    `json:"id"`
	CompanyID               string    `json:"company_id"`
	LocationID              string    `json:"location_id"`
	IncidentDate            string    `json:"incident_date"`
	IncidentTime            string    `json:"incident_time"`
	ExactLocation           string    `json:"exact_location"`
	ViolenceType            string    `json:"violence_type"`
	OffenderClassification  string    `json:"offender_classification"`
	Description             string    `json:"description"`
	Circumstances           string    `json:"circumstances,omitempty"`
	ViolenceNature          string    `json:"violence_nature,omitempty"`
	Consequences            string    `json:"consequences,omitempty"`
	LawEnforcementContacted bool      `json:"law_enforcement_contacted"`
	Injuries                string    `json:"injuries,omitempty"`
	ProtectiveMeasures      string    `json:"protective_measures,omitempty"`
	EmployeesInvolved       []string  `json:"employees_involved"`
	CorrectiveActions       string    `json:"corrective_actions,omitempty"`
	LoggedByName            string    `json:"logged_by_name"`
	LoggedByTitle           string    `json:"logged_by_title"`
	LogDate                 time.Time `json:"log_date"`
	CreatedAt               time.Time `json:"created_at"`
}

// IncidentListResponse salida del listado de incidentes.
type IncidentListResponse struct {
	Success   bool               `json:"success"`
	Incidents []IncidentResponse `json:"incidents"`
}

// IncidentDetailResponse salida de un incidente individual.
type IncidentDetailResponse struct {
	Success  bool             `json:"success"`
	Incident IncidentResponse `json:"incident"`
}
