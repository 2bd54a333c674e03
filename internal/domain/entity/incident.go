package entity

import "time"

// Categorías de violencia laboral según Cal/OSHA para SB 553 (LC 6401.9).
const (
	ViolenceType1CriminalIntent = "type_1_criminal_intent"
	ViolenceType2Customer       = "type_2_customer_client"
	ViolenceType3Worker         = "type_3_worker_on_worker"
	ViolenceType4Personal       = "type_4_personal_relationship"
)

// Clasificaciones del agresor registradas en el log de incidentes.
const (
	OffenderStranger         = "stranger"
	OffenderCustomer         = "customer_client"
	OffenderEmployee         = "employee"
	OffenderFormerEmployee   = "former_employee"
	OffenderPersonalRelation = "personal_relation"
	OffenderOther            = "other"
)

// Incident es una entrada del violent incident log exigido por SB 553.
// Las fechas del incidente se guardan como texto ISO (YYYY-MM-DD / HH:MM)
// porque así las reporta el formulario y así ordena el log.
// Los incidentes son inmutables después de creados: no hay update ni delete.
type Incident struct {
	ID         string
	CompanyID  string
	LocationID string

	// Campos requeridos por SB 553
	IncidentDate           string // YYYY-MM-DD
	IncidentTime           string // HH:MM
	ExactLocation          string
	ViolenceType           string
	OffenderClassification string
	Description            string

	// Detalle opcional
	Circumstances           string
	ViolenceNature          string
	Consequences            string
	LawEnforcementContacted bool
	Injuries                string
	ProtectiveMeasures      string
	EmployeesInvolved       string // lista serializada como JSON
	CorrectiveActions       string

	// Procedencia del registro
	LoggedByName  string
	LoggedByTitle string
	LogDate       time.Time
	CreatedAt     time.Time
}

// ViolenceTypeCount agrupa el conteo de incidentes por tipo de violencia (stats).
type ViolenceTypeCount struct {
	ViolenceType string `json:"violence_type"`
	Count        int    `json:"count"`
}
