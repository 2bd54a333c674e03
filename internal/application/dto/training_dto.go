package dto

import "time"

// CreateTrainingRequest entrada para registrar capacitación completada.
type CreateTrainingRequest struct {
	EmployeeName   string `json:"employee_name" validate:"required"`
	EmployeeID     string `json:"employee_id"`
	TrainingDate   string `json:"training_date" validate:"required"`
	TrainingType   string `json:"training_type" validate:"required"`
	Completed      bool   `json:"completed"`
	CertificateURL string `json:"certificate_url"`
}

// CreateTrainingResponse salida al registrar capacitación.
type CreateTrainingResponse struct {
	Success    bool   `json:"success"`
	TrainingID string `json:"training_id"`
	Message    string `json:"message"`
}

// TrainingResponse salida de un registro de capacitación.
type TrainingResponse struct {
	ID             string    `json:"id"`
	CompanyID      string    `json:"company_id"`
	EmployeeName   string    `json:"employee_name"`
	EmployeeID     string    `json:"employee_id,omitempty"`
	TrainingDate   string    `json:"training_date"`
	TrainingType   string    `json:"training_type"`
	Completed      bool      `json:"completed"`
	CertificateURL string    `json:"certificate_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// TrainingListResponse salida del listado de capacitaciones.
type TrainingListResponse struct {
	Success         bool               `json:"success"`
	TrainingRecords []TrainingResponse `json:"training_records"`
}
