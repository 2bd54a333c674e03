package entity

import "time"

// TrainingRecord registra la capacitación SB 553 completada por un empleado.
// Forma canónica centrada en el empleado (employee_name + completed); ver
// DESIGN.md sobre la variante trainer/session que no se adoptó.
// Inmutable después de creado.
type TrainingRecord struct {
	ID             string
	CompanyID      string
	EmployeeName   string
	EmployeeID     string
	TrainingDate   string // YYYY-MM-DD
	TrainingType   string
	Completed      bool
	CertificateURL string
	CreatedAt      time.Time
}
