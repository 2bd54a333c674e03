package dto

import "time"

// SignupRequest entrada para registro (password en texto, se hashea en use case).
// CompanyID es opcional: el usuario puede registrarse antes de completar billing.
type SignupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"name" validate:"omitempty,max=200"`
	Role      string `json:"role" validate:"omitempty,max=100"`
	CompanyID string `json:"company_id" validate:"omitempty,uuid"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"company_id,omitempty"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	LocationID string    `json:"location_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Tier               string    `json:"tier"`
	EmployeeCount      int       `json:"employee_count"`
	Locations          string    `json:"locations,omitempty"`
	SubscriptionStatus string    `json:"subscription_status"`
	CreatedAt          time.Time `json:"created_at"`
}

// AuthResponse salida de signup/login: la sesión viaja en la cookie, no aquí.
type AuthResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

// MeResponse salida de /api/me. Company es null si el usuario aún no tiene empresa.
type MeResponse struct {
	Success bool             `json:"success"`
	User    UserResponse     `json:"user"`
	Company *CompanyResponse `json:"company"`
}
