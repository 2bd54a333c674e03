package dto

// CreateCheckoutRequest entrada para iniciar el flujo de billing.
type CreateCheckoutRequest struct {
	CompanyName   string `json:"company_name" validate:"required"`
	Tier          string `json:"tier" validate:"required,oneof=starter professional enterprise"`
	EmployeeCount int    `json:"employee_count" validate:"omitempty,min=1"`
}

// CreateCheckoutResponse salida con la URL del checkout hosteado.
type CreateCheckoutResponse struct {
	Success     bool   `json:"success"`
	CompanyID   string `json:"company_id"`
	CheckoutURL string `json:"checkout_url"`
}

// VerifySessionResponse salida del verify síncrono post-checkout.
type VerifySessionResponse struct {
	Success            bool   `json:"success"`
	CompanyID          string `json:"company_id"`
	SubscriptionStatus string `json:"subscription_status"`
}

// WebhookAckResponse confirmación de un evento de webhook procesado (o ignorado).
type WebhookAckResponse struct {
	Success bool   `json:"success"`
	Event   string `json:"event"`
}
