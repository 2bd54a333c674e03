package dto

// ErrorResponse cuerpo de error HTTP. Toda respuesta del API lleva el flag
// success; los fallos incluyen un mensaje legible, nunca un stack trace.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
}

// Fail construye un ErrorResponse con success=false.
func Fail(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Code: code, Error: message}
}

// MessageResponse respuesta simple de éxito con mensaje.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
