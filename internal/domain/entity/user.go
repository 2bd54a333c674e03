package entity

import "time"

// User representa un usuario del sistema. CompanyID queda vacío hasta que
// el flujo de billing asocia al usuario con su empresa.
type User struct {
	ID           string
	CompanyID    string // vacío = sin empresa asignada todavía
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string
	LocationID   string
	CreatedAt    time.Time
}
