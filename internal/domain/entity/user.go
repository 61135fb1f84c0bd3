package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User representa un usuario de la consola.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Role         string // admin, operador
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Snapshot datos del usuario que se copian en una carga.
func (u *User) Snapshot() UserSnapshot {
	return UserSnapshot{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName}
}
