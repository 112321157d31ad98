package entity

import "time"

// Roles sembrados en user_roles.
const (
	RoleAdmin  = "admin"
	RoleAsesor = "asesor"
)

// User representa un operador del back-office.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Office sede desde la que se gestionan afiliaciones.
type Office struct {
	ID                 int64
	Name               string
	RepresentativeName string
	LogoURL            string
}
