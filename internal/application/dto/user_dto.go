package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,max=50"`
	OfficeID *int64 `json:"officeId" validate:"omitempty,gt=0"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	OfficeID  *int64    `json:"officeId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// OfficeResponse oficina a la que el usuario tiene acceso.
type OfficeResponse struct {
	OfficeID           int64  `json:"officeId"`
	Name               string `json:"name"`
	RepresentativeName string `json:"representativeName"`
	LogoURL            string `json:"logoUrl"`
}

// LoginResponse token JWT, usuario y oficinas habilitadas.
type LoginResponse struct {
	Token   string           `json:"token"`
	User    UserResponse     `json:"user"`
	Offices []OfficeResponse `json:"offices"`
}
