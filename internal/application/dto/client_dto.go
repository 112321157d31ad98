package dto

import "time"

// CreateClientRequest body para POST /api/clients.
type CreateClientRequest struct {
	FullName       string   `json:"fullName" validate:"required,max=200"`
	Identification string   `json:"identification" validate:"required,max=30"`
	CompanyID      *int64   `json:"companyId" validate:"omitempty,gt=0"`
	Phones         []string `json:"phones" validate:"omitempty,dive,max=30"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID             int64     `json:"id"`
	FullName       string    `json:"fullName"`
	Identification string    `json:"identification"`
	CompanyID      *int64    `json:"companyId"`
	Phones         []string  `json:"phones"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
