package entity

import "time"

// Client representa a la persona afiliada. Identification (cédula) es la llave de negocio.
type Client struct {
	ID             int64
	FullName       string
	Identification string
	CompanyID      *int64 // empresa que refiere al cliente (catálogo companies)
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ClientPhone teléfono de un cliente; el par (ClientID, PhoneNumber) no se repite.
type ClientPhone struct {
	ClientID    int64
	PhoneNumber string
}
