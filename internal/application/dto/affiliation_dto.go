package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListAffiliationsRequest body para POST /api/affiliations.
type ListAffiliationsRequest struct {
	Month    int   `json:"month" validate:"required,min=1,max=12"`
	Year     int   `json:"year" validate:"required,min=2000,max=9999"`
	UserID   int64 `json:"userId" validate:"required,gt=0"`
	OfficeID int64 `json:"officeId" validate:"required,gt=0"`
}

// AffiliationResponse afiliación con cliente, empresa, teléfonos y catálogos resueltos.
type AffiliationResponse struct {
	AffiliationID        int64           `json:"affiliationId"`
	ClientID             int64           `json:"clientId"`
	FullName             string          `json:"fullName"`
	Identification       string          `json:"identification"`
	CompanyID            *int64          `json:"companyId"`
	CompanyName          *string         `json:"companyName"`
	Phones               []string        `json:"phones"`
	Month                int             `json:"month"`
	Year                 int             `json:"year"`
	Value                decimal.Decimal `json:"value"`
	EpsID                *int64          `json:"epsId"`
	Eps                  *string         `json:"eps"`
	ArlID                *int64          `json:"arlId"`
	Arl                  *string         `json:"arl"`
	CcfID                *int64          `json:"ccfId"`
	Ccf                  *string         `json:"ccf"`
	PensionFundID        *int64          `json:"pensionFundId"`
	PensionFund          *string         `json:"pensionFund"`
	Risk                 *string         `json:"risk"`
	Observation          *string         `json:"observation"`
	Paid                 string          `json:"paid"`
	DatePaidReceived     *time.Time      `json:"datePaidReceived"`
	GovRecordCompletedAt *time.Time      `json:"govRecordCompletedAt"`
	OfficeID             int64           `json:"officeId"`
	UserID               int64           `json:"userId"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// InactiveAffiliationResponse elemento del histórico de afiliaciones desactivadas.
type InactiveAffiliationResponse struct {
	AffiliationResponse
	DeletedAt       *time.Time              `json:"deletedAt"`
	DeletedByUserID *int64                  `json:"deletedByUserId"`
	Unsubscription  *UnsubscriptionResponse `json:"unsubscription"`
}

// InactiveHistoryQuery query de GET /api/affiliations/history/inactive.
type InactiveHistoryQuery struct {
	UserID   int64 `query:"userId" validate:"required,gt=0"`
	OfficeID int64 `query:"officeId" validate:"required,gt=0"`
	Month    int   `query:"month" validate:"omitempty,min=1,max=12"`
	Year     int   `query:"year" validate:"omitempty,min=2000,max=9999"`
}

// DeleteAffiliationRequest body para DELETE /api/affiliations.
type DeleteAffiliationRequest struct {
	AffiliationID int64 `json:"affiliationId" validate:"required,gt=0"`
	UserID        int64 `json:"userId" validate:"required,gt=0"`
}

// UpdatePaidRequest body para PUT /api/affiliations/paid.
type UpdatePaidRequest struct {
	AffiliationID int64  `json:"affiliationId" validate:"required,gt=0"`
	Paid          string `json:"paid" validate:"required"`
}

// UpdatePaidResponse estado y fechas resultantes de la transición.
type UpdatePaidResponse struct {
	Message              string     `json:"message"`
	AffiliationID        int64      `json:"affiliationId"`
	Paid                 string     `json:"paid"`
	DatePaidReceived     *time.Time `json:"datePaidReceived"`
	GovRecordCompletedAt *time.Time `json:"govRecordCompletedAt"`
}

// AffiliationInput datos de la afiliación dentro de POST /api/clients-and-affiliations.
// Los catálogos se aceptan por id o por nombre; el id tiene prioridad.
type AffiliationInput struct {
	Month         *int            `json:"month" validate:"omitempty,min=1,max=12"`
	Year          *int            `json:"year" validate:"omitempty,min=2000,max=9999"`
	Value         decimal.Decimal `json:"value"`
	EpsID         *int64          `json:"epsId" validate:"omitempty,gt=0"`
	Eps           string          `json:"eps" validate:"max=150"`
	ArlID         *int64          `json:"arlId" validate:"omitempty,gt=0"`
	Arl           string          `json:"arl" validate:"max=150"`
	CcfID         *int64          `json:"ccfId" validate:"omitempty,gt=0"`
	Ccf           string          `json:"ccf" validate:"max=150"`
	PensionFundID *int64          `json:"pensionFundId" validate:"omitempty,gt=0"`
	PensionFund   string          `json:"pensionFund" validate:"max=150"`
	Risk          *string         `json:"risk" validate:"omitempty,max=20"`
	Observation   *string         `json:"observation" validate:"omitempty,max=1000"`
	Paid          string          `json:"paid"`
}

// CreateClientAffiliationRequest body para POST /api/clients-and-affiliations.
type CreateClientAffiliationRequest struct {
	FullName       string           `json:"fullName" validate:"required,max=200"`
	Identification string           `json:"identification" validate:"required,max=30"`
	OfficeID       int64            `json:"officeId" validate:"required,gt=0"`
	UserID         int64            `json:"userId" validate:"required,gt=0"`
	CompanyID      *int64           `json:"companyId" validate:"omitempty,gt=0"`
	Phones         []string         `json:"phones" validate:"omitempty,dive,max=30"`
	Affiliation    AffiliationInput `json:"affiliation"`
}

// CreateClientAffiliationResponse resultado de la creación.
type CreateClientAffiliationResponse struct {
	Message       string `json:"message"`
	ClientID      int64  `json:"clientId"`
	ClientCreated bool   `json:"clientCreated"`
	AffiliationID int64  `json:"affiliationId"`
	Month         int    `json:"month"`
	Year          int    `json:"year"`
}

// EditAffiliationRequest body para PUT /api/affiliations. Catálogos por nombre.
type EditAffiliationRequest struct {
	AffiliationID        int64           `json:"affiliationId" validate:"required,gt=0"`
	ClientID             int64           `json:"clientId" validate:"required,gt=0"`
	FullName             string          `json:"fullName" validate:"required,max=200"`
	Identification       string          `json:"identification" validate:"required,max=30"`
	CompanyID            *int64          `json:"companyId" validate:"omitempty,gt=0"`
	Company              string          `json:"company" validate:"max=150"`
	Phones               []string        `json:"phones" validate:"omitempty,dive,max=30"`
	Value                decimal.Decimal `json:"value"`
	Eps                  string          `json:"eps" validate:"max=150"`
	Arl                  string          `json:"arl" validate:"max=150"`
	Ccf                  string          `json:"ccf" validate:"max=150"`
	PensionFund          string          `json:"pensionFund" validate:"max=150"`
	Risk                 *string         `json:"risk" validate:"omitempty,max=20"`
	Observation          *string         `json:"observation" validate:"omitempty,max=1000"`
	Paid                 string          `json:"paid" validate:"required"`
	DatePaidReceived     *DateTime       `json:"datePaidReceived"`
	GovRecordCompletedAt *DateTime       `json:"govRecordCompletedAt"`
}

// RolloverRequest body para POST /api/monthly_affiliations.
type RolloverRequest struct {
	OfficeID int64 `json:"office_id" validate:"required,gt=0"`
}

// RolloverResponse resultado del traslado de afiliaciones al mes actual.
type RolloverResponse struct {
	Message     string `json:"message"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	SourceMonth int    `json:"sourceMonth,omitempty"`
	SourceYear  int    `json:"sourceYear,omitempty"`
	Copied      int    `json:"copied"`
	Skipped     int    `json:"skipped"`
}

// BulkRowError error de una fila del CSV (Row empieza en 1, sin contar el encabezado).
type BulkRowError struct {
	Row   int               `json:"row"`
	Data  map[string]string `json:"data"`
	Error string            `json:"error"`
}

// BulkUploadResponse resumen de la importación masiva.
type BulkUploadResponse struct {
	ImportID     string         `json:"importId"`
	TotalRows    int            `json:"totalRows"`
	ImportedRows int            `json:"importedRows"`
	Errors       []BulkRowError `json:"errors"`
}
