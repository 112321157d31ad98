package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus estado de pago de una afiliación mensual.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pendiente"
	PaymentPaid      PaymentStatus = "Pagado"
	PaymentInProcess PaymentStatus = "En Proceso"
)

// ParsePaymentStatus valida el texto recibido contra los estados canónicos.
func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPaid, PaymentInProcess:
		return PaymentStatus(s), true
	}
	return "", false
}

// MonthlyAffiliation afiliación de un cliente para un mes/año en una oficina, registrada por un usuario.
type MonthlyAffiliation struct {
	ID                   int64
	ClientID             int64
	Month                int
	Year                 int
	Value                decimal.Decimal
	EpsID                *int64
	ArlID                *int64
	CcfID                *int64
	PensionFundID        *int64
	Risk                 *string
	Observation          *string
	OfficeID             int64
	UserID               int64
	CompanyID            *int64
	PaidStatus           PaymentStatus
	DatePaidReceived     *time.Time
	GovRecordCompletedAt *time.Time
	IsActive             bool
	DeletedAt            *time.Time
	DeletedByUserID      *int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// AffiliationKey identidad de negocio: a lo sumo una fila activa por llave.
type AffiliationKey struct {
	ClientID int64
	Month    int
	Year     int
	OfficeID int64
	UserID   int64
}

// Key devuelve la llave de unicidad de la afiliación.
func (a *MonthlyAffiliation) Key() AffiliationKey {
	return AffiliationKey{
		ClientID: a.ClientID,
		Month:    a.Month,
		Year:     a.Year,
		OfficeID: a.OfficeID,
		UserID:   a.UserID,
	}
}
