package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientUnsubscription registro terminal del retiro de una afiliación.
type ClientUnsubscription struct {
	ID                 int64
	AffiliationID      int64
	Reason             *string
	Cost               decimal.Decimal
	UserID             int64
	Observation        *string
	UnsubscriptionDate time.Time
	UpdatedAt          time.Time
}

// UnsubscriptionPatch campos opcionales para actualizar un retiro; nil = no tocar.
type UnsubscriptionPatch struct {
	Reason      *string
	Cost        *decimal.Decimal
	Observation *string
}

// IsEmpty indica que no se suministró ningún campo.
func (p UnsubscriptionPatch) IsEmpty() bool {
	return p.Reason == nil && p.Cost == nil && p.Observation == nil
}
