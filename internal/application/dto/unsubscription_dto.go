package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateUnsubscriptionRequest body para POST /api/affiliations/unsubscriptions.
type CreateUnsubscriptionRequest struct {
	AffiliationID int64            `json:"affiliationId" validate:"required,gt=0"`
	UserID        int64            `json:"userId" validate:"required,gt=0"`
	Reason        *string          `json:"reason" validate:"omitempty,max=255"`
	Cost          *decimal.Decimal `json:"cost"`
	Observation   *string          `json:"observation" validate:"omitempty,max=1000"`
}

// UpdateUnsubscriptionRequest body para PUT /api/affiliations/unsubscriptions/update.
type UpdateUnsubscriptionRequest struct {
	ID          int64            `json:"id" validate:"required,gt=0"`
	Reason      *string          `json:"reason" validate:"omitempty,max=255"`
	Cost        *decimal.Decimal `json:"cost"`
	Observation *string          `json:"observation" validate:"omitempty,max=1000"`
}

// UnsubscriptionResponse retiro registrado.
type UnsubscriptionResponse struct {
	ID                 int64           `json:"id"`
	AffiliationID      int64           `json:"affiliationId"`
	Reason             *string         `json:"reason"`
	Cost               decimal.Decimal `json:"cost"`
	UserID             int64           `json:"userId,omitempty"`
	Observation        *string         `json:"observation"`
	UnsubscriptionDate time.Time       `json:"unsubscriptionDate"`
	UpdatedAt          *time.Time      `json:"updatedAt,omitempty"`
}
