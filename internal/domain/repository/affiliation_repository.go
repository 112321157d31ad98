package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
)

// AffiliationFilter alcance (oficina, mes, año) de un listado.
type AffiliationFilter struct {
	OfficeID int64
	Month    int
	Year     int
}

// InactiveFilter filtro del histórico de afiliaciones desactivadas.
type InactiveFilter struct {
	OfficeID int64
	UserID   int64
	Month    *int
	Year     *int
}

// AffiliationDetail fila de afiliación con los nombres de cliente, empresa y catálogos resueltos.
type AffiliationDetail struct {
	AffiliationID        int64
	ClientID             int64
	FullName             string
	Identification       string
	CompanyID            *int64
	CompanyName          *string
	Phones               []string
	Month                int
	Year                 int
	Value                decimal.Decimal
	EpsID                *int64
	EpsName              *string
	ArlID                *int64
	ArlName              *string
	CcfID                *int64
	CcfName              *string
	PensionFundID        *int64
	PensionFundName      *string
	Risk                 *string
	Observation          *string
	PaidStatus           entity.PaymentStatus
	DatePaidReceived     *time.Time
	GovRecordCompletedAt *time.Time
	OfficeID             int64
	UserID               int64
	CreatedAt            time.Time
}

// InactiveAffiliationDetail afiliación desactivada junto con su retiro, si existe.
type InactiveAffiliationDetail struct {
	AffiliationDetail
	DeletedAt                 *time.Time
	DeletedByUserID           *int64
	UnsubscriptionID          *int64
	UnsubscriptionReason      *string
	UnsubscriptionCost        *decimal.Decimal
	UnsubscriptionObservation *string
	UnsubscriptionDate        *time.Time
}

// AffiliationRepository define el puerto de persistencia para MonthlyAffiliation.
// Las escrituras sobre filas inexistentes o inactivas devuelven domain.ErrNotFound.
type AffiliationRepository interface {
	// Create asigna a.ID. Una violación del índice único de filas activas devuelve domain.ErrDuplicate.
	Create(ctx context.Context, a *entity.MonthlyAffiliation) error
	GetByID(ctx context.Context, id int64) (*entity.MonthlyAffiliation, error)
	ExistsActive(ctx context.Context, key entity.AffiliationKey) (bool, error)
	// Update reescribe valor, catálogos, riesgo, observación, empresa y estado de pago de una fila activa.
	Update(ctx context.Context, a *entity.MonthlyAffiliation) error
	UpdatePaymentStatus(ctx context.Context, id int64, status entity.PaymentStatus, paidAt, govRecordAt *time.Time, updatedAt time.Time) error
	SoftDelete(ctx context.Context, id, deletedBy int64, at time.Time) error
	// CountByPeriod cuenta todas las filas (activas o no) de la oficina en el período.
	CountByPeriod(ctx context.Context, officeID int64, month, year int) (int, error)
	HasActiveInPeriod(ctx context.Context, officeID int64, month, year int) (bool, error)
	ListActiveByPeriod(ctx context.Context, officeID int64, month, year int) ([]*entity.MonthlyAffiliation, error)
	ListDetails(ctx context.Context, filter AffiliationFilter) ([]AffiliationDetail, error)
	ListInactive(ctx context.Context, filter InactiveFilter) ([]InactiveAffiliationDetail, error)
}
