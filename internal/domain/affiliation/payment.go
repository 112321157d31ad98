// Package affiliation contiene las reglas puras del ciclo de vida de afiliaciones mensuales.
package affiliation

import (
	"time"

	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
)

// TransitionDates fechas resultantes de mover una afiliación a status en el instante now.
// No depende del estado previo:
//   - Pagado: pago recibido y registro gubernamental = now
//   - En Proceso: pago recibido = now, registro = nil
//   - Pendiente: ambas nil
func TransitionDates(status entity.PaymentStatus, now time.Time) (paidAt, govRecordAt *time.Time) {
	switch status {
	case entity.PaymentPaid:
		return ptrTime(now), ptrTime(now)
	case entity.PaymentInProcess:
		return ptrTime(now), nil
	default:
		return nil, nil
	}
}

// NormalizeDates conserva las fechas suministradas cuando el estado las admite y
// completa con now las que falten, de modo que un estado distinto de Pendiente
// siempre tenga sus fechas y Pendiente nunca las tenga.
func NormalizeDates(status entity.PaymentStatus, paidAt, govRecordAt *time.Time, now time.Time) (*time.Time, *time.Time) {
	switch status {
	case entity.PaymentPaid:
		if paidAt == nil {
			paidAt = ptrTime(now)
		}
		if govRecordAt == nil {
			govRecordAt = ptrTime(now)
		}
		return paidAt, govRecordAt
	case entity.PaymentInProcess:
		if paidAt == nil {
			paidAt = ptrTime(now)
		}
		return paidAt, nil
	default:
		return nil, nil
	}
}

// ApplyPaymentStatus aplica la transición sobre la entidad.
func ApplyPaymentStatus(a *entity.MonthlyAffiliation, status entity.PaymentStatus, now time.Time) {
	a.PaidStatus = status
	a.DatePaidReceived, a.GovRecordCompletedAt = TransitionDates(status, now)
	a.UpdatedAt = now
}

func ptrTime(t time.Time) *time.Time { return &t }
