package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
	"github.com/jhoicas/afiliaciones-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo agregados de solo lectura; siempre excluye filas inactivas.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// PaidTotal suma de valores pagados del usuario en la oficina y período.
func (r *ReportRepo) PaidTotal(ctx context.Context, officeID, userID int64, month, year int) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(value), 0)
		FROM monthly_affiliations
		WHERE office_id = $1 AND user_id = $2 AND month = $3 AND year = $4
		  AND is_active AND paid_status = $5`,
		officeID, userID, month, year, string(entity.PaymentPaid)).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("paid total: %w", err)
	}
	return total, nil
}

// UserPerformance agregado por usuario del mes, de mayor a menor valor pagado.
func (r *ReportRepo) UserPerformance(ctx context.Context, month, year int, officeID *int64) ([]repository.UserPerformanceResult, error) {
	rows, err := r.q.Query(ctx, `
		SELECT ma.user_id, COALESCE(u.username, ''),
			COUNT(*),
			COALESCE(SUM(ma.value), 0),
			COALESCE(SUM(ma.value) FILTER (WHERE ma.paid_status = $4), 0) AS paid
		FROM monthly_affiliations ma
		LEFT JOIN users u ON u.id = ma.user_id
		WHERE ma.month = $1 AND ma.year = $2 AND ma.is_active
		  AND ($3::bigint IS NULL OR ma.office_id = $3)
		GROUP BY ma.user_id, u.username
		ORDER BY paid DESC, ma.user_id`, month, year, officeID, string(entity.PaymentPaid))
	if err != nil {
		return nil, fmt.Errorf("user performance: %w", err)
	}
	defer rows.Close()
	var out []repository.UserPerformanceResult
	for rows.Next() {
		var res repository.UserPerformanceResult
		if err := rows.Scan(&res.UserID, &res.Username, &res.TotalAffiliations, &res.TotalValue, &res.PaidValue); err != nil {
			return nil, fmt.Errorf("scan user performance: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// MonthlyIncome ingreso pagado por (año, mes) dentro del rango de años, en orden cronológico.
func (r *ReportRepo) MonthlyIncome(ctx context.Context, startYear, endYear int, officeID *int64) ([]repository.MonthlyIncomeResult, error) {
	rows, err := r.q.Query(ctx, `
		SELECT year, month, SUM(value)
		FROM monthly_affiliations
		WHERE year BETWEEN $1 AND $2 AND is_active AND paid_status = $4
		  AND ($3::bigint IS NULL OR office_id = $3)
		GROUP BY year, month
		ORDER BY year, month`, startYear, endYear, officeID, string(entity.PaymentPaid))
	if err != nil {
		return nil, fmt.Errorf("monthly income: %w", err)
	}
	defer rows.Close()
	var out []repository.MonthlyIncomeResult
	for rows.Next() {
		var res repository.MonthlyIncomeResult
		if err := rows.Scan(&res.Year, &res.Month, &res.TotalIncome); err != nil {
			return nil, fmt.Errorf("scan monthly income: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}
