package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// UserPerformanceResult agregado crudo por usuario para un mes.
type UserPerformanceResult struct {
	UserID            int64
	Username          string
	TotalAffiliations int
	TotalValue        decimal.Decimal
	PaidValue         decimal.Decimal
}

// MonthlyIncomeResult ingreso pagado de un mes.
type MonthlyIncomeResult struct {
	Year        int
	Month       int
	TotalIncome decimal.Decimal
}

// ReportRepository consultas de solo lectura sobre afiliaciones activas.
type ReportRepository interface {
	PaidTotal(ctx context.Context, officeID, userID int64, month, year int) (decimal.Decimal, error)
	UserPerformance(ctx context.Context, month, year int, officeID *int64) ([]UserPerformanceResult, error)
	MonthlyIncome(ctx context.Context, startYear, endYear int, officeID *int64) ([]MonthlyIncomeResult, error)
}
