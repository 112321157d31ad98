package dto

import "github.com/shopspring/decimal"

// TotalEarningsQuery query de GET /api/reports/total-earnings.
type TotalEarningsQuery struct {
	OfficeID int64 `query:"officeId" validate:"required,gt=0"`
	UserID   int64 `query:"userId" validate:"required,gt=0"`
	Month    int   `query:"month" validate:"omitempty,min=1,max=12"`
	Year     int   `query:"year" validate:"omitempty,min=2000,max=9999"`
}

// MonthEarnings total pagado de un mes.
type MonthEarnings struct {
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	TotalEarnings decimal.Decimal `json:"totalEarnings"`
}

// TotalEarningsResponse mes de referencia y los tres anteriores.
type TotalEarningsResponse struct {
	CurrentMonth MonthEarnings `json:"currentMonth"`
	MonthMinus1  MonthEarnings `json:"monthMinus1"`
	MonthMinus2  MonthEarnings `json:"monthMinus2"`
	MonthMinus3  MonthEarnings `json:"monthMinus3"`
}

// UserPerformanceQuery query de GET /api/reports/user-performance.
type UserPerformanceQuery struct {
	Month    int   `query:"month" validate:"required,min=1,max=12"`
	Year     int   `query:"year" validate:"required,min=2000,max=9999"`
	OfficeID int64 `query:"officeId" validate:"omitempty,gt=0"`
}

// UserPerformanceRow desempeño de un usuario. PercentagePaid es null si el total bruto es cero.
type UserPerformanceRow struct {
	UserID                      int64            `json:"userId"`
	Username                    string           `json:"username"`
	TotalAffiliationsRegistered int              `json:"totalAffiliationsRegistered"`
	TotalValueBrute             decimal.Decimal  `json:"totalValueBrute"`
	TotalValuePaid              decimal.Decimal  `json:"totalValuePaid"`
	PercentagePaid              *decimal.Decimal `json:"percentagePaid"`
}

// MonthlyIncomeTrendQuery query de GET /api/reports/monthly-income-trend.
type MonthlyIncomeTrendQuery struct {
	StartYear int   `query:"startYear" validate:"required,min=2000,max=9999"`
	EndYear   int   `query:"endYear" validate:"required,min=2000,max=9999,gtefield=StartYear"`
	OfficeID  int64 `query:"officeId" validate:"omitempty,gt=0"`
}

// MonthlyIncomeRow ingreso pagado de un mes con su nombre en español.
type MonthlyIncomeRow struct {
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	MonthName   string          `json:"monthName"`
	TotalIncome decimal.Decimal `json:"totalIncome"`
}

// RosterQuery query de GET /api/reports/affiliations/pdf.
type RosterQuery struct {
	OfficeID int64 `query:"officeId" validate:"required,gt=0"`
	Month    int   `query:"month" validate:"required,min=1,max=12"`
	Year     int   `query:"year" validate:"required,min=2000,max=9999"`
}
