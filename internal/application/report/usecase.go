// Package report agrega afiliaciones activas para tableros: ingresos, desempeño por usuario,
// tendencia mensual y la planilla en PDF. No escribe.
package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/afiliaciones-api/internal/application/dto"
	"github.com/jhoicas/afiliaciones-api/internal/application/ports"
	"github.com/jhoicas/afiliaciones-api/internal/domain"
	domainaff "github.com/jhoicas/afiliaciones-api/internal/domain/affiliation"
	"github.com/jhoicas/afiliaciones-api/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// ReportUseCase consultas de reportes.
type ReportUseCase struct {
	repo       repository.ReportRepository
	affRepo    repository.AffiliationRepository
	officeRepo repository.OfficeRepository
	access     OfficeAccess
	generator  RosterPDFGenerator
	clock      ports.Clock
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	repo repository.ReportRepository,
	affRepo repository.AffiliationRepository,
	officeRepo repository.OfficeRepository,
	access OfficeAccess,
	generator RosterPDFGenerator,
	clock ports.Clock,
) *ReportUseCase {
	return &ReportUseCase{
		repo:       repo,
		affRepo:    affRepo,
		officeRepo: officeRepo,
		access:     access,
		generator:  generator,
		clock:      clock,
	}
}

// TotalEarnings total pagado del usuario en la oficina para el mes de referencia y los tres anteriores.
// Sin mes/año se toma el período actual.
func (uc *ReportUseCase) TotalEarnings(ctx context.Context, q dto.TotalEarningsQuery) (*dto.TotalEarningsResponse, error) {
	ref := domainaff.PeriodOf(uc.clock.Now(), uc.clock.Location())
	if q.Month > 0 {
		ref.Month = q.Month
	}
	if q.Year > 0 {
		ref.Year = q.Year
	}
	if !ref.Valid() {
		return nil, domain.WithDetail(domain.ErrInvalidInput, "mes o año inválido")
	}

	var months [4]dto.MonthEarnings
	g, gctx := errgroup.WithContext(ctx)
	for i := range months {
		i := i
		p := ref.Minus(i)
		g.Go(func() error {
			total, err := uc.repo.PaidTotal(gctx, q.OfficeID, q.UserID, p.Month, p.Year)
			if err != nil {
				return fmt.Errorf("report: total pagado %s: %w", p, err)
			}
			months[i] = dto.MonthEarnings{Month: p.Month, Year: p.Year, TotalEarnings: total}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dto.TotalEarningsResponse{
		CurrentMonth: months[0],
		MonthMinus1:  months[1],
		MonthMinus2:  months[2],
		MonthMinus3:  months[3],
	}, nil
}

// UserPerformance afiliaciones, valor bruto y valor pagado por usuario en el mes.
func (uc *ReportUseCase) UserPerformance(ctx context.Context, q dto.UserPerformanceQuery) ([]dto.UserPerformanceRow, error) {
	var officeID *int64
	if q.OfficeID > 0 {
		officeID = &q.OfficeID
	}
	rows, err := uc.repo.UserPerformance(ctx, q.Month, q.Year, officeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserPerformanceRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.UserPerformanceRow{
			UserID:                      r.UserID,
			Username:                    r.Username,
			TotalAffiliationsRegistered: r.TotalAffiliations,
			TotalValueBrute:             r.TotalValue,
			TotalValuePaid:              r.PaidValue,
			PercentagePaid:              PercentagePaid(r.PaidValue, r.TotalValue),
		})
	}
	return out, nil
}

// PercentagePaid paid/total*100 con dos decimales; nil si el total es cero.
func PercentagePaid(paid, total decimal.Decimal) *decimal.Decimal {
	if total.IsZero() {
		return nil
	}
	p := paid.Mul(hundred).DivRound(total, 2)
	return &p
}

// MonthlyIncomeTrend ingreso pagado por mes entre startYear y endYear.
func (uc *ReportUseCase) MonthlyIncomeTrend(ctx context.Context, q dto.MonthlyIncomeTrendQuery) ([]dto.MonthlyIncomeRow, error) {
	if q.EndYear < q.StartYear {
		return nil, domain.WithDetail(domain.ErrInvalidInput, "endYear debe ser mayor o igual a startYear")
	}
	var officeID *int64
	if q.OfficeID > 0 {
		officeID = &q.OfficeID
	}
	rows, err := uc.repo.MonthlyIncome(ctx, q.StartYear, q.EndYear, officeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MonthlyIncomeRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MonthlyIncomeRow{
			Year:        r.Year,
			Month:       r.Month,
			MonthName:   domainaff.MonthName(r.Month),
			TotalIncome: r.TotalIncome,
		})
	}
	return out, nil
}

// RosterPDF genera la planilla de afiliaciones activas de la oficina para el período.
//
// Retorna:
//   - domain.ErrForbidden si el usuario no tiene acceso a la oficina.
//   - domain.ErrNotFound  si la oficina no existe o no hay afiliaciones.
func (uc *ReportUseCase) RosterPDF(ctx context.Context, userID int64, q dto.RosterQuery) (pdf []byte, filename string, err error) {
	ok, err := uc.access.HasOfficeAccess(ctx, userID, q.OfficeID)
	if err != nil {
		return nil, "", fmt.Errorf("report: verificar acceso a oficina: %w", err)
	}
	if !ok {
		return nil, "", domain.WithDetail(domain.ErrForbidden, "el usuario no tiene acceso a esta oficina")
	}

	office, err := uc.officeRepo.GetByID(ctx, q.OfficeID)
	if err != nil {
		return nil, "", fmt.Errorf("report: obtener oficina: %w", err)
	}
	if office == nil {
		return nil, "", domain.WithDetail(domain.ErrNotFound, "oficina no encontrada")
	}

	rows, err := uc.affRepo.ListDetails(ctx, repository.AffiliationFilter{OfficeID: q.OfficeID, Month: q.Month, Year: q.Year})
	if err != nil {
		return nil, "", fmt.Errorf("report: listar afiliaciones: %w", err)
	}
	if len(rows) == 0 {
		return nil, "", domain.WithDetail(domain.ErrNotFound,
			fmt.Sprintf("No se encontraron afiliaciones para %02d/%d en la oficina %d", q.Month, q.Year, q.OfficeID))
	}

	pdf, err = uc.generator.GenerateRosterPDF(ctx, RosterDocument{
		Office:      *office,
		Month:       q.Month,
		Year:        q.Year,
		MonthName:   domainaff.MonthName(q.Month),
		Rows:        rows,
		GeneratedAt: uc.clock.Now(),
	})
	if err != nil {
		return nil, "", fmt.Errorf("report: generación de PDF fallida: %w", err)
	}
	return pdf, fmt.Sprintf("afiliaciones_%d_%d_%02d.pdf", q.OfficeID, q.Year, q.Month), nil
}
