package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/afiliaciones-api/internal/application/dto"
	"github.com/jhoicas/afiliaciones-api/internal/application/report"
)

// ReportHandler reportes de solo lectura y planilla PDF.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// TotalEarnings godoc
// @Summary      Total pagado del mes de referencia y los tres anteriores
// @Tags         reports
// @Produce      json
// @Param        officeId  query  int  true   "oficina"
// @Param        userId    query  int  true   "usuario"
// @Param        month     query  int  false  "mes"
// @Param        year      query  int  false  "año"
// @Success      200   {object}  dto.TotalEarningsResponse
// @Router       /api/reports/total-earnings [get]
func (h *ReportHandler) TotalEarnings(c *fiber.Ctx) error {
	var q dto.TotalEarningsQuery
	if err := bindQuery(c, &q); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.TotalEarnings(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UserPerformance godoc
// @Summary      Desempeño por usuario en el mes
// @Tags         reports
// @Produce      json
// @Param        month     query  int  true   "mes"
// @Param        year      query  int  true   "año"
// @Param        officeId  query  int  false  "oficina"
// @Success      200   {array}   dto.UserPerformanceRow
// @Router       /api/reports/user-performance [get]
func (h *ReportHandler) UserPerformance(c *fiber.Ctx) error {
	var q dto.UserPerformanceQuery
	if err := bindQuery(c, &q); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.UserPerformance(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MonthlyIncomeTrend godoc
// @Summary      Ingreso pagado por mes en un rango de años
// @Tags         reports
// @Produce      json
// @Param        startYear  query  int  true   "año inicial"
// @Param        endYear    query  int  true   "año final"
// @Param        officeId   query  int  false  "oficina"
// @Success      200   {array}   dto.MonthlyIncomeRow
// @Router       /api/reports/monthly-income-trend [get]
func (h *ReportHandler) MonthlyIncomeTrend(c *fiber.Ctx) error {
	var q dto.MonthlyIncomeTrendQuery
	if err := bindQuery(c, &q); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.MonthlyIncomeTrend(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RosterPDF godoc
// @Summary      Planilla PDF de afiliaciones de la oficina
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        officeId  query  int  true  "oficina"
// @Param        month     query  int  true  "mes"
// @Param        year      query  int  true  "año"
// @Success      200   {file}    binary
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reports/affiliations/pdf [get]
func (h *ReportHandler) RosterPDF(c *fiber.Ctx) error {
	var q dto.RosterQuery
	if err := bindQuery(c, &q); err != nil {
		return respondError(c, err)
	}
	pdf, filename, err := h.uc.RosterPDF(c.UserContext(), GetUserID(c), q)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
