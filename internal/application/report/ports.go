package report

import (
	"context"
	"time"

	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
	"github.com/jhoicas/afiliaciones-api/internal/domain/repository"
)

// RosterDocument datos de la planilla mensual de una oficina.
type RosterDocument struct {
	Office      entity.Office
	Month       int
	Year        int
	MonthName   string
	Rows        []repository.AffiliationDetail
	GeneratedAt time.Time
}

// RosterPDFGenerator puerto de salida para la representación en PDF de la planilla.
type RosterPDFGenerator interface {
	GenerateRosterPDF(ctx context.Context, doc RosterDocument) ([]byte, error)
}

// OfficeAccess verifica la relación usuario-oficina.
type OfficeAccess interface {
	HasOfficeAccess(ctx context.Context, userID, officeID int64) (bool, error)
}
