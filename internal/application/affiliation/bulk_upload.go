package affiliation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/afiliaciones-api/internal/application/catalog"
	"github.com/jhoicas/afiliaciones-api/internal/application/client"
	"github.com/jhoicas/afiliaciones-api/internal/application/dto"
	"github.com/jhoicas/afiliaciones-api/internal/application/ports"
	"github.com/jhoicas/afiliaciones-api/internal/domain"
	domainaff "github.com/jhoicas/afiliaciones-api/internal/domain/affiliation"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
	"github.com/jhoicas/afiliaciones-api/internal/domain/repository"
)

// Columnas del archivo de importación.
const (
	ColNombre      = "NOMBRE"
	ColCedula      = "CEDULA"
	ColEmpresa     = "EMPRESA"
	ColTelefono    = "TELEFONO"
	ColPago        = "PAGO RECIBIDO"
	ColFechaGob    = "FECHA AFILIACION (PLATAFORMAS GOB)"
	ColValor       = "VALOR"
	ColEPS         = "EPS"
	ColARL         = "ARL"
	ColRiesgo      = "RIESGO"
	ColCCF         = "CCF"
	ColPension     = "F. PENSION"
	ColNovedad     = "NOVEDAD"
	importDateForm = "2/1/2006"
)

var phoneSeparators = regexp.MustCompile(`\s+-\s+|[/,;]`)

// BulkImporter importa afiliaciones del mes desde un CSV.
type BulkImporter struct {
	tx      TxRunner
	access  OfficeAccess
	reader  SheetReader
	clock   ports.Clock
	maxRows int
}

// NewBulkImporter construye el importador. maxRows <= 0 desactiva el límite.
func NewBulkImporter(tx TxRunner, access OfficeAccess, reader SheetReader, clock ports.Clock, maxRows int) *BulkImporter {
	return &BulkImporter{tx: tx, access: access, reader: reader, clock: clock, maxRows: maxRows}
}

// importRow fila ya interpretada, lista para persistir.
type importRow struct {
	FullName       string
	Identification string
	Company        string
	Phones         []string
	PaidAt         *time.Time
	GovRecordAt    *time.Time
	Value          decimal.Decimal
	Eps            string
	Arl            string
	Risk           *string
	Ccf            string
	PensionFund    string
	Observation    *string
}

// Import procesa el archivo en una sola transacción; cada fila corre en su propio savepoint
// y sus errores se acumulan en el resumen sin abortar el lote. Solo un fallo fuera del ciclo
// (archivo ilegible, carga de catálogos, commit) revierte todo.
func (b *BulkImporter) Import(ctx context.Context, userID, officeID int64, file io.Reader) (*dto.BulkUploadResponse, error) {
	ok, err := b.access.HasOfficeAccess(ctx, userID, officeID)
	if err != nil {
		return nil, fmt.Errorf("bulk: verificar acceso a oficina: %w", err)
	}
	if !ok {
		return nil, domain.WithDetail(domain.ErrForbidden, "el usuario no tiene acceso a esta oficina")
	}

	headers, rows, err := b.reader.ReadRows(file)
	if err != nil {
		return nil, domain.WithDetail(domain.ErrInvalidInput, "no se pudo leer el archivo: "+err.Error())
	}
	if err := requireColumns(headers, ColNombre, ColCedula, ColEmpresa, ColValor); err != nil {
		return nil, err
	}
	if b.maxRows > 0 && len(rows) > b.maxRows {
		return nil, domain.WithDetail(domain.ErrInvalidInput,
			fmt.Sprintf("el archivo tiene %d filas; el máximo permitido es %d", len(rows), b.maxRows))
	}

	now := b.clock.Now()
	loc := b.clock.Location()
	period := domainaff.PeriodOf(now, loc)
	out := &dto.BulkUploadResponse{
		ImportID:  uuid.NewString(),
		TotalRows: len(rows),
		Errors:    []dto.BulkRowError{},
	}
	logger := log.With().Str("import_id", out.ImportID).Int64("office_id", officeID).Logger()

	err = b.tx.RunImport(ctx, func(catalogRepo repository.CatalogRepository, runRow RowRunner) error {
		idx, err := catalog.LoadIndexes(ctx, catalogRepo,
			entity.CatalogCompany, entity.CatalogEPS, entity.CatalogARL, entity.CatalogCCF, entity.CatalogPensionFund)
		if err != nil {
			return err
		}

		for i, raw := range rows {
			rowNum := i + 1
			err := b.importOne(ctx, runRow, idx, raw, userID, officeID, period, now, loc)
			if err == nil {
				out.ImportedRows++
				continue
			}
			msg := rowErrorMessage(err)
			if msg == "" {
				logger.Error().Err(err).Int("row", rowNum).Msg("bulk: error inesperado en fila")
				msg = "error interno al procesar la fila"
			}
			out.Errors = append(out.Errors, dto.BulkRowError{Row: rowNum, Data: raw, Error: msg})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info().Int("total", out.TotalRows).Int("imported", out.ImportedRows).Msg("bulk: importación finalizada")
	return out, nil
}

func (b *BulkImporter) importOne(
	ctx context.Context,
	runRow RowRunner,
	idx catalog.Indexes,
	raw map[string]string,
	userID, officeID int64,
	period domainaff.Period,
	now time.Time,
	loc *time.Location,
) error {
	r, err := parseImportRow(raw, loc)
	if err != nil {
		return err
	}
	companyID, ok := idx[entity.CatalogCompany].Lookup(r.Company)
	if !ok {
		return catalog.NotFoundError(entity.CatalogCompany, r.Company)
	}
	eps, err := idx[entity.CatalogEPS].Resolve(r.Eps)
	if err != nil {
		return err
	}
	arl, err := idx[entity.CatalogARL].Resolve(r.Arl)
	if err != nil {
		return err
	}
	ccf, err := idx[entity.CatalogCCF].Resolve(r.Ccf)
	if err != nil {
		return err
	}
	pension, err := idx[entity.CatalogPensionFund].Resolve(r.PensionFund)
	if err != nil {
		return err
	}

	return runRow(ctx, func(clientRepo repository.ClientRepository, affRepo repository.AffiliationRepository) error {
		c, _, err := client.FindOrCreate(ctx, clientRepo, client.Identity{
			Identification: r.Identification,
			FullName:       r.FullName,
			CompanyID:      &companyID,
		}, now)
		if err != nil {
			return err
		}
		if err := client.UpsertPhones(ctx, clientRepo, c.ID, r.Phones); err != nil {
			return err
		}
		a := &entity.MonthlyAffiliation{
			ClientID:             c.ID,
			Month:                period.Month,
			Year:                 period.Year,
			Value:                r.Value,
			EpsID:                eps,
			ArlID:                arl,
			CcfID:                ccf,
			PensionFundID:        pension,
			Risk:                 r.Risk,
			Observation:          r.Observation,
			OfficeID:             officeID,
			UserID:               userID,
			CompanyID:            &companyID,
			PaidStatus:           entity.PaymentPending,
			DatePaidReceived:     r.PaidAt,
			GovRecordCompletedAt: r.GovRecordAt,
			IsActive:             true,
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		if r.PaidAt != nil {
			a.PaidStatus = entity.PaymentPaid
		}
		return insertUnique(ctx, affRepo, a)
	})
}

// parseImportRow interpreta una fila. La fecha de pago implica estado Pagado y la fecha
// de registro gubernamental toma la de pago si no viene.
func parseImportRow(raw map[string]string, loc *time.Location) (importRow, error) {
	get := func(col string) string { return strings.TrimSpace(raw[col]) }

	r := importRow{
		FullName:       get(ColNombre),
		Identification: get(ColCedula),
		Company:        get(ColEmpresa),
		Phones:         SplitPhones(get(ColTelefono)),
		Eps:            get(ColEPS),
		Arl:            get(ColARL),
		Ccf:            get(ColCCF),
		PensionFund:    get(ColPension),
		Risk:           optional(get(ColRiesgo)),
		Observation:    optional(get(ColNovedad)),
	}
	if r.FullName == "" || r.Identification == "" {
		return importRow{}, domain.WithDetail(domain.ErrInvalidInput, "NOMBRE y CEDULA son requeridos.")
	}
	if r.Company == "" {
		return importRow{}, domain.WithDetail(domain.ErrInvalidInput, "La columna EMPRESA es requerida.")
	}

	if get(ColValor) == "" {
		return importRow{}, domain.WithDetail(domain.ErrInvalidInput, "La columna VALOR es requerida.")
	}
	value, err := ParseValue(get(ColValor))
	if err != nil {
		return importRow{}, domain.WithDetail(domain.ErrInvalidInput, fmt.Sprintf("VALOR '%s' inválido.", get(ColValor)))
	}
	r.Value = value

	if r.PaidAt, err = ParseDate(get(ColPago), loc); err != nil {
		return importRow{}, domain.WithDetail(domain.ErrInvalidInput, fmt.Sprintf("PAGO RECIBIDO '%s' no tiene formato DD/MM/AAAA.", get(ColPago)))
	}
	if r.GovRecordAt, err = ParseDate(get(ColFechaGob), loc); err != nil {
		return importRow{}, domain.WithDetail(domain.ErrInvalidInput, fmt.Sprintf("Fecha Afiliacion '%s' no tiene formato DD/MM/AAAA.", get(ColFechaGob)))
	}
	if r.PaidAt == nil {
		r.GovRecordAt = nil
	} else if r.GovRecordAt == nil {
		r.GovRecordAt = r.PaidAt
	}
	return r, nil
}

// ParseValue interpreta montos en formato colombiano: "110.000", "110.000,50", "$ 95.000".
// Vacío equivale a cero.
func ParseValue(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, nil
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if v.IsNegative() {
		return decimal.Zero, fmt.Errorf("valor negativo")
	}
	return v, nil
}

// ParseDate interpreta DD/MM/AAAA en loc; vacío → nil.
func ParseDate(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(importDateForm, s, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SplitPhones separa varios teléfonos en una celda ("300123 - 310456").
func SplitPhones(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return client.NormalizePhones(phoneSeparators.Split(s, -1))
}

func requireColumns(headers []string, cols ...string) error {
	have := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		have[h] = struct{}{}
	}
	var missing []string
	for _, c := range cols {
		if _, ok := have[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return domain.WithDetail(domain.ErrInvalidInput, "faltan columnas en el archivo: "+strings.Join(missing, ", "))
	}
	return nil
}

// rowErrorMessage devuelve el mensaje de negocio del error o "" si es inesperado.
func rowErrorMessage(err error) string {
	var de *domain.DetailedError
	if errors.As(err, &de) {
		return de.Detail
	}
	for _, kind := range []error{domain.ErrInvalidInput, domain.ErrDuplicate, domain.ErrCatalogEntryNotFound} {
		if errors.Is(err, kind) {
			return err.Error()
		}
	}
	return ""
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
