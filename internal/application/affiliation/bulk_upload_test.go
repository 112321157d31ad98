package affiliation_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/afiliaciones-api/internal/application/affiliation"
	"github.com/jhoicas/afiliaciones-api/internal/application/ports"
	"github.com/jhoicas/afiliaciones-api/internal/domain"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
	"github.com/jhoicas/afiliaciones-api/internal/testutil/memstore"
)

// sheetStub devuelve filas ya decodificadas.
type sheetStub struct {
	headers []string
	rows    []map[string]string
	err     error
}

func (s sheetStub) ReadRows(io.Reader) ([]string, []map[string]string, error) {
	return s.headers, s.rows, s.err
}

var importHeaders = []string{
	affiliation.ColNombre, affiliation.ColCedula, affiliation.ColEmpresa, affiliation.ColTelefono,
	affiliation.ColPago, affiliation.ColFechaGob, affiliation.ColValor, affiliation.ColEPS,
}

func (f *fixture) importer(reader affiliation.SheetReader, maxRows int) *affiliation.BulkImporter {
	return affiliation.NewBulkImporter(memstore.NewTxRunner(f.store), f.store.UserRepo(), reader, ports.FixedClock{T: f.now}, maxRows)
}

func TestImport_FilaConEmpresaInexistente(t *testing.T) {
	f := newFixture(t)
	f.store.AddCatalog(entity.CatalogCompany, "Acme")
	f.store.AddCatalog(entity.CatalogEPS, "Sanitas")
	reader := sheetStub{headers: importHeaders, rows: []map[string]string{
		{"NOMBRE": "Ana Gómez", "CEDULA": "1", "EMPRESA": "Acme", "VALOR": "110.000", "EPS": "SANITAS"},
		{"NOMBRE": "Luis Mora", "CEDULA": "2", "EMPRESA": "Inexistente", "VALOR": "90.000"},
		{"NOMBRE": "Eva Ríos", "CEDULA": "3", "EMPRESA": "acme", "TELEFONO": "300111 - 310222", "PAGO RECIBIDO": "05/06/2024", "VALOR": "95.000"},
	}}

	res, err := f.importer(reader, 0).Import(context.Background(), f.userID, f.officeID, strings.NewReader(""))
	require.NoError(t, err)
	assert.NotEmpty(t, res.ImportID)
	assert.Equal(t, 3, res.TotalRows)
	assert.Equal(t, 2, res.ImportedRows)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 2, res.Errors[0].Row)
	assert.Equal(t, "Empresa 'Inexistente' no encontrada en el catálogo.", res.Errors[0].Error)
	assert.Equal(t, "Luis Mora", res.Errors[0].Data["NOMBRE"])

	clients := f.store.Clients()
	require.Len(t, clients, 2)
	assert.Equal(t, "1", clients[0].Identification)
	assert.Equal(t, "3", clients[1].Identification)
	assert.Equal(t, []string{"300111", "310222"}, f.store.Phones(clients[1].ID))

	rows := f.store.Affiliations()
	require.Len(t, rows, 2)
	assert.True(t, decimal.NewFromInt(110000).Equal(rows[0].Value))
	assert.Equal(t, entity.PaymentPending, rows[0].PaidStatus)
	assert.NotNil(t, rows[0].EpsID)

	assert.Equal(t, entity.PaymentPaid, rows[1].PaidStatus)
	require.NotNil(t, rows[1].DatePaidReceived)
	require.NotNil(t, rows[1].GovRecordCompletedAt)
	assert.True(t, rows[1].DatePaidReceived.Equal(time.Date(2024, 6, 5, 0, 0, 0, 0, bogota)))
	assert.True(t, rows[1].GovRecordCompletedAt.Equal(*rows[1].DatePaidReceived))
	assert.Equal(t, 6, rows[1].Month)
	assert.Equal(t, 2024, rows[1].Year)
}

func TestImport_ConflictoRevierteSoloLaFila(t *testing.T) {
	f := newFixture(t)
	f.store.AddCatalog(entity.CatalogCompany, "Acme")
	clientID := f.store.SeedClient(entity.Client{FullName: "Ana Gómez", Identification: "1"})
	f.seedActive(clientID, 6, 2024, f.userID)
	reader := sheetStub{headers: importHeaders, rows: []map[string]string{
		{"NOMBRE": "Ana Gómez", "CEDULA": "1", "EMPRESA": "Acme", "TELEFONO": "999", "VALOR": "100.000"},
		{"NOMBRE": "Luis Mora", "CEDULA": "2", "EMPRESA": "Acme", "VALOR": "100.000"},
	}}

	res, err := f.importer(reader, 0).Import(context.Background(), f.userID, f.officeID, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 1, res.ImportedRows)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 1, res.Errors[0].Row)
	assert.Contains(t, res.Errors[0].Error, "ya existe una afiliación activa")
	assert.Empty(t, f.store.Phones(clientID), "los teléfonos de la fila fallida se revierten")
}

func TestImport_ValidacionesDeFila(t *testing.T) {
	f := newFixture(t)
	f.store.AddCatalog(entity.CatalogCompany, "Acme")
	reader := sheetStub{headers: importHeaders, rows: []map[string]string{
		{"NOMBRE": "", "CEDULA": "1", "EMPRESA": "Acme"},
		{"NOMBRE": "Luis", "CEDULA": "2", "EMPRESA": "Acme", "VALOR": "abc"},
		{"NOMBRE": "Eva", "CEDULA": "3", "EMPRESA": "Acme", "VALOR": "1.000", "PAGO RECIBIDO": "2024-06-05"},
		{"NOMBRE": "Rosa", "CEDULA": "4", "EMPRESA": "Acme", "VALOR": "1.000", "EPS": "Coomeva"},
		{"NOMBRE": "Juan", "CEDULA": "5", "EMPRESA": "Acme", "VALOR": " "},
	}}

	res, err := f.importer(reader, 0).Import(context.Background(), f.userID, f.officeID, strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, res.ImportedRows)
	require.Len(t, res.Errors, 5)
	assert.Equal(t, "NOMBRE y CEDULA son requeridos.", res.Errors[0].Error)
	assert.Equal(t, "VALOR 'abc' inválido.", res.Errors[1].Error)
	assert.Equal(t, "PAGO RECIBIDO '2024-06-05' no tiene formato DD/MM/AAAA.", res.Errors[2].Error)
	assert.Equal(t, "EPS 'Coomeva' no encontrada en el catálogo.", res.Errors[3].Error)
	assert.Equal(t, "La columna VALOR es requerida.", res.Errors[4].Error)
	assert.Empty(t, f.store.Clients())
}

func TestImport_ErroresDeArchivo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.importer(sheetStub{headers: []string{"NOMBRE", "CEDULA"}}, 0).
		Import(ctx, f.userID, f.officeID, strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "EMPRESA")

	sinValor := []string{affiliation.ColNombre, affiliation.ColCedula, affiliation.ColEmpresa}
	_, err = f.importer(sheetStub{headers: sinValor}, 0).
		Import(ctx, f.userID, f.officeID, strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "VALOR")

	_, err = f.importer(sheetStub{err: errors.New("archivo vacío")}, 0).
		Import(ctx, f.userID, f.officeID, strings.NewReader(""))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	many := sheetStub{headers: importHeaders, rows: make([]map[string]string, 3)}
	_, err = f.importer(many, 2).Import(ctx, f.userID, f.officeID, strings.NewReader(""))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = f.importer(sheetStub{headers: importHeaders}, 0).Import(ctx, 404, f.officeID, strings.NewReader(""))
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

// ─── Parsers ─────────────────────────────────────────────────────────────────

func TestParseValue(t *testing.T) {
	cases := map[string]string{
		"110.000":    "110000",
		"110.000,50": "110000.5",
		"$ 95.000":   "95000",
		"":           "0",
		"1.234.567":  "1234567",
	}
	for in, want := range cases {
		got, err := affiliation.ParseValue(in)
		require.NoError(t, err, in)
		assert.True(t, decimal.RequireFromString(want).Equal(got), "%q → %s", in, got)
	}
	_, err := affiliation.ParseValue("abc")
	assert.Error(t, err)
	_, err = affiliation.ParseValue("-5.000")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := affiliation.ParseDate("5/6/2024", bogota)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.True(t, d.Equal(time.Date(2024, 6, 5, 0, 0, 0, 0, bogota)))

	d, err = affiliation.ParseDate("  ", bogota)
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = affiliation.ParseDate("31/02/2024", bogota)
	assert.Error(t, err)
}

func TestSplitPhones(t *testing.T) {
	assert.Equal(t, []string{"300111", "310222", "320333"}, affiliation.SplitPhones("300111 - 310222/320333"))
	assert.Equal(t, []string{"601-555-1234"}, affiliation.SplitPhones("601-555-1234"))
	assert.Equal(t, []string{"300", "310"}, affiliation.SplitPhones("300; 310, 300"))
	assert.Nil(t, affiliation.SplitPhones(" "))
}
