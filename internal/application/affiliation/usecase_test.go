package affiliation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/afiliaciones-api/internal/application/affiliation"
	"github.com/jhoicas/afiliaciones-api/internal/application/dto"
	"github.com/jhoicas/afiliaciones-api/internal/application/ports"
	"github.com/jhoicas/afiliaciones-api/internal/domain"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
	"github.com/jhoicas/afiliaciones-api/internal/testutil/memstore"
)

var bogota = time.FixedZone("COT", -5*3600)

type fixture struct {
	store    *memstore.Store
	uc       *affiliation.AffiliationUseCase
	now      time.Time
	officeID int64
	userID   int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, bogota)
	s := memstore.New()
	officeID := s.AddOffice(entity.Office{Name: "Principal", RepresentativeName: "Marta Ruiz"})
	userID := s.AddUser(entity.User{Username: "ana", Role: entity.RoleAsesor, IsActive: true})
	s.GrantOffice(userID, officeID)
	uc := affiliation.NewAffiliationUseCase(memstore.NewTxRunner(s), s.AffiliationRepo(), s.UserRepo(), ports.FixedClock{T: now})
	return &fixture{store: s, uc: uc, now: now, officeID: officeID, userID: userID}
}

func (f *fixture) janeDoe(paid string) dto.CreateClientAffiliationRequest {
	return dto.CreateClientAffiliationRequest{
		FullName:       "Jane Doe",
		Identification: "123",
		OfficeID:       f.officeID,
		UserID:         f.userID,
		Phones:         []string{"3001234567"},
		Affiliation: dto.AffiliationInput{
			Month: intPtr(6),
			Year:  intPtr(2024),
			Value: decimal.NewFromInt(100000),
			Paid:  paid,
		},
	}
}

func (f *fixture) seedActive(clientID int64, month, year int, userID int64) int64 {
	return f.store.SeedAffiliation(entity.MonthlyAffiliation{
		ClientID:   clientID,
		Month:      month,
		Year:       year,
		Value:      decimal.NewFromInt(95000),
		OfficeID:   f.officeID,
		UserID:     userID,
		PaidStatus: entity.PaymentPaid,
		IsActive:   true,
		CreatedAt:  f.now.AddDate(0, -1, 0),
	})
}

func intPtr(i int) *int { return &i }

// ─── Create ──────────────────────────────────────────────────────────────────

func TestCreate_PendienteYReintentoDuplicado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.uc.Create(ctx, f.janeDoe("Pendiente"))
	require.NoError(t, err)
	assert.True(t, res.ClientCreated)
	assert.Equal(t, 6, res.Month)
	assert.Equal(t, 2024, res.Year)

	rows := f.store.Affiliations()
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsActive)
	assert.Equal(t, entity.PaymentPending, rows[0].PaidStatus)
	assert.Nil(t, rows[0].DatePaidReceived)
	assert.Nil(t, rows[0].GovRecordCompletedAt)
	assert.Equal(t, []string{"3001234567"}, f.store.Phones(res.ClientID))

	_, err = f.uc.Create(ctx, f.janeDoe("Pendiente"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	assert.Len(t, f.store.Affiliations(), 1, "no debe crear una segunda fila")
	assert.Len(t, f.store.Clients(), 1)
}

func TestCreate_PagadoFijaAmbasFechas(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(context.Background(), f.janeDoe("Pagado"))
	require.NoError(t, err)

	a := f.store.Affiliations()[0]
	require.NotNil(t, a.DatePaidReceived)
	require.NotNil(t, a.GovRecordCompletedAt)
	assert.True(t, a.DatePaidReceived.Equal(f.now))
	assert.True(t, a.GovRecordCompletedAt.Equal(f.now))
}

func TestCreate_EstadoPorDefectoPendiente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(context.Background(), f.janeDoe(""))
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPending, f.store.Affiliations()[0].PaidStatus)
}

func TestCreate_EstadoInvalido(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Create(context.Background(), f.janeDoe("Pending"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidPaymentStatus))
	assert.Empty(t, f.store.Clients())
}

func TestCreate_SinAccesoAOficina(t *testing.T) {
	f := newFixture(t)
	in := f.janeDoe("Pendiente")
	in.OfficeID = f.store.AddOffice(entity.Office{Name: "Norte"})

	_, err := f.uc.Create(context.Background(), in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
	assert.Empty(t, f.store.Affiliations())
}

func TestCreate_ResuelveCatalogoPorNombre(t *testing.T) {
	f := newFixture(t)
	eps := f.store.AddCatalog(entity.CatalogEPS, "Nueva EPS")[0]
	in := f.janeDoe("Pendiente")
	in.Affiliation.Eps = "  nueva   eps "

	_, err := f.uc.Create(context.Background(), in)
	require.NoError(t, err)
	a := f.store.Affiliations()[0]
	require.NotNil(t, a.EpsID)
	assert.Equal(t, eps.ID, *a.EpsID)
}

func TestCreate_CatalogoInexistenteNoPersisteNada(t *testing.T) {
	f := newFixture(t)
	in := f.janeDoe("Pendiente")
	in.Affiliation.Arl = "Desconocida"

	_, err := f.uc.Create(context.Background(), in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCatalogEntryNotFound))
	assert.Equal(t, "ARL 'Desconocida' no encontrada en el catálogo.", err.Error())
	assert.Empty(t, f.store.Clients())
	assert.Empty(t, f.store.Affiliations())
}

func TestCreate_ClienteExistenteActualizaEmpresa(t *testing.T) {
	f := newFixture(t)
	company := f.store.AddCatalog(entity.CatalogCompany, "Acme")[0]
	clientID := f.store.SeedClient(entity.Client{FullName: "Jane Doe", Identification: "123"})
	in := f.janeDoe("Pendiente")
	in.CompanyID = &company.ID

	res, err := f.uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, res.ClientCreated)
	assert.Equal(t, clientID, res.ClientID)

	clients := f.store.Clients()
	require.Len(t, clients, 1)
	require.NotNil(t, clients[0].CompanyID)
	assert.Equal(t, company.ID, *clients[0].CompanyID)
}

// ─── Pago ────────────────────────────────────────────────────────────────────

func TestUpdatePaid_PagadoYVueltaAPendiente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res, err := f.uc.Create(ctx, f.janeDoe("Pendiente"))
	require.NoError(t, err)

	out, err := f.uc.UpdatePaid(ctx, dto.UpdatePaidRequest{AffiliationID: res.AffiliationID, Paid: "Pagado"})
	require.NoError(t, err)
	require.NotNil(t, out.DatePaidReceived)
	assert.True(t, out.DatePaidReceived.Equal(f.now))

	a, _ := f.store.Affiliation(res.AffiliationID)
	assert.Equal(t, entity.PaymentPaid, a.PaidStatus)
	require.NotNil(t, a.GovRecordCompletedAt)
	assert.True(t, a.GovRecordCompletedAt.Equal(f.now))

	_, err = f.uc.UpdatePaid(ctx, dto.UpdatePaidRequest{AffiliationID: res.AffiliationID, Paid: "Pendiente"})
	require.NoError(t, err)
	a, _ = f.store.Affiliation(res.AffiliationID)
	assert.Nil(t, a.DatePaidReceived)
	assert.Nil(t, a.GovRecordCompletedAt)
}

func TestUpdatePaid_EnProceso(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res, err := f.uc.Create(ctx, f.janeDoe("Pendiente"))
	require.NoError(t, err)

	_, err = f.uc.UpdatePaid(ctx, dto.UpdatePaidRequest{AffiliationID: res.AffiliationID, Paid: "En Proceso"})
	require.NoError(t, err)
	a, _ := f.store.Affiliation(res.AffiliationID)
	assert.NotNil(t, a.DatePaidReceived)
	assert.Nil(t, a.GovRecordCompletedAt)
}

func TestUpdatePaid_Errores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.UpdatePaid(ctx, dto.UpdatePaidRequest{AffiliationID: 1, Paid: "Paid"})
	assert.True(t, errors.Is(err, domain.ErrInvalidPaymentStatus))

	_, err = f.uc.UpdatePaid(ctx, dto.UpdatePaidRequest{AffiliationID: 999, Paid: "Pagado"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ─── Desactivación ───────────────────────────────────────────────────────────

func TestSoftDelete_SegundoIntentoNoEncontrado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res, err := f.uc.Create(ctx, f.janeDoe("Pendiente"))
	require.NoError(t, err)

	require.NoError(t, f.uc.SoftDelete(ctx, dto.DeleteAffiliationRequest{AffiliationID: res.AffiliationID, UserID: 9}))

	a, _ := f.store.Affiliation(res.AffiliationID)
	assert.False(t, a.IsActive)
	require.NotNil(t, a.DeletedAt)
	assert.True(t, a.DeletedAt.Equal(f.now))
	require.NotNil(t, a.DeletedByUserID)
	assert.Equal(t, int64(9), *a.DeletedByUserID)

	err = f.uc.SoftDelete(ctx, dto.DeleteAffiliationRequest{AffiliationID: res.AffiliationID, UserID: 9})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestSoftDelete_PermiteRecrearLaLlave(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res, err := f.uc.Create(ctx, f.janeDoe("Pendiente"))
	require.NoError(t, err)
	require.NoError(t, f.uc.SoftDelete(ctx, dto.DeleteAffiliationRequest{AffiliationID: res.AffiliationID, UserID: f.userID}))

	_, err = f.uc.Create(ctx, f.janeDoe("Pendiente"))
	require.NoError(t, err)
	assert.Len(t, f.store.Affiliations(), 2)
}

// ─── Listados ────────────────────────────────────────────────────────────────

func TestList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.uc.Create(ctx, f.janeDoe("Pendiente"))
	require.NoError(t, err)

	rows, err := f.uc.List(ctx, dto.ListAffiliationsRequest{Month: 6, Year: 2024, UserID: f.userID, OfficeID: f.officeID})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Jane Doe", rows[0].FullName)
	assert.Equal(t, "Pendiente", rows[0].Paid)
	assert.Equal(t, []string{"3001234567"}, rows[0].Phones)

	_, err = f.uc.List(ctx, dto.ListAffiliationsRequest{Month: 5, Year: 2024, UserID: f.userID, OfficeID: f.officeID})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = f.uc.List(ctx, dto.ListAffiliationsRequest{Month: 6, Year: 2024, UserID: 777, OfficeID: f.officeID})
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestListInactive_IncluyeRetiro(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res, err := f.uc.Create(ctx, f.janeDoe("Pendiente"))
	require.NoError(t, err)
	require.NoError(t, f.uc.SoftDelete(ctx, dto.DeleteAffiliationRequest{AffiliationID: res.AffiliationID, UserID: f.userID}))
	reason := "Cambio de empleador"
	require.NoError(t, f.store.UnsubscriptionRepo().Create(ctx, &entity.ClientUnsubscription{
		AffiliationID: res.AffiliationID, Reason: &reason, Cost: decimal.NewFromInt(20000), UserID: f.userID,
		UnsubscriptionDate: f.now,
	}))

	rows, err := f.uc.ListInactive(ctx, dto.InactiveHistoryQuery{UserID: f.userID, OfficeID: f.officeID, Month: 6})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Unsubscription)
	assert.Equal(t, &reason, rows[0].Unsubscription.Reason)
	assert.True(t, decimal.NewFromInt(20000).Equal(rows[0].Unsubscription.Cost))
}

// ─── Edición ─────────────────────────────────────────────────────────────────

func TestEdit_ActualizaAfiliacionClienteYTelefonos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	company := f.store.AddCatalog(entity.CatalogCompany, "Acme")[0]
	f.store.AddCatalog(entity.CatalogARL, "Sura")
	res, err := f.uc.Create(ctx, f.janeDoe("Pendiente"))
	require.NoError(t, err)

	err = f.uc.Edit(ctx, dto.EditAffiliationRequest{
		AffiliationID:  res.AffiliationID,
		ClientID:       res.ClientID,
		FullName:       "Jane Doe Pérez",
		Identification: "123",
		Company:        "acme",
		Phones:         []string{"3109998877"},
		Value:          decimal.NewFromInt(120000),
		Arl:            "SURA",
		Paid:           "En Proceso",
	})
	require.NoError(t, err)

	a, _ := f.store.Affiliation(res.AffiliationID)
	assert.True(t, decimal.NewFromInt(120000).Equal(a.Value))
	assert.Equal(t, entity.PaymentInProcess, a.PaidStatus)
	assert.NotNil(t, a.DatePaidReceived)
	assert.Nil(t, a.GovRecordCompletedAt)
	require.NotNil(t, a.CompanyID)
	assert.Equal(t, company.ID, *a.CompanyID)

	c := f.store.Clients()[0]
	assert.Equal(t, "Jane Doe Pérez", c.FullName)
	assert.Equal(t, []string{"3109998877"}, f.store.Phones(c.ID))
}

func TestEdit_AfiliacionInactiva(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res, err := f.uc.Create(ctx, f.janeDoe("Pendiente"))
	require.NoError(t, err)
	require.NoError(t, f.uc.SoftDelete(ctx, dto.DeleteAffiliationRequest{AffiliationID: res.AffiliationID, UserID: f.userID}))

	err = f.uc.Edit(ctx, dto.EditAffiliationRequest{
		AffiliationID: res.AffiliationID, ClientID: res.ClientID,
		FullName: "Jane Doe", Identification: "123", Paid: "Pagado",
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
