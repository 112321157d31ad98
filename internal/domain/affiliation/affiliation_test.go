package affiliation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/afiliaciones-api/internal/domain/affiliation"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
)

var bogota = time.FixedZone("COT", -5*60*60)

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones de estado de pago
// ──────────────────────────────────────────────────────────────────────────────

func TestTransitionDates_Pagado_AmbasFechasEnNow(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, bogota)
	paid, gov := affiliation.TransitionDates(entity.PaymentPaid, now)

	require.NotNil(t, paid)
	require.NotNil(t, gov)
	assert.True(t, paid.Equal(now))
	assert.True(t, gov.Equal(now))
}

func TestTransitionDates_EnProceso_LimpiaRegistro(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, bogota)
	paid, gov := affiliation.TransitionDates(entity.PaymentInProcess, now)

	require.NotNil(t, paid)
	assert.True(t, paid.Equal(now))
	assert.Nil(t, gov, "En Proceso no tiene registro gubernamental")
}

func TestTransitionDates_Pendiente_LimpiaAmbas(t *testing.T) {
	paid, gov := affiliation.TransitionDates(entity.PaymentPending, time.Now())
	assert.Nil(t, paid)
	assert.Nil(t, gov)
}

func TestApplyPaymentStatus_IdaYVuelta(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, bogota)
	a := &entity.MonthlyAffiliation{PaidStatus: entity.PaymentPending}

	affiliation.ApplyPaymentStatus(a, entity.PaymentPaid, now)
	assert.Equal(t, entity.PaymentPaid, a.PaidStatus)
	require.NotNil(t, a.DatePaidReceived)
	require.NotNil(t, a.GovRecordCompletedAt)

	affiliation.ApplyPaymentStatus(a, entity.PaymentPending, now.Add(time.Hour))
	assert.Equal(t, entity.PaymentPending, a.PaidStatus)
	assert.Nil(t, a.DatePaidReceived)
	assert.Nil(t, a.GovRecordCompletedAt)
	assert.True(t, a.UpdatedAt.Equal(now.Add(time.Hour)))
}

func TestNormalizeDates_ConservaFechasSuministradas(t *testing.T) {
	now := time.Date(2024, 6, 20, 0, 0, 0, 0, bogota)
	given := time.Date(2024, 6, 3, 0, 0, 0, 0, bogota)

	paid, gov := affiliation.NormalizeDates(entity.PaymentPaid, &given, nil, now)
	require.NotNil(t, paid)
	require.NotNil(t, gov)
	assert.True(t, paid.Equal(given))
	assert.True(t, gov.Equal(now), "la fecha faltante se completa con now")

	paid, gov = affiliation.NormalizeDates(entity.PaymentInProcess, &given, &given, now)
	assert.True(t, paid.Equal(given))
	assert.Nil(t, gov)

	paid, gov = affiliation.NormalizeDates(entity.PaymentPending, &given, &given, now)
	assert.Nil(t, paid)
	assert.Nil(t, gov)
}

func TestParsePaymentStatus(t *testing.T) {
	for _, s := range []string{"Pendiente", "Pagado", "En Proceso"} {
		st, ok := entity.ParsePaymentStatus(s)
		assert.True(t, ok, s)
		assert.Equal(t, s, string(st))
	}
	for _, s := range []string{"", "Pending", "pagado", "Paid"} {
		_, ok := entity.ParsePaymentStatus(s)
		assert.False(t, ok, "%q no es un estado canónico", s)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Períodos
// ──────────────────────────────────────────────────────────────────────────────

func TestPeriod_Minus_CruzaAnio(t *testing.T) {
	p := affiliation.Period{Month: 2, Year: 2024}
	assert.Equal(t, affiliation.Period{Month: 1, Year: 2024}, p.Minus(1))
	assert.Equal(t, affiliation.Period{Month: 12, Year: 2023}, p.Minus(2))
	assert.Equal(t, affiliation.Period{Month: 2, Year: 2023}, p.Minus(12))
	assert.Equal(t, affiliation.Period{Month: 3, Year: 2024}, p.Minus(-1))
}

func TestPeriodOf_UsaZonaHoraria(t *testing.T) {
	// 1 de julio 03:00 UTC sigue siendo 30 de junio en Bogotá.
	utc := time.Date(2024, 7, 1, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, affiliation.Period{Month: 6, Year: 2024}, affiliation.PeriodOf(utc, bogota))
	assert.Equal(t, affiliation.Period{Month: 7, Year: 2024}, affiliation.PeriodOf(utc, time.UTC))
}

func TestPeriod_Valid(t *testing.T) {
	assert.True(t, affiliation.Period{Month: 12, Year: 2024}.Valid())
	assert.False(t, affiliation.Period{Month: 13, Year: 2024}.Valid())
	assert.False(t, affiliation.Period{Month: 0, Year: 2024}.Valid())
	assert.False(t, affiliation.Period{Month: 5, Year: 1999}.Valid())
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Enero", affiliation.MonthName(1))
	assert.Equal(t, "Diciembre", affiliation.MonthName(12))
	assert.Equal(t, "", affiliation.MonthName(13))
}
