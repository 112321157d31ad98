package affiliation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/afiliaciones-api/internal/domain"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
	"github.com/jhoicas/afiliaciones-api/internal/testutil/memstore"
)

func (f *fixture) activeInPeriod(month, year int) []entity.MonthlyAffiliation {
	var out []entity.MonthlyAffiliation
	for _, a := range f.store.Affiliations() {
		if a.IsActive && a.Month == month && a.Year == year {
			out = append(out, a)
		}
	}
	return out
}

func TestRollover_CopiaMesMasRecienteEnPendiente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c1 := f.store.SeedClient(entity.Client{FullName: "Ana", Identification: "1"})
	c2 := f.store.SeedClient(entity.Client{FullName: "Luis", Identification: "2"})
	f.seedActive(c1, 4, 2024, 99)
	f.seedActive(c2, 4, 2024, 99)
	inactive := f.seedActive(c2, 5, 2024, 99)
	require.NoError(t, f.store.AffiliationRepo().SoftDelete(ctx, inactive, 99, f.now))

	res, err := f.uc.Rollover(ctx, f.userID, f.officeID)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Copied)
	assert.Equal(t, 4, res.SourceMonth)
	assert.Equal(t, 2024, res.SourceYear)

	copies := f.activeInPeriod(6, 2024)
	require.Len(t, copies, 2)
	for _, a := range copies {
		assert.Equal(t, f.userID, a.UserID)
		assert.Equal(t, entity.PaymentPending, a.PaidStatus)
		assert.Nil(t, a.DatePaidReceived)
		assert.Nil(t, a.GovRecordCompletedAt)
	}
}

func TestRollover_SegundaLlamadaEsNoOp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.store.SeedClient(entity.Client{FullName: "Ana", Identification: "1"})
	f.seedActive(c, 5, 2024, f.userID)

	_, err := f.uc.Rollover(ctx, f.userID, f.officeID)
	require.NoError(t, err)
	total := len(f.store.Affiliations())

	res, err := f.uc.Rollover(ctx, f.userID, f.officeID)
	require.NoError(t, err)
	assert.Zero(t, res.Copied)
	assert.Contains(t, res.Message, "ya tiene afiliaciones")
	assert.Len(t, f.store.Affiliations(), total)
}

func TestRollover_LimiteDeDoceMeses(t *testing.T) {
	f := newFixture(t)
	c := f.store.SeedClient(entity.Client{FullName: "Ana", Identification: "1"})
	f.seedActive(c, 5, 2023, f.userID) // 13 meses atrás

	_, err := f.uc.Rollover(context.Background(), f.userID, f.officeID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Empty(t, f.activeInPeriod(6, 2024))
}

func TestRollover_DoceMesesAtrasSeIncluye(t *testing.T) {
	f := newFixture(t)
	c := f.store.SeedClient(entity.Client{FullName: "Ana", Identification: "1"})
	f.seedActive(c, 6, 2023, f.userID)

	res, err := f.uc.Rollover(context.Background(), f.userID, f.officeID)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Copied)
	assert.Equal(t, 2023, res.SourceYear)
}

func TestRollover_OmiteLlaveDuplicada(t *testing.T) {
	f := newFixture(t)
	c := f.store.SeedClient(entity.Client{FullName: "Ana", Identification: "1"})
	f.seedActive(c, 5, 2024, 98)
	f.seedActive(c, 5, 2024, 99)

	res, err := f.uc.Rollover(context.Background(), f.userID, f.officeID)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Copied)
	assert.Equal(t, 1, res.Skipped)
	assert.Len(t, f.activeInPeriod(6, 2024), 1)
}

func TestRollover_ErrorRevierteTodoElLote(t *testing.T) {
	f := newFixture(t)
	c1 := f.store.SeedClient(entity.Client{FullName: "Ana", Identification: "1"})
	c2 := f.store.SeedClient(entity.Client{FullName: "Luis", Identification: "2"})
	f.seedActive(c1, 5, 2024, f.userID)
	f.seedActive(c2, 5, 2024, f.userID)
	f.store.FailAffiliationCreateOn(2)

	_, err := f.uc.Rollover(context.Background(), f.userID, f.officeID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, memstore.ErrInjected))
	assert.Empty(t, f.activeInPeriod(6, 2024))
}

func TestRollover_SinAccesoAOficina(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Rollover(context.Background(), 555, f.officeID)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}
