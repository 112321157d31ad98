package memstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/afiliaciones-api/internal/application/affiliation"
	"github.com/jhoicas/afiliaciones-api/internal/domain"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
	"github.com/jhoicas/afiliaciones-api/internal/domain/repository"
	"github.com/jhoicas/afiliaciones-api/internal/testutil/memstore"
)

var errFila = errors.New("fila inválida")

func afiliacion(clientID int64) *entity.MonthlyAffiliation {
	return &entity.MonthlyAffiliation{
		ClientID: clientID, Month: 6, Year: 2024, Value: decimal.NewFromInt(1000),
		OfficeID: 1, UserID: 1, PaidStatus: entity.PaymentPending, IsActive: true,
	}
}

func TestRunClient_ErrorRestauraEstado(t *testing.T) {
	s := memstore.New()
	tx := memstore.NewTxRunner(s)

	err := tx.RunClient(context.Background(), func(clients repository.ClientRepository) error {
		require.NoError(t, clients.Create(context.Background(), &entity.Client{FullName: "Ana", Identification: "1"}))
		return errFila
	})
	assert.ErrorIs(t, err, errFila)
	assert.Empty(t, s.Clients())
}

func TestRunImport_SoloSeDeshaceLaFilaFallida(t *testing.T) {
	s := memstore.New()
	tx := memstore.NewTxRunner(s)
	ctx := context.Background()

	err := tx.RunImport(ctx, func(_ repository.CatalogRepository, row affiliation.RowRunner) error {
		ok := row(ctx, func(clients repository.ClientRepository, affs repository.AffiliationRepository) error {
			c := &entity.Client{FullName: "Ana", Identification: "1"}
			if err := clients.Create(ctx, c); err != nil {
				return err
			}
			return affs.Create(ctx, afiliacion(c.ID))
		})
		require.NoError(t, ok)

		failed := row(ctx, func(clients repository.ClientRepository, _ repository.AffiliationRepository) error {
			if err := clients.Create(ctx, &entity.Client{FullName: "Luis", Identification: "2"}); err != nil {
				return err
			}
			return errFila
		})
		assert.ErrorIs(t, failed, errFila)
		return nil
	})
	require.NoError(t, err)

	clients := s.Clients()
	require.Len(t, clients, 1)
	assert.Equal(t, "1", clients[0].Identification)
	assert.Len(t, s.Affiliations(), 1)
}

func TestAffiliationRepo_LlaveActivaDuplicada(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	repo := s.AffiliationRepo()
	clientID := s.SeedClient(entity.Client{FullName: "Ana", Identification: "1"})

	first := afiliacion(clientID)
	require.NoError(t, repo.Create(ctx, first))
	assert.ErrorIs(t, repo.Create(ctx, afiliacion(clientID)), domain.ErrDuplicate)

	require.NoError(t, repo.SoftDelete(ctx, first.ID, 1, first.CreatedAt))
	assert.NoError(t, repo.Create(ctx, afiliacion(clientID)), "una fila inactiva no bloquea la llave")
}

func TestFailAffiliationCreateOn(t *testing.T) {
	s := memstore.New()
	s.FailAffiliationCreateOn(2)
	repo := s.AffiliationRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, afiliacion(1)))
	assert.ErrorIs(t, repo.Create(ctx, afiliacion(2)), memstore.ErrInjected)
	assert.NoError(t, repo.Create(ctx, afiliacion(3)))
}
