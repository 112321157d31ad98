package memstore

import (
	"context"

	"github.com/jhoicas/afiliaciones-api/internal/application/affiliation"
	"github.com/jhoicas/afiliaciones-api/internal/domain/repository"
)

// TxRunner transacciones por instantánea sobre el Store. No aísla transacciones
// concurrentes entre sí; basta para pruebas secuenciales.
type TxRunner struct {
	s *Store
}

// NewTxRunner crea el runner.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

func (r *TxRunner) run(fn func() error) error {
	snap := r.s.snapshot()
	if err := fn(); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

// RunAffiliation implementa affiliation.TxRunner.
func (r *TxRunner) RunAffiliation(ctx context.Context, fn func(
	clientRepo repository.ClientRepository,
	affRepo repository.AffiliationRepository,
	catalogRepo repository.CatalogRepository,
) error) error {
	return r.run(func() error {
		return fn(r.s.ClientRepo(), r.s.AffiliationRepo(), r.s.CatalogRepo())
	})
}

// RunImport implementa affiliation.TxRunner; cada fila restaura su propia instantánea al fallar.
func (r *TxRunner) RunImport(ctx context.Context, fn func(
	catalogRepo repository.CatalogRepository,
	row affiliation.RowRunner,
) error) error {
	row := func(ctx context.Context, rowFn func(repository.ClientRepository, repository.AffiliationRepository) error) error {
		return r.run(func() error {
			return rowFn(r.s.ClientRepo(), r.s.AffiliationRepo())
		})
	}
	return r.run(func() error {
		return fn(r.s.CatalogRepo(), row)
	})
}

// RunClient implementa client.TxRunner.
func (r *TxRunner) RunClient(ctx context.Context, fn func(clientRepo repository.ClientRepository) error) error {
	return r.run(func() error { return fn(r.s.ClientRepo()) })
}

// RunUser ejecuta fn con el repositorio de usuarios en una transacción.
func (r *TxRunner) RunUser(ctx context.Context, fn func(userRepo repository.UserRepository) error) error {
	return r.run(func() error { return fn(r.s.UserRepo()) })
}
