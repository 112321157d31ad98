package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/afiliaciones-api/internal/application/affiliation"
	"github.com/jhoicas/afiliaciones-api/internal/application/auth"
	"github.com/jhoicas/afiliaciones-api/internal/application/client"
	"github.com/jhoicas/afiliaciones-api/internal/domain/repository"
)

var (
	_ affiliation.TxRunner = (*TxRunner)(nil)
	_ client.TxRunner      = (*TxRunner)(nil)
	_ auth.TxRunner        = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// run inicia una transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAffiliation repos de clientes, afiliaciones y catálogos atados a una tx.
func (r *TxRunner) RunAffiliation(ctx context.Context, fn func(
	clientRepo repository.ClientRepository,
	affRepo repository.AffiliationRepository,
	catalogRepo repository.CatalogRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewClientRepository(tx), NewAffiliationRepository(tx), NewCatalogRepository(tx))
	})
}

// RunImport abre la transacción de importación; cada fila corre en un savepoint
// (transacción anidada de pgx) que se revierte solo si esa fila falla.
func (r *TxRunner) RunImport(ctx context.Context, fn func(
	catalogRepo repository.CatalogRepository,
	row affiliation.RowRunner,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		row := func(ctx context.Context, rowFn func(repository.ClientRepository, repository.AffiliationRepository) error) error {
			sp, err := tx.Begin(ctx)
			if err != nil {
				return fmt.Errorf("begin savepoint: %w", err)
			}
			defer func() { _ = sp.Rollback(ctx) }()

			if err := rowFn(NewClientRepository(sp), NewAffiliationRepository(sp)); err != nil {
				return err
			}
			if err := sp.Commit(ctx); err != nil {
				return fmt.Errorf("release savepoint: %w", err)
			}
			return nil
		}
		return fn(NewCatalogRepository(tx), row)
	})
}

// RunClient repositorio de clientes atado a una tx.
func (r *TxRunner) RunClient(ctx context.Context, fn func(clientRepo repository.ClientRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewClientRepository(tx))
	})
}

// RunUser repositorio de usuarios atado a una tx.
func (r *TxRunner) RunUser(ctx context.Context, fn func(userRepo repository.UserRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewUserRepository(tx))
	})
}
