package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/afiliaciones-api/internal/domain"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
	"github.com/jhoicas/afiliaciones-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// catalogTables lista blanca categoría → tabla; el nombre de tabla nunca viene del cliente.
var catalogTables = map[entity.CatalogCategory]string{
	entity.CatalogCompany:     "companies",
	entity.CatalogEPS:         "eps_list",
	entity.CatalogARL:         "arl_list",
	entity.CatalogCCF:         "ccf_list",
	entity.CatalogPensionFund: "pension_fund_list",
}

// CatalogRepo lectura de tablas de referencia.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// List entradas de la categoría ordenadas por nombre.
func (r *CatalogRepo) List(ctx context.Context, category entity.CatalogCategory) ([]entity.CatalogEntry, error) {
	table, ok := catalogTables[category]
	if !ok {
		return nil, domain.WithDetail(domain.ErrInvalidInput, fmt.Sprintf("categoría de catálogo desconocida: %s", category))
	}
	rows, err := r.q.Query(ctx, `SELECT id, name FROM `+table+` ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByPos[entity.CatalogEntry])
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", table, err)
	}
	return entries, nil
}
