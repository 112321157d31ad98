package repository

import (
	"context"

	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
)

// CatalogRepository lectura de las tablas de referencia (empresas, EPS, ARL, CCF, fondos de pensión).
type CatalogRepository interface {
	List(ctx context.Context, category entity.CatalogCategory) ([]entity.CatalogEntry, error)
}
