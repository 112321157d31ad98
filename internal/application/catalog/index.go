// Package catalog resuelve nombres de catálogo (empresa, EPS, ARL, CCF, fondo de pensión) a ids.
//
// Política única de normalización: se recortan espacios, se colapsan espacios internos
// y se aplica case folding Unicode. "  nueva   EPS " y "NUEVA EPS" son la misma entrada.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/afiliaciones-api/internal/domain"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
	"github.com/jhoicas/afiliaciones-api/internal/domain/repository"
)

// Key normaliza un nombre para comparación.
func Key(name string) string {
	// cases.Caser no es seguro entre goroutines; se crea uno por llamada.
	return cases.Fold().String(strings.Join(strings.Fields(name), " "))
}

// Index búsqueda en memoria de una categoría.
type Index struct {
	category entity.CatalogCategory
	byKey    map[string]int64
}

// NewIndex construye el índice a partir de las entradas de la tabla.
func NewIndex(category entity.CatalogCategory, entries []entity.CatalogEntry) *Index {
	idx := &Index{category: category, byKey: make(map[string]int64, len(entries))}
	for _, e := range entries {
		idx.byKey[Key(e.Name)] = e.ID
	}
	return idx
}

// Lookup devuelve el id de name si existe.
func (i *Index) Lookup(name string) (int64, bool) {
	id, ok := i.byKey[Key(name)]
	return id, ok
}

// Resolve devuelve nil si name está vacío, el id si existe, o un error
// domain.ErrCatalogEntryNotFound con mensaje legible si no se encuentra.
func (i *Index) Resolve(name string) (*int64, error) {
	if strings.TrimSpace(name) == "" {
		return nil, nil
	}
	id, ok := i.Lookup(name)
	if !ok {
		return nil, NotFoundError(i.category, name)
	}
	return &id, nil
}

// Len cantidad de entradas indexadas.
func (i *Index) Len() int { return len(i.byKey) }

// NotFoundError mensaje estándar para un nombre sin coincidencia.
func NotFoundError(category entity.CatalogCategory, name string) error {
	return domain.WithDetail(domain.ErrCatalogEntryNotFound,
		fmt.Sprintf("%s '%s' no encontrada en el catálogo.", category.Label(), strings.TrimSpace(name)))
}

// Indexes índices por categoría.
type Indexes map[entity.CatalogCategory]*Index

// LoadIndexes carga las categorías pedidas usando repo (puede estar atado a una tx).
func LoadIndexes(ctx context.Context, repo repository.CatalogRepository, categories ...entity.CatalogCategory) (Indexes, error) {
	out := make(Indexes, len(categories))
	for _, c := range categories {
		entries, err := repo.List(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("catalog: cargar %s: %w", c, err)
		}
		out[c] = NewIndex(c, entries)
	}
	return out, nil
}

// Resolve resuelve un único nombre contra la tabla de la categoría.
func Resolve(ctx context.Context, repo repository.CatalogRepository, category entity.CatalogCategory, name string) (*int64, error) {
	if strings.TrimSpace(name) == "" {
		return nil, nil
	}
	idx, err := LoadIndexes(ctx, repo, category)
	if err != nil {
		return nil, err
	}
	return idx[category].Resolve(name)
}
