package catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/afiliaciones-api/internal/application/dto"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
	"github.com/jhoicas/afiliaciones-api/internal/domain/repository"
)

// ListsUseCase expone los catálogos completos para los formularios.
type ListsUseCase struct {
	repo repository.CatalogRepository
}

// NewListsUseCase construye el caso de uso.
func NewListsUseCase(repo repository.CatalogRepository) *ListsUseCase {
	return &ListsUseCase{repo: repo}
}

// GetLists consulta las cinco tablas en paralelo.
func (uc *ListsUseCase) GetLists(ctx context.Context) (*dto.ListsResponse, error) {
	out := &dto.ListsResponse{}
	targets := []struct {
		category entity.CatalogCategory
		dst      *[]dto.CatalogItem
	}{
		{entity.CatalogEPS, &out.Eps},
		{entity.CatalogARL, &out.Arl},
		{entity.CatalogCCF, &out.Ccf},
		{entity.CatalogPensionFund, &out.PensionFunds},
		{entity.CatalogCompany, &out.Companies},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range targets {
		t := t
		g.Go(func() error {
			entries, err := uc.repo.List(gctx, t.category)
			if err != nil {
				return fmt.Errorf("catalog: listar %s: %w", t.category, err)
			}
			items := make([]dto.CatalogItem, 0, len(entries))
			for _, e := range entries {
				items = append(items, dto.CatalogItem{ID: e.ID, Name: e.Name})
			}
			*t.dst = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
