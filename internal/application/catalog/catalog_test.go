package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/afiliaciones-api/internal/application/catalog"
	"github.com/jhoicas/afiliaciones-api/internal/domain"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
)

type stubCatalogRepo struct {
	data map[entity.CatalogCategory][]entity.CatalogEntry
	err  error
}

func (s *stubCatalogRepo) List(_ context.Context, c entity.CatalogCategory) ([]entity.CatalogEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.data[c], nil
}

func newStub() *stubCatalogRepo {
	return &stubCatalogRepo{data: map[entity.CatalogCategory][]entity.CatalogEntry{
		entity.CatalogEPS:         {{ID: 1, Name: "Nueva EPS"}, {ID: 2, Name: "Sanitas"}},
		entity.CatalogARL:         {{ID: 5, Name: "Sura"}},
		entity.CatalogCCF:         {{ID: 7, Name: "Compensar"}},
		entity.CatalogPensionFund: {{ID: 9, Name: "Porvenir"}},
		entity.CatalogCompany:     {{ID: 3, Name: "Construcciones Ñandú"}},
	}}
}

func TestKey_NormalizaEspaciosYMayusculas(t *testing.T) {
	assert.Equal(t, catalog.Key("nueva eps"), catalog.Key("  NUEVA   EPS "))
	assert.Equal(t, catalog.Key("construcciones ñandú"), catalog.Key("CONSTRUCCIONES ÑANDÚ"))
	assert.NotEqual(t, catalog.Key("Sura"), catalog.Key("Sanitas"))
}

func TestIndex_Resolve(t *testing.T) {
	idx := catalog.NewIndex(entity.CatalogEPS, newStub().data[entity.CatalogEPS])

	id, err := idx.Resolve("sanitas")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, int64(2), *id)

	id, err = idx.Resolve("   ")
	require.NoError(t, err, "nombre vacío no es error")
	assert.Nil(t, id)

	_, err = idx.Resolve("Coomeva")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCatalogEntryNotFound))
	assert.Equal(t, "EPS 'Coomeva' no encontrada en el catálogo.", err.Error())
}

func TestResolve_EmpresaNoEncontrada_Mensaje(t *testing.T) {
	_, err := catalog.Resolve(context.Background(), newStub(), entity.CatalogCompany, "Acme")
	require.Error(t, err)
	assert.Equal(t, "Empresa 'Acme' no encontrada en el catálogo.", err.Error())
}

func TestResolve_NoConsultaSiNombreVacio(t *testing.T) {
	repo := &stubCatalogRepo{err: errors.New("db caída")}
	id, err := catalog.Resolve(context.Background(), repo, entity.CatalogARL, "")
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestLoadIndexes_PropagaErrorDeAlmacenamiento(t *testing.T) {
	repo := &stubCatalogRepo{err: errors.New("db caída")}
	_, err := catalog.LoadIndexes(context.Background(), repo, entity.CatalogEPS)
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrCatalogEntryNotFound))
}

func TestGetLists_DevuelveLasCincoTablas(t *testing.T) {
	uc := catalog.NewListsUseCase(newStub())
	out, err := uc.GetLists(context.Background())
	require.NoError(t, err)

	assert.Len(t, out.Eps, 2)
	assert.Len(t, out.Arl, 1)
	assert.Len(t, out.Ccf, 1)
	assert.Len(t, out.PensionFunds, 1)
	require.Len(t, out.Companies, 1)
	assert.Equal(t, "Construcciones Ñandú", out.Companies[0].Name)
}

func TestGetLists_ErrorEnUnaTabla(t *testing.T) {
	uc := catalog.NewListsUseCase(&stubCatalogRepo{err: errors.New("timeout")})
	_, err := uc.GetLists(context.Background())
	assert.Error(t, err)
}
