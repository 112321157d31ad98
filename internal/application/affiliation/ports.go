package affiliation

import (
	"context"
	"io"

	"github.com/jhoicas/afiliaciones-api/internal/domain/repository"
)

// RowRunner ejecuta fn dentro de un savepoint de la transacción de importación.
// Si fn falla solo se deshacen las escrituras de esa fila.
type RowRunner func(ctx context.Context, fn func(
	clientRepo repository.ClientRepository,
	affRepo repository.AffiliationRepository,
) error) error

// TxRunner ejecuta funciones dentro de una transacción de BD con repositorios atados a ella.
type TxRunner interface {
	RunAffiliation(ctx context.Context, fn func(
		clientRepo repository.ClientRepository,
		affRepo repository.AffiliationRepository,
		catalogRepo repository.CatalogRepository,
	) error) error
	RunImport(ctx context.Context, fn func(
		catalogRepo repository.CatalogRepository,
		row RowRunner,
	) error) error
}

// OfficeAccess verifica la relación usuario-oficina (user_offices).
type OfficeAccess interface {
	HasOfficeAccess(ctx context.Context, userID, officeID int64) (bool, error)
}

// SheetReader decodifica un archivo tabular en filas encabezado→valor, en orden.
type SheetReader interface {
	ReadRows(r io.Reader) (headers []string, rows []map[string]string, err error)
}
