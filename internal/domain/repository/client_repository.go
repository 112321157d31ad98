package repository

import (
	"context"

	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client y sus teléfonos.
// Los métodos Get* devuelven (nil, nil) cuando no existe la fila.
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	GetByIdentification(ctx context.Context, identification string) (*entity.Client, error)
	// Create asigna client.ID. Devuelve domain.ErrDuplicate si la cédula ya existe.
	Create(ctx context.Context, client *entity.Client) error
	// Update devuelve domain.ErrNotFound si el id no existe.
	Update(ctx context.Context, client *entity.Client) error
	// AddPhone es idempotente: un número repetido para el cliente no es error.
	AddPhone(ctx context.Context, clientID int64, phone string) error
	DeletePhones(ctx context.Context, clientID int64) error
	ListPhones(ctx context.Context, clientID int64) ([]string, error)
}
