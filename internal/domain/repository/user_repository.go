package repository

import (
	"context"

	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User y su acceso a oficinas (DIP).
type UserRepository interface {
	// Create asigna user.ID. Devuelve domain.ErrDuplicate si el username ya existe.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	RoleExists(ctx context.Context, role string) (bool, error)
	// AssignOffice devuelve domain.ErrInvalidInput si la oficina no existe.
	AssignOffice(ctx context.Context, userID, officeID int64) error
	HasOfficeAccess(ctx context.Context, userID, officeID int64) (bool, error)
	ListOffices(ctx context.Context, userID int64) ([]entity.Office, error)
}

// OfficeRepository lectura de oficinas.
type OfficeRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Office, error)
}
