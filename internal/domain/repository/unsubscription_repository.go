package repository

import (
	"context"
	"time"

	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
)

// UnsubscriptionRepository persistencia de retiros, uno por afiliación.
type UnsubscriptionRepository interface {
	ExistsForAffiliation(ctx context.Context, affiliationID int64) (bool, error)
	// Create asigna u.ID. Devuelve domain.ErrDuplicate si la afiliación ya tiene retiro.
	Create(ctx context.Context, u *entity.ClientUnsubscription) error
	// Update aplica solo los campos no nil y siempre refresca updated_at.
	Update(ctx context.Context, id int64, patch entity.UnsubscriptionPatch, updatedAt time.Time) (*entity.ClientUnsubscription, error)
}
