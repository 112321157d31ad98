package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/afiliaciones-api/internal/domain"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
	"github.com/jhoicas/afiliaciones-api/internal/domain/repository"
)

var _ repository.UnsubscriptionRepository = (*UnsubscriptionRepo)(nil)

// UnsubscriptionRepo implementación de UnsubscriptionRepository.
type UnsubscriptionRepo struct {
	q Querier
}

// NewUnsubscriptionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUnsubscriptionRepository(q Querier) *UnsubscriptionRepo {
	return &UnsubscriptionRepo{q: q}
}

// ExistsForAffiliation indica si la afiliación ya tiene retiro.
func (r *UnsubscriptionRepo) ExistsForAffiliation(ctx context.Context, affiliationID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM clients_unsubscriptions WHERE affiliation_id = $1)`, affiliationID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists unsubscription: %w", err)
	}
	return exists, nil
}

// Create persiste el retiro y asigna su ID.
func (r *UnsubscriptionRepo) Create(ctx context.Context, u *entity.ClientUnsubscription) error {
	query := `
		INSERT INTO clients_unsubscriptions (affiliation_id, reason, cost, user_id, observation, unsubscription_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		u.AffiliationID, u.Reason, u.Cost, u.UserID, u.Observation, u.UnsubscriptionDate, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert unsubscription: %w", err)
	}
	return nil
}

// Update aplica los campos no nil del patch; domain.ErrNotFound si el id no existe.
func (r *UnsubscriptionRepo) Update(ctx context.Context, id int64, patch entity.UnsubscriptionPatch, updatedAt time.Time) (*entity.ClientUnsubscription, error) {
	query := `
		UPDATE clients_unsubscriptions SET
			reason = COALESCE($2, reason),
			cost = COALESCE($3, cost),
			observation = COALESCE($4, observation),
			updated_at = $5
		WHERE id = $1
		RETURNING id, affiliation_id, reason, cost, user_id, observation, unsubscription_date, updated_at`
	var u entity.ClientUnsubscription
	err := r.q.QueryRow(ctx, query, id, patch.Reason, patch.Cost, patch.Observation, updatedAt).Scan(
		&u.ID, &u.AffiliationID, &u.Reason, &u.Cost, &u.UserID, &u.Observation, &u.UnsubscriptionDate, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update unsubscription: %w", err)
	}
	return &u, nil
}
