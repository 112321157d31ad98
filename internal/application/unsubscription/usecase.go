// Package unsubscription registra el retiro de una afiliación, una sola vez por afiliación.
package unsubscription

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/afiliaciones-api/internal/application/dto"
	"github.com/jhoicas/afiliaciones-api/internal/application/ports"
	"github.com/jhoicas/afiliaciones-api/internal/domain"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
	"github.com/jhoicas/afiliaciones-api/internal/domain/repository"
)

// UnsubscriptionUseCase alta y corrección de retiros.
type UnsubscriptionUseCase struct {
	repo    repository.UnsubscriptionRepository
	affRepo repository.AffiliationRepository
	clock   ports.Clock
}

// NewUnsubscriptionUseCase construye el caso de uso.
func NewUnsubscriptionUseCase(repo repository.UnsubscriptionRepository, affRepo repository.AffiliationRepository, clock ports.Clock) *UnsubscriptionUseCase {
	return &UnsubscriptionUseCase{repo: repo, affRepo: affRepo, clock: clock}
}

// Create registra el retiro. Motivo y observación vacíos quedan en null; el costo por defecto es cero.
func (uc *UnsubscriptionUseCase) Create(ctx context.Context, in dto.CreateUnsubscriptionRequest) (*dto.UnsubscriptionResponse, error) {
	cost := decimal.Zero
	if in.Cost != nil {
		cost = *in.Cost
	}
	if cost.IsNegative() {
		return nil, domain.WithDetail(domain.ErrInvalidInput, "el costo del retiro no puede ser negativo")
	}

	a, err := uc.affRepo.GetByID(ctx, in.AffiliationID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.WithDetail(domain.ErrNotFound, "afiliación no encontrada")
	}
	exists, err := uc.repo.ExistsForAffiliation(ctx, in.AffiliationID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, duplicate()
	}

	now := uc.clock.Now()
	u := &entity.ClientUnsubscription{
		AffiliationID:      in.AffiliationID,
		Reason:             clean(in.Reason),
		Cost:               cost,
		UserID:             in.UserID,
		Observation:        clean(in.Observation),
		UnsubscriptionDate: now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, duplicate()
		}
		return nil, err
	}
	return toResponse(u), nil
}

// Update corrige motivo, costo u observación; solo toca los campos enviados.
func (uc *UnsubscriptionUseCase) Update(ctx context.Context, in dto.UpdateUnsubscriptionRequest) (*dto.UnsubscriptionResponse, error) {
	if in.Cost != nil && in.Cost.IsNegative() {
		return nil, domain.WithDetail(domain.ErrInvalidInput, "el costo del retiro no puede ser negativo")
	}
	patch := entity.UnsubscriptionPatch{
		Reason:      in.Reason,
		Cost:        in.Cost,
		Observation: in.Observation,
	}
	u, err := uc.repo.Update(ctx, in.ID, patch, uc.clock.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.WithDetail(domain.ErrNotFound, "retiro no encontrado")
		}
		return nil, err
	}
	return toResponse(u), nil
}

func duplicate() error {
	return domain.WithDetail(domain.ErrDuplicate, "la afiliación ya tiene un retiro registrado")
}

func clean(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func toResponse(u *entity.ClientUnsubscription) *dto.UnsubscriptionResponse {
	var updated *time.Time
	if !u.UpdatedAt.IsZero() {
		t := u.UpdatedAt
		updated = &t
	}
	return &dto.UnsubscriptionResponse{
		ID:                 u.ID,
		AffiliationID:      u.AffiliationID,
		Reason:             u.Reason,
		Cost:               u.Cost,
		UserID:             u.UserID,
		Observation:        u.Observation,
		UnsubscriptionDate: u.UnsubscriptionDate,
		UpdatedAt:          updated,
	}
}
