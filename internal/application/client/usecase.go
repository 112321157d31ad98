package client

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/afiliaciones-api/internal/application/dto"
	"github.com/jhoicas/afiliaciones-api/internal/application/ports"
	"github.com/jhoicas/afiliaciones-api/internal/domain"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
	"github.com/jhoicas/afiliaciones-api/internal/domain/repository"
)

// TxRunner ejecuta fn con un repositorio de clientes atado a una transacción.
type TxRunner interface {
	RunClient(ctx context.Context, fn func(clientRepo repository.ClientRepository) error) error
}

// ClientUseCase alta directa de clientes.
type ClientUseCase struct {
	tx    TxRunner
	clock ports.Clock
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(tx TxRunner, clock ports.Clock) *ClientUseCase {
	return &ClientUseCase{tx: tx, clock: clock}
}

// Create registra un cliente nuevo con sus teléfonos. Cédula repetida → domain.ErrDuplicate.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	now := uc.clock.Now()
	c := &entity.Client{
		FullName:       strings.TrimSpace(in.FullName),
		Identification: strings.TrimSpace(in.Identification),
		CompanyID:      in.CompanyID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if c.FullName == "" || c.Identification == "" {
		return nil, domain.WithDetail(domain.ErrInvalidInput, "fullName e identification son requeridos")
	}
	phones := NormalizePhones(in.Phones)

	err := uc.tx.RunClient(ctx, func(repo repository.ClientRepository) error {
		existing, err := repo.GetByIdentification(ctx, c.Identification)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		if err := repo.Create(ctx, c); err != nil {
			return err
		}
		return UpsertPhones(ctx, repo, c.ID, phones)
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.WithDetail(domain.ErrDuplicate, "ya existe un cliente con esa identificación")
		}
		return nil, err
	}
	return &dto.ClientResponse{
		ID:             c.ID,
		FullName:       c.FullName,
		Identification: c.Identification,
		CompanyID:      c.CompanyID,
		Phones:         phones,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}, nil
}
