// Package client implementa el registro de clientes: búsqueda-o-creación por cédula y teléfonos.
package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/afiliaciones-api/internal/domain"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
	"github.com/jhoicas/afiliaciones-api/internal/domain/repository"
)

// Identity datos de entrada para resolver un cliente.
type Identity struct {
	Identification string
	FullName       string
	CompanyID      *int64
}

// FindOrCreate busca por cédula; si existe y la empresa suministrada difiere de la
// guardada, actualiza empresa (y nombre si cambió). Si no existe, lo crea.
// Nunca falla por una segunda llamada con la misma cédula.
func FindOrCreate(ctx context.Context, repo repository.ClientRepository, in Identity, now time.Time) (*entity.Client, bool, error) {
	identification := strings.TrimSpace(in.Identification)
	fullName := strings.TrimSpace(in.FullName)
	if identification == "" || fullName == "" {
		return nil, false, domain.WithDetail(domain.ErrInvalidInput, "nombre e identificación del cliente son requeridos")
	}

	existing, err := repo.GetByIdentification(ctx, identification)
	if err != nil {
		return nil, false, fmt.Errorf("client: buscar por identificación: %w", err)
	}
	if existing != nil {
		if in.CompanyID != nil && !sameID(existing.CompanyID, in.CompanyID) {
			existing.CompanyID = in.CompanyID
			if fullName != existing.FullName {
				existing.FullName = fullName
			}
			existing.UpdatedAt = now
			if err := repo.Update(ctx, existing); err != nil {
				return nil, false, fmt.Errorf("client: actualizar empresa: %w", err)
			}
		}
		return existing, false, nil
	}

	c := &entity.Client{
		FullName:       fullName,
		Identification: identification,
		CompanyID:      in.CompanyID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := repo.Create(ctx, c); err != nil {
		return nil, false, fmt.Errorf("client: crear: %w", err)
	}
	return c, true, nil
}

// UpsertPhones inserta los teléfonos no vacíos; los ya registrados se ignoran.
func UpsertPhones(ctx context.Context, repo repository.ClientRepository, clientID int64, phones []string) error {
	for _, p := range NormalizePhones(phones) {
		if err := repo.AddPhone(ctx, clientID, p); err != nil {
			return fmt.Errorf("client: agregar teléfono: %w", err)
		}
	}
	return nil
}

// ReplacePhones borra todos los teléfonos del cliente y guarda el nuevo conjunto.
func ReplacePhones(ctx context.Context, repo repository.ClientRepository, clientID int64, phones []string) error {
	if err := repo.DeletePhones(ctx, clientID); err != nil {
		return fmt.Errorf("client: borrar teléfonos: %w", err)
	}
	return UpsertPhones(ctx, repo, clientID, phones)
}

// NormalizePhones recorta, descarta vacíos y elimina repetidos conservando el orden.
func NormalizePhones(phones []string) []string {
	seen := make(map[string]struct{}, len(phones))
	out := make([]string, 0, len(phones))
	for _, p := range phones {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
