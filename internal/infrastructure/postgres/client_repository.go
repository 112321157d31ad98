package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/afiliaciones-api/internal/domain"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
	"github.com/jhoicas/afiliaciones-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, full_name, identification, company_id, created_at, updated_at`

// GetByID obtiene un cliente por ID; nil si no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	return r.getOne(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
}

// GetByIdentification obtiene un cliente por cédula; nil si no existe.
func (r *ClientRepo) GetByIdentification(ctx context.Context, identification string) (*entity.Client, error) {
	return r.getOne(ctx, `SELECT `+clientColumns+` FROM clients WHERE identification = $1`, identification)
}

func (r *ClientRepo) getOne(ctx context.Context, query string, arg any) (*entity.Client, error) {
	var c entity.Client
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.FullName, &c.Identification, &c.CompanyID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// Create persiste un nuevo cliente y asigna su ID.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (full_name, identification, company_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, c.FullName, c.Identification, c.CompanyID, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.WithDetail(domain.ErrInvalidInput, "la empresa indicada no existe")
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// Update actualiza nombre, cédula y empresa.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients SET full_name = $2, identification = $3, company_id = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, c.ID, c.FullName, c.Identification, c.CompanyID, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.WithDetail(domain.ErrInvalidInput, "la empresa indicada no existe")
		}
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddPhone inserta el teléfono; repetido no es error.
func (r *ClientRepo) AddPhone(ctx context.Context, clientID int64, phone string) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO client_phones (client_id, phone_number) VALUES ($1, $2)
		ON CONFLICT (client_id, phone_number) DO NOTHING`, clientID, phone)
	if err != nil {
		return fmt.Errorf("insert client phone: %w", err)
	}
	return nil
}

// DeletePhones borra todos los teléfonos del cliente.
func (r *ClientRepo) DeletePhones(ctx context.Context, clientID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM client_phones WHERE client_id = $1`, clientID); err != nil {
		return fmt.Errorf("delete client phones: %w", err)
	}
	return nil
}

// ListPhones teléfonos del cliente ordenados.
func (r *ClientRepo) ListPhones(ctx context.Context, clientID int64) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT phone_number FROM client_phones WHERE client_id = $1 ORDER BY phone_number`, clientID)
	if err != nil {
		return nil, fmt.Errorf("list client phones: %w", err)
	}
	phones, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan client phone: %w", err)
	}
	return phones, nil
}
