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

var (
	_ repository.UserRepository   = (*UserRepo)(nil)
	_ repository.OfficeRepository = (*OfficeRepo)(nil)
)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, username, password_hash, role, is_active, created_at, updated_at`

// Create persiste un nuevo usuario y asigna su ID.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (username, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		user.Username, user.PasswordHash, user.Role, user.IsActive, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.WithDetail(domain.ErrInvalidInput, "rol inexistente")
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID; nil si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByUsername búsqueda sin distinguir mayúsculas; nil si no existe.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(username) = LOWER($1)`, username)
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// RoleExists indica si el rol figura en user_roles.
func (r *UserRepo) RoleExists(ctx context.Context, role string) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM user_roles WHERE role_name = $1)`, role).Scan(&exists); err != nil {
		return false, fmt.Errorf("role exists: %w", err)
	}
	return exists, nil
}

// AssignOffice vincula usuario y oficina; repetido no es error.
func (r *UserRepo) AssignOffice(ctx context.Context, userID, officeID int64) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO user_offices (user_id, office_id) VALUES ($1, $2)
		ON CONFLICT (user_id, office_id) DO NOTHING`, userID, officeID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("assign office: %w", err)
	}
	return nil
}

// HasOfficeAccess indica si el usuario puede operar en la oficina.
func (r *UserRepo) HasOfficeAccess(ctx context.Context, userID, officeID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_offices WHERE user_id = $1 AND office_id = $2)`, userID, officeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has office access: %w", err)
	}
	return exists, nil
}

// ListOffices oficinas asignadas al usuario, por id.
func (r *UserRepo) ListOffices(ctx context.Context, userID int64) ([]entity.Office, error) {
	rows, err := r.q.Query(ctx, `
		SELECT o.id, o.name, o.representative_name, o.logo_url
		FROM offices o
		JOIN user_offices uo ON uo.office_id = o.id
		WHERE uo.user_id = $1
		ORDER BY o.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list user offices: %w", err)
	}
	offices, err := pgx.CollectRows(rows, pgx.RowToStructByPos[entity.Office])
	if err != nil {
		return nil, fmt.Errorf("scan office: %w", err)
	}
	return offices, nil
}

// OfficeRepo lectura de oficinas.
type OfficeRepo struct {
	q Querier
}

// NewOfficeRepository construye el adaptador.
func NewOfficeRepository(q Querier) *OfficeRepo {
	return &OfficeRepo{q: q}
}

// GetByID obtiene una oficina; nil si no existe.
func (r *OfficeRepo) GetByID(ctx context.Context, id int64) (*entity.Office, error) {
	var o entity.Office
	err := r.q.QueryRow(ctx,
		`SELECT id, name, representative_name, logo_url FROM offices WHERE id = $1`, id,
	).Scan(&o.ID, &o.Name, &o.RepresentativeName, &o.LogoURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get office: %w", err)
	}
	return &o, nil
}
