package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/afiliaciones-api/internal/application/dto"
	"github.com/jhoicas/afiliaciones-api/internal/application/ports"
	"github.com/jhoicas/afiliaciones-api/internal/domain"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
	"github.com/jhoicas/afiliaciones-api/internal/domain/repository"
	"github.com/jhoicas/afiliaciones-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TxRunner ejecuta fn con el repositorio de usuarios atado a una transacción.
type TxRunner interface {
	RunUser(ctx context.Context, fn func(userRepo repository.UserRepository) error) error
}

// AuthUseCase casos de uso de autenticación: alta de usuarios y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tx       TxRunner
	clock    ports.Clock
	jwtCfg   JWTConfig
	cost     int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tx TxRunner, clock ports.Clock, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tx: tx, clock: clock, jwtCfg: jwtCfg, cost: bcrypt.DefaultCost}
}

// WithBcryptCost ajusta el costo de bcrypt (las pruebas usan bcrypt.MinCost).
func (uc *AuthUseCase) WithBcryptCost(cost int) *AuthUseCase {
	uc.cost = cost
	return uc
}

// CreateUser hashea el password, crea el usuario y, si viene, le asigna la oficina; todo en una transacción.
func (uc *AuthUseCase) CreateUser(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	role := strings.ToLower(strings.TrimSpace(in.Role))
	if username == "" || in.Password == "" {
		return nil, domain.WithDetail(domain.ErrInvalidInput, "username y password son requeridos")
	}
	ok, err := uc.userRepo.RoleExists(ctx, role)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.WithDetail(domain.ErrInvalidInput, "rol '"+in.Role+"' no existe")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.tx.RunUser(ctx, func(repo repository.UserRepository) error {
		existing, err := repo.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		if err := repo.Create(ctx, user); err != nil {
			return err
		}
		if in.OfficeID != nil {
			if err := repo.AssignOffice(ctx, user.ID, *in.OfficeID); err != nil {
				if errors.Is(err, domain.ErrInvalidInput) {
					return domain.WithDetail(domain.ErrInvalidInput, "la oficina indicada no existe")
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.WithDetail(domain.ErrDuplicate, "el username ya está registrado")
		}
		return nil, err
	}
	resp := toUserResponse(user)
	resp.OfficeID = in.OfficeID
	return resp, nil
}

// Login verifica username/password, genera JWT y retorna token, usuario y oficinas habilitadas.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.WithDetail(domain.ErrUnauthorized, "credenciales inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.WithDetail(domain.ErrUnauthorized, "credenciales inválidas")
	}
	if !user.IsActive {
		return nil, domain.WithDetail(domain.ErrForbidden, "usuario inactivo")
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	offices, err := uc.userRepo.ListOffices(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	out := &dto.LoginResponse{
		Token:   token,
		User:    *toUserResponse(user),
		Offices: make([]dto.OfficeResponse, 0, len(offices)),
	}
	for _, o := range offices {
		out.Offices = append(out.Offices, dto.OfficeResponse{
			OfficeID:           o.ID,
			Name:               o.Name,
			RepresentativeName: o.RepresentativeName,
			LogoURL:            o.LogoURL,
		})
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
