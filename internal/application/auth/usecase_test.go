package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/afiliaciones-api/internal/application/auth"
	"github.com/jhoicas/afiliaciones-api/internal/application/dto"
	"github.com/jhoicas/afiliaciones-api/internal/application/ports"
	"github.com/jhoicas/afiliaciones-api/internal/domain"
	"github.com/jhoicas/afiliaciones-api/internal/domain/entity"
	"github.com/jhoicas/afiliaciones-api/internal/testutil/memstore"
	"github.com/jhoicas/afiliaciones-api/pkg/jwt"
)

const secret = "secreto-de-prueba"

func newUseCase(s *memstore.Store) *auth.AuthUseCase {
	clock := ports.FixedClock{T: time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)}
	return auth.NewAuthUseCase(s.UserRepo(), memstore.NewTxRunner(s), clock,
		auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "afiliaciones-api"}).
		WithBcryptCost(bcrypt.MinCost)
}

func int64Ptr(i int64) *int64 { return &i }

func TestCreateUser_ConOficina(t *testing.T) {
	s := memstore.New()
	officeID := s.AddOffice(entity.Office{Name: "Principal"})
	uc := newUseCase(s)

	res, err := uc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "ana", Password: "clave-segura", Role: "Asesor", OfficeID: int64Ptr(officeID),
	})
	require.NoError(t, err)
	assert.Equal(t, "asesor", res.Role)
	assert.True(t, res.IsActive)
	assert.Equal(t, []int64{officeID}, s.UserOffices(res.ID))

	u, err := s.UserRepo().GetByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "clave-segura", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("clave-segura")))
}

func TestCreateUser_Errores(t *testing.T) {
	s := memstore.New()
	uc := newUseCase(s)
	ctx := context.Background()

	_, err := uc.CreateUser(ctx, dto.CreateUserRequest{Username: "ana", Password: "clave-segura", Role: "gerente"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.CreateUser(ctx, dto.CreateUserRequest{Username: "ana", Password: "clave-segura", Role: "asesor"})
	require.NoError(t, err)
	_, err = uc.CreateUser(ctx, dto.CreateUserRequest{Username: "ana", Password: "otra-clave", Role: "asesor"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	_, err = uc.CreateUser(ctx, dto.CreateUserRequest{Username: "luis", Password: "clave-segura", Role: "asesor", OfficeID: int64Ptr(404)})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	u, err := s.UserRepo().GetByUsername(ctx, "luis")
	require.NoError(t, err)
	assert.Nil(t, u, "la transacción se revierte si la oficina no existe")
}

func TestLogin_DevuelveTokenYOficinas(t *testing.T) {
	s := memstore.New()
	officeID := s.AddOffice(entity.Office{Name: "Principal", RepresentativeName: "Marta", LogoURL: "https://cdn/logo.png"})
	uc := newUseCase(s)
	ctx := context.Background()
	created, err := uc.CreateUser(ctx, dto.CreateUserRequest{Username: "ana", Password: "clave-segura", Role: "admin", OfficeID: int64Ptr(officeID)})
	require.NoError(t, err)

	res, err := uc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "clave-segura"})
	require.NoError(t, err)
	require.Len(t, res.Offices, 1)
	assert.Equal(t, "Marta", res.Offices[0].RepresentativeName)

	userID, username, role, err := jwt.Parse(secret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, "ana", username)
	assert.Equal(t, "admin", role)
}

func TestLogin_Rechazos(t *testing.T) {
	s := memstore.New()
	uc := newUseCase(s)
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-segura"), bcrypt.MinCost)
	require.NoError(t, err)
	s.AddUser(entity.User{Username: "inactivo", PasswordHash: string(hash), Role: "asesor", IsActive: false})
	s.AddUser(entity.User{Username: "activo", PasswordHash: string(hash), Role: "asesor", IsActive: true})

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "activo", Password: "incorrecta"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "inactivo", Password: "clave-segura"})
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}
