package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Cargas-api/internal/application/auth"
	"github.com/jhoicas/Cargas-api/internal/application/dto"
	"github.com/jhoicas/Cargas-api/internal/domain"
	"github.com/jhoicas/Cargas-api/internal/domain/entity"
	"github.com/jhoicas/Cargas-api/pkg/jwt"
)

const secret = "test-secret"

type memUserRepo struct {
	byEmail map[string]*entity.User
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.byEmail[u.Email] = u
	return nil
}
func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func newAuth() (*auth.AuthUseCase, *memUserRepo) {
	repo := &memUserRepo{byEmail: make(map[string]*entity.User)}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: secret, ExpMinutes: 5, Issuer: "cargas-test"}).
		WithBcryptCost(bcrypt.MinCost)
	return uc, repo
}

func TestAuth_RegistroYLogin(t *testing.T) {
	uc, repo := newAuth()
	ctx := context.Background()

	u, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "Ana@Ejemplo.com ", Password: "secreto123", Nombre: "Ana", Apellido: "Pérez"})
	require.NoError(t, err)
	assert.Equal(t, "ana@ejemplo.com", u.Email)
	assert.Equal(t, entity.RoleOperador, u.Role)
	assert.NotEqual(t, "secreto123", repo.byEmail["ana@ejemplo.com"].PasswordHash)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@ejemplo.com", Password: "secreto123"})
	require.NoError(t, err)
	id, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id.UserID)
	assert.Equal(t, "Ana", id.Nombre)
	assert.Equal(t, "Pérez", id.Apellido)
}

func TestAuth_EmailDuplicado(t *testing.T) {
	uc, _ := newAuth()
	ctx := context.Background()
	in := dto.RegisterRequest{Email: "a@b.co", Password: "secreto123", Nombre: "A"}
	_, err := uc.RegisterUser(ctx, in)
	require.NoError(t, err)
	_, err = uc.RegisterUser(ctx, in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestAuth_Errores(t *testing.T) {
	uc, repo := newAuth()
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@b.co", Password: "corta", Nombre: "A"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@b.co", Password: "secreto123", Nombre: "A", Role: "root"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@b.co", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@b.co", Password: "secreto123", Nombre: "A"})
	require.NoError(t, err)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@b.co", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	repo.byEmail["a@b.co"].Status = "inactive"
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@b.co", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAuth_EnsureAdmin(t *testing.T) {
	uc, repo := newAuth()
	ctx := context.Background()

	created, err := uc.EnsureAdmin(ctx, "admin@cargas.local", "admin-secreto", "Admin")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, entity.RoleAdmin, repo.byEmail["admin@cargas.local"].Role)

	created, err = uc.EnsureAdmin(ctx, "admin@cargas.local", "admin-secreto", "Admin")
	require.NoError(t, err)
	assert.False(t, created, "segunda llamada no duplica")

	_, err = uc.EnsureAdmin(ctx, "otro@cargas.local", "corta", "Admin")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
