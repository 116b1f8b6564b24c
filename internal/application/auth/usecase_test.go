package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcalderon/inventario-movil/internal/application/dto"
	"github.com/jcalderon/inventario-movil/internal/domain"
	"github.com/jcalderon/inventario-movil/internal/domain/entity"
	"github.com/jcalderon/inventario-movil/pkg/jwt"
)

// memUserRepo repositorio de usuarios en memoria.
type memUserRepo struct {
	users   map[string]*entity.User
	touched []string
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	if _, exists := r.users[user.UserID]; exists {
		return domain.ErrDuplicate
	}
	r.users[user.UserID] = user
	return nil
}

func (r *memUserRepo) FindByUserID(_ context.Context, userID string) (*entity.User, error) {
	return r.users[userID], nil
}

func (r *memUserRepo) TouchLastLogon(_ context.Context, recID string) error {
	r.touched = append(r.touched, recID)
	return nil
}

func testJWTConfig() JWTConfig {
	return JWTConfig{Secret: "secreto-de-prueba", ExpMinutes: 60, Issuer: "inventario-movil"}
}

func TestRegister_CreaUsuarioConHashYSalt(t *testing.T) {
	repo := newMemUserRepo()
	uc := NewAuthUseCase(repo, testJWTConfig())

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		UserID:   "  laura  ",
		Password: "clave-segura-123",
		Email:    "laura@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "laura", out.UserID)

	stored := repo.users["laura"]
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.PasswordSalt)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "clave-segura-123", stored.PasswordHash, "nunca se guarda el password en claro")
	assert.True(t, stored.Active)
}

func TestRegister_PasswordCorto(t *testing.T) {
	uc := NewAuthUseCase(newMemUserRepo(), testJWTConfig())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{UserID: "laura", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_UserIDDuplicado(t *testing.T) {
	uc := NewAuthUseCase(newMemUserRepo(), testJWTConfig())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{UserID: "laura", Password: "clave-segura-123"})
	require.NoError(t, err)
	_, err = uc.Register(context.Background(), dto.RegisterRequest{UserID: "laura", Password: "otra-clave-456"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestLogin_EmiteTokenConSubRecID(t *testing.T) {
	repo := newMemUserRepo()
	cfg := testJWTConfig()
	uc := NewAuthUseCase(repo, cfg)

	reg, err := uc.Register(context.Background(), dto.RegisterRequest{UserID: "laura", Password: "clave-segura-123"})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{UserID: "laura", Password: "clave-segura-123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.False(t, out.ExpiresAt.IsZero())

	recID, userID, err := jwt.Parse(cfg.Secret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, recID, "el subject del token es el RecID interno")
	assert.Equal(t, "laura", userID)

	require.Len(t, repo.touched, 1, "login exitoso registra last_logon_at")
	assert.Equal(t, reg.ID, repo.touched[0])
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := newMemUserRepo()
	uc := NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{UserID: "laura", Password: "clave-segura-123"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{UserID: "laura", Password: "clave-equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, repo.touched)
}

func TestLogin_UsuarioInexistenteOInactivo(t *testing.T) {
	repo := newMemUserRepo()
	uc := NewAuthUseCase(repo, testJWTConfig())

	// Inexistente: misma respuesta que password incorrecto.
	_, err := uc.Login(context.Background(), dto.LoginRequest{UserID: "nadie", Password: "cualquiera"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Inactivo: registrado pero deshabilitado.
	_, err = uc.Register(context.Background(), dto.RegisterRequest{UserID: "laura", Password: "clave-segura-123"})
	require.NoError(t, err)
	repo.users["laura"].Active = false

	_, err = uc.Login(context.Background(), dto.LoginRequest{UserID: "laura", Password: "clave-segura-123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EntradaEnBlanco(t *testing.T) {
	uc := NewAuthUseCase(newMemUserRepo(), testJWTConfig())

	_, err := uc.Login(context.Background(), dto.LoginRequest{UserID: "  ", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(context.Background(), dto.LoginRequest{UserID: "laura", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
