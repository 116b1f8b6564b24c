package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jcalderon/inventario-movil/internal/application/dto"
	"github.com/jcalderon/inventario-movil/internal/domain"
	"github.com/jcalderon/inventario-movil/internal/domain/entity"
	"github.com/jcalderon/inventario-movil/internal/domain/repository"
	"github.com/jcalderon/inventario-movil/pkg/jwt"
	"github.com/jcalderon/inventario-movil/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: genera salt, hashea el password (PBKDF2) y persiste.
// Devuelve ErrDuplicate si el userId ya existe, ErrInvalidInput si falta algo.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	userID := strings.TrimSpace(in.UserID)
	if userID == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}

	salt, err := password.GenerateSalt()
	if err != nil {
		return nil, err
	}
	hash, err := password.Hash(in.Password, salt)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		RecID:        uuid.New().String(),
		UserID:       userID,
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: hash,
		PasswordSalt: salt,
		Active:       true,
		CreatedAt:    now,
		ModifiedAt:   now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{ID: user.RecID, UserID: user.UserID}, nil
}

// Login verifica userId/password en tiempo constante, actualiza last_logon_at
// y emite el JWT (sub = RecID). Cualquier fallo de credencial devuelve
// ErrUnauthorized sin distinguir la causa.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	userID := strings.TrimSpace(in.UserID)
	if userID == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active || user.PasswordSalt == "" || user.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if !password.Verify(in.Password, user.PasswordSalt, user.PasswordHash) {
		return nil, domain.ErrUnauthorized
	}

	if err := uc.userRepo.TouchLastLogon(ctx, user.RecID); err != nil {
		return nil, err
	}

	token, expiresAt, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, user.RecID, user.UserID, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{AccessToken: token, ExpiresAt: expiresAt}, nil
}
