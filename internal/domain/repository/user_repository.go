package repository

import (
	"context"

	"github.com/jcalderon/inventario-movil/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste un usuario nuevo. Devuelve domain.ErrDuplicate si UserID ya existe.
	Create(ctx context.Context, user *entity.User) error
	// FindByUserID busca por login. Devuelve nil (sin error) si no existe.
	FindByUserID(ctx context.Context, userID string) (*entity.User, error)
	// TouchLastLogon actualiza last_logon_at y modified_at al momento actual.
	TouchLastLogon(ctx context.Context, recID string) error
}
