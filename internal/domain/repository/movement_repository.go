package repository

import (
	"context"
	"time"

	"github.com/jcalderon/inventario-movil/internal/domain/entity"
)

// MovementFilter filtros del historial de movimientos (exactos + rango de fechas).
type MovementFilter struct {
	ItemID     string
	LocationID string
	Type       entity.MovementType // "" = todos
	Voucher    string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// MovementRepository define el puerto de persistencia para el historial (DIP).
// Los movimientos son append-only: no hay Update ni Delete.
type MovementRepository interface {
	// Create persiste un movimiento nuevo (genera ID si viene vacío).
	Create(ctx context.Context, m *entity.Movement) error
	// GetByID devuelve el movimiento con códigos resueltos, o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.MovementView, error)
	// List devuelve la página del historial y el total, orden created_at desc.
	List(ctx context.Context, f MovementFilter) ([]*entity.MovementView, int64, error)
}
