package repository

import (
	"context"

	"github.com/jcalderon/inventario-movil/internal/domain/entity"
)

// ItemFilter filtros del listado de ítems. Q hace match parcial case-insensitive
// sobre item_id, name_alias y barcode; el resto son filtros exactos.
type ItemFilter struct {
	Q       string
	ItemID  string
	Barcode string
	Active  *bool
	Limit   int
	Offset  int
}

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	// Create persiste un ítem nuevo. Devuelve domain.ErrDuplicate si ItemID ya existe.
	Create(ctx context.Context, item *entity.Item) error
	// ResolveRecID resuelve el código de negocio a la identidad interna.
	// Devuelve "" (sin error) si no existe.
	ResolveRecID(ctx context.Context, itemID string) (string, error)
	// List devuelve la página de ítems y el total sin paginar, orden item_id asc.
	List(ctx context.Context, f ItemFilter) ([]*entity.Item, int64, error)
}
