package repository

import (
	"context"

	"github.com/jcalderon/inventario-movil/internal/domain/entity"
)

// LocationFilter filtros del listado de bodegas. Q hace match parcial
// case-insensitive sobre location_id, name, device_id, plate y driver_name.
type LocationFilter struct {
	Q          string
	LocationID string
	Active     *bool
	IsMobile   *bool
	Limit      int
	Offset     int
}

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	// Create persiste una bodega nueva. Devuelve domain.ErrDuplicate si LocationID ya existe.
	Create(ctx context.Context, loc *entity.Location) error
	// ResolveRecID resuelve el código de negocio a la identidad interna.
	// Devuelve "" (sin error) si no existe.
	ResolveRecID(ctx context.Context, locationID string) (string, error)
	// UpdatePosition reemplaza lat/lon/accuracy y refresca position_at de forma atómica.
	// Devuelve false si la bodega no existe.
	UpdatePosition(ctx context.Context, locationID string, lat, lon float64, accuracyM *float64, modifiedBy string) (bool, error)
	// List devuelve la página de bodegas y el total sin paginar, orden location_id asc.
	List(ctx context.Context, f LocationFilter) ([]*entity.Location, int64, error)
	// ListPositioned devuelve todas las bodegas con ambas coordenadas conocidas,
	// opcionalmente filtradas por isMobile. Es la entrada del índice de proximidad.
	ListPositioned(ctx context.Context, isMobile *bool) ([]*entity.Location, error)
}
