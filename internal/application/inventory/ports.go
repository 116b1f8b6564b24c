package inventory

import (
	"context"

	"github.com/jcalderon/inventario-movil/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la mutación del saldo y el
// registro del historial se hacen visibles juntos o no se hacen visibles:
// Commit si fn retorna nil, Rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		locRepo repository.LocationRepository,
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
	) error) error
}
