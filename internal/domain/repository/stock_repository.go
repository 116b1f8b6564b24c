package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jcalderon/inventario-movil/internal/domain/entity"
)

// StockFilter filtros del listado de saldos (exactos).
type StockFilter struct {
	ItemID     string
	LocationID string
	MinQty     *decimal.Decimal
	Limit      int
	Offset     int
}

// StockRepository define el puerto de persistencia para StockBalance (DIP).
// Las dos escrituras son sentencias atómicas únicas sobre una fila: así el
// invariante de saldo no-negativo se sostiene bajo concurrencia arbitraria
// sin locks explícitos (ver Debit).
type StockRepository interface {
	// Debit resta qty del saldo solo si el saldo actual es >= qty, incrementando
	// version en la misma escritura condicional. Devuelve false si no hay fila
	// que satisfaga la condición (saldo inexistente o insuficiente); en ese caso
	// no queda ningún efecto parcial.
	Debit(ctx context.Context, itemRecID, locationRecID string, qty decimal.Decimal, modifiedBy string) (bool, error)
	// Credit suma qty al saldo; si la fila no existe la crea con valor qty y
	// version 0 (línea base cero implícita), si existe incrementa version.
	Credit(ctx context.Context, itemRecID, locationRecID string, qty decimal.Decimal, modifiedBy string) error
	// List devuelve la página de saldos con códigos resueltos y el total,
	// orden item_id asc, location_id asc.
	List(ctx context.Context, f StockFilter) ([]*entity.StockView, int64, error)
}
