package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBalance es el saldo físico disponible de un ítem en una bodega
// (tabla stock_balances, única por item_rec_id + location_rec_id).
// Invariante: AvailPhysical >= 0 siempre; la fila se crea con la primera entrada
// y nunca se borra. Version crece en cada mutación exitosa (señal de concurrencia,
// no se usa como precondición de escritura).
type StockBalance struct {
	ItemRecID     string
	LocationRecID string
	AvailPhysical decimal.Decimal
	Version       int64
	ModifiedAt    time.Time
	ModifiedBy    string
}

// StockView es la proyección de un saldo con los códigos de negocio resueltos,
// para los listados de stock.
type StockView struct {
	ItemID        string
	NameAlias     string
	LocationID    string
	LocationName  string
	AvailPhysical decimal.Decimal
	Version       int64
	ModifiedAt    time.Time
}
