package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MovementType es el tipo cerrado de movimiento de inventario.
// Se valida en el borde (ParseMovementType); aguas abajo solo circulan estos cuatro valores.
type MovementType string

const (
	MovementTypeIN       MovementType = "IN"       // entrada
	MovementTypeOUT      MovementType = "OUT"      // salida
	MovementTypeADJUST   MovementType = "ADJUST"   // ajuste (aditivo)
	MovementTypeTRANSFER MovementType = "TRANSFER" // traslado (crédito en destino)
)

// ParseMovementType normaliza y valida el tipo de movimiento (case-insensitive).
// Devuelve false para cualquier token que no sea IN|OUT|ADJUST|TRANSFER.
func ParseMovementType(s string) (MovementType, bool) {
	switch MovementType(strings.ToUpper(strings.TrimSpace(s))) {
	case MovementTypeIN:
		return MovementTypeIN, true
	case MovementTypeOUT:
		return MovementTypeOUT, true
	case MovementTypeADJUST:
		return MovementTypeADJUST, true
	case MovementTypeTRANSFER:
		return MovementTypeTRANSFER, true
	}
	return "", false
}

// IsCredit indica si el tipo suma al saldo. OUT es el único débito;
// TRANSFER se registra como crédito puro en la bodega destino (la salida
// en origen la emite el caller como un OUT aparte).
func (t MovementType) IsCredit() bool {
	return t != MovementTypeOUT
}

// Movement es un hecho inmutable del historial de inventario (tabla movements).
// Una vez escrito nunca se actualiza ni se borra: es la única justificación
// de cada valor de StockBalance.
type Movement struct {
	ID            string
	ItemRecID     string
	LocationRecID string
	Type          MovementType
	Qty           decimal.Decimal // siempre > 0; el signo lo da Type
	Reason        string          // opcional
	Voucher       string          // opcional, referencia de documento
	CreatedBy     string          // RecID del usuario autenticado
	CreatedAt     time.Time       // timestamp del servidor
	Latitude      *float64        // geolocalización del cliente (opcional)
	Longitude     *float64
	AccuracyM     *float64
	DeviceTime    *time.Time
}

// MovementView es la proyección de un movimiento con códigos de negocio resueltos.
type MovementView struct {
	ID           string
	ItemID       string
	NameAlias    string
	LocationID   string
	LocationName string
	Type         MovementType
	Qty          decimal.Decimal
	Reason       string
	Voucher      string
	CreatedBy    string
	CreatedAt    time.Time
	Latitude     *float64
	Longitude    *float64
	AccuracyM    *float64
	DeviceTime   *time.Time
}
