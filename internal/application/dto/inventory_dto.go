package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest aplicación de un movimiento de inventario.
// MovementType acepta IN|OUT|ADJUST|TRANSFER sin distinguir mayúsculas.
// Los campos de geolocalización describen dónde ocurrió la acción física (opcional).
type RegisterMovementRequest struct {
	ItemID       string          `json:"itemId"`
	LocationID   string          `json:"locationId"`
	MovementType string          `json:"movementType"`
	Qty          decimal.Decimal `json:"qty"`
	Reason       string          `json:"reason,omitempty"`
	Voucher      string          `json:"voucher,omitempty"`
	Latitude     *float64        `json:"latitude,omitempty"`
	Longitude    *float64        `json:"longitude,omitempty"`
	AccuracyM    *float64        `json:"accuracyM,omitempty"`
	DeviceTime   *time.Time      `json:"deviceTime,omitempty"`
}

// MovementResponse proyección pública de un movimiento del historial.
type MovementResponse struct {
	ID           string          `json:"id"`
	ItemID       string          `json:"itemId"`
	NameAlias    string          `json:"nameAlias,omitempty"`
	LocationID   string          `json:"locationId"`
	LocationName string          `json:"locationName,omitempty"`
	MovementType string          `json:"movementType"`
	Qty          decimal.Decimal `json:"qty"`
	Reason       string          `json:"reason,omitempty"`
	Voucher      string          `json:"voucher,omitempty"`
	CreatedBy    string          `json:"createdById"`
	CreatedAt    time.Time       `json:"createdAt"`
	Latitude     *float64        `json:"latitude,omitempty"`
	Longitude    *float64        `json:"longitude,omitempty"`
	AccuracyM    *float64        `json:"accuracyM,omitempty"`
	DeviceTime   *time.Time      `json:"deviceTime,omitempty"`
}

// StockResponse saldo disponible de un ítem en una bodega.
type StockResponse struct {
	ItemID        string          `json:"itemId"`
	NameAlias     string          `json:"nameAlias"`
	LocationID    string          `json:"locationId"`
	LocationName  string          `json:"locationName"`
	AvailPhysical decimal.Decimal `json:"availPhysical"`
	Version       int64           `json:"version"`
	ModifiedAt    time.Time       `json:"modifiedAt"`
}

// ListStockQuery parámetros del listado de saldos.
type ListStockQuery struct {
	ItemID     string           `query:"itemId"`
	LocationID string           `query:"locationId"`
	MinQty     *decimal.Decimal `query:"minQty"`
	Page       int              `query:"page"`
	PageSize   int              `query:"pageSize"`
}

// ListMovementsQuery parámetros del historial de movimientos.
type ListMovementsQuery struct {
	ItemID       string     `query:"itemId"`
	LocationID   string     `query:"locationId"`
	MovementType string     `query:"movementType"`
	Voucher      string     `query:"voucher"`
	From         *time.Time `query:"from"`
	To           *time.Time `query:"to"`
	Page         int        `query:"page"`
	PageSize     int        `query:"pageSize"`
}
