package entity

import "time"

// Location representa una bodega fija o móvil (tabla locations).
// Las bodegas móviles (IsMobile) llevan tracking GPS: la última posición conocida
// se guarda en Latitude/Longitude/AccuracyM y PositionAt marca cuándo se registró.
// Los tres campos de posición son todo-o-nada: o hay coordenadas completas o no hay ninguna.
type Location struct {
	RecID      string
	LocationID string
	Name       string
	Active     bool
	IsMobile   bool
	DeviceID   string // opcional
	Plate      string // opcional, placa del vehículo
	DriverName string // opcional
	Latitude   *float64
	Longitude  *float64
	AccuracyM  *float64
	PositionAt *time.Time
	CreatedAt  time.Time
	ModifiedAt time.Time
	CreatedBy  string
	ModifiedBy string
}

// HasPosition indica si la bodega tiene posición conocida (ambas coordenadas).
func (l *Location) HasPosition() bool {
	return l.Latitude != nil && l.Longitude != nil
}
