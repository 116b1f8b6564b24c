package dto

import "time"

// CreateLocationRequest alta de bodega (fija o móvil), con posición inicial opcional.
// Si se envía posición, latitude y longitude deben venir juntos.
type CreateLocationRequest struct {
	LocationID string   `json:"locationId"`
	Name       string   `json:"name"`
	Active     *bool    `json:"active,omitempty"`   // default true
	IsMobile   *bool    `json:"isMobile,omitempty"` // default false
	DeviceID   string   `json:"deviceId,omitempty"`
	Plate      string   `json:"plate,omitempty"`
	DriverName string   `json:"driverName,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	AccuracyM  *float64 `json:"accuracyM,omitempty"`
}

// UpdatePositionRequest tracking en vivo: reemplaza la posición completa.
type UpdatePositionRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	AccuracyM *float64 `json:"accuracyM,omitempty"`
}

// LocationResponse proyección pública de una bodega.
type LocationResponse struct {
	RecID      string     `json:"recId"`
	LocationID string     `json:"locationId"`
	Name       string     `json:"name"`
	Active     bool       `json:"active"`
	IsMobile   bool       `json:"isMobile"`
	DeviceID   string     `json:"deviceId,omitempty"`
	Plate      string     `json:"plate,omitempty"`
	DriverName string     `json:"driverName,omitempty"`
	Latitude   *float64   `json:"latitude,omitempty"`
	Longitude  *float64   `json:"longitude,omitempty"`
	AccuracyM  *float64   `json:"accuracyM,omitempty"`
	PositionAt *time.Time `json:"positionAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	ModifiedAt time.Time  `json:"modifiedAt"`
}

// ListLocationsQuery parámetros del listado de bodegas.
type ListLocationsQuery struct {
	Q          string `query:"q"`
	LocationID string `query:"locationId"`
	Active     *bool  `query:"active"`
	IsMobile   *bool  `query:"isMobile"`
	Page       int    `query:"page"`
	PageSize   int    `query:"pageSize"`
}

// NearQuery parámetros de la búsqueda geoespacial. Lat y Lon son obligatorios:
// van como punteros para distinguir "no enviado" de la coordenada (0, 0).
type NearQuery struct {
	Lat      *float64 `query:"lat"`
	Lon      *float64 `query:"lon"`
	RadiusKm float64  `query:"radiusKm"`
	IsMobile *bool    `query:"isMobile"`
	Limit    int      `query:"limit"`
}

// NearbyLocationResponse bodega posicionada con su distancia al punto de consulta.
type NearbyLocationResponse struct {
	LocationID string     `json:"locationId"`
	Name       string     `json:"name"`
	IsMobile   bool       `json:"isMobile"`
	DeviceID   string     `json:"deviceId,omitempty"`
	Plate      string     `json:"plate,omitempty"`
	DriverName string     `json:"driverName,omitempty"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	AccuracyM  *float64   `json:"accuracyM,omitempty"`
	PositionAt *time.Time `json:"positionAt,omitempty"`
	DistanceKm float64    `json:"distanceKm"`
}
