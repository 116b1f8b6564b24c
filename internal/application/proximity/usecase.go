package proximity

import (
	"context"
	"sort"

	"github.com/jcalderon/inventario-movil/internal/application/dto"
	"github.com/jcalderon/inventario-movil/internal/domain"
	"github.com/jcalderon/inventario-movil/internal/domain/geo"
	"github.com/jcalderon/inventario-movil/internal/domain/repository"
)

// Límites de la búsqueda geoespacial.
const (
	MaxRadiusKm     = 200.0
	DefaultRadiusKm = 10.0
	DefaultLimit    = 50
	MaxLimit        = 200
)

// NearbyUseCase búsqueda de bodegas cercanas a un punto.
// Es un scan lineal sobre las bodegas posicionadas: O(n), suficiente para el
// tamaño esperado del registro (miles de filas, no millones).
type NearbyUseCase struct {
	locRepo repository.LocationRepository
}

// NewNearbyUseCase construye el caso de uso.
func NewNearbyUseCase(locRepo repository.LocationRepository) *NearbyUseCase {
	return &NearbyUseCase{locRepo: locRepo}
}

// FindNear devuelve las bodegas con posición conocida a <= RadiusKm del punto,
// orden ascendente por distancia, truncadas a Limit. Lat y Lon son obligatorios
// (ausentes es ErrInvalidInput, no una búsqueda centrada en (0,0)); RadiusKm
// fuera de (0, 200] es ErrInvalidInput; Limit se acota a [1, 200].
func (uc *NearbyUseCase) FindNear(ctx context.Context, q dto.NearQuery) ([]*dto.NearbyLocationResponse, error) {
	if q.Lat == nil || q.Lon == nil {
		return nil, domain.ErrInvalidInput
	}
	if q.RadiusKm <= 0 || q.RadiusKm > MaxRadiusKm {
		return nil, domain.ErrInvalidInput
	}
	limit := dto.Clamp(q.Limit, 1, MaxLimit)

	locs, err := uc.locRepo.ListPositioned(ctx, q.IsMobile)
	if err != nil {
		return nil, err
	}

	results := make([]*dto.NearbyLocationResponse, 0, len(locs))
	for _, loc := range locs {
		if !loc.HasPosition() {
			continue
		}
		d := geo.DistanceKm(*q.Lat, *q.Lon, *loc.Latitude, *loc.Longitude)
		if d > q.RadiusKm {
			continue
		}
		results = append(results, &dto.NearbyLocationResponse{
			LocationID: loc.LocationID,
			Name:       loc.Name,
			IsMobile:   loc.IsMobile,
			DeviceID:   loc.DeviceID,
			Plate:      loc.Plate,
			DriverName: loc.DriverName,
			Latitude:   *loc.Latitude,
			Longitude:  *loc.Longitude,
			AccuracyM:  loc.AccuracyM,
			PositionAt: loc.PositionAt,
			DistanceKm: d,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
