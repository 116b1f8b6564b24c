package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jcalderon/inventario-movil/internal/application/dto"
	"github.com/jcalderon/inventario-movil/internal/domain"
	"github.com/jcalderon/inventario-movil/internal/domain/entity"
	"github.com/jcalderon/inventario-movil/internal/domain/repository"
)

// LocationUseCase casos de uso del registro de bodegas (fijas y móviles).
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create registra una bodega. La posición inicial es opcional pero todo-o-nada:
// si viene una coordenada deben venir las dos, y PositionAt se fija al momento
// de creación. Devuelve ErrDuplicate si el LocationID ya existe.
func (uc *LocationUseCase) Create(ctx context.Context, createdBy string, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	locationID := strings.TrimSpace(in.LocationID)
	name := strings.TrimSpace(in.Name)
	if locationID == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}
	// Coordenadas parciales no son una posición válida
	if (in.Latitude == nil) != (in.Longitude == nil) {
		return nil, domain.ErrInvalidInput
	}

	active, isMobile := true, false
	if in.Active != nil {
		active = *in.Active
	}
	if in.IsMobile != nil {
		isMobile = *in.IsMobile
	}

	now := time.Now()
	loc := &entity.Location{
		RecID:      uuid.New().String(),
		LocationID: locationID,
		Name:       name,
		Active:     active,
		IsMobile:   isMobile,
		DeviceID:   strings.TrimSpace(in.DeviceID),
		Plate:      strings.TrimSpace(in.Plate),
		DriverName: strings.TrimSpace(in.DriverName),
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  createdBy,
		ModifiedBy: createdBy,
	}
	if in.Latitude != nil && in.Longitude != nil {
		loc.Latitude = in.Latitude
		loc.Longitude = in.Longitude
		loc.AccuracyM = in.AccuracyM
		positionAt := now
		loc.PositionAt = &positionAt
	}

	if err := uc.repo.Create(ctx, loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// UpdatePosition reemplaza la posición completa de una bodega (tracking en vivo).
// Ambas coordenadas son obligatorias; ErrNotFound si la bodega no existe.
func (uc *LocationUseCase) UpdatePosition(ctx context.Context, modifiedBy, locationID string, in dto.UpdatePositionRequest) error {
	locationID = strings.TrimSpace(locationID)
	if locationID == "" || in.Latitude == nil || in.Longitude == nil {
		return domain.ErrInvalidInput
	}
	updated, err := uc.repo.UpdatePosition(ctx, locationID, *in.Latitude, *in.Longitude, in.AccuracyM, modifiedBy)
	if err != nil {
		return err
	}
	if !updated {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve la página de bodegas y el total, con page/pageSize acotados.
func (uc *LocationUseCase) List(ctx context.Context, q dto.ListLocationsQuery) ([]*dto.LocationResponse, int64, int, int, error) {
	page, pageSize := dto.NormalizePage(q.Page, q.PageSize)

	locs, total, err := uc.repo.List(ctx, repository.LocationFilter{
		Q:          strings.TrimSpace(q.Q),
		LocationID: strings.TrimSpace(q.LocationID),
		Active:     q.Active,
		IsMobile:   q.IsMobile,
		Limit:      pageSize,
		Offset:     (page - 1) * pageSize,
	})
	if err != nil {
		return nil, 0, page, pageSize, err
	}

	out := make([]*dto.LocationResponse, 0, len(locs))
	for _, l := range locs {
		out = append(out, toLocationResponse(l))
	}
	return out, total, page, pageSize, nil
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		RecID:      l.RecID,
		LocationID: l.LocationID,
		Name:       l.Name,
		Active:     l.Active,
		IsMobile:   l.IsMobile,
		DeviceID:   l.DeviceID,
		Plate:      l.Plate,
		DriverName: l.DriverName,
		Latitude:   l.Latitude,
		Longitude:  l.Longitude,
		AccuracyM:  l.AccuracyM,
		PositionAt: l.PositionAt,
		CreatedAt:  l.CreatedAt,
		ModifiedAt: l.ModifiedAt,
	}
}
