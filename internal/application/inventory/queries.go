package inventory

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jcalderon/inventario-movil/internal/application/dto"
	"github.com/jcalderon/inventario-movil/internal/domain"
	"github.com/jcalderon/inventario-movil/internal/domain/entity"
	"github.com/jcalderon/inventario-movil/internal/domain/repository"
)

// QueryUseCase lecturas del libro: saldos e historial. Proyecciones puras sobre
// el estado comprometido, sin lógica de negocio más allá de filtros y paginación.
type QueryUseCase struct {
	stockRepo repository.StockRepository
	movRepo   repository.MovementRepository
}

// NewQueryUseCase construye el caso de uso de consultas.
func NewQueryUseCase(stockRepo repository.StockRepository, movRepo repository.MovementRepository) *QueryUseCase {
	return &QueryUseCase{stockRepo: stockRepo, movRepo: movRepo}
}

// ListStock devuelve la página de saldos (orden ítem asc, bodega asc) y el total.
func (uc *QueryUseCase) ListStock(ctx context.Context, q dto.ListStockQuery) ([]*dto.StockResponse, int64, int, int, error) {
	page, pageSize := dto.NormalizePage(q.Page, q.PageSize)

	views, total, err := uc.stockRepo.List(ctx, repository.StockFilter{
		ItemID:     strings.TrimSpace(q.ItemID),
		LocationID: strings.TrimSpace(q.LocationID),
		MinQty:     q.MinQty,
		Limit:      pageSize,
		Offset:     (page - 1) * pageSize,
	})
	if err != nil {
		return nil, 0, page, pageSize, err
	}

	out := make([]*dto.StockResponse, 0, len(views))
	for _, v := range views {
		out = append(out, &dto.StockResponse{
			ItemID:        v.ItemID,
			NameAlias:     v.NameAlias,
			LocationID:    v.LocationID,
			LocationName:  v.LocationName,
			AvailPhysical: v.AvailPhysical,
			Version:       v.Version,
			ModifiedAt:    v.ModifiedAt,
		})
	}
	return out, total, page, pageSize, nil
}

// ListMovements devuelve la página del historial (orden created_at desc) y el total.
// MovementType, si viene, debe ser uno de los cuatro tokens reconocidos.
func (uc *QueryUseCase) ListMovements(ctx context.Context, q dto.ListMovementsQuery) ([]*dto.MovementResponse, int64, int, int, error) {
	page, pageSize := dto.NormalizePage(q.Page, q.PageSize)

	var movType entity.MovementType
	if strings.TrimSpace(q.MovementType) != "" {
		t, ok := entity.ParseMovementType(q.MovementType)
		if !ok {
			return nil, 0, page, pageSize, domain.ErrInvalidInput
		}
		movType = t
	}

	views, total, err := uc.movRepo.List(ctx, repository.MovementFilter{
		ItemID:     strings.TrimSpace(q.ItemID),
		LocationID: strings.TrimSpace(q.LocationID),
		Type:       movType,
		Voucher:    strings.TrimSpace(q.Voucher),
		From:       q.From,
		To:         q.To,
		Limit:      pageSize,
		Offset:     (page - 1) * pageSize,
	})
	if err != nil {
		return nil, 0, page, pageSize, err
	}

	out := make([]*dto.MovementResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toMovementResponse(v))
	}
	return out, total, page, pageSize, nil
}

// GetMovementByID devuelve un movimiento del historial o ErrNotFound.
// Un id que no es UUID no puede existir en el historial, así que se resuelve
// como no-encontrado sin consultar la BD.
func (uc *QueryUseCase) GetMovementByID(ctx context.Context, id string) (*dto.MovementResponse, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	view, err := uc.movRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, domain.ErrNotFound
	}
	return toMovementResponse(view), nil
}

func toMovementResponse(v *entity.MovementView) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:           v.ID,
		ItemID:       v.ItemID,
		NameAlias:    v.NameAlias,
		LocationID:   v.LocationID,
		LocationName: v.LocationName,
		MovementType: string(v.Type),
		Qty:          v.Qty,
		Reason:       v.Reason,
		Voucher:      v.Voucher,
		CreatedBy:    v.CreatedBy,
		CreatedAt:    v.CreatedAt,
		Latitude:     v.Latitude,
		Longitude:    v.Longitude,
		AccuracyM:    v.AccuracyM,
		DeviceTime:   v.DeviceTime,
	}
}
