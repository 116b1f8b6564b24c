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

// ItemUseCase casos de uso del catálogo de productos.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un ítem nuevo. ItemID y NameAlias no pueden quedar en blanco tras
// recortar espacios; Active por defecto es true. Devuelve ErrDuplicate si el
// código ya existe.
func (uc *ItemUseCase) Create(ctx context.Context, createdBy string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	itemID := strings.TrimSpace(in.ItemID)
	nameAlias := strings.TrimSpace(in.NameAlias)
	if itemID == "" || nameAlias == "" {
		return nil, domain.ErrInvalidInput
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	now := time.Now()
	item := &entity.Item{
		RecID:      uuid.New().String(),
		ItemID:     itemID,
		NameAlias:  nameAlias,
		Barcode:    strings.TrimSpace(in.Barcode),
		Active:     active,
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  createdBy,
		ModifiedBy: createdBy,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List devuelve la página de ítems y el total, con page/pageSize acotados.
func (uc *ItemUseCase) List(ctx context.Context, q dto.ListItemsQuery) ([]*dto.ItemResponse, int64, int, int, error) {
	page, pageSize := dto.NormalizePage(q.Page, q.PageSize)

	items, total, err := uc.repo.List(ctx, repository.ItemFilter{
		Q:       strings.TrimSpace(q.Q),
		ItemID:  strings.TrimSpace(q.ItemID),
		Barcode: strings.TrimSpace(q.Barcode),
		Active:  q.Active,
		Limit:   pageSize,
		Offset:  (page - 1) * pageSize,
	})
	if err != nil {
		return nil, 0, page, pageSize, err
	}

	out := make([]*dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out, total, page, pageSize, nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		RecID:      it.RecID,
		ItemID:     it.ItemID,
		NameAlias:  it.NameAlias,
		Barcode:    it.Barcode,
		Active:     it.Active,
		CreatedAt:  it.CreatedAt,
		ModifiedAt: it.ModifiedAt,
	}
}
