package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcalderon/inventario-movil/internal/application/dto"
	"github.com/jcalderon/inventario-movil/internal/domain"
	"github.com/jcalderon/inventario-movil/internal/domain/entity"
	"github.com/jcalderon/inventario-movil/internal/domain/repository"
)

// memItemRepo repositorio de ítems en memoria para probar los casos de uso.
type memItemRepo struct {
	items      map[string]*entity.Item
	lastFilter repository.ItemFilter
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: map[string]*entity.Item{}}
}

func (r *memItemRepo) Create(_ context.Context, item *entity.Item) error {
	if _, exists := r.items[item.ItemID]; exists {
		return domain.ErrDuplicate
	}
	r.items[item.ItemID] = item
	return nil
}

func (r *memItemRepo) ResolveRecID(_ context.Context, itemID string) (string, error) {
	if it, ok := r.items[itemID]; ok {
		return it.RecID, nil
	}
	return "", nil
}

func (r *memItemRepo) List(_ context.Context, f repository.ItemFilter) ([]*entity.Item, int64, error) {
	r.lastFilter = f
	out := make([]*entity.Item, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	return out, int64(len(out)), nil
}

func TestItemCreate_AsignaRecIDYActivoPorDefecto(t *testing.T) {
	repo := newMemItemRepo()
	uc := NewItemUseCase(repo)

	out, err := uc.Create(context.Background(), "user-rec-1", dto.CreateItemRequest{
		ItemID:    "  SKU-001  ",
		NameAlias: " Tornillo 3/8 ",
		Barcode:   " 7701234567890 ",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.RecID)
	assert.Equal(t, "SKU-001", out.ItemID)
	assert.Equal(t, "Tornillo 3/8", out.NameAlias)
	assert.Equal(t, "7701234567890", out.Barcode)
	assert.True(t, out.Active)

	stored := repo.items["SKU-001"]
	require.NotNil(t, stored)
	assert.Equal(t, "user-rec-1", stored.CreatedBy)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestItemCreate_ActivoExplicito(t *testing.T) {
	uc := NewItemUseCase(newMemItemRepo())

	inactive := false
	out, err := uc.Create(context.Background(), "u", dto.CreateItemRequest{
		ItemID:    "SKU-002",
		NameAlias: "Descontinuado",
		Active:    &inactive,
	})
	require.NoError(t, err)
	assert.False(t, out.Active)
}

func TestItemCreate_CamposObligatorios(t *testing.T) {
	uc := NewItemUseCase(newMemItemRepo())

	_, err := uc.Create(context.Background(), "u", dto.CreateItemRequest{ItemID: "  ", NameAlias: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), "u", dto.CreateItemRequest{ItemID: "SKU-003", NameAlias: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemCreate_CodigoDuplicado(t *testing.T) {
	uc := NewItemUseCase(newMemItemRepo())

	_, err := uc.Create(context.Background(), "u", dto.CreateItemRequest{ItemID: "SKU-001", NameAlias: "a"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), "u", dto.CreateItemRequest{ItemID: "SKU-001", NameAlias: "b"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestItemList_AcotaPaginacion(t *testing.T) {
	repo := newMemItemRepo()
	uc := NewItemUseCase(repo)

	_, _, page, pageSize, err := uc.List(context.Background(), dto.ListItemsQuery{
		Q:        "  tornillo  ",
		Page:     0,
		PageSize: 5000,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, dto.MaxPageSize, pageSize)
	assert.Equal(t, "tornillo", repo.lastFilter.Q)
	assert.Equal(t, dto.MaxPageSize, repo.lastFilter.Limit)
	assert.Equal(t, 0, repo.lastFilter.Offset)
}
