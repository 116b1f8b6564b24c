package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcalderon/inventario-movil/internal/domain"
	"github.com/jcalderon/inventario-movil/internal/domain/entity"
	"github.com/jcalderon/inventario-movil/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de catálogo. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un ítem nuevo. Mapea la violación de unicidad de item_id a ErrDuplicate.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (rec_id, item_id, name_alias, barcode, active, created_at, modified_at, created_by, modified_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		item.RecID, item.ItemID, item.NameAlias, nullable(item.Barcode), item.Active,
		item.CreatedAt, item.ModifiedAt, nullable(item.CreatedBy), nullable(item.ModifiedBy),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// ResolveRecID resuelve el código de negocio a la identidad interna ("" si no existe).
func (r *ItemRepo) ResolveRecID(ctx context.Context, itemID string) (string, error) {
	var recID string
	err := r.q.QueryRow(ctx, `SELECT rec_id FROM items WHERE item_id = $1`, itemID).Scan(&recID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("resolve item: %w", err)
	}
	return recID, nil
}

// List lista ítems con filtros y paginación, orden item_id asc. Devuelve la página y el total.
func (r *ItemRepo) List(ctx context.Context, f repository.ItemFilter) ([]*entity.Item, int64, error) {
	where := ""
	args := []any{}
	add := func(cond string, val any) {
		args = append(args, val)
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(cond, len(args))
	}

	if f.ItemID != "" {
		add("item_id = $%d", f.ItemID)
	}
	if f.Barcode != "" {
		add("barcode = $%d", f.Barcode)
	}
	if f.Active != nil {
		add("active = $%d", *f.Active)
	}
	if f.Q != "" {
		add("(item_id ILIKE $%d OR name_alias ILIKE $%[1]d OR barcode ILIKE $%[1]d)", "%"+f.Q+"%")
	}

	var total int64
	if err := r.q.QueryRow(ctx, "SELECT count(*) FROM items"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	query := `
		SELECT rec_id, item_id, name_alias, barcode, active, created_at, modified_at
		FROM items` + where +
		fmt.Sprintf(" ORDER BY item_id ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		var barcode *string
		if err := rows.Scan(&it.RecID, &it.ItemID, &it.NameAlias, &barcode, &it.Active, &it.CreatedAt, &it.ModifiedAt); err != nil {
			return nil, 0, fmt.Errorf("scan item: %w", err)
		}
		it.Barcode = fromNullable(barcode)
		list = append(list, &it)
	}
	return list, total, rows.Err()
}
