package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jcalderon/inventario-movil/internal/domain/entity"
	"github.com/jcalderon/inventario-movil/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// Las dos escrituras son sentencias únicas: el motor garantiza que dos updates
// condicionales concurrentes sobre la misma fila no pueden leer ambos el saldo
// previo, así el invariante de no-negatividad se sostiene sin locks explícitos.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de saldos. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Debit resta qty solo si el saldo alcanza (avail_physical >= qty), incrementando
// version en la misma sentencia. 0 filas = saldo inexistente o insuficiente.
func (r *StockRepo) Debit(ctx context.Context, itemRecID, locationRecID string, qty decimal.Decimal, modifiedBy string) (bool, error) {
	query := `
		UPDATE stock_balances
		SET avail_physical = avail_physical - $3,
			version = version + 1,
			modified_at = now(),
			modified_by = $4
		WHERE item_rec_id = $1
		  AND location_rec_id = $2
		  AND avail_physical >= $3`
	cmd, err := r.q.Exec(ctx, query, itemRecID, locationRecID, qty, nullable(modifiedBy))
	if err != nil {
		return false, fmt.Errorf("debit stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Credit suma qty; la primera entrada crea la fila con el valor inicial y
// version 0 (línea base cero implícita), las siguientes incrementan version.
func (r *StockRepo) Credit(ctx context.Context, itemRecID, locationRecID string, qty decimal.Decimal, modifiedBy string) error {
	query := `
		INSERT INTO stock_balances (item_rec_id, location_rec_id, avail_physical, version, modified_at, modified_by)
		VALUES ($1, $2, $3, 0, now(), $4)
		ON CONFLICT (item_rec_id, location_rec_id)
		DO UPDATE SET
			avail_physical = stock_balances.avail_physical + EXCLUDED.avail_physical,
			version = stock_balances.version + 1,
			modified_at = now(),
			modified_by = EXCLUDED.modified_by`
	_, err := r.q.Exec(ctx, query, itemRecID, locationRecID, qty, nullable(modifiedBy))
	if err != nil {
		return fmt.Errorf("credit stock: %w", err)
	}
	return nil
}

// List lista saldos con los códigos de negocio resueltos, orden ítem asc y bodega asc.
func (r *StockRepo) List(ctx context.Context, f repository.StockFilter) ([]*entity.StockView, int64, error) {
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
		add("it.item_id = $%d", f.ItemID)
	}
	if f.LocationID != "" {
		add("loc.location_id = $%d", f.LocationID)
	}
	if f.MinQty != nil {
		add("s.avail_physical >= $%d", *f.MinQty)
	}

	base := `
		FROM stock_balances s
		JOIN items it ON it.rec_id = s.item_rec_id
		JOIN locations loc ON loc.rec_id = s.location_rec_id`

	var total int64
	if err := r.q.QueryRow(ctx, "SELECT count(*)"+base+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock: %w", err)
	}

	query := `
		SELECT it.item_id, it.name_alias, loc.location_id, loc.name,
			s.avail_physical, s.version, s.modified_at` + base + where +
		fmt.Sprintf(" ORDER BY it.item_id ASC, loc.location_id ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockView
	for rows.Next() {
		var v entity.StockView
		if err := rows.Scan(&v.ItemID, &v.NameAlias, &v.LocationID, &v.LocationName,
			&v.AvailPhysical, &v.Version, &v.ModifiedAt); err != nil {
			return nil, 0, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &v)
	}
	return list, total, rows.Err()
}
