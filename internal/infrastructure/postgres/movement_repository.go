package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jcalderon/inventario-movil/internal/domain/entity"
	"github.com/jcalderon/inventario-movil/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// La tabla movements es append-only: este adaptador no expone Update ni Delete.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador del historial. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento (genera ID si viene vacío).
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (rec_id, item_rec_id, location_rec_id, movement_type, qty, reason, voucher,
			created_by, created_at, latitude, longitude, accuracy_m, device_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ItemRecID, m.LocationRecID, string(m.Type), m.Qty,
		nullable(m.Reason), nullable(m.Voucher), m.CreatedBy, m.CreatedAt,
		m.Latitude, m.Longitude, m.AccuracyM, m.DeviceTime,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

const movementViewColumns = `
	m.rec_id, it.item_id, it.name_alias, loc.location_id, loc.name,
	m.movement_type, m.qty, m.reason, m.voucher, m.created_by, m.created_at,
	m.latitude, m.longitude, m.accuracy_m, m.device_time`

const movementViewJoins = `
	FROM movements m
	JOIN items it ON it.rec_id = m.item_rec_id
	JOIN locations loc ON loc.rec_id = m.location_rec_id`

// GetByID devuelve un movimiento con códigos resueltos, o nil si no existe.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.MovementView, error) {
	row := r.q.QueryRow(ctx, "SELECT"+movementViewColumns+movementViewJoins+" WHERE m.rec_id = $1", id)
	v, err := scanMovementView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return v, nil
}

// List lista el historial con filtros y paginación, orden created_at desc.
func (r *MovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.MovementView, int64, error) {
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
	if f.Type != "" {
		add("m.movement_type = $%d", string(f.Type))
	}
	if f.Voucher != "" {
		add("m.voucher = $%d", f.Voucher)
	}
	if f.From != nil {
		add("m.created_at >= $%d", *f.From)
	}
	if f.To != nil {
		add("m.created_at <= $%d", *f.To)
	}

	var total int64
	if err := r.q.QueryRow(ctx, "SELECT count(*)"+movementViewJoins+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}

	query := "SELECT" + movementViewColumns + movementViewJoins + where +
		fmt.Sprintf(" ORDER BY m.created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.MovementView
	for rows.Next() {
		v, err := scanMovementView(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, v)
	}
	return list, total, rows.Err()
}

func scanMovementView(row pgx.Row) (*entity.MovementView, error) {
	var v entity.MovementView
	var movType string
	var reason, voucher *string
	if err := row.Scan(
		&v.ID, &v.ItemID, &v.NameAlias, &v.LocationID, &v.LocationName,
		&movType, &v.Qty, &reason, &voucher, &v.CreatedBy, &v.CreatedAt,
		&v.Latitude, &v.Longitude, &v.AccuracyM, &v.DeviceTime,
	); err != nil {
		return nil, err
	}
	v.Type = entity.MovementType(movType)
	v.Reason = fromNullable(reason)
	v.Voucher = fromNullable(voucher)
	return &v, nil
}
