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

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación de LocationRepository sobre PostgreSQL (usable con pool o tx).
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de bodegas. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

const locationColumns = `rec_id, location_id, name, active, is_mobile, device_id, plate, driver_name,
		latitude, longitude, accuracy_m, position_at, created_at, modified_at`

// Create persiste una bodega nueva. Mapea la violación de unicidad de location_id a ErrDuplicate.
func (r *LocationRepo) Create(ctx context.Context, loc *entity.Location) error {
	query := `
		INSERT INTO locations (rec_id, location_id, name, active, is_mobile, device_id, plate, driver_name,
			latitude, longitude, accuracy_m, position_at, created_at, modified_at, created_by, modified_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		loc.RecID, loc.LocationID, loc.Name, loc.Active, loc.IsMobile,
		nullable(loc.DeviceID), nullable(loc.Plate), nullable(loc.DriverName),
		loc.Latitude, loc.Longitude, loc.AccuracyM, loc.PositionAt,
		loc.CreatedAt, loc.ModifiedAt, nullable(loc.CreatedBy), nullable(loc.ModifiedBy),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// ResolveRecID resuelve el código de negocio a la identidad interna ("" si no existe).
func (r *LocationRepo) ResolveRecID(ctx context.Context, locationID string) (string, error) {
	var recID string
	err := r.q.QueryRow(ctx, `SELECT rec_id FROM locations WHERE location_id = $1`, locationID).Scan(&recID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("resolve location: %w", err)
	}
	return recID, nil
}

// UpdatePosition reemplaza los tres campos de posición y refresca position_at en
// una sola sentencia; nunca deja una posición parcial. Devuelve false si la
// bodega no existe (0 filas afectadas).
func (r *LocationRepo) UpdatePosition(ctx context.Context, locationID string, lat, lon float64, accuracyM *float64, modifiedBy string) (bool, error) {
	query := `
		UPDATE locations
		SET latitude = $2, longitude = $3, accuracy_m = $4,
			position_at = now(), modified_at = now(), modified_by = $5
		WHERE location_id = $1`
	cmd, err := r.q.Exec(ctx, query, locationID, lat, lon, accuracyM, nullable(modifiedBy))
	if err != nil {
		return false, fmt.Errorf("update position: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List lista bodegas con filtros y paginación, orden location_id asc. Devuelve la página y el total.
func (r *LocationRepo) List(ctx context.Context, f repository.LocationFilter) ([]*entity.Location, int64, error) {
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

	if f.LocationID != "" {
		add("location_id = $%d", f.LocationID)
	}
	if f.Active != nil {
		add("active = $%d", *f.Active)
	}
	if f.IsMobile != nil {
		add("is_mobile = $%d", *f.IsMobile)
	}
	if f.Q != "" {
		add("(location_id ILIKE $%d OR name ILIKE $%[1]d OR device_id ILIKE $%[1]d OR plate ILIKE $%[1]d OR driver_name ILIKE $%[1]d)", "%"+f.Q+"%")
	}

	var total int64
	if err := r.q.QueryRow(ctx, "SELECT count(*) FROM locations"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count locations: %w", err)
	}

	query := "SELECT " + locationColumns + " FROM locations" + where +
		fmt.Sprintf(" ORDER BY location_id ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	list, err := scanLocations(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListPositioned devuelve todas las bodegas con ambas coordenadas, opcionalmente
// filtradas por is_mobile. Alimenta el índice de proximidad (scan lineal en memoria).
func (r *LocationRepo) ListPositioned(ctx context.Context, isMobile *bool) ([]*entity.Location, error) {
	query := "SELECT " + locationColumns + ` FROM locations
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL`
	args := []any{}
	if isMobile != nil {
		query += " AND is_mobile = $1"
		args = append(args, *isMobile)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list positioned locations: %w", err)
	}
	defer rows.Close()

	return scanLocations(rows)
}

func scanLocations(rows pgx.Rows) ([]*entity.Location, error) {
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		var deviceID, plate, driverName *string
		if err := rows.Scan(
			&l.RecID, &l.LocationID, &l.Name, &l.Active, &l.IsMobile,
			&deviceID, &plate, &driverName,
			&l.Latitude, &l.Longitude, &l.AccuracyM, &l.PositionAt,
			&l.CreatedAt, &l.ModifiedAt,
		); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		l.DeviceID = fromNullable(deviceID)
		l.Plate = fromNullable(plate)
		l.DriverName = fromNullable(driverName)
		list = append(list, &l)
	}
	return list, rows.Err()
}
