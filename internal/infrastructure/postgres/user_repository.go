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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un usuario nuevo. Mapea la violación de unicidad de user_id a ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (rec_id, user_id, email, password_hash, password_salt, active, last_logon_at, created_at, modified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		user.RecID, user.UserID, nullable(user.Email), user.PasswordHash, user.PasswordSalt,
		user.Active, user.LastLogonAt, user.CreatedAt, user.ModifiedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByUserID busca por login (nil si no existe).
func (r *UserRepo) FindByUserID(ctx context.Context, userID string) (*entity.User, error) {
	query := `
		SELECT rec_id, user_id, email, password_hash, password_salt, active, last_logon_at, created_at, modified_at
		FROM users WHERE user_id = $1`
	var u entity.User
	var email *string
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&u.RecID, &u.UserID, &email, &u.PasswordHash, &u.PasswordSalt,
		&u.Active, &u.LastLogonAt, &u.CreatedAt, &u.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	u.Email = fromNullable(email)
	return &u, nil
}

// TouchLastLogon registra el instante del login exitoso.
func (r *UserRepo) TouchLastLogon(ctx context.Context, recID string) error {
	_, err := r.q.Exec(ctx, `UPDATE users SET last_logon_at = now(), modified_at = now() WHERE rec_id = $1`, recID)
	if err != nil {
		return fmt.Errorf("touch last logon: %w", err)
	}
	return nil
}
