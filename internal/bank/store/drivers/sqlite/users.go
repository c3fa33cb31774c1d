package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/okobobank/okobo/internal/bank/domain"
	"github.com/okobobank/okobo/internal/bank/store"
)

type usersRepo struct {
	q querier
}

const userColumns = `id, name, email, password_hash, is_active, last_login, created_at, updated_at`

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u         domain.User
		isActive  int64
		lastLogin sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &isActive, &lastLogin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapReadErr(err)
	}
	u.IsActive = isActive != 0
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = ?`,
		id,
	)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = ?`,
		email,
	)
	return scanUser(row)
}

func (r *usersRepo) GetActiveUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = ? AND is_active = 1`,
		email,
	)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	isActive := int64(0)
	if u.IsActive {
		isActive = 1
	}
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, isActive, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return mapWriteErr(err)
	}
	return nil
}

func (r *usersRepo) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users
		SET last_login = ?, updated_at = ?
		WHERE id = ?`,
		at, at, userID,
	)
	if err != nil {
		return mapWriteErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
