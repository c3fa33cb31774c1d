package store

import (
	"context"
	"errors"
	"time"

	"github.com/okobobank/okobo/internal/bank/domain"
)

// Tagged errors returned at the store boundary. Handlers map these to HTTP
// statuses without knowing which driver produced them.
var (
	ErrNotFound        = errors.New("store: not found")
	ErrAlreadyExists   = errors.New("store: already exists")
	ErrInvalidArgument = errors.New("store: invalid argument")
	ErrUnavailable     = errors.New("store: unavailable")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// WithTx executes a function within a transaction. If fn returns an
	// error the transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store scoped to a single transaction.
type Tx interface {
	Users() Users
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail returns a user by normalized (lowercased) email,
	// regardless of active state. Used for signup uniqueness checks.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetActiveUserByEmail returns an active user by normalized email.
	// Signin only considers active records.
	GetActiveUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// A duplicate normalized email surfaces as ErrAlreadyExists even when
	// the caller's existence check raced another signup.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateLastLogin sets last_login and bumps updated_at.
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
}
