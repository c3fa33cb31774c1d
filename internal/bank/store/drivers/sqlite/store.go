package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/okobobank/okobo/internal/bank/store"
	sqlite3 "modernc.org/sqlite"
)

// SQLite extended result codes we classify on. Kept local so the rest of the
// package reads without the C constant names.
const (
	codeConstraintCheck   = 275  // SQLITE_CONSTRAINT_CHECK
	codeConstraintNotNull = 1299 // SQLITE_CONSTRAINT_NOTNULL
	codeConstraintPK      = 1555 // SQLITE_CONSTRAINT_PRIMARYKEY
	codeConstraintUnique  = 2067 // SQLITE_CONSTRAINT_UNIQUE
)

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return store.ErrUnavailable
	}
	return nil
}

func (s *Store) Users() store.Users { return &usersRepo{q: s.db} }

// WithTx executes fn within a transaction, automatically handling
// commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	tx := &storeTx{tx: sqlTx}

	// Rollback is safe to call after commit; this covers early returns.
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

// querier is satisfied by both *sql.DB and *sql.Tx so the repos work inside
// and outside transactions.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// mapReadErr converts driver-level read errors into the store's tagged set.
func mapReadErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapWriteErr converts driver-level write errors into the store's tagged
// set. Unique violations matter even after an existence check: two signups
// can race between the check and the insert.
func mapWriteErr(err error) error {
	var serr *sqlite3.Error
	if !errors.As(err, &serr) {
		return err
	}

	switch serr.Code() {
	case codeConstraintUnique, codeConstraintPK:
		return store.ErrAlreadyExists
	case codeConstraintCheck, codeConstraintNotNull:
		return store.ErrInvalidArgument
	default:
		return err
	}
}
