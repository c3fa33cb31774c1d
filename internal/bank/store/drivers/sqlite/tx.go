package sqlite

import (
	"database/sql"

	"github.com/okobobank/okobo/internal/bank/store"
)

type storeTx struct {
	tx *sql.Tx
}

func (t *storeTx) Users() store.Users { return &usersRepo{q: t.tx} }

func (t *storeTx) Commit() error   { return t.tx.Commit() }
func (t *storeTx) Rollback() error { return t.tx.Rollback() }
