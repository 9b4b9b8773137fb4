package sqlite

import (
	"context"
	"database/sql"

	"github.com/uniendoculturas/campus/internal/campus/store"
)

type txStore struct {
	tx *sql.Tx
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // caller commits/rolls back; outer DB stays open

// Ping is a no-op inside a transaction; the connection is already live.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) ApplyMigrations() error { return sql.ErrTxDone } // migrations run before any tx

func (t *txStore) Users() store.Users                         { return &usersRepo{db: t.tx} }
func (t *txStore) VerificationCodes() store.VerificationCodes { return &verificationCodesRepo{db: t.tx} }
func (t *txStore) ReferralCodes() store.ReferralCodes         { return &referralCodesRepo{db: t.tx} }
func (t *txStore) Courses() store.Courses                     { return &coursesRepo{db: t.tx} }
func (t *txStore) Languages() store.Languages                 { return &languagesRepo{db: t.tx} }
func (t *txStore) Categories() store.Categories               { return &categoriesRepo{db: t.tx} }
