package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxRunner provides the transaction scope for multi-statement operations:
// fn runs inside one transaction which is rolled back on any error or panic
// and committed only when fn returns nil. WithinTx returns only after the
// commit (or rollback) outcome is known, so callers can make their response
// depend on it.
type TxRunner struct {
	db DB
}

func NewTxRunner(db DB) *TxRunner { return &TxRunner{db: db} }

func (r *TxRunner) WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return pgx.BeginFunc(ctx, r.db, fn)
}
