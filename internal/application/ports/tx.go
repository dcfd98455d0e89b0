package ports

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type TxRunner interface {
	WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}
