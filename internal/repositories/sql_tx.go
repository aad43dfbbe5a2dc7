package repositories

import (
	"context"
	"database/sql"
)

type txKey struct{}

// dbExecutor is satisfied by both *sql.DB and *sql.Tx.
type dbExecutor interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func injectTx(ctx context.Context, tx dbExecutor) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func (r *Repository) extractTxWrite(ctx context.Context) dbExecutor {
	if tx, ok := ctx.Value(txKey{}).(dbExecutor); ok {
		return tx
	}
	return r.dbWrite
}

// extractTxRead stays on the open transaction, if any, so reads see its own writes.
func (r *Repository) extractTxRead(ctx context.Context) dbExecutor {
	if tx, ok := ctx.Value(txKey{}).(dbExecutor); ok {
		return tx
	}
	return r.dbRead
}
