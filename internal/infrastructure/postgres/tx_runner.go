package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// txBeginner lo implementan *pgxpool.Pool y pgx.Tx (este último abre un savepoint).
type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// runInTx inicia una transacción, ejecuta fn con la tx y hace Commit o Rollback.
func runInTx(ctx context.Context, db txBeginner, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
