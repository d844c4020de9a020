package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type txContextKey struct{}

type txStarter interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// TxManager runs a function inside a pgx transaction carried on the context.
// Repositories pick it up through QueryerFromContext.
type TxManager struct {
	pool txStarter
}

func NewTxManager(pool txStarter) *TxManager {
	if pool == nil {
		return nil
	}
	return &TxManager{pool: pool}
}

// WithinReadWrite starts a read-write transaction unless ctx already carries
// one, in which case fn joins it. A nil manager runs fn without a transaction.
func (m *TxManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if m == nil {
		return fn(ctx)
	}
	return m.within(ctx, pgx.TxOptions{AccessMode: pgx.ReadWrite}, fn)
}

func (m *TxManager) within(ctx context.Context, opts pgx.TxOptions, fn func(context.Context) error) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("postgres: begin tx: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	if err := fn(context.WithValue(ctx, txContextKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, fmt.Errorf("postgres: rollback: %w", rbErr))
		}
		committed = true // already rolled back
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	committed = true
	return nil
}

func txFromContext(ctx context.Context) (pgx.Tx, bool) {
	if ctx == nil {
		return nil, false
	}
	tx, ok := ctx.Value(txContextKey{}).(pgx.Tx)
	return tx, ok
}

// QueryerFromContext returns the transaction stored in ctx, or fallback.
func QueryerFromContext(ctx context.Context, fallback DBTX) DBTX {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return fallback
}
