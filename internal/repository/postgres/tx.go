package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/njprem/Trip_Planner_BackEnd/internal/repository/ports"
)

const (
	TxOutcomeCommit   = "commit"
	TxOutcomeRollback = "rollback"
)

type txKey struct{}

// TxManager scopes a *sqlx.Tx to a context so repositories called inside
// RunAtomic share one connection.
type TxManager struct {
	db      *sqlx.DB
	logger  *zap.Logger
	observe func(outcome string)
}

type TxOption func(*TxManager)

func WithTxLogger(logger *zap.Logger) TxOption {
	return func(m *TxManager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithTxObserver registers a callback that receives TxOutcomeCommit or
// TxOutcomeRollback once per outermost unit.
func WithTxObserver(fn func(outcome string)) TxOption {
	return func(m *TxManager) {
		if fn != nil {
			m.observe = fn
		}
	}
}

func NewTxManager(db *sqlx.DB, opts ...TxOption) *TxManager {
	m := &TxManager{
		db:      db,
		logger:  zap.NewNop(),
		observe: func(string) {},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RunAtomic commits when fn returns nil and rolls back on error, panic, or
// context cancellation. A nested call joins the transaction already carried
// by ctx.
func (m *TxManager) RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			m.logger.Warn("rollback failed", zap.Error(rbErr))
		}
		m.observe(TxOutcomeRollback)
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("tx aborted: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true
	m.observe(TxOutcomeCommit)
	return nil
}

func txFromContext(ctx context.Context) (*sqlx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx, ok && tx != nil
}

// executor returns the transaction carried by ctx, or the pool.
func executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return db
}

var _ ports.Transactor = (*TxManager)(nil)
