package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/budget-ledger/backend/internal/application/adapter"
)

type txKey struct{}

// gormTransactionManager implements adapter.TransactionManager on top of gorm.
type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a unit-of-work runner bound to db.
func NewTransactionManager(db *gorm.DB) adapter.TransactionManager {
	return &gormTransactionManager{db: db}
}

// WithinTransaction runs fn inside a database transaction. A nested call
// reuses the outer transaction.
func (m *gormTransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	// gorm rolls back when the callback returns an error or panics
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction bound to ctx, or db when there is none.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
