package adapter

import "context"

// TransactionManager runs a unit of work atomically.
// Repositories called with the context passed to fn take part in the same
// database transaction. The work commits when fn returns nil and rolls back
// when it returns an error or panics.
type TransactionManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
