package ports

import "context"

// Tx is an opaque transaction handle. Infrastructure owns the concrete
// type (here, *gorm.DB).
type Tx interface{}

// UnitOfWork is a callback-style transaction boundary: the callback
// returning an error rolls back, nil commits. Batch sync opens one unit
// per item so a store failure never undoes items already committed.
type UnitOfWork interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

// WithTxContext stores a transaction handle in context for repositories
// running inside a unit of work.
func WithTxContext(ctx context.Context, tx Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext reads the transaction handle, nil outside a unit.
func TxFromContext(ctx context.Context) Tx {
	return ctx.Value(txKey{})
}
