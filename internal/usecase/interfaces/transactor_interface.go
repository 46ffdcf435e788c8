package interfaces

import "context"

// ITransactor runs a function inside a storage transaction. Repositories
// called with the returned context join that transaction, which keeps
// check-then-act sequences (overlap validation followed by a write) atomic.

type ITransactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
