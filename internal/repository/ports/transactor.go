package ports

import "context"

// Transactor runs fn as one atomic unit. Repository calls made with the ctx
// passed to fn join the unit; returning an error (or panicking) rolls it back.
type Transactor interface {
	RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error
}
