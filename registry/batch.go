package registry

import (
	"context"

	"github.com/robotkit/robotkit-sdk/domain/ports"
)

// Batch runs fn inside the container's multi-operation scope.
func (r *Registry[T]) Batch(ctx context.Context, fn func(ctx context.Context) error) error {
	return RunBatch(ctx, r.container, fn)
}

// RunBatch runs fn between BeginMultiOperation and EndMultiOperation when
// target implements ports.MultiOperator, and just runs fn otherwise.
// End runs on every exit path, panics included. The scope gives no atomicity:
// work done by fn before a failure stays done.
func RunBatch(ctx context.Context, target any, fn func(ctx context.Context) error) (err error) {
	mo, ok := target.(ports.MultiOperator)
	if !ok {
		return fn(ctx)
	}
	if err := mo.BeginMultiOperation(ctx); err != nil {
		return err
	}
	defer func() {
		if endErr := mo.EndMultiOperation(ctx); endErr != nil && err == nil {
			err = endErr
		}
	}()
	return fn(ctx)
}
