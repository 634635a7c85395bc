// Package registry manages numbered collections of host entities.
//
// A Registry wraps a host container (node server, bar server, case server) and
// resolves numbers and selection strings into wrapped entities. It holds no
// state besides its references: every call reads the host again.
package registry

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/robotkit/robotkit-sdk/bridge"
	"github.com/robotkit/robotkit-sdk/capsule"
	"github.com/robotkit/robotkit-sdk/domain/errors"
	"github.com/robotkit/robotkit-sdk/domain/ports"
)

// Registry is a Capsule over a numbered container.
type Registry[T any] struct {
	*capsule.Capsule
	kind      *Kind[T]
	container ports.Container
	app       ports.Application
	logger    *slog.Logger
}

type config struct {
	logger  *slog.Logger
	catalog *bridge.Catalog
	owned   *capsule.Owned
}

// Option configures a Registry.
type Option func(*config)

// WithLogger sets the logger. Default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithCatalog sets the catalog used for the container and every wrapped entity.
func WithCatalog(cat *bridge.Catalog) Option {
	return func(c *config) {
		c.catalog = cat
	}
}

// WithOwned declares members the registry wrapper owns.
func WithOwned(o *capsule.Owned) Option {
	return func(c *config) {
		c.owned = o
	}
}

// New wraps container as a registry of kind. It fails with TypeMismatchError
// when container does not satisfy the kind's container type.
func New[T any](kind *Kind[T], container ports.Container, app ports.Application, opts ...Option) (*Registry[T], error) {
	if err := kind.usable(); err != nil {
		return nil, err
	}
	cfg := config{logger: slog.Default(), catalog: bridge.Default}
	for _, opt := range opts {
		opt(&cfg)
	}

	c, err := capsule.New(container, kind.ContainerType,
		capsule.WithCatalog(cfg.catalog),
		capsule.WithOwned(cfg.owned),
		capsule.WithName(kind.Name),
	)
	if err != nil {
		return nil, err
	}
	return &Registry[T]{
		Capsule:   c,
		kind:      kind,
		container: container,
		app:       app,
		logger:    cfg.logger.With(slog.String("registry", kind.Name)),
	}, nil
}

// Kind returns the registry's kind.
func (r *Registry[T]) Kind() *Kind[T] {
	return r.kind
}

// Container returns the wrapped host container.
func (r *Registry[T]) Container() ports.Container {
	return r.container
}

// App returns the application context the registry resolves selections with.
func (r *Registry[T]) App() ports.Application {
	return r.app
}

// Get returns the entity numbered id. Any failure, including a host panic, is
// reported as a LookupError wrapping its cause.
func (r *Registry[T]) Get(ctx context.Context, id int) (res T, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &errors.HostError{Type: r.container.HostType(), Member: "Get", Panic: true, Err: fmt.Errorf("%v", p)}
		}
		if err != nil {
			var zero T
			res, err = zero, &errors.LookupError{Kind: r.kind.Name, Key: id, Err: err}
		}
	}()

	raw, err := r.container.Get(ctx, id)
	if err != nil {
		return res, err
	}
	if err := bridge.Narrow(raw, r.kind.CastType); err != nil {
		return res, err
	}
	return r.kind.Result(ctx, raw, capsule.WithCatalog(r.Catalog()))
}

// SelectIDs returns the numbers of the entities named by selector, in the
// host's resolution order. The selector is resolved when iteration starts.
func (r *Registry[T]) SelectIDs(ctx context.Context, selector string) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		sel, err := r.Resolve(ctx, selector)
		if err != nil {
			yield(0, err)
			return
		}
		n := sel.Count()
		for i := 1; i <= n; i++ {
			if !yield(sel.Get(i), nil) {
				return
			}
		}
	}
}

// Select returns the entities named by selector, wrapped. Each entity is
// resolved with Get when the iteration reaches it.
func (r *Registry[T]) Select(ctx context.Context, selector string) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for id, err := range r.SelectIDs(ctx, selector) {
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !yield(r.Get(ctx, id)) {
				return
			}
		}
	}
}

// Collect drains Select into a slice, stopping at the first error.
func (r *Registry[T]) Collect(ctx context.Context, selector string) ([]T, error) {
	var out []T
	for v, err := range r.Select(ctx, selector) {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}

// CollectIDs drains SelectIDs into a slice.
func (r *Registry[T]) CollectIDs(ctx context.Context, selector string) ([]int, error) {
	var out []int
	for id, err := range r.SelectIDs(ctx, selector) {
		if err != nil {
			return out, err
		}
		out = append(out, id)
	}
	return out, nil
}

// Delete removes every entity named by selector. It is best effort: the host
// does not confirm individual deletions.
func (r *Registry[T]) Delete(ctx context.Context, selector string) error {
	sel, err := r.Resolve(ctx, selector)
	if err != nil {
		return err
	}
	r.logger.DebugContext(ctx, "deleting selection", slog.String("selector", selector), slog.Int("count", sel.Count()))
	return r.container.DeleteMany(ctx, sel)
}

// Resolve creates a selection of the registry's family from selector.
func (r *Registry[T]) Resolve(ctx context.Context, selector string) (ports.Selection, error) {
	sel, err := r.app.Selections().Create(ctx, r.kind.DomainTag)
	if err != nil {
		return nil, fmt.Errorf("%s: create selection: %w", r.kind.Name, err)
	}
	if err := sel.FromText(ctx, selector); err != nil {
		return nil, fmt.Errorf("%s: resolve %q: %w", r.kind.Name, selector, err)
	}
	return sel, nil
}

// Exist reports whether an entity numbered id exists.
func (r *Registry[T]) Exist(ctx context.Context, id int) (bool, error) {
	return r.container.Exist(ctx, id)
}

// FreeNumber returns the lowest unused number.
func (r *Registry[T]) FreeNumber(ctx context.Context) (int, error) {
	return r.container.FreeNumber(ctx)
}

// Claim returns the number a new entity should be created at. A non-positive
// id asks for the free number. An existing entity at id is deleted when
// overwrite is set, otherwise Claim fails with IDConflictError.
func (r *Registry[T]) Claim(ctx context.Context, id int, overwrite bool) (int, error) {
	if id <= 0 {
		return r.FreeNumber(ctx)
	}
	exists, err := r.Exist(ctx, id)
	if err != nil {
		return 0, err
	}
	if !exists {
		return id, nil
	}
	if !overwrite {
		return 0, &errors.IDConflictError{Kind: r.kind.Name, ID: id}
	}
	r.logger.DebugContext(ctx, "overwriting entity", slog.Int("id", id))
	if err := r.container.Delete(ctx, id); err != nil {
		return 0, err
	}
	return id, nil
}
