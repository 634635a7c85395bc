// Package labels manages the host's named labels (materials, sections,
// supports, releases) and the wrapped labels themselves.
//
// All label sub-types share one host label server; a Registry scopes it to one
// sub-type through its kind's KindTag.
package labels

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robotkit/robotkit-sdk/bridge"
	"github.com/robotkit/robotkit-sdk/capsule"
	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/errors"
	"github.com/robotkit/robotkit-sdk/domain/ports"
	"github.com/robotkit/robotkit-sdk/registry"
)

// Registry is a Capsule over the label server, scoped to one label kind.
type Registry[T any] struct {
	*capsule.Capsule
	kind      *Kind[T]
	container ports.NamedContainer
	app       ports.Application
	logger    *slog.Logger
}

type config struct {
	logger  *slog.Logger
	catalog *bridge.Catalog
}

// Option configures a Registry.
type Option func(*config)

// WithLogger sets the logger. Default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithCatalog sets the catalog used for the server and every wrapped label.
func WithCatalog(cat *bridge.Catalog) Option {
	return func(c *config) {
		c.catalog = cat
	}
}

// New wraps the label server as a registry of kind.
func New[T any](kind *Kind[T], container ports.NamedContainer, app ports.Application, opts ...Option) (*Registry[T], error) {
	if err := kind.usable(); err != nil {
		return nil, err
	}
	cfg := config{logger: slog.Default(), catalog: bridge.Default}
	for _, opt := range opts {
		opt(&cfg)
	}

	c, err := capsule.New(container, kind.ContainerType,
		capsule.WithCatalog(cfg.catalog),
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
		logger:    cfg.logger.With(slog.String("labels", kind.Name)),
	}, nil
}

// Kind returns the registry's kind.
func (r *Registry[T]) Kind() *Kind[T] {
	return r.kind
}

// Get returns the label called name, or a LookupError wrapping the cause.
func (r *Registry[T]) Get(ctx context.Context, name string) (res T, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &errors.HostError{Type: r.container.HostType(), Member: "Get", Panic: true, Err: fmt.Errorf("%v", p)}
		}
		if err != nil {
			var zero T
			res, err = zero, &errors.LookupError{Kind: r.kind.Name, Key: name, Err: err}
		}
	}()

	raw, err := r.container.Get(ctx, r.kind.KindTag, name)
	if err != nil {
		return res, err
	}
	return r.wrap(ctx, raw)
}

func (r *Registry[T]) wrap(ctx context.Context, raw ports.Instance) (T, error) {
	var zero T
	if err := bridge.Narrow(raw, r.kind.CastType); err != nil {
		return zero, err
	}
	return r.kind.Result(ctx, raw, capsule.WithCatalog(r.Catalog()))
}

// Names returns the names of the labels of this kind accepted by pred, in host
// order. A nil pred accepts every name.
func (r *Registry[T]) Names(ctx context.Context, pred func(string) bool) ([]string, error) {
	names, err := r.container.AvailableNames(ctx, r.kind.KindTag)
	if err != nil {
		return nil, err
	}
	if pred == nil {
		return names, nil
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		if pred(n) {
			out = append(out, n)
		}
	}
	return out, nil
}

// Delete removes the label called name.
func (r *Registry[T]) Delete(ctx context.Context, name string) error {
	return r.container.Delete(ctx, r.kind.KindTag, name)
}

// Exist reports whether a label called name exists.
func (r *Registry[T]) Exist(ctx context.Context, name string) (bool, error) {
	return r.container.Exist(ctx, r.kind.KindTag, name)
}

// Create returns a new, unsaved label of this kind, narrowed to the kind's
// cast type. Fill its payload, then Store it.
func (r *Registry[T]) Create(ctx context.Context, name string) (ports.Instance, error) {
	raw, err := r.container.Create(ctx, r.kind.KindTag, name)
	if err != nil {
		return nil, err
	}
	if err := bridge.Narrow(raw, r.kind.CastType); err != nil {
		return nil, err
	}
	return raw, nil
}

// Store saves label under name and returns it wrapped.
func (r *Registry[T]) Store(ctx context.Context, label ports.Instance, name string) (T, error) {
	var zero T
	if err := r.container.Store(ctx, label, name); err != nil {
		return zero, err
	}
	r.logger.DebugContext(ctx, "stored label", slog.String("name", name))
	return r.Get(ctx, name)
}

// Assign gives the label called name to the entities of domain named by
// selector, through target's label setter, inside target's batch scope.
func (r *Registry[T]) Assign(ctx context.Context, target ports.LabelSetter, domain entities.DomainTag, selector, name string) error {
	sel, err := r.app.Selections().Create(ctx, domain)
	if err != nil {
		return fmt.Errorf("%s: create selection: %w", r.kind.Name, err)
	}
	if err := sel.FromText(ctx, selector); err != nil {
		return fmt.Errorf("%s: resolve %q: %w", r.kind.Name, selector, err)
	}
	return registry.RunBatch(ctx, target, func(ctx context.Context) error {
		return target.SetLabel(ctx, sel, r.kind.KindTag, name)
	})
}
