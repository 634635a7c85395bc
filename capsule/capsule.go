// Package capsule wraps one host instance behind a typed Go value.
//
// A Capsule checks at construction that the instance satisfies a required host
// type, then forwards reads, writes and calls it does not handle itself to the
// instance's member table. Wrapper types declare the members they own with an
// Owned set; owned names are never forwarded on write.
package capsule

import (
	"context"
	"fmt"

	"github.com/robotkit/robotkit-sdk/bridge"
	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/errors"
	"github.com/robotkit/robotkit-sdk/domain/ports"
)

// Capsule owns one borrowed host instance reference for its lifetime.
type Capsule struct {
	inst     ports.Instance
	table    *bridge.Table
	owned    *Owned
	shadow   map[string]any
	catalog  *bridge.Catalog
	name     string
	required entities.TypeTag
}

type config struct {
	catalog *bridge.Catalog
	owned   *Owned
	name    string
}

// Option configures a Capsule.
type Option func(*config)

// WithCatalog sets the catalog member tables are looked up in.
// Default is bridge.Default.
func WithCatalog(c *bridge.Catalog) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.catalog = c
		}
	}
}

// WithOwned declares the members the wrapper type owns.
func WithOwned(o *Owned) Option {
	return func(cfg *config) {
		cfg.owned = o
	}
}

// WithName sets the owner name used in error messages.
// Default is the required host type.
func WithName(name string) Option {
	return func(cfg *config) {
		cfg.name = name
	}
}

// New wraps inst. It fails with TypeMismatchError if inst does not satisfy required.
func New(inst ports.Instance, required entities.TypeTag, opts ...Option) (*Capsule, error) {
	cfg := config{catalog: bridge.Default}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := bridge.Narrow(inst, required); err != nil {
		return nil, err
	}

	table, _ := cfg.catalog.TableFor(inst)
	name := cfg.name
	if name == "" {
		name = string(required)
	}
	return &Capsule{
		inst:     inst,
		table:    table,
		owned:    cfg.owned,
		catalog:  cfg.catalog,
		name:     name,
		required: required,
	}, nil
}

// Instance returns the wrapped host instance.
func (c *Capsule) Instance() ports.Instance {
	return c.inst
}

// Unwrap returns the wrapped host instance, for callers handing it back to
// the host.
func (c *Capsule) Unwrap() ports.Instance {
	return c.inst
}

// Required returns the host type the instance was checked against.
func (c *Capsule) Required() entities.TypeTag {
	return c.required
}

// Catalog returns the catalog the capsule resolves member tables from.
func (c *Capsule) Catalog() *bridge.Catalog {
	return c.catalog
}

// Has reports whether name can be read, written or called on the capsule.
func (c *Capsule) Has(name string) bool {
	if _, ok := c.shadow[name]; ok {
		return true
	}
	return c.owned.Has(name) || c.table.Has(name)
}

// Read returns the member name. The capsule's own surface (values assigned on
// the capsule, then owned getters) is consulted before the host instance.
func (c *Capsule) Read(ctx context.Context, name string) (any, error) {
	if v, ok := c.shadow[name]; ok {
		return v, nil
	}
	if f, ok := c.owned.lookup(name); ok && f.Get != nil {
		return f.Get(ctx, c)
	}
	if c.table.CanGet(name) {
		return c.table.Get(ctx, c.inst, name)
	}
	return nil, &errors.UnknownAttributeError{Owner: c.name, Name: name}
}

// Write assigns the member name. The write goes to the host instance whenever
// the host declares a member name and the wrapper does not own name; writing a
// read-only host member fails. Otherwise the value is kept on the capsule.
func (c *Capsule) Write(ctx context.Context, name string, v any) error {
	if c.table.Has(name) && !c.owned.Has(name) {
		return c.table.Set(ctx, c.inst, name, v)
	}
	if f, ok := c.owned.lookup(name); ok && f.Set != nil {
		return f.Set(ctx, c, v)
	}
	if c.shadow == nil {
		c.shadow = make(map[string]any)
	}
	c.shadow[name] = v
	return nil
}

// Call invokes the host method name.
func (c *Capsule) Call(ctx context.Context, name string, args ...any) (any, error) {
	if !c.table.CanCall(name) {
		return nil, &errors.UnknownAttributeError{Owner: c.name, Name: name}
	}
	return c.table.Call(ctx, c.inst, name, args...)
}

// ReadHost reads name from the host instance, bypassing the capsule's own surface.
// Owned getters use it to reach a host member they shadow.
func (c *Capsule) ReadHost(ctx context.Context, name string) (any, error) {
	if !c.table.CanGet(name) {
		return nil, &errors.UnknownAttributeError{Owner: c.name, Name: name}
	}
	return c.table.Get(ctx, c.inst, name)
}

// Wrap wraps another host instance reachable from this capsule with the same
// catalog.
func (c *Capsule) Wrap(inst ports.Instance, required entities.TypeTag, opts ...Option) (*Capsule, error) {
	return New(inst, required, append([]Option{WithCatalog(c.catalog)}, opts...)...)
}

// String returns a short description of the capsule.
func (c *Capsule) String() string {
	return fmt.Sprintf("%s(%s)", c.name, c.inst.HostType())
}

// ReadAs reads name and asserts its type.
func ReadAs[V any](ctx context.Context, c *Capsule, name string) (V, error) {
	var zero V
	v, err := c.Read(ctx, name)
	if err != nil {
		return zero, err
	}
	typed, err := bridge.Arg[V]([]any{v}, 0)
	if err != nil {
		return zero, fmt.Errorf("%s.%s: %w", c.name, name, err)
	}
	return typed, nil
}

// CallAs calls the host method name and asserts the type of its result.
func CallAs[V any](ctx context.Context, c *Capsule, name string, args ...any) (V, error) {
	var zero V
	v, err := c.Call(ctx, name, args...)
	if err != nil {
		return zero, err
	}
	typed, err := bridge.Arg[V]([]any{v}, 0)
	if err != nil {
		return zero, fmt.Errorf("%s.%s: %w", c.name, name, err)
	}
	return typed, nil
}

// ReadInstance reads a member holding another host instance and wraps it.
func ReadInstance(ctx context.Context, c *Capsule, name string, required entities.TypeTag, opts ...Option) (*Capsule, error) {
	inst, err := ReadAs[ports.Instance](ctx, c, name)
	if err != nil {
		return nil, err
	}
	return c.Wrap(inst, required, opts...)
}
