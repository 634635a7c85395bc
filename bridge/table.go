package bridge

import (
	"context"
	"fmt"
	"sort"

	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/errors"
	"github.com/robotkit/robotkit-sdk/domain/ports"
)

// Table is an immutable set of member handlers for one host type.
// Once created via NewTable, members cannot be added or removed, so lookups
// need no locking.
type Table struct {
	members map[string]member
	tag     entities.TypeTag
	names   []string // sorted for consistent iteration
}

type member struct {
	get  Handler
	set  Handler
	call Handler
}

// tableBuilder accumulates configuration during table construction.
type tableBuilder struct {
	members    map[string]member
	tag        entities.TypeTag
	middleware []Middleware
	errors     []error
}

// TableOption is a functional option for configuring a Table.
type TableOption func(*tableBuilder)

// NewTable creates the member table of the host type tag.
// Returns an error if a member name is registered twice.
func NewTable(tag entities.TypeTag, opts ...TableOption) (*Table, error) {
	if tag == "" {
		return nil, fmt.Errorf("table type cannot be empty")
	}
	b := &tableBuilder{
		tag:     tag,
		members: make(map[string]member),
	}

	for _, opt := range opts {
		opt(b)
	}

	if len(b.errors) > 0 {
		return nil, b.errors[0]
	}

	names := make([]string, 0, len(b.members))
	for name := range b.members {
		names = append(names, name)
	}
	sort.Strings(names)

	wrapped := make(map[string]member, len(b.members))
	for name, m := range b.members {
		wrapped[name] = member{
			get:  b.wrap(m.get),
			set:  b.wrap(m.set),
			call: b.wrap(m.call),
		}
	}

	return &Table{
		members: wrapped,
		tag:     tag,
		names:   names,
	}, nil
}

// MustTable is like NewTable but panics on error.
func MustTable(tag entities.TypeTag, opts ...TableOption) *Table {
	t, err := NewTable(tag, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// WithMiddleware adds middleware to every handler of the table.
// Middleware executes in FIFO order (first added wraps first).
func WithMiddleware(mw ...Middleware) TableOption {
	return func(b *tableBuilder) {
		b.middleware = append(b.middleware, mw...)
	}
}

// WithHandlers registers raw handlers for a member. Any of get, set and call
// may be nil.
func WithHandlers(name string, get, set, call Handler) TableOption {
	return func(b *tableBuilder) {
		b.add(name, member{get: get, set: set, call: call})
	}
}

func (b *tableBuilder) add(name string, m member) {
	if name == "" {
		b.errors = append(b.errors, fmt.Errorf("%s: member name cannot be empty", b.tag))
		return
	}
	if _, exists := b.members[name]; exists {
		b.errors = append(b.errors, fmt.Errorf("%s: duplicate member name: %q", b.tag, name))
		return
	}
	b.members[name] = m
}

func (b *tableBuilder) wrap(h Handler) Handler {
	if h == nil {
		return nil
	}
	// Apply middleware in reverse order so first middleware wraps outermost
	for i := len(b.middleware) - 1; i >= 0; i-- {
		h = b.middleware[i](h)
	}
	return h
}

// Type returns the host type the table describes.
func (t *Table) Type() entities.TypeTag {
	return t.tag
}

// Get reads the member name of inst.
func (t *Table) Get(ctx context.Context, inst ports.Instance, name string) (any, error) {
	m, ok := t.members[name]
	if !ok || m.get == nil {
		return nil, &errors.UnknownAttributeError{Owner: string(t.tag), Name: name}
	}
	return m.get(NewCallContext(ctx, t.tag, name, OpGet), inst, nil)
}

// Set writes the member name of inst.
func (t *Table) Set(ctx context.Context, inst ports.Instance, name string, v any) error {
	m, ok := t.members[name]
	if !ok {
		return &errors.UnknownAttributeError{Owner: string(t.tag), Name: name}
	}
	if m.set == nil {
		return &errors.UnknownAttributeError{Owner: string(t.tag), Name: name, ReadOnly: true}
	}
	_, err := m.set(NewCallContext(ctx, t.tag, name, OpSet), inst, []any{v})
	return err
}

// Call invokes the method name of inst.
func (t *Table) Call(ctx context.Context, inst ports.Instance, name string, args ...any) (any, error) {
	m, ok := t.members[name]
	if !ok || m.call == nil {
		return nil, &errors.UnknownAttributeError{Owner: string(t.tag), Name: name}
	}
	return m.call(NewCallContext(ctx, t.tag, name, OpCall), inst, args)
}

// Has returns true if the table declares a member called name.
func (t *Table) Has(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.members[name]
	return ok
}

// CanGet returns true if name is a readable member.
func (t *Table) CanGet(name string) bool {
	return t != nil && t.members[name].get != nil
}

// CanSet returns true if name is a writable member.
func (t *Table) CanSet(name string) bool {
	return t != nil && t.members[name].set != nil
}

// CanCall returns true if name is a method.
func (t *Table) CanCall(name string) bool {
	return t != nil && t.members[name].call != nil
}

// Names returns a sorted list of all member names.
func (t *Table) Names() []string {
	result := make([]string, len(t.names))
	copy(result, t.names)
	return result
}
