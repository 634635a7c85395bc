package capsule

import (
	"context"
	"fmt"
	"sort"
)

// Field is a member declared by a wrapper type. A nil Get or Set falls back to
// the value assigned on the capsule itself.
type Field struct {
	Get  func(ctx context.Context, c *Capsule) (any, error)
	Set  func(ctx context.Context, c *Capsule, v any) error
	Name string
}

// Owned is the static set of members a wrapper type declares.
// Build it once per wrapper type, in a package-level var.
type Owned struct {
	fields map[string]Field
	names  []string
}

// NewOwned builds an owned member set. It panics on an empty or repeated name,
// since owned sets are declared at package init.
func NewOwned(fields ...Field) *Owned {
	o := &Owned{fields: make(map[string]Field, len(fields))}
	for _, f := range fields {
		if f.Name == "" {
			panic("capsule: owned field name cannot be empty")
		}
		if _, dup := o.fields[f.Name]; dup {
			panic(fmt.Sprintf("capsule: duplicate owned field %q", f.Name))
		}
		o.fields[f.Name] = f
		o.names = append(o.names, f.Name)
	}
	sort.Strings(o.names)
	return o
}

// Declare returns a field with no accessors: the wrapper owns the name and
// writes to it stay on the capsule.
func Declare(name string) Field {
	return Field{Name: name}
}

// Has reports whether name is owned. A nil set owns nothing.
func (o *Owned) Has(name string) bool {
	_, ok := o.lookup(name)
	return ok
}

// Names returns the owned names, sorted.
func (o *Owned) Names() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.names))
	copy(out, o.names)
	return out
}

// Extend returns a new set holding o's fields and more. Later fields replace
// earlier ones of the same name.
func (o *Owned) Extend(fields ...Field) *Owned {
	merged := make(map[string]Field)
	if o != nil {
		for name, f := range o.fields {
			merged[name] = f
		}
	}
	for _, f := range fields {
		merged[f.Name] = f
	}
	all := make([]Field, 0, len(merged))
	for _, f := range merged {
		all = append(all, f)
	}
	return NewOwned(all...)
}

func (o *Owned) lookup(name string) (Field, bool) {
	if o == nil {
		return Field{}, false
	}
	f, ok := o.fields[name]
	return f, ok
}
