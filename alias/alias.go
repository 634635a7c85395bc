// Package alias turns host enumerations into extensible lookup tables.
//
// A Table holds every member name of its source enumeration plus custom
// aliases layered on top. Names are not unique per value: iteration yields one
// value per distinct integer code.
package alias

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/errors"
)

// Alias is one custom key of a Table, given either as the name of an existing
// key or as a raw code.
type Alias struct {
	Name     string
	Existing string
	Code     int
	coded    bool
}

// Named aliases name to the value of the existing key.
func Named(name, existing string) Alias {
	return Alias{Name: name, Existing: existing}
}

// Coded aliases name to code, converted without checking that a member defines it.
func Coded(name string, code int) Alias {
	return Alias{Name: name, Code: code, coded: true}
}

// Table is an ordered mapping from names to values of one enumeration.
// It is immutable after New.
type Table struct {
	enum   *entities.EnumType
	values map[string]entities.EnumValue
	custom map[string]struct{}
	keys   []string
}

type config struct {
	logger *slog.Logger
	strict bool
}

// Option configures table construction.
type Option func(*config)

// WithLogger sets the logger overwrites are reported to. Default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithStrictOverwrite rejects custom aliases that reuse a member name of the
// source enumeration, instead of overwriting it.
func WithStrictOverwrite() Option {
	return func(c *config) {
		c.strict = true
	}
}

// New builds a table from the members of enum, then merges custom in order.
// A custom alias reusing a member name overwrites it (last write wins) and is
// logged at warn level, unless WithStrictOverwrite is set.
func New(enum *entities.EnumType, custom []Alias, opts ...Option) (*Table, error) {
	if enum == nil {
		return nil, &errors.ValueError{Value: nil, Reason: "alias table needs a source enumeration"}
	}
	cfg := config{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Table{
		enum:   enum,
		values: make(map[string]entities.EnumValue),
		custom: make(map[string]struct{}),
	}
	for _, m := range enum.Members() {
		t.set(m.Name, enum.Value(m.Code))
	}

	for _, a := range custom {
		if a.Name == "" {
			return nil, &errors.ValueError{Value: a, Reason: "alias name cannot be empty"}
		}
		v, err := t.resolve(a)
		if err != nil {
			return nil, err
		}
		if _, original := enum.Lookup(a.Name); original {
			if cfg.strict {
				return nil, &errors.ValueError{Value: a.Name, Reason: fmt.Sprintf("alias overwrites member of %s", enum.Name())}
			}
			if prev := t.values[a.Name]; prev.Int() != v.Int() {
				cfg.logger.Warn("alias overwrites enumeration member",
					slog.String("enum", enum.Name()),
					slog.String("name", a.Name),
					slog.Int("previous", prev.Int()),
					slog.Int("code", v.Int()),
				)
			}
		} else {
			t.custom[a.Name] = struct{}{}
		}
		t.set(a.Name, v)
	}
	return t, nil
}

// MustNew is like New but panics on error. Use it from package-level vars.
func MustNew(enum *entities.EnumType, custom []Alias, opts ...Option) *Table {
	t, err := New(enum, custom, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) set(name string, v entities.EnumValue) {
	if _, ok := t.values[name]; !ok {
		t.keys = append(t.keys, name)
	}
	t.values[name] = v
}

func (t *Table) resolve(a Alias) (entities.EnumValue, error) {
	if a.coded {
		return t.enum.Value(a.Code), nil
	}
	v, ok := t.values[a.Existing]
	if !ok {
		return entities.EnumValue{}, &errors.ValueError{
			Value:  a.Existing,
			Reason: fmt.Sprintf("alias %q names no key of %s", a.Name, t.enum.Name()),
		}
	}
	return v, nil
}

// Enum returns the source enumeration.
func (t *Table) Enum() *entities.EnumType {
	return t.enum
}

// Get returns the value of key name.
func (t *Table) Get(name string) (entities.EnumValue, bool) {
	v, ok := t.values[name]
	return v, ok
}

// MustGet returns the value of key name and panics when there is none.
// Use it for keys known at compile time.
func (t *Table) MustGet(name string) entities.EnumValue {
	v, ok := t.values[name]
	if !ok {
		panic(fmt.Sprintf("alias: %s has no key %q", t.enum.Name(), name))
	}
	return v
}

// Attr looks name up as a key first, then as an attribute of the source
// enumeration, and fails with UnknownAttributeError otherwise.
func (t *Table) Attr(name string) (any, error) {
	if v, ok := t.values[name]; ok {
		return v, nil
	}
	if v, ok := t.enum.Attr(name); ok {
		return v, nil
	}
	return nil, &errors.UnknownAttributeError{Owner: t.enum.Name(), Name: name}
}

// Make returns the value with the given code. Unchecked construction always
// succeeds; checked construction fails with ValueError when no member of the
// source enumeration has code.
func (t *Table) Make(code int, unchecked bool) (entities.EnumValue, error) {
	if !unchecked && !t.enum.IsDefined(code) {
		return entities.EnumValue{}, &errors.ValueError{
			Value:  code,
			Reason: fmt.Sprintf("not a member of %s", t.enum.Name()),
		}
	}
	return t.enum.Value(code), nil
}

// All yields one value per distinct code, in key order. Values are compared
// by code only.
func (t *Table) All() iter.Seq[entities.EnumValue] {
	return func(yield func(entities.EnumValue) bool) {
		seen := make(map[int]struct{}, len(t.keys))
		for _, k := range t.keys {
			v := t.values[k]
			if _, dup := seen[v.Int()]; dup {
				continue
			}
			seen[v.Int()] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// Values returns All as a slice.
func (t *Table) Values() []entities.EnumValue {
	return slices.Collect(t.All())
}

// Keys returns every key in order: source members first, then new aliases.
func (t *Table) Keys() []string {
	return slices.Clone(t.keys)
}

// Entries yields every (key, value) pair in key order.
func (t *Table) Entries() iter.Seq2[string, entities.EnumValue] {
	return func(yield func(string, entities.EnumValue) bool) {
		for _, k := range t.keys {
			if !yield(k, t.values[k]) {
				return
			}
		}
	}
}

// CustomIndex returns the custom aliases that are not member names of the
// source enumeration.
func (t *Table) CustomIndex() map[string]entities.EnumValue {
	out := make(map[string]entities.EnumValue, len(t.custom))
	for k := range t.custom {
		out[k] = t.values[k]
	}
	return out
}

// Len returns the number of keys.
func (t *Table) Len() int {
	return len(t.keys)
}

// Contains reports whether name is a key.
func (t *Table) Contains(name string) bool {
	_, ok := t.values[name]
	return ok
}
