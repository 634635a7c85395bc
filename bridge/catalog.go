package bridge

import (
	"fmt"
	"sort"
	"sync"

	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/errors"
	"github.com/robotkit/robotkit-sdk/domain/ports"
)

// catalogConfig holds configuration for the Catalog.
type catalogConfig struct {
	strictMode bool // Fail on duplicate registrations
}

func defaultCatalogConfig() catalogConfig {
	return catalogConfig{
		strictMode: true,
	}
}

// CatalogOption configures a Catalog instance.
type CatalogOption func(*catalogConfig)

// WithStrictMode enables/disables strict mode for duplicate registrations.
// Default is true (fail on duplicates). Disable only for testing or hot-reloading.
func WithStrictMode(enabled bool) CatalogOption {
	return func(c *catalogConfig) {
		c.strictMode = enabled
	}
}

// Catalog maps host types to their member tables.
// It is safe for concurrent registration and lookup.
type Catalog struct {
	config catalogConfig
	tables sync.Map // map[entities.TypeTag]*Table
}

// NewCatalog creates an empty Catalog with the given options.
func NewCatalog(opts ...CatalogOption) *Catalog {
	cfg := defaultCatalogConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Catalog{config: cfg}
}

// Default is the process-wide catalog used when no other catalog is given.
var Default = NewCatalog()

// Register adds tables to the catalog. In strict mode, registering a second
// table for the same host type fails and nothing after it is registered.
func (c *Catalog) Register(tables ...*Table) error {
	for _, t := range tables {
		if t == nil {
			return fmt.Errorf("cannot register nil table")
		}
		if c.config.strictMode {
			if _, loaded := c.tables.LoadOrStore(t.Type(), t); loaded {
				return fmt.Errorf("member table for %q already registered", t.Type())
			}
			continue
		}
		c.tables.Store(t.Type(), t)
	}
	return nil
}

// Lookup returns the table registered for the host type tag.
func (c *Catalog) Lookup(tag entities.TypeTag) (*Table, bool) {
	v, ok := c.tables.Load(tag)
	if !ok {
		return nil, false
	}
	return v.(*Table), true
}

// TableFor returns the table of inst's concrete host type.
func (c *Catalog) TableFor(inst ports.Instance) (*Table, bool) {
	if inst == nil {
		return nil, false
	}
	return c.Lookup(inst.HostType())
}

// Types returns all registered host types, sorted.
func (c *Catalog) Types() []entities.TypeTag {
	var types []entities.TypeTag
	c.tables.Range(func(key, _ any) bool {
		types = append(types, key.(entities.TypeTag))
		return true
	})
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Narrow checks that inst can be used as a tag. It is the Go counterpart of
// casting a host handle to an interface.
func Narrow(inst ports.Instance, tag entities.TypeTag) error {
	if inst == nil {
		return &errors.TypeMismatchError{Required: tag}
	}
	if !inst.Satisfies(tag) {
		return &errors.TypeMismatchError{Required: tag, Actual: inst.HostType()}
	}
	return nil
}
