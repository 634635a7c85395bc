package ports

import (
	"context"

	"github.com/robotkit/robotkit-sdk/domain/entities"
)

// Selection is a host-side set of entity numbers of one family.
type Selection interface {
	// FromText replaces the selection with the entities named by text.
	// The grammar of text is owned by the host.
	FromText(ctx context.Context, text string) error

	// Count returns the number of selected entities.
	Count() int

	// Get returns the i-th selected number, 1-based.
	Get(i int) int

	// Clear empties the selection.
	Clear()
}

// SelectionFactory creates selections keyed by entity family.
type SelectionFactory interface {
	// Create returns a new, empty selection for the family.
	Create(ctx context.Context, domain entities.DomainTag) (Selection, error)

	// Get returns the host's current selection for the family.
	Get(ctx context.Context, domain entities.DomainTag) (Selection, error)
}

// Application is the host application context that registries hold on to.
type Application interface {
	Selections() SelectionFactory
}
