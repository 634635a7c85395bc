package ports

import (
	"context"

	"github.com/robotkit/robotkit-sdk/domain/entities"
)

// Container is a host server holding a numbered collection of entities
// (nodes, bars, cases).
type Container interface {
	Instance

	// Get returns the raw entity numbered id.
	Get(ctx context.Context, id int) (Instance, error)

	// Exist reports whether an entity numbered id exists.
	Exist(ctx context.Context, id int) (bool, error)

	// Delete removes the entity numbered id.
	Delete(ctx context.Context, id int) error

	// GetMany returns the raw entities of a resolved selection, in selection order.
	GetMany(ctx context.Context, sel Selection) ([]Instance, error)

	// DeleteMany removes every entity of a resolved selection.
	DeleteMany(ctx context.Context, sel Selection) error

	// FreeNumber returns the lowest number not used by any entity.
	FreeNumber(ctx context.Context) (int, error)
}

// MultiOperator is implemented by containers that can defer re-indexing while
// many operations run. Every Begin is matched by exactly one End.
type MultiOperator interface {
	BeginMultiOperation(ctx context.Context) error
	EndMultiOperation(ctx context.Context) error
}

// LabelSetter is implemented by containers whose entities carry labels.
type LabelSetter interface {
	// SetLabel assigns the label name of the given kind to every entity of sel.
	SetLabel(ctx context.Context, sel Selection, kind entities.LabelKind, name string) error
}

// NamedContainer is the host's label server: one container keyed by
// (kind, name) shared by every label sub-type.
type NamedContainer interface {
	Instance

	// Create returns a new, unsaved label instance of the given kind.
	Create(ctx context.Context, kind entities.LabelKind, name string) (Instance, error)

	// Get returns the stored label name of the given kind.
	Get(ctx context.Context, kind entities.LabelKind, name string) (Instance, error)

	// Delete removes the stored label name of the given kind.
	Delete(ctx context.Context, kind entities.LabelKind, name string) error

	// Exist reports whether a label name of the given kind is stored.
	Exist(ctx context.Context, kind entities.LabelKind, name string) (bool, error)

	// AvailableNames returns the names stored under kind, in host order.
	AvailableNames(ctx context.Context, kind entities.LabelKind) ([]string, error)

	// Store saves label under name, replacing any label of the same kind and name.
	Store(ctx context.Context, label Instance, name string) error
}
