package labels

import (
	"context"
	"fmt"

	"github.com/robotkit/robotkit-sdk/capsule"
	"github.com/robotkit/robotkit-sdk/contract"
	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/ports"
)

// Wrap turns a raw, already narrowed label instance into the result type.
type Wrap[T any] func(ctx context.Context, inst ports.Instance, opts ...capsule.Option) (T, error)

// Kind describes one label sub-type of the host's label server.
type Kind[T any] struct {
	// Result wraps a narrowed label into T.
	Result Wrap[T]

	// Init runs before the contract check and may complete the kind.
	Init func(k *Kind[T]) error

	// Name identifies the kind in errors and logs.
	Name string

	// ContainerType is the host type the label server must satisfy.
	ContainerType entities.TypeTag

	// CastType is the host type raw labels are narrowed to before wrapping.
	CastType entities.TypeTag

	// DataType is the host type of the label's payload.
	DataType entities.TypeTag

	// KindTag selects the label sub-type within the shared label server.
	KindTag entities.LabelKind

	// Abstract kinds may leave tags unset; they cannot back a Registry.
	Abstract bool

	defined bool
}

var kindContract = contract.Require("ContainerType", "CastType", "KindTag", "DataType", "Result")

// Define checks that a concrete kind assigns every tag.
func Define[T any](k Kind[T]) (*Kind[T], error) {
	def := k
	err := kindContract.Define(contract.Definition{
		Name:       def.Name,
		Attributes: &def,
		Abstract:   def.Abstract,
		Init: func() error {
			if def.Init != nil {
				return def.Init(&def)
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	def.defined = true
	return &def, nil
}

// MustDefine is like Define but panics on error. Use it from package-level vars.
func MustDefine[T any](k Kind[T]) *Kind[T] {
	def, err := Define(k)
	if err != nil {
		panic(err)
	}
	return def
}

func (k *Kind[T]) usable() error {
	if k == nil || !k.defined {
		return fmt.Errorf("label kind is not defined")
	}
	if k.Abstract {
		return fmt.Errorf("label kind %q is abstract", k.Name)
	}
	return nil
}
