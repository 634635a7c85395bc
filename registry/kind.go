package registry

import (
	"context"
	"fmt"

	"github.com/robotkit/robotkit-sdk/capsule"
	"github.com/robotkit/robotkit-sdk/contract"
	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/ports"
)

// Wrap turns a raw, already narrowed host entity into the result type.
type Wrap[T any] func(ctx context.Context, inst ports.Instance, opts ...capsule.Option) (T, error)

// Kind describes one family of numbered entities.
type Kind[T any] struct {
	// Result wraps a narrowed entity into T.
	Result Wrap[T]

	// Init runs before the contract check and may complete the kind.
	Init func(k *Kind[T]) error

	// Name identifies the kind in errors and logs.
	Name string

	// ContainerType is the host type the container must satisfy.
	ContainerType entities.TypeTag

	// CastType is the host type raw entities are narrowed to before wrapping.
	CastType entities.TypeTag

	// DomainTag keys the entity family in the host's selection mechanism.
	DomainTag entities.DomainTag

	// Abstract kinds may leave tags unset; they cannot back a Registry.
	Abstract bool

	defined bool
}

var kindContract = contract.Require("ContainerType", "CastType", "DomainTag", "Result")

// Define checks that a concrete kind assigns every tag and returns it ready
// for use with New.
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

// Extend derives a kind from k. The derived kind is concrete unless fn marks
// it abstract, and is checked like any other definition.
func (k *Kind[T]) Extend(name string, fn func(*Kind[T])) (*Kind[T], error) {
	child := *k
	child.Name = name
	child.Abstract = false
	child.defined = false
	child.Init = nil
	if fn != nil {
		fn(&child)
	}
	return Define(child)
}

func (k *Kind[T]) usable() error {
	if k == nil || !k.defined {
		return fmt.Errorf("registry kind is not defined")
	}
	if k.Abstract {
		return fmt.Errorf("registry kind %q is abstract", k.Name)
	}
	return nil
}

// Raw returns the narrowed host entity itself. Kinds whose callers work on raw
// host entities use it as Result.
func Raw(_ context.Context, inst ports.Instance, _ ...capsule.Option) (ports.Instance, error) {
	return inst, nil
}
