package bridge

import (
	"context"
	"fmt"

	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/errors"
	"github.com/robotkit/robotkit-sdk/domain/ports"
)

// Handler serves one member access on a host instance.
// Getters receive no arguments, setters receive the new value as their only
// argument, methods receive the call arguments.
type Handler func(ctx context.Context, inst ports.Instance, args []any) (any, error)

// Getter reads a typed property of a host instance.
type Getter[I ports.Instance, V any] func(ctx context.Context, inst I) (V, error)

// Setter writes a typed property of a host instance.
type Setter[I ports.Instance, V any] func(ctx context.Context, inst I, v V) error

// MethodFunc implements a host method on a typed instance.
type MethodFunc[I ports.Instance] func(ctx context.Context, inst I, args []any) (any, error)

// Property registers a read-write member with typed accessors.
// A nil set makes the member read-only.
func Property[I ports.Instance, V any](name string, get Getter[I, V], set Setter[I, V]) TableOption {
	return func(b *tableBuilder) {
		m := member{get: getHandler(b.tag, get)}
		if set != nil {
			m.set = setHandler(b.tag, name, set)
		}
		b.add(name, m)
	}
}

// ReadOnly registers a read-only member.
func ReadOnly[I ports.Instance, V any](name string, get Getter[I, V]) TableOption {
	return Property[I, V](name, get, nil)
}

// Method registers a callable member.
func Method[I ports.Instance](name string, fn MethodFunc[I]) TableOption {
	return func(b *tableBuilder) {
		tag := b.tag
		b.add(name, member{call: func(ctx context.Context, inst ports.Instance, args []any) (any, error) {
			typed, err := narrowTo[I](tag, inst)
			if err != nil {
				return nil, err
			}
			return fn(ctx, typed, args)
		}})
	}
}

func getHandler[I ports.Instance, V any](tag entities.TypeTag, get Getter[I, V]) Handler {
	return func(ctx context.Context, inst ports.Instance, _ []any) (any, error) {
		typed, err := narrowTo[I](tag, inst)
		if err != nil {
			return nil, err
		}
		return get(ctx, typed)
	}
}

func setHandler[I ports.Instance, V any](tag entities.TypeTag, name string, set Setter[I, V]) Handler {
	return func(ctx context.Context, inst ports.Instance, args []any) (any, error) {
		typed, err := narrowTo[I](tag, inst)
		if err != nil {
			return nil, err
		}
		if len(args) != 1 {
			return nil, &errors.ValueError{Value: args, Reason: fmt.Sprintf("%s expects exactly one value", name)}
		}
		v, err := Arg[V](args, 0)
		if err != nil {
			return nil, err
		}
		return nil, set(ctx, typed, v)
	}
}

func narrowTo[I ports.Instance](tag entities.TypeTag, inst ports.Instance) (I, error) {
	typed, ok := inst.(I)
	if !ok {
		var zero I
		actual := entities.TypeTag("")
		if inst != nil {
			actual = inst.HostType()
		}
		return zero, &errors.TypeMismatchError{Required: tag, Actual: actual}
	}
	return typed, nil
}

// Arg returns the i-th argument as a V. Integer arguments are accepted for
// float64 parameters and enumeration values for int parameters.
func Arg[V any](args []any, i int) (V, error) {
	var zero V
	if i < 0 || i >= len(args) {
		return zero, &errors.ValueError{Value: i, Reason: fmt.Sprintf("missing argument %d", i)}
	}
	if v, ok := args[i].(V); ok {
		return v, nil
	}
	if args[i] == nil && any(zero) == nil {
		return zero, nil
	}

	var converted any
	switch any(zero).(type) {
	case float64:
		switch n := args[i].(type) {
		case int:
			converted = float64(n)
		case float32:
			converted = float64(n)
		}
	case int:
		switch n := args[i].(type) {
		case entities.EnumValue:
			converted = n.Int()
		case entities.DomainTag:
			converted = int(n)
		case entities.LabelKind:
			converted = int(n)
		}
	}
	if v, ok := converted.(V); ok {
		return v, nil
	}
	return zero, &errors.ValueError{Value: args[i], Reason: fmt.Sprintf("argument %d has type %T, want %T", i, args[i], zero)}
}
