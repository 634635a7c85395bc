package memhost

import (
	"context"

	"github.com/robotkit/robotkit-sdk/bridge"
	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/ports"
)

// server is a numbered server as seen by its member table.
type server interface {
	ports.Container
	ports.MultiOperator
}

// containerMembers exposes the ports.Container and ports.MultiOperator
// operations of a server as host members.
func containerMembers[S server]() []bridge.TableOption {
	return []bridge.TableOption{
		bridge.Method("Get", func(ctx context.Context, s S, args []any) (any, error) {
			id, err := bridge.Arg[int](args, 0)
			if err != nil {
				return nil, err
			}
			return s.Get(ctx, id)
		}),
		bridge.Method("Exist", func(ctx context.Context, s S, args []any) (any, error) {
			id, err := bridge.Arg[int](args, 0)
			if err != nil {
				return nil, err
			}
			return s.Exist(ctx, id)
		}),
		bridge.Method("Delete", func(ctx context.Context, s S, args []any) (any, error) {
			id, err := bridge.Arg[int](args, 0)
			if err != nil {
				return nil, err
			}
			return nil, s.Delete(ctx, id)
		}),
		bridge.Method("GetMany", func(ctx context.Context, s S, args []any) (any, error) {
			sel, err := bridge.Arg[ports.Selection](args, 0)
			if err != nil {
				return nil, err
			}
			return s.GetMany(ctx, sel)
		}),
		bridge.Method("DeleteMany", func(ctx context.Context, s S, args []any) (any, error) {
			sel, err := bridge.Arg[ports.Selection](args, 0)
			if err != nil {
				return nil, err
			}
			return nil, s.DeleteMany(ctx, sel)
		}),
		bridge.ReadOnly("FreeNumber", func(ctx context.Context, s S) (int, error) {
			return s.FreeNumber(ctx)
		}),
		bridge.Method("BeginMultiOperation", func(ctx context.Context, s S, _ []any) (any, error) {
			return nil, s.BeginMultiOperation(ctx)
		}),
		bridge.Method("EndMultiOperation", func(ctx context.Context, s S, _ []any) (any, error) {
			return nil, s.EndMultiOperation(ctx)
		}),
	}
}

// labelSetterMember exposes SetLabel(selection, kind, name).
func labelSetterMember[S interface {
	ports.Instance
	ports.LabelSetter
}]() bridge.TableOption {
	return bridge.Method("SetLabel", func(ctx context.Context, s S, args []any) (any, error) {
		sel, err := bridge.Arg[ports.Selection](args, 0)
		if err != nil {
			return nil, err
		}
		kind, err := bridge.Arg[int](args, 1)
		if err != nil {
			return nil, err
		}
		name, err := bridge.Arg[string](args, 2)
		if err != nil {
			return nil, err
		}
		return nil, s.SetLabel(ctx, sel, entities.LabelKind(kind), name)
	})
}

func intArgs(args []any, n int) ([]int, error) {
	out := make([]int, n)
	for i := range n {
		v, err := bridge.Arg[int](args, i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func floatArgs(args []any, n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range n {
		v, err := bridge.Arg[float64](args, i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
