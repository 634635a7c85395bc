package bridge

import (
	"context"
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/errors"
	"github.com/robotkit/robotkit-sdk/domain/ports"
)

type testNode struct {
	number int
	x      float64
}

func (n *testNode) HostType() entities.TypeTag { return "RobotNode" }

func (n *testNode) Satisfies(tag entities.TypeTag) bool {
	return tag == "RobotNode" || tag == "IRobotNode"
}

type testBar struct{}

func (b *testBar) HostType() entities.TypeTag          { return "RobotBar" }
func (b *testBar) Satisfies(tag entities.TypeTag) bool { return tag == "RobotBar" }

func nodeTable(t *testing.T, opts ...TableOption) *Table {
	t.Helper()
	opts = append(opts,
		ReadOnly("Number", func(_ context.Context, n *testNode) (int, error) {
			return n.number, nil
		}),
		Property("X",
			func(_ context.Context, n *testNode) (float64, error) { return n.x, nil },
			func(_ context.Context, n *testNode, v float64) error { n.x = v; return nil },
		),
		Method("Move", func(_ context.Context, n *testNode, args []any) (any, error) {
			dx, err := Arg[float64](args, 0)
			if err != nil {
				return nil, err
			}
			n.x += dx
			return n.x, nil
		}),
	)
	table, err := NewTable("RobotNode", opts...)
	require.NoError(t, err)
	return table
}

func TestNewTable_Names(t *testing.T) {
	table := nodeTable(t)

	assert.Equal(t, entities.TypeTag("RobotNode"), table.Type())
	assert.Equal(t, []string{"Move", "Number", "X"}, table.Names())
	assert.True(t, table.Has("X"))
	assert.False(t, table.Has("Y"))
	assert.True(t, table.CanGet("Number"))
	assert.False(t, table.CanSet("Number"))
	assert.True(t, table.CanSet("X"))
	assert.True(t, table.CanCall("Move"))
	assert.False(t, table.CanGet("Move"))
}

func TestNewTable_DuplicateMember(t *testing.T) {
	get := func(_ context.Context, n *testNode) (int, error) { return 0, nil }

	_, err := NewTable("RobotNode",
		ReadOnly("Number", get),
		ReadOnly("Number", get),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate member name")
}

func TestNewTable_EmptyNames(t *testing.T) {
	_, err := NewTable("")
	require.Error(t, err)

	_, err = NewTable("RobotNode", WithHandlers("", nil, nil, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be empty")
}

func TestMustTable_Panics(t *testing.T) {
	assert.Panics(t, func() { MustTable("") })
}

func TestTable_GetSetCall(t *testing.T) {
	ctx := context.Background()
	table := nodeTable(t)
	node := &testNode{number: 3, x: 1.5}

	v, err := table.Get(ctx, node, "Number")
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	require.NoError(t, table.Set(ctx, node, "X", 4.0))
	assert.Equal(t, 4.0, node.x)

	// Integer values are accepted for float members.
	require.NoError(t, table.Set(ctx, node, "X", 2))
	assert.Equal(t, 2.0, node.x)

	res, err := table.Call(ctx, node, "Move", 1.0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res)
}

func TestTable_Errors(t *testing.T) {
	ctx := context.Background()
	table := nodeTable(t)
	node := &testNode{}

	t.Run("unknown member", func(t *testing.T) {
		_, err := table.Get(ctx, node, "Y")
		assert.ErrorIs(t, err, errors.ErrUnknownAttribute)

		err = table.Set(ctx, node, "Y", 1.0)
		var ua *errors.UnknownAttributeError
		require.ErrorAs(t, err, &ua)
		assert.False(t, ua.ReadOnly)

		_, err = table.Call(ctx, node, "Y")
		assert.ErrorIs(t, err, errors.ErrUnknownAttribute)
	})

	t.Run("read-only member", func(t *testing.T) {
		err := table.Set(ctx, node, "Number", 5)
		var ua *errors.UnknownAttributeError
		require.ErrorAs(t, err, &ua)
		assert.True(t, ua.ReadOnly)
		assert.Equal(t, "Number", ua.Name)
	})

	t.Run("wrong value type", func(t *testing.T) {
		err := table.Set(ctx, node, "X", "far")
		assert.ErrorIs(t, err, errors.ErrValue)
	})

	t.Run("wrong instance type", func(t *testing.T) {
		_, err := table.Get(ctx, &testBar{}, "Number")
		var tm *errors.TypeMismatchError
		require.ErrorAs(t, err, &tm)
		assert.Equal(t, entities.TypeTag("RobotBar"), tm.Actual)
	})

	t.Run("missing argument", func(t *testing.T) {
		_, err := table.Call(ctx, node, "Move")
		assert.ErrorIs(t, err, errors.ErrValue)
	})
}

func TestArg_Conversions(t *testing.T) {
	kind := entities.NewEnumType("IRobotLabelType", entities.EnumMember{Name: "I_LT_SUPPORT", Code: 4})
	support, _ := kind.Lookup("I_LT_SUPPORT")

	code, err := Arg[int]([]any{support}, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, code)

	code, err = Arg[int]([]any{entities.DomainTag(2)}, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, code)

	var nilErr error
	got, err := Arg[error]([]any{nil}, 0)
	require.NoError(t, err)
	assert.Equal(t, nilErr, got)

	_, err = Arg[string]([]any{1}, 0)
	assert.ErrorIs(t, err, errors.ErrValue)
}

func TestTable_MiddlewareSeesCallContext(t *testing.T) {
	var seen []string
	mw := func(next Handler) Handler {
		return func(ctx context.Context, inst ports.Instance, args []any) (any, error) {
			cc, ok := CallContextFrom(ctx)
			require.True(t, ok)
			seen = append(seen, fmt.Sprintf("%s.%s:%s", cc.HostType(), cc.Member(), cc.Op()))
			return next(ctx, inst, args)
		}
	}
	table := nodeTable(t, WithMiddleware(mw))
	node := &testNode{number: 1}
	ctx := context.Background()

	_, _ = table.Get(ctx, node, "Number")
	_ = table.Set(ctx, node, "X", 1.0)
	_, _ = table.Call(ctx, node, "Move", 1.0)

	assert.Equal(t, []string{"RobotNode.Number:get", "RobotNode.X:set", "RobotNode.Move:call"}, seen)
}

func TestMiddlewareOrder_FIFO(t *testing.T) {
	var callOrder []string
	named := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(ctx context.Context, inst ports.Instance, args []any) (any, error) {
				callOrder = append(callOrder, name+"-before")
				resp, err := next(ctx, inst, args)
				callOrder = append(callOrder, name+"-after")
				return resp, err
			}
		}
	}
	table := nodeTable(t, WithMiddleware(named("mw1"), named("mw2")))

	_, err := table.Get(context.Background(), &testNode{}, "Number")
	require.NoError(t, err)
	assert.Equal(t, []string{"mw1-before", "mw2-before", "mw2-after", "mw1-after"}, callOrder)
}

func TestCatalog_RegisterLookup(t *testing.T) {
	catalog := NewCatalog()
	table := nodeTable(t)

	require.NoError(t, catalog.Register(table))

	got, ok := catalog.Lookup("RobotNode")
	require.True(t, ok)
	assert.Same(t, table, got)

	got, ok = catalog.TableFor(&testNode{})
	require.True(t, ok)
	assert.Same(t, table, got)

	_, ok = catalog.Lookup("RobotBar")
	assert.False(t, ok)
	_, ok = catalog.TableFor(nil)
	assert.False(t, ok)

	assert.Equal(t, []entities.TypeTag{"RobotNode"}, catalog.Types())
}

func TestCatalog_StrictMode(t *testing.T) {
	t.Run("duplicate rejected", func(t *testing.T) {
		catalog := NewCatalog()
		require.NoError(t, catalog.Register(nodeTable(t)))
		err := catalog.Register(nodeTable(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("duplicate replaces when not strict", func(t *testing.T) {
		catalog := NewCatalog(WithStrictMode(false))
		require.NoError(t, catalog.Register(nodeTable(t)))
		second := nodeTable(t)
		require.NoError(t, catalog.Register(second))
		got, _ := catalog.Lookup("RobotNode")
		assert.Same(t, second, got)
	})

	t.Run("nil table", func(t *testing.T) {
		assert.Error(t, NewCatalog().Register(nil))
	})
}

func TestNarrow(t *testing.T) {
	require.NoError(t, Narrow(&testNode{}, "IRobotNode"))

	err := Narrow(&testNode{}, "IRobotBar")
	assert.True(t, stdErrors.Is(err, errors.ErrTypeMismatch))

	err = Narrow(nil, "IRobotBar")
	var tm *errors.TypeMismatchError
	require.ErrorAs(t, err, &tm)
	assert.Empty(t, tm.Actual)
}
