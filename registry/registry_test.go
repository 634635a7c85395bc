package registry

import (
	"context"
	stdErrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/robotkit/robotkit-sdk/bridge"
	"github.com/robotkit/robotkit-sdk/capsule"
	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/errors"
	"github.com/robotkit/robotkit-sdk/domain/ports"
)

func newRegistry(t *testing.T, ids ...int) (*Registry[*node], *server, *app) {
	t.Helper()
	srv := &server{ids: ids}
	a := &app{srv: srv}
	r, err := New(nodeKind, srv, a, WithCatalog(bridge.NewCatalog()))
	require.NoError(t, err)
	return r, srv, a
}

func TestDefine_MissingTag(t *testing.T) {
	_, err := Define(Kind[*node]{
		Name:          "broken",
		ContainerType: serverType,
		CastType:      entityType,
		Result:        wrapNode,
	})
	var missing *errors.MissingContractAttributeError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "DomainTag", missing.Attribute)
	assert.Equal(t, "broken", missing.Class)

	assert.Panics(t, func() { MustDefine(Kind[*node]{Name: "empty"}) })
}

func TestDefine_AbstractAndExtend(t *testing.T) {
	base, err := Define(Kind[*node]{Name: "server", ContainerType: serverType, Result: wrapNode, Abstract: true})
	require.NoError(t, err)

	_, err = New(base, &server{}, &app{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "abstract")

	_, err = base.Extend("half", func(k *Kind[*node]) { k.CastType = entityType })
	var missing *errors.MissingContractAttributeError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "DomainTag", missing.Attribute)

	child, err := base.Extend("nodes", func(k *Kind[*node]) {
		k.CastType = entityType
		k.DomainTag = nodeDomain
	})
	require.NoError(t, err)
	assert.False(t, child.Abstract)
	assert.Equal(t, serverType, child.ContainerType)
}

func TestDefine_Init(t *testing.T) {
	k, err := Define(Kind[*node]{
		Name:          "nodes",
		ContainerType: serverType,
		CastType:      entityType,
		Result:        wrapNode,
		Init: func(k *Kind[*node]) error {
			k.DomainTag = nodeDomain
			return nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, nodeDomain, k.DomainTag)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(&Kind[*node]{Name: "raw"}, &server{}, &app{})
	require.Error(t, err)

	wrongContainer := MustDefine(Kind[*node]{
		Name: "bars", ContainerType: "IRobotBarServer", CastType: entityType, DomainTag: 2, Result: wrapNode,
	})
	_, err = New(wrongContainer, &server{}, &app{})
	assert.ErrorIs(t, err, errors.ErrTypeMismatch)
}

func TestRegistry_Get(t *testing.T) {
	ctx := context.Background()
	r, srv, _ := newRegistry(t, 1, 2, 3)

	n, err := r.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, n.ID)

	t.Run("missing id", func(t *testing.T) {
		_, err := r.Get(ctx, 9)
		var lookup *errors.LookupError
		require.ErrorAs(t, err, &lookup)
		assert.Equal(t, 9, lookup.Key)
		assert.Equal(t, "nodes", lookup.Kind)
	})

	t.Run("host panic", func(t *testing.T) {
		srv.panicOn = 3
		defer func() { srv.panicOn = 0 }()

		_, err := r.Get(ctx, 3)
		assert.ErrorIs(t, err, errors.ErrLookup)
		assert.ErrorIs(t, err, errors.ErrHost)
	})

	t.Run("narrowing failure", func(t *testing.T) {
		srv.badType = 1
		defer func() { srv.badType = 0 }()

		_, err := r.Get(ctx, 1)
		assert.ErrorIs(t, err, errors.ErrLookup)
		assert.ErrorIs(t, err, errors.ErrTypeMismatch)
	})

	t.Run("wrap failure", func(t *testing.T) {
		boom := stdErrors.New("boom")
		k := MustDefine(Kind[*node]{
			Name: "nodes", ContainerType: serverType, CastType: entityType, DomainTag: nodeDomain,
			Result: func(context.Context, ports.Instance, ...capsule.Option) (*node, error) { return nil, boom },
		})
		r2, err := New(k, srv, &app{srv: srv})
		require.NoError(t, err)

		_, err = r2.Get(ctx, 1)
		assert.ErrorIs(t, err, errors.ErrLookup)
		assert.ErrorIs(t, err, boom)
	})
}

func TestRegistry_EndToEnd(t *testing.T) {
	ctx := context.Background()
	r, _, a := newRegistry(t, 1, 2, 3)

	ids, err := r.CollectIDs(ctx, "all")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids)
	assert.Equal(t, []entities.DomainTag{nodeDomain}, a.created)

	n, err := r.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, n.ID)

	require.NoError(t, r.Delete(ctx, "all"))

	nodes, err := r.Collect(ctx, "all")
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestRegistry_SelectOrderFollowsHost(t *testing.T) {
	r, _, _ := newRegistry(t, 5, 1, 3)

	var got []int
	for n, err := range r.Select(context.Background(), "3 5 1") {
		require.NoError(t, err)
		got = append(got, n.ID)
	}
	assert.Equal(t, []int{3, 5, 1}, got)
}

func TestRegistry_SelectIsLazy(t *testing.T) {
	ctx := context.Background()
	r, srv, a := newRegistry(t, 1, 2)

	seq := r.SelectIDs(ctx, "all")
	assert.Empty(t, a.created, "selector resolved before iteration")

	srv.create(3)
	var got []int
	for id, err := range seq {
		require.NoError(t, err)
		got = append(got, id)
		if id == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
	assert.Len(t, a.created, 1)
}

func TestRegistry_SelectErrors(t *testing.T) {
	ctx := context.Background()
	r, _, a := newRegistry(t, 1)

	_, err := r.Collect(ctx, "one two")
	require.Error(t, err)

	a.fail = stdErrors.New("no factory")
	_, err = r.CollectIDs(ctx, "all")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create selection")

	err = r.Delete(ctx, "all")
	require.Error(t, err)
}

func TestRegistry_Claim(t *testing.T) {
	ctx := context.Background()
	r, srv, _ := newRegistry(t, 1, 2)

	id, err := r.Claim(ctx, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 3, id)

	id, err = r.Claim(ctx, 7, false)
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	_, err = r.Claim(ctx, 2, false)
	var conflict *errors.IDConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 2, conflict.ID)

	id, err = r.Claim(ctx, 2, true)
	require.NoError(t, err)
	assert.Equal(t, 2, id)
	assert.Equal(t, []string{"Delete:2"}, srv.calls)

	ok, err := r.Exist(ctx, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegistry_Accessors(t *testing.T) {
	r, srv, a := newRegistry(t)

	assert.Same(t, nodeKind, r.Kind())
	assert.Same(t, srv, r.Container())
	assert.Same(t, a, r.App())
	assert.Equal(t, serverType, r.Required())
}

func TestRegistry_RoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		srv := &server{}
		r, err := New(nodeKind, srv, &app{srv: srv}, WithCatalog(bridge.NewCatalog()))
		if err != nil {
			t.Fatal(err)
		}

		ids := rapid.SliceOfNDistinct(rapid.IntRange(1, 10_000), 1, 20, rapid.ID[int]).Draw(t, "ids")
		for _, id := range ids {
			claimed, err := r.Claim(ctx, id, false)
			if err != nil {
				t.Fatal(err)
			}
			srv.create(claimed)
		}
		for _, id := range ids {
			n, err := r.Get(ctx, id)
			if err != nil {
				t.Fatalf("get %d: %v", id, err)
			}
			if n.ID != id {
				t.Fatalf("get %d returned %d", id, n.ID)
			}
		}
	})
}
