package registry

import (
	"context"
	stdErrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robotkit/robotkit-sdk/bridge"
)

func newMultiRegistry(t *testing.T) (*Registry[*node], multiServer) {
	t.Helper()
	srv := multiServer{&server{ids: []int{1, 2}}}
	r, err := New(nodeKind, srv, &app{srv: srv.server}, WithCatalog(bridge.NewCatalog()))
	require.NoError(t, err)
	return r, srv
}

func TestBatch_BracketsWork(t *testing.T) {
	r, srv := newMultiRegistry(t)

	var begunInside int
	err := r.Batch(context.Background(), func(ctx context.Context) error {
		begunInside = srv.begun
		return r.Delete(ctx, "1")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, begunInside)
	assert.Equal(t, 1, srv.ended)
	assert.Equal(t, []int{2}, srv.ids)
}

func TestBatch_EndRunsOnError(t *testing.T) {
	r, srv := newMultiRegistry(t)
	boom := stdErrors.New("boom")

	err := r.Batch(context.Background(), func(context.Context) error { return boom })
	assert.Same(t, boom, err)
	assert.Equal(t, 1, srv.begun)
	assert.Equal(t, 1, srv.ended)
}

func TestBatch_EndRunsExactlyOnceOnPanic(t *testing.T) {
	r, srv := newMultiRegistry(t)

	assert.PanicsWithValue(t, "inside", func() {
		_ = r.Batch(context.Background(), func(context.Context) error { panic("inside") })
	})
	assert.Equal(t, 1, srv.begun)
	assert.Equal(t, 1, srv.ended)
}

func TestBatch_EndErrorReported(t *testing.T) {
	r, srv := newMultiRegistry(t)
	srv.failEnd = stdErrors.New("reindex failed")

	err := r.Batch(context.Background(), func(context.Context) error { return nil })
	assert.ErrorIs(t, err, srv.failEnd)

	first := stdErrors.New("first")
	err = r.Batch(context.Background(), func(context.Context) error { return first })
	assert.Same(t, first, err)
}

func TestBatch_NoHooksIsNoop(t *testing.T) {
	r, srv, _ := newRegistry(t, 1)

	called := false
	err := r.Batch(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Zero(t, srv.begun)
	assert.Zero(t, srv.ended)
}

func TestRunBatch_PlainValue(t *testing.T) {
	called := false
	require.NoError(t, RunBatch(context.Background(), 42, func(context.Context) error {
		called = true
		return nil
	}))
	assert.True(t, called)
}
