package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestTodoStoreCRUD(t *testing.T) {
	reg := NewRegistry(t.TempDir())
	ts, err := reg.OpenOrCreate("user1")
	require.NoError(t, err)
	defer ts.Close()

	ctx := context.Background()

	todo := Todo{ID: "t1", Text: "Buy milk", Priority: "HIGH", Status: "TO DO"}
	require.NoError(t, ts.Insert(ctx, todo))

	got, err := ts.Get(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, todo, *got)

	missing, err := ts.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	// Update rewrites every column; unchanged values are passed through
	require.NoError(t, ts.Update(ctx, "t1", "Buy milk", "HIGH", "DONE"))
	got, err = ts.Get(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Buy milk", got.Text)
	assert.Equal(t, "HIGH", got.Priority)
	assert.Equal(t, "DONE", got.Status)

	// Delete is unconditional; a second delete of the same id still succeeds
	require.NoError(t, ts.Delete(ctx, "t1"))
	require.NoError(t, ts.Delete(ctx, "t1"))

	got, err = ts.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTodoStoreListFilters(t *testing.T) {
	reg := NewRegistry(t.TempDir())
	ts, err := reg.OpenOrCreate("user1")
	require.NoError(t, err)
	defer ts.Close()

	ctx := context.Background()

	seed := []Todo{
		{ID: "1", Text: "Buy milk", Priority: "HIGH", Status: "TO DO"},
		{ID: "2", Text: "Buy bread", Priority: "LOW", Status: "TO DO"},
		{ID: "3", Text: "Walk dog", Priority: "HIGH", Status: "DONE"},
	}
	for _, td := range seed {
		require.NoError(t, ts.Insert(ctx, td))
	}

	all, err := ts.List(ctx, TodoFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	milk, err := ts.List(ctx, TodoFilter{Search: "milk"})
	require.NoError(t, err)
	require.Len(t, milk, 1)
	assert.Equal(t, "1", milk[0].ID)

	buys, err := ts.List(ctx, TodoFilter{Search: "Buy"})
	require.NoError(t, err)
	assert.Len(t, buys, 2)

	high, err := ts.List(ctx, TodoFilter{Priority: strptr("HIGH")})
	require.NoError(t, err)
	assert.Len(t, high, 2)

	// Filters are conjunctive
	buyHigh, err := ts.List(ctx, TodoFilter{Search: "Buy", Priority: strptr("HIGH")})
	require.NoError(t, err)
	require.Len(t, buyHigh, 1)
	assert.Equal(t, "1", buyHigh[0].ID)

	highDone, err := ts.List(ctx, TodoFilter{Priority: strptr("HIGH"), Status: strptr("DONE")})
	require.NoError(t, err)
	require.Len(t, highDone, 1)
	assert.Equal(t, "3", highDone[0].ID)

	// A supplied-but-empty filter still filters (matches nothing here)
	none, err := ts.List(ctx, TodoFilter{Priority: strptr("")})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRegistryIsolatesUsers(t *testing.T) {
	reg := NewRegistry(t.TempDir())
	ctx := context.Background()

	alice, err := reg.OpenOrCreate("alice")
	require.NoError(t, err)
	defer alice.Close()

	bob, err := reg.OpenOrCreate("bob")
	require.NoError(t, err)
	defer bob.Close()

	// Ids are scoped per store, not globally unique across users
	require.NoError(t, alice.Insert(ctx, Todo{ID: "shared", Text: "alice task"}))
	require.NoError(t, bob.Insert(ctx, Todo{ID: "shared", Text: "bob task"}))

	got, err := alice.Get(ctx, "shared")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice task", got.Text)

	got, err = bob.Get(ctx, "shared")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "bob task", got.Text)

	bobTodos, err := bob.List(ctx, TodoFilter{})
	require.NoError(t, err)
	assert.Len(t, bobTodos, 1)
}

func TestRegistryPersistsAcrossReopen(t *testing.T) {
	reg := NewRegistry(t.TempDir())
	ctx := context.Background()

	ts, err := reg.OpenOrCreate("user1")
	require.NoError(t, err)
	require.NoError(t, ts.Insert(ctx, Todo{ID: "t1", Text: "persisted"}))
	require.NoError(t, ts.Close())

	// Same user id resolves to the same storage unit
	ts, err = reg.OpenOrCreate("user1")
	require.NoError(t, err)
	defer ts.Close()

	got, err := ts.Get(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "persisted", got.Text)
}

func TestRegistryPath(t *testing.T) {
	reg := NewRegistry("/var/data")
	assert.Equal(t, "/var/data/todos_42.db", reg.Path("42"))
}
