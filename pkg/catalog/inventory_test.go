package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSaver keeps every snapshot it is asked to save.
type recordingSaver struct {
	saves []*State
	err   error
}

func (r *recordingSaver) Save(_ context.Context, state *State) error {
	r.saves = append(r.saves, state)
	return r.err
}

func mustBook(t *testing.T, id, title, author string) Book {
	t.Helper()
	bid, err := ParseBookID(id)
	require.NoError(t, err)
	b, err := NewBook(bid, title, author)
	require.NoError(t, err)
	return b
}

func TestInventory_Scenario(t *testing.T) {
	ctx := context.Background()
	saver := &recordingSaver{}
	inv := NewInventory(nil, saver)

	dune := mustBook(t, "ab-1", "Dune", "Herbert")
	require.NoError(t, inv.Add(ctx, dune))
	assert.Equal(t, 1, inv.Count())

	found, err := inv.Search("dune", SearchLiteral)
	require.NoError(t, err)
	assert.Equal(t, dune, found)

	assert.False(t, inv.IsCheckedOut("ab-1"))
	require.NoError(t, inv.CheckoutByID(ctx, "ab-1"))
	assert.True(t, inv.IsCheckedOut("ab-1"))
	require.NoError(t, inv.ReturnByID(ctx, "ab-1"))
	assert.False(t, inv.IsCheckedOut("ab-1"))

	// one flush per mutation
	require.Len(t, saver.saves, 3)
	assert.Equal(t, []BookID{"ab-1"}, saver.saves[1].CheckedOut)
	assert.Empty(t, saver.saves[2].CheckedOut)
}

func TestInventory_Search(t *testing.T) {
	ctx := context.Background()
	inv := NewInventory(nil, nil)
	require.NoError(t, inv.Add(ctx, mustBook(t, "ab-1", "Dune", "Frank Herbert")))
	require.NoError(t, inv.Add(ctx, mustBook(t, "cd-2", "Dune Messiah", "Frank Herbert")))
	require.NoError(t, inv.Add(ctx, mustBook(t, "ef-3", "C++ Primer", "Lippman")))

	t.Run("returns the first match in insertion order", func(t *testing.T) {
		b, err := inv.Search("DUNE", SearchLiteral)
		require.NoError(t, err)
		assert.Equal(t, BookID("ab-1"), b.ID)
	})

	t.Run("matches id and author", func(t *testing.T) {
		b, err := inv.Search("cd-2", SearchLiteral)
		require.NoError(t, err)
		assert.Equal(t, "Dune Messiah", b.Title)

		b, err = inv.Search("lipp", SearchLiteral)
		require.NoError(t, err)
		assert.Equal(t, BookID("ef-3"), b.ID)
	})

	t.Run("no match is not found", func(t *testing.T) {
		_, err := inv.Search("zzz", SearchLiteral)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})

	t.Run("literal mode treats metacharacters literally", func(t *testing.T) {
		b, err := inv.Search("c++", SearchLiteral)
		require.NoError(t, err)
		assert.Equal(t, BookID("ef-3"), b.ID)

		_, err = inv.Search("d.ne", SearchLiteral)
		assert.True(t, IsNotFound(err))
	})

	t.Run("pattern mode compiles the term", func(t *testing.T) {
		b, err := inv.Search("^dune mess", SearchPattern)
		require.NoError(t, err)
		assert.Equal(t, BookID("cd-2"), b.ID)

		_, err = inv.Search("c++", SearchPattern)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("search all returns every match", func(t *testing.T) {
		books, err := inv.SearchAll("herbert", SearchLiteral)
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, BookID("ab-1"), books[0].ID)
		assert.Equal(t, BookID("cd-2"), books[1].ID)

		books, err = inv.SearchAll("nothing", SearchLiteral)
		require.NoError(t, err)
		assert.Empty(t, books)
	})
}

func TestInventory_CheckoutAndReturnAreIdempotent(t *testing.T) {
	ctx := context.Background()
	inv := NewInventory(nil, nil)

	require.NoError(t, inv.CheckoutByID(ctx, "ab-1"))
	require.NoError(t, inv.CheckoutByID(ctx, "ab-1"))
	assert.Equal(t, []BookID{"ab-1"}, inv.Snapshot().CheckedOut)

	require.NoError(t, inv.ReturnByID(ctx, "ab-1"))
	before := inv.Snapshot()
	require.NoError(t, inv.ReturnByID(ctx, "ab-1"))
	assert.Equal(t, before, inv.Snapshot())
}

func TestInventory_AllowsDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	inv := NewInventory(nil, nil)
	require.NoError(t, inv.Add(ctx, mustBook(t, "ab-1", "First", "A")))
	require.NoError(t, inv.Add(ctx, mustBook(t, "ab-1", "Second", "B")))
	assert.Equal(t, 2, inv.Count())

	b, ok := inv.FindByID("ab-1")
	require.True(t, ok)
	assert.Equal(t, "First", b.Title)
}

func TestInventory_FlushFailureKeepsMutation(t *testing.T) {
	ctx := context.Background()
	saver := &recordingSaver{err: errors.New("disk full")}
	inv := NewInventory(nil, saver)

	err := inv.Add(ctx, mustBook(t, "ab-1", "Dune", "Herbert"))
	require.Error(t, err)
	assert.True(t, IsPersistError(err))
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, 1, inv.Count())

	// the next successful flush carries the earlier mutation
	saver.err = nil
	require.NoError(t, inv.CheckoutByID(ctx, "ab-1"))
	last := saver.saves[len(saver.saves)-1]
	assert.Len(t, last.Books, 1)
}

func TestInventory_RestoresFromState(t *testing.T) {
	state := &State{
		Books:      []Book{{ID: "ab-1", Title: "Dune", Author: "Herbert"}},
		CheckedOut: []BookID{"ab-1"},
	}
	inv := NewInventory(state, nil)
	assert.Equal(t, 1, inv.Count())
	assert.True(t, inv.IsCheckedOut("ab-1"))

	// the inventory owns its copy
	state.Books[0].Title = "changed"
	assert.Equal(t, "Dune", inv.Books()[0].Title)
}

func TestNewBook(t *testing.T) {
	_, err := NewBook("ab-1", "  ", "Herbert")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = NewBook("ab-1", "Dune", "")
	require.Error(t, err)

	_, err = NewBook("ab1", "Dune", "Herbert")
	require.Error(t, err, "ids must be well formed")

	_, err = NewBook("ab-01", "Dune", "Herbert")
	require.NoError(t, err, "non-canonical ids are still valid")

	b, err := NewBook("ab-1", " Dune ", " Herbert ")
	require.NoError(t, err)
	assert.Equal(t, "Dune", b.Title)
	assert.Equal(t, "Herbert", b.Author)
}
