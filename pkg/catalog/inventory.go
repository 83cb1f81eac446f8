package catalog

import (
	"context"
	"slices"
	"sync"
)

// Saver flushes a full snapshot of the inventory to durable storage.
type Saver interface {
	Save(ctx context.Context, state *State) error
}

// Inventory is the record store: an ordered list of books and the set of
// checked-out ids. All methods are safe for concurrent use; mutations and their
// flush run under a single lock, so the saved state always reflects the last
// completed mutation.
type Inventory struct {
	mu         sync.Mutex
	books      []Book
	checkedOut map[BookID]struct{}
	saver      Saver
}

// NewInventory builds an inventory from state (nil means empty). A nil saver
// keeps the inventory purely in memory.
func NewInventory(state *State, saver Saver) *Inventory {
	inv := &Inventory{
		books:      []Book{},
		checkedOut: make(map[BookID]struct{}),
		saver:      saver,
	}
	if state != nil {
		inv.books = append(inv.books, state.Books...)
		for _, id := range state.CheckedOut {
			inv.checkedOut[id] = struct{}{}
		}
	}
	return inv
}

// Add appends a book. Duplicate ids are not rejected.
func (inv *Inventory) Add(ctx context.Context, book Book) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	inv.books = append(inv.books, book)
	return inv.flush(ctx, "add")
}

// Count returns the number of books.
func (inv *Inventory) Count() int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return len(inv.books)
}

// IsCheckedOut reports whether id is in the checked-out set.
func (inv *Inventory) IsCheckedOut(id BookID) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	_, ok := inv.checkedOut[id]
	return ok
}

// CheckoutByID marks id as checked out. It does not check that a book with
// that id exists, and checking out an id twice is a no-op.
func (inv *Inventory) CheckoutByID(ctx context.Context, id BookID) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	inv.checkedOut[id] = struct{}{}
	return inv.flush(ctx, "checkout")
}

// ReturnByID removes id from the checked-out set. Returning an id that is not
// checked out is a no-op.
func (inv *Inventory) ReturnByID(ctx context.Context, id BookID) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	delete(inv.checkedOut, id)
	return inv.flush(ctx, "return")
}

// FindByID returns the first book with exactly this id.
func (inv *Inventory) FindByID(id BookID) (Book, bool) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	for _, b := range inv.books {
		if b.ID == id {
			return b, true
		}
	}
	return Book{}, false
}

// Search returns the first book, in insertion order, whose id, title or author
// matches term. A miss returns a *NotFoundError.
func (inv *Inventory) Search(term string, mode SearchMode) (Book, error) {
	m, err := newMatcher(term, mode)
	if err != nil {
		return Book{}, err
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	for _, b := range inv.books {
		if m.matches(b) {
			return b, nil
		}
	}
	return Book{}, &NotFoundError{Query: term}
}

// SearchAll returns every matching book in insertion order. No match is not an
// error; the result is simply empty.
func (inv *Inventory) SearchAll(term string, mode SearchMode) ([]Book, error) {
	m, err := newMatcher(term, mode)
	if err != nil {
		return nil, err
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	found := []Book{}
	for _, b := range inv.books {
		if m.matches(b) {
			found = append(found, b)
		}
	}
	return found, nil
}

// Books returns a copy of all books in insertion order.
func (inv *Inventory) Books() []Book {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return slices.Clone(inv.books)
}

// Snapshot returns a copy of the current state.
func (inv *Inventory) Snapshot() *State {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.snapshotLocked()
}

func (inv *Inventory) snapshotLocked() *State {
	state := &State{
		Books:      slices.Clone(inv.books),
		CheckedOut: make([]BookID, 0, len(inv.checkedOut)),
	}
	for id := range inv.checkedOut {
		state.CheckedOut = append(state.CheckedOut, id)
	}
	slices.Sort(state.CheckedOut)
	return state
}

// flush must be called with mu held.
func (inv *Inventory) flush(ctx context.Context, op string) error {
	if inv.saver == nil {
		return nil
	}
	if err := inv.saver.Save(ctx, inv.snapshotLocked()); err != nil {
		return &PersistError{Op: op, Err: err}
	}
	return nil
}
