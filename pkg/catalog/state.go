package catalog

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Book is a single catalog record. Books are immutable once added.
type Book struct {
	ID     BookID `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// NewBook builds a Book, trimming title and author and rejecting empty values.
func NewBook(id BookID, title, author string) (Book, error) {
	b := Book{
		ID:     id,
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
	}
	if err := b.Validate(); err != nil {
		return Book{}, err
	}
	return b, nil
}

// Validate checks that the book has a well-formed id and non-empty title and
// author. The id need not be canonical; "ab-07" is valid and stands for ab-7.
func (b Book) Validate() error {
	if _, err := ParseBookID(string(b.ID)); err != nil {
		return err
	}
	if strings.TrimSpace(b.Title) == "" {
		return &ValidationError{Field: "title", Input: b.Title, Reason: "title cannot be empty"}
	}
	if strings.TrimSpace(b.Author) == "" {
		return &ValidationError{Field: "author", Input: b.Author, Reason: "author cannot be empty"}
	}
	return nil
}

// State is the unit of persistence: every book in insertion order plus the
// set of checked-out ids.
type State struct {
	Books      []Book
	CheckedOut []BookID
}

// stateJSON is the on-disk shape. The checked-out set is written as a list.
type stateJSON struct {
	Books           []Book   `json:"books"`
	CheckedOutBooks []BookID `json:"checkedOutBooks"`
}

// NewState returns an empty state.
func NewState() *State {
	return &State{
		Books:      []Book{},
		CheckedOut: []BookID{},
	}
}

// canonicalID returns the canonical form of id, or id unchanged when it does
// not parse. Malformed ids are left for Validate to report.
func canonicalID(id BookID) BookID {
	if c, err := ParseBookID(string(id)); err == nil {
		return c
	}
	return id
}

// canonicalIDs canonicalises ids, sorts them and drops duplicates.
func canonicalIDs(ids []BookID) []BookID {
	out := make([]BookID, 0, len(ids))
	for _, id := range ids {
		out = append(out, canonicalID(id))
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func canonicalBooks(books []Book) []Book {
	out := make([]Book, 0, len(books))
	for _, b := range books {
		b.ID = canonicalID(b.ID)
		out = append(out, b)
	}
	return out
}

// MarshalJSON writes the state with canonical ids and the checked-out ids
// sorted, so that equal states always encode to identical bytes.
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(stateJSON{
		Books:           canonicalBooks(s.Books),
		CheckedOutBooks: canonicalIDs(s.CheckedOut),
	})
}

// UnmarshalJSON reads the on-disk shape. Ids are canonicalised and duplicate
// checked-out ids dropped.
func (s *State) UnmarshalJSON(data []byte) error {
	var in stateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	s.Books = canonicalBooks(in.Books)
	s.CheckedOut = canonicalIDs(in.CheckedOutBooks)
	return nil
}

// Validate checks every book and every checked-out id.
func (s *State) Validate() error {
	for i, b := range s.Books {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("book %d: %w", i, err)
		}
	}
	for _, id := range s.CheckedOut {
		if _, err := ParseBookID(string(id)); err != nil {
			return fmt.Errorf("checked-out id: %w", err)
		}
	}
	return nil
}
