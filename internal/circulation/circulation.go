// Package circulation applies the lending rules on top of a catalog.Inventory.
// Raw operator text comes in, is validated and normalised, and only then
// reaches the store. Both the interactive shell and the one-shot commands go
// through this package.
package circulation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dyluth/shelf/pkg/catalog"
	"github.com/sirupsen/logrus"
)

// Status is the lending state of a book.
type Status string

const (
	StatusInStock    Status = "IN STOCK"
	StatusCheckedOut Status = "CHECKED OUT"
)

// StateConflictError is returned when a checkout or return does not fit the
// book's current status.
type StateConflictError struct {
	ID     catalog.BookID
	Status Status
}

func (e *StateConflictError) Error() string {
	if e.Status == StatusCheckedOut {
		return fmt.Sprintf("book %s is already checked out", e.ID)
	}
	return fmt.Sprintf("book %s is already in stock", e.ID)
}

// IsStateConflict returns true if err is a StateConflictError.
func IsStateConflict(err error) bool {
	var conflict *StateConflictError
	return errors.As(err, &conflict)
}

// Service wraps an inventory with validation and lending guards.
type Service struct {
	inv  *catalog.Inventory
	mode catalog.SearchMode
	log  logrus.FieldLogger
}

// New returns a service over inv. mode selects how search terms are matched.
func New(inv *catalog.Inventory, mode catalog.SearchMode, log logrus.FieldLogger) *Service {
	return &Service{inv: inv, mode: mode, log: log}
}

// SearchMode returns the configured search mode.
func (s *Service) SearchMode() catalog.SearchMode {
	return s.mode
}

// Add validates every field and appends the book.
func (s *Service) Add(ctx context.Context, prefix, number, title, author string) (catalog.Book, error) {
	hex, err := catalog.ParseHexPrefix(prefix)
	if err != nil {
		return catalog.Book{}, err
	}
	n, err := catalog.ParseCount(number)
	if err != nil {
		return catalog.Book{}, err
	}
	book, err := catalog.NewBook(catalog.NewBookID(hex, n), title, author)
	if err != nil {
		return catalog.Book{}, err
	}

	err = s.inv.Add(ctx, book)
	s.logMutation("add", book.ID, err)
	return book, err
}

// Checkout lends a book. An id that is already out is a conflict even when no
// book carries it; otherwise the id must belong to a book.
func (s *Service) Checkout(ctx context.Context, rawID string) (catalog.BookID, error) {
	id, err := catalog.ParseBookID(rawID)
	if err != nil {
		return "", err
	}

	if s.inv.IsCheckedOut(id) {
		return id, &StateConflictError{ID: id, Status: StatusCheckedOut}
	}
	if _, ok := s.inv.FindByID(id); !ok {
		return id, &catalog.NotFoundError{Query: string(id)}
	}

	err = s.inv.CheckoutByID(ctx, id)
	s.logMutation("checkout", id, err)
	return id, err
}

// Return takes a book back into stock.
func (s *Service) Return(ctx context.Context, rawID string) (catalog.BookID, error) {
	id, err := catalog.ParseBookID(rawID)
	if err != nil {
		return "", err
	}

	if !s.inv.IsCheckedOut(id) {
		return id, &StateConflictError{ID: id, Status: StatusInStock}
	}
	if _, ok := s.inv.FindByID(id); !ok {
		return id, &catalog.NotFoundError{Query: string(id)}
	}

	err = s.inv.ReturnByID(ctx, id)
	s.logMutation("return", id, err)
	return id, err
}

// State reports whether the book with rawID is in stock or checked out.
func (s *Service) State(ctx context.Context, rawID string) (catalog.Book, Status, error) {
	id, err := catalog.ParseBookID(rawID)
	if err != nil {
		return catalog.Book{}, "", err
	}

	book, ok := s.inv.FindByID(id)
	if !ok {
		return catalog.Book{}, "", &catalog.NotFoundError{Query: string(id)}
	}
	return book, s.StatusOf(book.ID), nil
}

// Search returns the first book matching term and its status.
func (s *Service) Search(ctx context.Context, term string) (catalog.Book, Status, error) {
	clean, err := cleanTerm(term)
	if err != nil {
		return catalog.Book{}, "", err
	}

	book, err := s.inv.Search(clean, s.mode)
	if err != nil {
		return catalog.Book{}, "", err
	}
	return book, s.StatusOf(book.ID), nil
}

// SearchAll returns every book matching term.
func (s *Service) SearchAll(ctx context.Context, term string) ([]catalog.Book, error) {
	clean, err := cleanTerm(term)
	if err != nil {
		return nil, err
	}
	return s.inv.SearchAll(clean, s.mode)
}

// Count returns the number of books in the catalog.
func (s *Service) Count() int {
	return s.inv.Count()
}

// Books returns all books in insertion order.
func (s *Service) Books() []catalog.Book {
	return s.inv.Books()
}

// StatusOf reports the lending status of id.
func (s *Service) StatusOf(id catalog.BookID) Status {
	if s.inv.IsCheckedOut(id) {
		return StatusCheckedOut
	}
	return StatusInStock
}

func (s *Service) logMutation(op string, id catalog.BookID, err error) {
	entry := s.log.WithFields(logrus.Fields{"op": op, "id": string(id)})
	if err != nil {
		entry.WithError(err).Error("mutation not persisted")
		return
	}
	entry.Info("mutation persisted")
}

func cleanTerm(term string) (string, error) {
	clean := strings.TrimSpace(term)
	if clean == "" {
		return "", &catalog.ValidationError{Field: "term", Input: term, Reason: "search term cannot be empty"}
	}
	return clean, nil
}
