package listing

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dyluth/shelf/pkg/catalog"
)

// OutputFormat specifies how to format a list of books.
type OutputFormat string

const (
	// OutputFormatDefault uses a table with truncated titles and authors
	OutputFormatDefault OutputFormat = "default"

	// OutputFormatJSONL outputs one JSON object per book
	OutputFormatJSONL OutputFormat = "jsonl"
)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputFormatDefault, "":
		return OutputFormatDefault, nil
	case OutputFormatJSONL:
		return OutputFormatJSONL, nil
	default:
		return "", fmt.Errorf("unknown output format: %s", s)
	}
}

// StatusFunc reports the lending status of a book id, e.g. "IN STOCK".
type StatusFunc func(id catalog.BookID) string

// Record is the JSON form of a book with its lending status.
type Record struct {
	ID     catalog.BookID `json:"id"`
	Title  string         `json:"title"`
	Author string         `json:"author"`
	Status string         `json:"status"`
}

// Write formats books in the requested format.
func Write(w io.Writer, books []catalog.Book, status StatusFunc, format OutputFormat) error {
	switch format {
	case OutputFormatDefault:
		FormatTable(w, books, status)
		return nil
	case OutputFormatJSONL:
		return FormatJSONL(w, books, status)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// FormatTable writes books as a table with columns ID, STATUS, TITLE and AUTHOR.
// Returns the number of books formatted.
func FormatTable(w io.Writer, books []catalog.Book, status StatusFunc) int {
	if len(books) == 0 {
		fmt.Fprintln(w, "No books found")
		return 0
	}

	fmt.Fprintf(w, "%-10s %-12s %-32s %s\n", "ID", "STATUS", "TITLE", "AUTHOR")
	fmt.Fprintf(w, "%-10s %-12s %-32s %s\n",
		"----------", "------------", "--------------------------------", "------------------------")

	for _, b := range books {
		fmt.Fprintf(w, "%-10s %-12s %-32s %s\n",
			b.ID,
			status(b.ID),
			truncate(b.Title, 32),
			truncate(b.Author, 24),
		)
	}

	noun := "book"
	if len(books) != 1 {
		noun = "books"
	}
	fmt.Fprintf(w, "\n%d %s\n", len(books), noun)

	return len(books)
}

// FormatJSONL writes books as line-delimited JSON, one object per line.
func FormatJSONL(w io.Writer, books []catalog.Book, status StatusFunc) error {
	for _, b := range books {
		data, err := json.Marshal(toRecord(b, status))
		if err != nil {
			return fmt.Errorf("failed to marshal book to JSON: %w", err)
		}

		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("failed to write JSONL output: %w", err)
		}
	}
	return nil
}

// FormatSingleJSON writes one book as pretty-printed JSON.
func FormatSingleJSON(w io.Writer, book catalog.Book, status StatusFunc) error {
	data, err := json.MarshalIndent(toRecord(book, status), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal book to JSON: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}
	fmt.Fprintln(w)
	return nil
}

// FormatDetail writes the indented multi-line view used after a search.
func FormatDetail(w io.Writer, book catalog.Book, status string) {
	fmt.Fprintf(w, "   ID: %s\n   Title: %s\n   Author: %s\n   State: %s\n",
		book.ID, book.Title, book.Author, status)
}

func toRecord(b catalog.Book, status StatusFunc) Record {
	return Record{ID: b.ID, Title: b.Title, Author: b.Author, Status: status(b.ID)}
}

// truncate shortens s to max runes, marking the cut with "...".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
