package shell

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/dyluth/shelf/pkg/catalog"
)

// field is one prompt of a form with its validator.
type field struct {
	input    textinput.Model
	validate func(string) error
}

func newField(label string, validate func(string) error) field {
	ti := textinput.New()
	ti.Prompt = "? " + label + ": "
	ti.CharLimit = 256
	ti.PromptStyle = questionStyle
	return field{input: ti, validate: validate}
}

func validatePrefix(s string) error {
	_, err := catalog.ParseHexPrefix(s)
	return err
}

func validateNumber(s string) error {
	_, err := catalog.ParseCount(s)
	return err
}

func validateBookID(s string) error {
	_, err := catalog.ParseBookID(s)
	return err
}

func validateNonEmpty(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return &catalog.ValidationError{Field: name, Input: s, Reason: name + " cannot be empty"}
		}
		return nil
	}
}

// fieldsFor returns the prompts an action needs, or nil if it runs immediately.
// The search prompt says when queries are regular expressions.
func fieldsFor(a action, mode catalog.SearchMode) []field {
	switch a {
	case actionAdd:
		return []field{
			newField("Book ID Prefix", validatePrefix),
			newField("Book ID Number", validateNumber),
			newField("Book Title", validateNonEmpty("title")),
			newField("Book Author Name", validateNonEmpty("author")),
		}
	case actionCheckout, actionReturn, actionState:
		return []field{newField("Book ID", validateBookID)}
	case actionSearch:
		label := "Query"
		if mode == catalog.SearchPattern {
			label = "Query (regular expression)"
		}
		return []field{newField(label, validateNonEmpty("query"))}
	default:
		return nil
	}
}
