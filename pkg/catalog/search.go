package catalog

import (
	"regexp"
	"strings"
)

// SearchMode selects how a search term is interpreted.
type SearchMode string

const (
	// SearchLiteral matches the term as a case-insensitive substring.
	SearchLiteral SearchMode = "literal"

	// SearchPattern compiles the term as a case-insensitive regular expression.
	SearchPattern SearchMode = "pattern"
)

// ParseSearchMode maps a configuration or flag value to a SearchMode.
// The empty string selects SearchLiteral.
func ParseSearchMode(s string) (SearchMode, error) {
	switch SearchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", SearchLiteral:
		return SearchLiteral, nil
	case SearchPattern:
		return SearchPattern, nil
	default:
		return "", &ValidationError{Field: "search mode", Input: s, Reason: "must be 'literal' or 'pattern'"}
	}
}

// matcher reports whether a field matches the compiled term.
type matcher func(field string) bool

func newMatcher(term string, mode SearchMode) (matcher, error) {
	switch mode {
	case SearchPattern:
		re, err := regexp.Compile("(?i)" + term)
		if err != nil {
			return nil, &ValidationError{Field: "term", Input: term, Reason: err.Error()}
		}
		return re.MatchString, nil
	case SearchLiteral, "":
		needle := strings.ToLower(term)
		return func(field string) bool {
			return strings.Contains(strings.ToLower(field), needle)
		}, nil
	default:
		return nil, &ValidationError{Field: "search mode", Input: string(mode), Reason: "must be 'literal' or 'pattern'"}
	}
}

// matches checks id, then title, then author.
func (m matcher) matches(b Book) bool {
	return m(string(b.ID)) || m(b.Title) || m(b.Author)
}
