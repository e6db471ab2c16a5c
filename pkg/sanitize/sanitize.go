package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text strips every HTML element from s and trims surrounding whitespace.
// Entities escaped by the policy are decoded back so plain text such as
// `Alex "Bro" Devaux` round-trips unchanged.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// TextPtr applies Text to an optional value.
func TextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := Text(*s)
	return &clean
}

// Blank reports whether s is absent or has no text left once markup is
// stripped.
func Blank(s *string) bool {
	return s == nil || Text(*s) == ""
}
