package todo

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter returns the active filter pattern, "" when none.
func (v *View) Filter() string { return v.filter }

// SetFilter narrows the snapshot rows to todos whose text matches pattern.
// Matching is case-insensitive. A pattern without glob metacharacters is a
// plain substring match; otherwise it is a doublestar glob, where "/" acts
// as a separator. An empty pattern clears the filter.
func (v *View) SetFilter(pattern string) error {
	p, err := normalisePattern(pattern)
	if err != nil {
		return err
	}
	v.filter = p
	return nil
}

// Matches reports whether text passes the active filter.
func (v *View) Matches(text string) bool {
	return matchText(v.filter, text)
}

func normalisePattern(pattern string) (string, error) {
	p := strings.ToLower(strings.TrimSpace(pattern))
	if p == "" || !isGlob(p) {
		return p, nil
	}
	if !doublestar.ValidatePattern(p) {
		return "", fmt.Errorf("%w: %q", ErrBadPattern, pattern)
	}
	return p, nil
}

func matchText(pattern, text string) bool {
	if pattern == "" {
		return true
	}
	text = strings.ToLower(text)
	if !isGlob(pattern) {
		return strings.Contains(text, pattern)
	}
	ok, err := doublestar.Match(pattern, text)
	return err == nil && ok
}

func isGlob(p string) bool {
	return strings.ContainsAny(p, "*?[{\\")
}
