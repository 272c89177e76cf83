// Package hidden implements the hidden-file predicate used to decide
// whether skip_hidden drops an entry before it ever reaches the user
// callback.
package hidden

import "unicode/utf8"

// IsHidden reports whether name should be treated as a dot-file. Names
// that fail UTF-8 decoding at their first rune are treated as not
// hidden.
func IsHidden(name string) bool {
	if name == "" {
		return false
	}
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError && size <= 1 {
		return false
	}
	return r == '.'
}
