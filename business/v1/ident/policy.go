// Package ident decides which strings can name a note and picks the name of new notes.
//
// Legal identifiers only use [a-z0-9-_], so they can be embedded in a url path segment as they are.
package ident

import "strings"

// Normalize lower-cases raw and drops every character outside [a-z0-9-_]
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return -1
		}
	}, raw)
}

// IsLegal reports whether candidate is a non-empty identifier already in normalized form
func IsLegal(candidate string) bool {
	return candidate != "" && Normalize(candidate) == candidate
}
