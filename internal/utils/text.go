package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize upper-cases the first word of s, leaving the rest untouched.
// Act messages start with a short description like "a tanned hide".
// A Caser keeps state between calls, so each call builds its own.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first, rest, found := strings.Cut(s, " ")
	first = cases.Title(language.English, cases.NoLower).String(first)
	if !found {
		return first
	}
	return first + " " + rest
}

// JoinList renders items as "A", "A and B" or "A, B and C"
func JoinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
