package utils

import "strings"

// Slug derives the stable catalog key for a display name: lower-cased,
// surrounding whitespace trimmed, inner whitespace runs collapsed to a
// single dash. Two names that collapse to the same slug identify the
// same record.
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
