// Package keys builds the canonical lookup keys used for catalog entries.
package keys

import "strings"

// FromName produces a canonical key for a display name: trimmed,
// lower-cased, with runs of spaces and dashes collapsed to one underscore.
// "Corrupted Champion" becomes "corrupted_champion".
func FromName(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(name)), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
	return strings.Join(fields, "_")
}
