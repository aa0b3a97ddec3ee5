package core

import (
	"strings"

	"github.com/google/uuid"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// NewID returns a prefixed unique id. Seed records keep their short ids
// ("s1", "c1", ...); everything created at runtime gets one of these.
func NewID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.New().String(), "-", "")
}
