package textutil

import (
	"strings"

	"golang.org/x/text/cases"
)

var truthyValues = map[string]struct{}{
	"1":    {},
	"1.0":  {},
	"true": {},
	"yes":  {},
}

// IsTruthy reports whether an annotation cell marks a flag as set. Matching is
// case-insensitive and ignores surrounding whitespace.
func IsTruthy(value string) bool {
	folded := cases.Fold().String(strings.TrimSpace(value))
	_, ok := truthyValues[folded]
	return ok
}
