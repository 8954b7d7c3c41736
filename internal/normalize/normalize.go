package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// Fold case-folds s for case-insensitive comparison.
func Fold(s string) string {
	return folder.String(s)
}

// Contains reports whether sub occurs in s ignoring case.
func Contains(s, sub string) bool {
	return strings.Contains(Fold(s), Fold(sub))
}

// Equal reports whether a and b are the same string ignoring case.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}
