package quiz

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Normalize trims, lowercases, and collapses whitespace runs to a single space.
// Answers are always compared in this form.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Distance is the Levenshtein distance between a and b counted in runes,
// so a Vietnamese letter with diacritics is a single edit.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// Similarity returns (maxLen - Distance) / maxLen in [0, 1], and 1 when both strings are empty.
// Callers normalize first.
func Similarity(a, b string) float64 {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 1.0
	}
	return float64(maxLen-Distance(a, b)) / float64(maxLen)
}
