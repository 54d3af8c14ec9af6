package match

import (
	"strings"
	"unicode"
)

// MinSimilarity is the lowest Similarity accepted by Suggest.
const MinSimilarity = 0.6

// NormalizeIdent lowercases s and drops '_', '-' and spaces.
func NormalizeIdent(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// Suggest returns the candidate closest to name, or false when none
// reaches MinSimilarity. Ties keep the earliest candidate. A candidate equal
// to name is never suggested.
func Suggest(name string, candidates []string) (string, bool) {
	best, bestScore := "", 0.0

	for _, c := range candidates {
		if c == name || c == "" {
			continue
		}

		score := Similarity(name, c)
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < MinSimilarity {
		return "", false
	}

	return best, true
}
