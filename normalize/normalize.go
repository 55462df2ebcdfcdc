// Package normalize canonicalizes vocabulary values for tolerant
// comparison and decides membership of observed values in a
// permitted-value set.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Value canonicalizes a raw value for comparison: the string is NFKC
// folded, every rune that is not a letter or digit is dropped, and the
// remainder is lowercased.
//
// Catalog values and observed values must both go through this function
// before comparison. Any divergence between the two sides would silently
// change matching behavior, so there is deliberately no second code path.
func Value(s string) string {
	s = norm.NFKC.String(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Result classifies an observed value against a permitted set.
type Result int

const (
	// Empty means the value normalizes to the empty string. Absence of
	// data is not a vocabulary violation; empty values pass through
	// unchanged.
	Empty Result = iota
	// Member means the normalized value equals a normalized permitted value.
	Member
	// Offending means the value is non-empty and matches no permitted value.
	Offending
)

// Matcher tests membership of observed values in a permitted-value set.
// Membership is exact-after-normalization, not fuzzy: two distinct
// permitted values that normalize identically are indistinguishable.
// That is an accepted limitation of the comparison, not something the
// matcher tries to repair.
type Matcher struct {
	permitted map[string]struct{}
}

// NewMatcher builds a Matcher from a permitted-value list. The values
// are normalized through Value, the same path observed values take.
func NewMatcher(values []string) *Matcher {
	permitted := make(map[string]struct{}, len(values))
	for _, v := range values {
		key := Value(v)
		if key == "" {
			continue
		}
		permitted[key] = struct{}{}
	}
	return &Matcher{permitted: permitted}
}

// Match classifies an observed value.
func (m *Matcher) Match(observed string) Result {
	key := Value(observed)
	if key == "" {
		return Empty
	}
	if _, ok := m.permitted[key]; ok {
		return Member
	}
	return Offending
}
