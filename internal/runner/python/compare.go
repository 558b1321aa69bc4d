package python

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/Dakshbumb/Cygnusa-Guardian/pkg/values"
)

// grade decides pass/fail with type-aware equality and, on failure, computes
// the graded similarity score. Verdicts are deterministic: identical inputs
// always produce identical (passed, similarity, partialCredit) triples.
func grade(actual, expected values.Value) (passed bool, similarity float64, partialCredit bool) {
	if outputsMatch(actual, expected) {
		return true, 100, false
	}
	similarity = similarityScore(actual.String(), expected.String())
	return false, similarity, similarity >= 50
}

// outputsMatch tries the equality ladder in order: deep value equality,
// trimmed string equality, then float coercion. Boolean expectations accept
// nothing looser than the strict equality already tried, and list
// expectations nothing looser than the ordered element-wise equality
// included in deep equality.
func outputsMatch(actual, expected values.Value) bool {
	if actual.Equal(expected) {
		return true
	}
	if strings.TrimSpace(actual.String()) == strings.TrimSpace(expected.String()) {
		return true
	}
	if expected.Kind() != values.KindBool && expected.Kind() != values.KindList {
		af, aok := actual.AsFloat()
		ef, eok := expected.AsFloat()
		if aok && eok && af == ef {
			return true
		}
	}
	return false
}

// similarityScore grades a failed answer in [0, 100] by normalized edit
// distance, with a floor for numeric near misses.
func similarityScore(actual, expected string) float64 {
	a := strings.TrimSpace(actual)
	e := strings.TrimSpace(expected)
	if a == e {
		return 100
	}
	if a == "" || e == "" {
		return 0
	}

	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(e); n > maxLen {
		maxLen = n
	}
	dist := levenshtein.ComputeDistance(a, e)
	score := float64(maxLen-dist) / float64(maxLen) * 100
	if score < 0 {
		score = 0
	}

	if floor, ok := numericNearMissFloor(a, e); ok && floor > score {
		score = floor
	}
	return score
}

// numericNearMissFloor guarantees a minimum similarity when both sides parse
// as numbers and agree within a small relative tolerance.
//
// TODO(product): the floors award partial credit for numerically wrong
// answers (< 5% off scores at least 75). Needs a product decision before the
// tolerances change.
func numericNearMissFloor(actual, expected string) (float64, bool) {
	af, errA := strconv.ParseFloat(actual, 64)
	ef, errE := strconv.ParseFloat(expected, 64)
	if errA != nil || errE != nil || ef == 0 {
		return 0, false
	}
	rel := math.Abs(af-ef) / math.Abs(ef)
	switch {
	case rel < 0.01:
		return 95, true
	case rel < 0.05:
		return 75, true
	case rel < 0.10:
		return 50, true
	}
	return 0, false
}
