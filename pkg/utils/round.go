package utils

import (
	"math"
	"unicode/utf8"
)

// Round2 rounds to two decimal places, the display precision of every
// numeric field in an evidence record.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Truncate clips s to at most limit characters. A limit of zero or less
// means no clipping.
func Truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
