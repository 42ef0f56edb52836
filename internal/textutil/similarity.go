package textutil

import (
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// SimilarityRatio computes a length-weighted common-subsequence ratio between
// two strings: 2*LCS(a,b) / (len(a)+len(b)) over runes, in [0, 1]. Two empty
// strings are identical and score 1. Callers are expected to pass normalized
// titles; the ratio is symmetric.
func SimilarityRatio(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 1
	}
	common := edlib.LCS(a, b)
	if common <= 0 {
		return 0
	}
	return 2 * float64(common) / float64(total)
}
