// Package similarity holds the pure string metrics backing spam detection.
// Both metrics operate on Unicode code points, are symmetric in their
// arguments and always return a percentage in [0,100].
package similarity

import (
	"strings"
)

// Levenshtein returns the edit-distance similarity of a and b as a
// percentage. Inputs are trimmed and lowercased before comparison;
// equal strings (including two empty ones) score 100.
func Levenshtein(a, b string) float64 {
	x := []rune(normalize(a))
	y := []rune(normalize(b))
	if string(x) == string(y) {
		return 100
	}
	longest := len(x)
	if len(y) > longest {
		longest = len(y)
	}
	if longest == 0 {
		return 100
	}
	d := editDistance(x, y)
	return clamp((1-float64(d)/float64(longest))*100, 0, 100)
}

// TrigramJaccard returns the Jaccard similarity of the trigram sets of
// a and b as a percentage. Strings shorter than three code points have
// no trigrams and score 0.
func TrigramJaccard(a, b string) float64 {
	x := trigrams(normalize(a))
	y := trigrams(normalize(b))
	if len(x) == 0 || len(y) == 0 {
		return 0
	}
	inter := 0
	for t := range x {
		if _, ok := y[t]; ok {
			inter++
		}
	}
	union := len(x) + len(y) - inter
	return float64(inter) / float64(union) * 100
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func trigrams(s string) map[string]struct{} {
	r := []rune(s)
	if len(r) < 3 {
		return nil
	}
	set := make(map[string]struct{}, len(r)-2)
	for i := 0; i+3 <= len(r); i++ {
		set[string(r[i:i+3])] = struct{}{}
	}
	return set
}

// editDistance is the standard insert/delete/substitute cost-1
// Levenshtein distance, two-row formulation.
func editDistance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
