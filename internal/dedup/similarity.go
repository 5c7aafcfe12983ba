package dedup

import "strings"

// DefaultNGramSize is the shingle width used for similarity comparison.
const DefaultNGramSize = 3

// Shingles converts text into its set of lower-cased n-word shingles.
// Text with fewer than n words produces an empty set.
func Shingles(text string, n int) map[string]struct{} {
	words := strings.Fields(strings.ToLower(text))
	shingles := make(map[string]struct{})
	for i := 0; i+n <= len(words); i++ {
		shingles[strings.Join(words[i:i+n], " ")] = struct{}{}
	}
	return shingles
}

// Jaccard computes |A ∩ B| / |A ∪ B| over two shingle sets. Two empty sets
// count as identical; exactly one empty set counts as completely different.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	intersection := 0
	for shingle := range a {
		if _, ok := b[shingle]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}
