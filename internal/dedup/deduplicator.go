package dedup

import (
	"github.com/aarushdubey/Guardian-PDF/internal/domain"
)

// DefaultThreshold is the minimum Jaccard similarity for two chunks in the
// same fingerprint bucket to count as duplicates.
const DefaultThreshold = 0.9

// Deduplicator removes near-duplicate chunks from a sequence. It holds only
// immutable configuration and is safe for concurrent use; every call is a
// pure function of its input.
type Deduplicator struct {
	threshold float64
	ngramSize int
}

// New creates a Deduplicator. Out-of-range thresholds and non-positive
// n-gram sizes fall back to the defaults.
func New(threshold float64, ngramSize int) *Deduplicator {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	if ngramSize <= 0 {
		ngramSize = DefaultNGramSize
	}
	return &Deduplicator{threshold: threshold, ngramSize: ngramSize}
}

// Deduplicate groups chunks by fingerprint, runs the Jaccard check on every
// pair within a bucket, and drops the later-occurring member of each pair
// scoring at or above the threshold. Survivors come back in input order.
func (d *Deduplicator) Deduplicate(chunks []string) ([]string, domain.DeduplicationStats) {
	stats := domain.DeduplicationStats{OriginalCount: len(chunks)}

	buckets := make(map[uint64][]int)
	for i, chunk := range chunks {
		hash := Fingerprint(chunk)
		buckets[hash] = append(buckets[hash], i)
	}

	isDuplicate := make([]bool, len(chunks))
	for _, indices := range buckets {
		for i := 0; i < len(indices); i++ {
			if isDuplicate[indices[i]] {
				continue
			}
			for j := i + 1; j < len(indices); j++ {
				if isDuplicate[indices[j]] {
					continue
				}
				similarity := Jaccard(
					Shingles(chunks[indices[i]], d.ngramSize),
					Shingles(chunks[indices[j]], d.ngramSize),
				)
				if similarity >= d.threshold {
					isDuplicate[indices[j]] = true
					stats.DuplicatesRemoved++
				}
			}
		}
	}

	unique := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		if !isDuplicate[i] {
			unique = append(unique, chunk)
		}
	}

	stats.UniqueCount = len(unique)
	if stats.OriginalCount > 0 {
		stats.DeduplicationRatio = 1.0 - float64(stats.UniqueCount)/float64(stats.OriginalCount)
	}
	return unique, stats
}
