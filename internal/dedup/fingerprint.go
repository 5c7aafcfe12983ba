package dedup

// Polynomial hash parameters. Both operands of every multiplication stay
// below 2^31, so uint64 accumulation never overflows.
const (
	hashBase = 257
	hashMod  = 1_000_000_007
)

// Fingerprint computes a deterministic polynomial (Horner-scheme) hash over
// the full byte sequence of a chunk. It is a cheap exact-text grouping key:
// equal fingerprints make two chunks candidates for a similarity check,
// they do not by themselves make them duplicates.
func Fingerprint(text string) uint64 {
	var hash, pow uint64 = 0, 1
	for i := 0; i < len(text); i++ {
		hash = (hash + uint64(text[i])*pow) % hashMod
		pow = (pow * hashBase) % hashMod
	}
	return hash
}
