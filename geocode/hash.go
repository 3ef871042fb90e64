package geocode

// FNV-1a over UTF-8 bytes. Used for synthetic coordinates and node depth
// so the values are reproducible across runs and implementations.
const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// Hash64 returns the FNV-1a 64-bit hash of s.
func Hash64(s string) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime64
	}
	return h
}

// MapToRange maps a hash onto [lo, hi) with 53 bits of precision.
func MapToRange(h uint64, lo, hi float64) float64 {
	frac := float64(h>>11) / float64(uint64(1)<<53)
	return lo + (hi-lo)*frac
}
