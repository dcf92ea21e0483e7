// Package bloom provides a probabilistic URL set used as a fast negative
// check in front of exact membership lookups.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter is a Bloom filter over strings. A negative answer is definitive; a
// positive answer may be a false positive.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a Filter sized for n items at the given false positive
// rate. n is raised to 1 when zero.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{f: bloom.NewWithEstimates(n, fpRate)}
}

// Add inserts s.
func (f *Filter) Add(s string) {
	f.f.AddString(s)
}

// MayContain reports whether s may have been added. It never returns false
// for an added string.
func (f *Filter) MayContain(s string) bool {
	return f.f.TestString(s)
}

// TestAndAdd inserts s and reports whether it may have been present before.
func (f *Filter) TestAndAdd(s string) bool {
	return f.f.TestAndAddString(s)
}
