// Package bloom drops repeated pages from crawl exports using a Bloom filter.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// DefaultFalsePositiveRate is the rate used by the page source.
const DefaultFalsePositiveRate = 0.001

// Filter remembers page URLs seen during one load. The Bloom filter answers
// for new URLs; a positive is confirmed against the exact set so a false
// positive never drops a distinct page.
// It is not safe for concurrent use.
type Filter struct {
	f     *bloom.BloomFilter
	exact map[string]struct{}
}

// NewFilter creates a filter sized for n expected pages with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f:     bloom.NewWithEstimates(n, fpRate),
		exact: make(map[string]struct{}, n),
	}
}

// Seen records url and reports whether it was recorded before.
func (f *Filter) Seen(url string) bool {
	if f.f.TestAndAddString(url) {
		if _, ok := f.exact[url]; ok {
			return true
		}
	}
	f.exact[url] = struct{}{}
	return false
}
