// Package gray builds the reflected-binary Gray-code tables the M4RM and
// M4RI kernels walk to build their 2^k row-combination tables in O(1)
// amortized XORs per entry (spec ??3/??4.4/??4.7).
//
// Tables are built once per k and cached; after the first build for a
// given k, reads are safe from any number of goroutines without further
// synchronization (spec ??5 "Gray-code tables: built once, read-only
// thereafter; safe to share").
package gray

import (
	"math/bits"
	"sync"
)

// MaxKay is the largest k this package will build a table for. M4RM/M4RI
// never benefit from k beyond this in practice: the table has 2^k rows and
// must fit comfortably in cache.
const MaxKay = 10

// Table holds, for a given k, the Gray-code sequence Ord (Ord[i] is the
// i-th codeword) and the increment sequence Inc (Inc[i] is the bit index
// that flips going from codeword i to codeword i+1).
type Table struct {
	K   int
	Ord []uint32
	Inc []uint32
}

var (
	mu    sync.Mutex
	once  [MaxKay + 1]sync.Once
	cache [MaxKay + 1]*Table
)

// Build returns the Gray-code table for k, building it on first use and
// reusing it thereafter. Panics if k is outside [1, MaxKay]: an
// out-of-range k is a programmer error in the caller (spec ??4.10
// "precondition violation... undefined"), not a recoverable condition.
func Build(k int) *Table {
	if k < 1 || k > MaxKay {
		panic("gray: k out of range [1, MaxKay]")
	}
	once[k].Do(func() {
		mu.Lock()
		defer mu.Unlock()
		cache[k] = build(k)
	})
	return cache[k]
}

// build constructs the standard reflected binary Gray code of 2^k entries
// and the companion increment table: Inc[i] is the single bit position
// that differs between Ord[i] and Ord[i+1] (and, by convention, between
// Ord[2^k-1] and Ord[0] — the sequence is cyclic).
func build(k int) *Table {
	n := 1 << uint(k)
	ord := make([]uint32, n)
	inc := make([]uint32, n)

	for i := 0; i < n; i++ {
		ord[i] = uint32(i) ^ uint32(i>>1)
	}
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		inc[i] = uint32(bits.TrailingZeros32(ord[i] ^ ord[next]))
	}

	return &Table{K: k, Ord: ord, Inc: inc}
}
