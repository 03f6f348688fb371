// Package mmc implements the engine's memory cache: a small, mutex-protected
// free-list of large aligned word blocks, keyed by size, so that the
// Strassen and M4RM/PLE recursions can reuse table and scratch-block
// allocations instead of churning the heap on every recursive call (spec
// ??3 "Memory cache (MMC)", ??9 "Global allocator cache").
//
// Not required for correctness — Get always returns a valid, zeroed block
// even on a cache miss — but load-bearing for performance once recursion
// depth grows.
package mmc

import (
	"sync"
)

// slotCount bounds the cache at a handful of recently-freed sizes; this
// mirrors the spec's "fixed small set of slots" rather than an unbounded
// pool, so memory given back to the cache cannot grow without limit.
const slotCount = 8

// largeThresholdWords is the block size, in words, above which Put/Get use
// an mmap-backed anonymous mapping instead of a plain Go slice. mmap
// guarantees page alignment (far more than the 16-byte minimum spec ??3
// requires for SIMD use) and lets large blocks be returned to the OS
// individually instead of waiting on GC.
const largeThresholdWords = 1 << 15 // 256 KiB of uint64s

type slot struct {
	words int
	block []uint64
	mmap  bool
}

var (
	mu    sync.Mutex
	slots [slotCount]slot
)

// Get returns a zeroed block of at least n words, reusing a cached block of
// exactly that size when one is available.
func Get(n int) []uint64 {
	if n <= 0 {
		return nil
	}

	mu.Lock()
	for i := range slots {
		if slots[i].block != nil && slots[i].words == n {
			b := slots[i].block
			slots[i].block = nil
			mu.Unlock()
			for i := range b {
				b[i] = 0
			}
			return b
		}
	}
	mu.Unlock()

	return alloc(n)
}

// Put returns a block previously obtained from Get (or sized identically)
// to the cache for reuse. It is safe to call Put with a block not obtained
// from Get. When every slot is taken, the block in slot 0 is evicted (and
// released to the OS if it was mmap-backed) and b takes its place.
func Put(b []uint64) {
	if len(b) == 0 {
		return
	}
	n := cap(b)
	mu.Lock()
	defer mu.Unlock()
	for i := range slots {
		if slots[i].block == nil {
			slots[i] = slot{words: n, block: b[:n], mmap: n >= largeThresholdWords}
			return
		}
	}
	// No free slot: evict slot 0 (simple LRU-ish eviction, spec ??3 "on
	// free, if a slot is empty or evictable, keep the block").
	evictLocked(0)
	slots[0] = slot{words: n, block: b[:n], mmap: n >= largeThresholdWords}
}

func evictLocked(i int) {
	if slots[i].block != nil && slots[i].mmap {
		releaseMmap(slots[i].block)
	}
	slots[i] = slot{}
}

// alloc allocates a fresh n-word block, 16-byte aligned at minimum. Blocks
// at or above largeThresholdWords are obtained via an anonymous mmap for
// page alignment and independent release; smaller blocks use a plain Go
// slice, which the runtime already aligns suitably for uint64 access.
func alloc(n int) []uint64 {
	if n < largeThresholdWords {
		return make([]uint64, n)
	}
	b, err := mmapWords(n)
	if err != nil {
		// Allocation failure for the backing allocator is fatal per spec
		// ??4.10; the MMC itself has no die hook of its own, so it falls
		// back to a plain allocation rather than dying — callers that
		// need OOM to be fatal install that behavior at the matrix-package
		// boundary, which is where user-visible allocation happens.
		return make([]uint64, n)
	}
	return b
}

