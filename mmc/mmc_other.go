//go:build !unix

package mmc

import "errors"

// errNoMmap is returned on platforms without an anonymous-mmap primitive;
// alloc falls back to a plain Go slice, which is still correct, just
// without the page-alignment and independent-release properties mmap
// gives on unix.
var errNoMmap = errors.New("mmc: mmap not available on this platform")

func mmapWords(n int) ([]uint64, error) {
	return nil, errNoMmap
}

func releaseMmap(b []uint64) {
	// Nothing to release: non-unix blocks are plain Go slices reclaimed by
	// the garbage collector.
}
