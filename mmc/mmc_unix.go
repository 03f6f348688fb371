//go:build unix

package mmc

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// mmapWords obtains an n-word, page-aligned anonymous mapping.
func mmapWords(n int) ([]uint64, error) {
	buf, err := unix.Mmap(-1, 0, n*8, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*uint64)(unsafe.Pointer(&buf[0])), n), nil
}

func releaseMmap(b []uint64) {
	if len(b) == 0 {
		return
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&b[0])), len(b)*8)
	_ = unix.Munmap(buf)
}
