// Package matrix: the packed dense matrix type.
//
// What & Why:
//
//	Matrix stores an m×n matrix over GF(2) as one contiguous []uint64 block
//	per owning matrix, rows packed 64 columns to a word. A window reuses its
//	parent's block and row index with a narrowed shape and a (possibly
//	nonzero) column offset rather than copying storage — see section 6 of
//	SPEC_FULL.md. Bits outside [offset, offset+ncols) in a row's first and
//	last word are don't-care: every routine in this package either ignores
//	them under the documented masks or re-establishes the convention, never
//	assumes them zero.
//
// Complexity:
//
//	NewMatrix: O(rows*width) to zero-fill.
//	NewWindow: O(1).
//	Copy: O(rows*ncols) bits copied.
//	GetCellBit/SetCellBit: O(1).
package matrix

import (
	"sync/atomic"

	"github.com/galoisdense/gf2ri/mmc"
)

// flags records fast-path and ownership facts about a Matrix (spec ??3's
// "flags byte").
type flags uint8

const (
	flagWindowed flags = 1 << iota
	flagOwnsStorage
	flagZeroOffset
	flagFreed
)

// Matrix is a dense m×n matrix over GF(2), rows stored as contiguous runs
// of 64-bit words.
type Matrix struct {
	nrows, ncols int
	offset       int // column offset of column 0 within its word, in [0,64)
	width        int // words needed to hold [offset, offset+ncols)
	rowstride    int // words between the starts of consecutive rows

	blocks []uint64 // backing storage; shared with parent for windows
	rowIdx []int    // start word of each row within blocks

	flags flags

	// owner is nil for a matrix that owns its storage, and points at the
	// root owning Matrix for a window (possibly a window of a window).
	// liveWindows is only meaningful on the owner and is only ever touched
	// via atomic ops so that disjoint windows of the same parent can be
	// freed concurrently (spec ??5).
	owner       *Matrix
	liveWindows int32
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// NewMatrix allocates a zero-filled rows×cols owning Matrix.
// Stage 1 (Validate): rows, cols must be positive.
// Stage 2 (Prepare): compute width/rowstride and obtain a zeroed block from mmc.
// Stage 3 (Finalize): build the per-row index and return the owning Matrix.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	width := ceilDiv(cols, WordBits)
	rowstride := width

	blocks := mmc.Get(rows * rowstride)
	for i := range blocks {
		blocks[i] = 0
	}

	rowIdx := make([]int, rows)
	for i := range rowIdx {
		rowIdx[i] = i * rowstride
	}

	return &Matrix{
		nrows:     rows,
		ncols:     cols,
		offset:    0,
		width:     width,
		rowstride: rowstride,
		blocks:    blocks,
		rowIdx:    rowIdx,
		flags:     flagOwnsStorage | flagZeroOffset,
	}, nil
}

// NewWindow returns a non-owning window into parent covering
// [rowOff, rowOff+nrows) × [colOff, colOff+ncols). The parent must outlive
// the window (spec ??3 "Window"). Disjoint windows of the same parent may
// be mutated concurrently; overlapping windows may not.
func NewWindow(parent *Matrix, rowOff, colOff, nrows, ncols int) (*Matrix, error) {
	if parent == nil {
		return nil, ErrNilMatrix
	}
	if parent.flags&flagFreed != 0 {
		return nil, ErrAlreadyFreed
	}
	if rowOff < 0 || colOff < 0 || nrows < 0 || ncols < 0 ||
		rowOff+nrows > parent.nrows || colOff+ncols > parent.ncols {
		return nil, ErrOutOfRange
	}

	newOffset := (parent.offset + colOff) % WordBits
	wordShift := (parent.offset + colOff) / WordBits
	width := ceilDiv(newOffset+ncols, WordBits)
	if ncols == 0 {
		width = 0
	}

	rowIdx := make([]int, nrows)
	for i := range rowIdx {
		rowIdx[i] = parent.rowIdx[rowOff+i] + wordShift
	}

	owner := parent
	if parent.owner != nil {
		owner = parent.owner
	}
	atomic.AddInt32(&owner.liveWindows, 1)

	w := &Matrix{
		nrows:     nrows,
		ncols:     ncols,
		offset:    newOffset,
		width:     width,
		rowstride: parent.rowstride,
		blocks:    parent.blocks,
		rowIdx:    rowIdx,
		flags:     flagWindowed,
		owner:     owner,
	}
	if newOffset == 0 {
		w.flags |= flagZeroOffset
	}
	return w, nil
}

// Copy returns a deep, offset-0 clone of m: an owning Matrix whose bit
// content is identical to m's but independent of any window aliasing.
func (m *Matrix) Copy() (*Matrix, error) {
	cp, err := NewMatrix(m.nrows, m.ncols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.nrows; i++ {
		n := m.ncols
		col := 0
		for n > 0 {
			chunk := n
			if chunk > WordBits {
				chunk = WordBits
			}
			bits, rerr := ReadBits(m, i, col, chunk)
			if rerr != nil {
				return nil, rerr
			}
			if werr := WriteBits(cp, i, col, chunk, bits); werr != nil {
				return nil, werr
			}
			col += chunk
			n -= chunk
		}
	}
	return cp, nil
}

// Free releases m. Freeing a window only releases the header and
// decrements its owner's live-window count; freeing an owning matrix
// requires that all windows on it have already been freed (spec ??4.9).
func (m *Matrix) Free() error {
	if m == nil {
		return nil
	}
	if m.flags&flagFreed != 0 {
		return nil
	}
	if m.flags&flagWindowed != 0 {
		atomic.AddInt32(&m.owner.liveWindows, -1)
		m.flags |= flagFreed
		m.blocks = nil
		return nil
	}
	if atomic.LoadInt32(&m.liveWindows) > 0 {
		return ErrOwnedHasLiveWindows
	}
	mmc.Put(m.blocks)
	m.flags |= flagFreed
	m.blocks = nil
	return nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.nrows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.ncols }

// Offset returns the matrix's column offset within its first word.
func (m *Matrix) Offset() int { return m.offset }

// Width returns the number of words needed per row.
func (m *Matrix) Width() int { return m.width }

// RowStride returns the number of words between consecutive row starts.
func (m *Matrix) RowStride() int { return m.rowstride }

// IsWindow reports whether m is a non-owning window.
func (m *Matrix) IsWindow() bool { return m.flags&flagWindowed != 0 }

// ZeroOffset reports whether m's column offset is zero, enabling the
// aligned fast paths in the row combiner and transpose.
func (m *Matrix) ZeroOffset() bool { return m.flags&flagZeroOffset != 0 }

// firstWordMask is the mask of valid bits in a row's first word.
func (m *Matrix) firstWordMask() uint64 { return RightMask(WordBits - m.offset) }

// lastWordMask is the mask of valid bits in a row's last word.
func (m *Matrix) lastWordMask() uint64 { return LeftMask((m.offset + m.ncols) % WordBits) }

// singleWordMask is the mask to use when width == 1.
func (m *Matrix) singleWordMask() uint64 { return MiddleMask(m.ncols, m.offset) }

// rowWords returns the slice of m.width words backing row i.
func (m *Matrix) rowWords(i int) []uint64 {
	start := m.rowIdx[i]
	return m.blocks[start : start+m.width]
}

// GetCellBit returns the value of column j of row i as 0 or 1.
func (m *Matrix) GetCellBit(i, j int) (uint64, error) {
	if i < 0 || i >= m.nrows || j < 0 || j >= m.ncols {
		return 0, ErrOutOfRange
	}
	col := m.offset + j
	w := m.blocks[m.rowIdx[i]+col/WordBits]
	return GetBit(w, uint(col%WordBits)), nil
}

// SetCellBit sets column j of row i to v (0 or 1).
func (m *Matrix) SetCellBit(i, j int, v uint64) error {
	if i < 0 || i >= m.nrows || j < 0 || j >= m.ncols {
		return ErrOutOfRange
	}
	col := m.offset + j
	idx := m.rowIdx[i] + col/WordBits
	m.blocks[idx] = WriteBit(m.blocks[idx], uint(col%WordBits), v)
	return nil
}

// FlipCellBit toggles column j of row i.
func (m *Matrix) FlipCellBit(i, j int) error {
	if i < 0 || i >= m.nrows || j < 0 || j >= m.ncols {
		return ErrOutOfRange
	}
	col := m.offset + j
	idx := m.rowIdx[i] + col/WordBits
	m.blocks[idx] = FlipBit(m.blocks[idx], uint(col%WordBits))
	return nil
}
