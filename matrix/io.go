// io.go implements the persisted matrix file format (spec ??6): a fixed
// header followed by each row's bits packed MSB-first into bytes, padded
// to a byte boundary per row.
package matrix

import (
	"bufio"
	"encoding/binary"
	"io"
)

var fileMagic = [4]byte{'G', 'F', '2', 'M'}

const fileVersion = 1

// WriteTo serializes m in the package's binary format: a 4-byte magic, a
// 1-byte version, two 8-byte big-endian dimensions, then each row's bits
// packed MSB-first into ceil(ncols/8) bytes.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64

	n, err := bw.Write(fileMagic[:])
	written += int64(n)
	if err != nil {
		return written, err
	}
	if err := bw.WriteByte(fileVersion); err != nil {
		return written, err
	}
	written++

	var hdr [16]byte
	binary.BigEndian.PutUint64(hdr[0:8], uint64(m.nrows))
	binary.BigEndian.PutUint64(hdr[8:16], uint64(m.ncols))
	n, err = bw.Write(hdr[:])
	written += int64(n)
	if err != nil {
		return written, err
	}

	rowBytes := (m.ncols + 7) / 8
	buf := make([]byte, rowBytes)
	for i := 0; i < m.nrows; i++ {
		for k := range buf {
			buf[k] = 0
		}
		for j := 0; j < m.ncols; j++ {
			b, err := m.GetCellBit(i, j)
			if err != nil {
				return written, err
			}
			if b != 0 {
				buf[j/8] |= 1 << uint(7-j%8)
			}
		}
		n, err := bw.Write(buf)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, bw.Flush()
}

// ReadMatrix deserializes a Matrix previously written by WriteTo.
func ReadMatrix(r io.Reader) (*Matrix, error) {
	br := bufio.NewReader(r)

	var magic [4]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, err
	}
	if magic != fileMagic {
		return nil, ErrBadMagic
	}
	version, err := br.ReadByte()
	if err != nil {
		return nil, err
	}
	if version != fileVersion {
		return nil, ErrUnsupportedVersion
	}

	var hdr [16]byte
	if _, err := io.ReadFull(br, hdr[:]); err != nil {
		return nil, err
	}
	rows := int(binary.BigEndian.Uint64(hdr[0:8]))
	cols := int(binary.BigEndian.Uint64(hdr[8:16]))

	m, err := NewMatrix(rows, cols)
	if err != nil {
		return nil, err
	}

	rowBytes := (cols + 7) / 8
	buf := make([]byte, rowBytes)
	for i := 0; i < rows; i++ {
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, err
		}
		for j := 0; j < cols; j++ {
			if buf[j/8]&(1<<uint(7-j%8)) != 0 {
				if err := m.SetCellBit(i, j, 1); err != nil {
					return nil, err
				}
			}
		}
	}
	return m, nil
}
