package wire

import (
	"bytes"
	"io"
	"math"
)

// View is a read-only window onto a font's binary data.
// Sub-views share the underlying array; nothing is ever copied.
type View []byte

// Len returns the number of bytes in v.
func (v View) Len() int {
	return len(v)
}

// Bytes returns v as a byte slice.
func (v View) Bytes() []byte {
	return v
}

// Reader returns an io.Reader over the bytes of v.
func (v View) Reader() io.Reader {
	return bytes.NewReader(v)
}

// Slice returns the sub-view [from:to], clamped to the bounds of v.
func (v View) Slice(from, to int) View {
	if from < 0 {
		from = 0
	}
	if to > len(v) {
		to = len(v)
	}
	if from >= to {
		return View{}
	}
	return v[from:to]
}

// Sub returns n bytes at the given offset, or ErrUnexpectedEOF if they are not
// all available.
func (v View) Sub(offset, n int) (View, error) {
	if offset < 0 || n < 0 {
		return nil, ErrInvalidData
	}
	end, err := checkedAdd(offset, n)
	if err != nil || end > len(v) {
		return nil, ErrUnexpectedEOF
	}
	return v[offset:end], nil
}

// From returns the bytes from offset to the end of v.
func (v View) From(offset int) (View, error) {
	if offset < 0 {
		return nil, ErrInvalidData
	}
	if offset > len(v) {
		return nil, ErrUnexpectedEOF
	}
	return v[offset:], nil
}

// U16 is convenience access to 16 bit data at byte index i. It returns 0 if
// i is out of bounds.
func (v View) U16(i int) uint16 {
	b, err := v.Sub(i, 2)
	if err != nil {
		return 0
	}
	return u16(b)
}

// U32 is convenience access to 32 bit data at byte index i. It returns 0 if
// i is out of bounds.
func (v View) U32(i int) uint32 {
	b, err := v.Sub(i, 4)
	if err != nil {
		return 0
	}
	return u32(b)
}

// need returns ErrUnexpectedEOF if v holds fewer than n bytes.
func (v View) need(n int) error {
	if len(v) < n {
		return ErrUnexpectedEOF
	}
	return nil
}

// --- Raw big-endian access -------------------------------------------------

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u24(b []byte) uint32 {
	_ = b[2]
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])<<0
}

func u32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}

func u64(b []byte) uint64 {
	_ = b[7]
	return uint64(u32(b[:4]))<<32 | uint64(u32(b[4:8]))
}

// --- Checked arithmetic ----------------------------------------------------

// checkedMul multiplies two non-negative integers, reporting overflow.
func checkedMul(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, ErrInvalidData
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > math.MaxInt/b {
		return 0, ErrInvalidData
	}
	return a * b, nil
}

// checkedAdd adds two non-negative integers, reporting overflow.
func checkedAdd(a, b int) (int, error) {
	if a < 0 || b < 0 || a > math.MaxInt-b {
		return 0, ErrInvalidData
	}
	return a + b, nil
}
