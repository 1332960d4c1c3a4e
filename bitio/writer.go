// Package bitio provides unaligned, MSB-first bit-level reading and
// writing over a byte stream. It is the foundation every attribute codec
// in this module builds on: headers are byte-aligned, but sample fields
// are packed at arbitrary bit widths with no padding between them.
//
// Bit order is a format-defining choice: within each byte, the first bit
// written is the most significant bit. This must never change without a
// version bump.
package bitio

import "github.com/nyxworks/tmf/errs"

// Writer accumulates unaligned bit fields into a contiguous byte buffer.
// The zero value is ready to use.
type Writer struct {
	buf   []byte
	cur   byte
	nbits uint // valid bits already placed in cur, counted from the MSB
}

// NewWriter creates a Writer with no pre-allocated capacity.
func NewWriter() *Writer {
	return &Writer{}
}

// NewWriterSize creates a Writer whose backing buffer starts with the
// given byte capacity, to avoid reallocation when the encoded size is
// known ahead of time.
func NewWriterSize(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

// WriteBits appends the low n bits of value to the stream, MSB-first.
// n must be in [1,64] and value must fit in n bits.
func (w *Writer) WriteBits(n int, value uint64) error {
	if n < 1 || n > 64 {
		return errs.ErrBitWidth
	}

	if n < 64 && value>>uint(n) != 0 {
		return errs.ErrValueOverflow
	}

	remaining := uint(n)
	for remaining > 0 {
		free := 8 - w.nbits
		take := remaining
		if take > free {
			take = free
		}

		shift := remaining - take
		mask := byte(1)<<take - 1
		chunk := byte(value>>shift) & mask
		w.cur |= chunk << (free - take)
		w.nbits += take
		remaining -= take

		if w.nbits == 8 {
			w.buf = append(w.buf, w.cur)
			w.cur = 0
			w.nbits = 0
		}
	}

	return nil
}

// WriteBit is the n=1 specialization of WriteBits.
func (w *Writer) WriteBit(b bool) error {
	if b {
		return w.WriteBits(1, 1)
	}

	return w.WriteBits(1, 0)
}

// Flush commits any buffered partial byte, zero-padded on the low end,
// and returns the full accumulated buffer. It is safe to keep writing
// after Flush; the next field starts a fresh byte.
func (w *Writer) Flush() []byte {
	if w.nbits > 0 {
		w.buf = append(w.buf, w.cur)
		w.cur = 0
		w.nbits = 0
	}

	return w.buf
}

// Len returns the number of whole bytes committed so far, not counting
// any buffered partial byte.
func (w *Writer) Len() int {
	return len(w.buf)
}
