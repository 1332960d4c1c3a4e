package bitio_test

import (
	"testing"

	"github.com/nyxworks/tmf/bitio"
	"github.com/stretchr/testify/require"
)

func TestWriter_NibbleSequence(t *testing.T) {
	w := bitio.NewWriter()
	for i := 1; i <= 0x10; i++ {
		v := i % 0x10
		require.NoError(t, w.WriteBits(4, uint64(v)))
	}

	want := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0}
	require.Equal(t, want, w.Flush())
}

func Test12BitFields(t *testing.T) {
	values := []uint64{0x000, 0xFFF, 0xF0F, 0xABC, 0x1A5, 0x854, 0x485, 0x564}

	w := bitio.NewWriter()
	for _, v := range values {
		require.NoError(t, w.WriteBits(12, v))
	}

	want := []byte{0x00, 0x0F, 0xFF, 0xF0, 0xFA, 0xBC, 0x1A, 0x58, 0x54, 0x48, 0x55, 0x64}
	require.Equal(t, want, w.Flush())

	r := bitio.NewReader(w.Flush())
	for _, want := range values {
		got, err := r.ReadBits(12)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestRoundTrip_MixedWidths(t *testing.T) {
	type field struct {
		n int
		v uint64
	}

	fields := []field{
		{3, 5}, {7, 100}, {1, 1}, {24, 0xABCDEF}, {64, 0xFFFFFFFFFFFFFFFF},
		{5, 0}, {9, 300},
	}

	w := bitio.NewWriter()
	for _, f := range fields {
		require.NoError(t, w.WriteBits(f.n, f.v))
	}

	data := w.Flush()

	r := bitio.NewReader(data)
	for _, f := range fields {
		got, err := r.ReadBits(f.n)
		require.NoError(t, err)
		require.Equal(t, f.v, got)
	}
}

func Test3BitAligned(t *testing.T) {
	// 000 001 010 011 100 101 110 111, packed MSB-first into 3 bytes.
	want := []byte{0b00000101, 0b00111001, 0b01110111}

	w := bitio.NewWriter()
	for i := 0; i < 8; i++ {
		require.NoError(t, w.WriteBits(3, uint64(i)))
	}

	require.Equal(t, want, w.Flush())

	r := bitio.NewReader(want)
	for i := 0; i < 8; i++ {
		got, err := r.ReadBits(3)
		require.NoError(t, err)
		require.Equal(t, uint64(i), got)
	}
}

func TestReadBits_UnexpectedEnd(t *testing.T) {
	r := bitio.NewReader([]byte{0xFF})
	_, err := r.ReadBits(4)
	require.NoError(t, err)
	_, err = r.ReadBits(8)
	require.Error(t, err)
}

func TestWriteBits_InvalidWidth(t *testing.T) {
	w := bitio.NewWriter()
	require.Error(t, w.WriteBits(0, 0))
	require.Error(t, w.WriteBits(65, 0))
}

func TestWriteBits_ValueOverflow(t *testing.T) {
	w := bitio.NewWriter()
	require.Error(t, w.WriteBits(4, 16))
}

func TestWriteBit_ReadBit(t *testing.T) {
	w := bitio.NewWriter()
	bits := []bool{true, false, false, true, true, true, false, false}
	for _, b := range bits {
		require.NoError(t, w.WriteBit(b))
	}

	r := bitio.NewReader(w.Flush())
	for _, want := range bits {
		got, err := r.ReadBit()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}
