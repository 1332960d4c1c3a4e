package compress

import "github.com/nyxworks/tmf/errs"

// unalignedLZCodec stands in for the UnalignedLZ scheme named by
// compression byte 2. The scheme's control flow was never finished in
// the reference implementation it was ported from, so no conforming
// encoding exists to produce or consume. Both directions fail with
// CompressionTypeUnknownError until the format is specified.
type unalignedLZCodec struct{}

var _ Codec = unalignedLZCodec{}

func (unalignedLZCodec) Compress([]byte) ([]byte, error) {
	return nil, &errs.CompressionTypeUnknownError{Type: 2}
}

func (unalignedLZCodec) Decompress([]byte) ([]byte, error) {
	return nil, &errs.CompressionTypeUnknownError{Type: 2}
}
