// Package compress provides the per-segment compression codecs named by
// the segment frame's compression byte (format.CompressionType).
//
// Only None (identity) and Omitted (empty payload) are implemented: the
// wire format defines a third
// scheme, UnalignedLZ, whose control flow was never finished upstream.
// GetCodec returns a codec for it that always fails, so a conforming
// reader rejects such segments with CompressionTypeUnknown rather than
// silently misinterpreting their bytes.
package compress

import (
	"github.com/nyxworks/tmf/errs"
	"github.com/nyxworks/tmf/format"
)

// Compressor compresses a segment payload before it is framed.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a segment payload from its on-wire bytes.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of a single compression scheme.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:        NoneCodec{},
	format.CompressionOmitted:     OmittedCodec{},
	format.CompressionUnalignedLZ: unalignedLZCodec{},
}

// GetCodec returns the Codec registered for the given compression type.
// Every tag defined by format.CompressionType resolves to a Codec value;
// for CompressionUnalignedLZ that codec always returns
// CompressionTypeUnknownError from both Compress and Decompress. Tags
// outside the defined range return CompressionTypeUnknownError directly.
func GetCodec(t format.CompressionType) (Codec, error) {
	if c, ok := builtinCodecs[t]; ok {
		return c, nil
	}

	return nil, &errs.CompressionTypeUnknownError{Type: byte(t)}
}
