package codec

import (
	"math/bits"

	"github.com/nyxworks/tmf/bitio"
	"github.com/nyxworks/tmf/endian"
	"github.com/nyxworks/tmf/errs"
)

const indexHeaderSizeNoMin = 8 + 8  // count u64, max-delta u64
const indexHeaderSizeMin = 8 + 8 + 8 // count u64, min-index u64, max-delta u64

// EncodeIndices packs an index stream with per-segment minimum-index
// rebasing and minimum-bit-width packing (§4.5). It backs both the
// triangle-index segments and the custom-index payload, which are
// identical on the wire.
//
// withMinField selects whether the min-index field is written; it
// should match the file's Regime.HasMinIndex(). A writer always targets
// the current regime, so withMinField is normally true.
func EncodeIndices(indices []uint64, withMinField bool) ([]byte, error) {
	var min, maxDelta uint64

	if len(indices) > 0 {
		min = indices[0]
		max := indices[0]

		for _, v := range indices[1:] {
			if v < min {
				min = v
			}

			if v > max {
				max = v
			}
		}

		maxDelta = max - min
	}

	if !withMinField {
		min = 0

		for _, v := range indices {
			if v > maxDelta {
				maxDelta = v
			}
		}
	}

	p := precisionForDelta(maxDelta)
	if p > 63 {
		return nil, &errs.InvalidPrecisionError{Precision: p, Max: 63}
	}

	engine := endian.GetLittleEndianEngine()

	headerSize := indexHeaderSizeNoMin
	if withMinField {
		headerSize = indexHeaderSizeMin
	}

	header := make([]byte, 0, headerSize)
	header = engine.AppendUint64(header, uint64(len(indices)))

	if withMinField {
		header = engine.AppendUint64(header, min)
	}

	header = engine.AppendUint64(header, maxDelta)

	w := bitio.NewWriterSize(len(indices) * 4)
	for _, v := range indices {
		if err := w.WriteBits(p, v-min); err != nil {
			return nil, err
		}
	}

	return append(header, w.Flush()...), nil
}

// DecodeIndices unpacks an index stream previously produced by
// EncodeIndices. withMinField must match the value used at encode time
// (i.e. the file's Regime.HasMinIndex()); when false, min is assumed 0.
func DecodeIndices(data []byte, withMinField bool) ([]uint64, error) {
	engine := endian.GetLittleEndianEngine()

	var min uint64

	pos := 8
	if len(data) < pos {
		return nil, errs.ErrUnexpectedEnd
	}

	count := engine.Uint64(data[0:8])

	if withMinField {
		if len(data) < pos+8 {
			return nil, errs.ErrUnexpectedEnd
		}

		min = engine.Uint64(data[pos : pos+8])
		pos += 8
	}

	if len(data) < pos+8 {
		return nil, errs.ErrUnexpectedEnd
	}

	maxDelta := engine.Uint64(data[pos : pos+8])
	pos += 8

	p := precisionForDelta(maxDelta)

	r := bitio.NewReader(data[pos:])

	out := make([]uint64, count)
	for i := range out {
		field, err := r.ReadBits(p)
		if err != nil {
			return nil, err
		}

		out[i] = field + min
	}

	return out, nil
}

// precisionForDelta returns the minimum bit width p such that every
// value in [0, delta] fits in p bits: p = ceil(log2(delta+1)), clamped
// to a minimum of 1.
func precisionForDelta(delta uint64) int {
	p := bits.Len64(delta)
	if p < 1 {
		p = 1
	}

	return p
}
