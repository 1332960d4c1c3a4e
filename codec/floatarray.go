package codec

import (
	"math"

	"github.com/nyxworks/tmf/bitio"
	"github.com/nyxworks/tmf/endian"
	"github.com/nyxworks/tmf/errs"
)

const floatArrayHeaderSize = 8 + 8 + 8 + 1 // count u64, min f64, max f64, precision u8

// EncodeFloatArray packs an arbitrary float64 array by linear
// quantization over its own observed range (§4.9's custom-float
// payload): count | min | max | p | packed p-bit samples, with
// reconstruction v = min + field/(2^p-1) * (max-min).
func EncodeFloatArray(values []float64, targetPrecision float64) ([]byte, error) {
	min, max := floatBounds(values)

	p, err := bitsForSpan(max-min, targetPrecision, 63)
	if err != nil {
		return nil, err
	}

	engine := endian.GetLittleEndianEngine()
	header := make([]byte, 0, floatArrayHeaderSize)
	header = engine.AppendUint64(header, uint64(len(values)))
	header = engine.AppendUint64(header, math.Float64bits(min))
	header = engine.AppendUint64(header, math.Float64bits(max))
	header = append(header, byte(p))

	w := bitio.NewWriterSize(len(values) * 2)
	span := max - min
	scale := float64(maxUint(p))

	for _, v := range values {
		var field uint64
		if span > 0 {
			field = uint64(math.Round((v - min) / span * scale))
		}

		if err := w.WriteBits(p, field); err != nil {
			return nil, err
		}
	}

	return append(header, w.Flush()...), nil
}

// DecodeFloatArray unpacks a float64 array previously produced by
// EncodeFloatArray.
func DecodeFloatArray(data []byte) ([]float64, error) {
	if len(data) < floatArrayHeaderSize {
		return nil, errs.ErrUnexpectedEnd
	}

	engine := endian.GetLittleEndianEngine()
	count := engine.Uint64(data[0:8])
	min := math.Float64frombits(engine.Uint64(data[8:16]))
	max := math.Float64frombits(engine.Uint64(data[16:24]))
	p := int(data[24])

	r := bitio.NewReader(data[floatArrayHeaderSize:])
	span := max - min
	scale := float64(maxUint(p))

	out := make([]float64, count)
	for i := range out {
		field, err := r.ReadBits(p)
		if err != nil {
			return nil, err
		}

		if span <= 0 {
			out[i] = min
			continue
		}

		out[i] = min + float64(field)/scale*span
	}

	return out, nil
}

func floatBounds(values []float64) (min, max float64) {
	if len(values) == 0 {
		return 0, 0
	}

	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}

		if v > max {
			max = v
		}
	}

	return min, max
}
