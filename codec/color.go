package codec

import (
	"math"

	"github.com/nyxworks/tmf/bitio"
	"github.com/nyxworks/tmf/endian"
	"github.com/nyxworks/tmf/errs"
)

// Color is an RGBA vertex color with components in [0,1].
type Color struct {
	R, G, B, A float32
}

const colorHeaderSize = 8 + 1 // count u64, precision u8

// EncodeColors packs an RGBA color array. It is the 4-channel
// generalization of the UV codec (§4.4): same header shape, one packed
// p-bit field per channel in R,G,B,A order.
func EncodeColors(colors []Color, targetPrecision float64) ([]byte, error) {
	p, err := bitsForSpan(1, targetPrecision, 63)
	if err != nil {
		return nil, err
	}

	engine := endian.GetLittleEndianEngine()
	header := make([]byte, 0, colorHeaderSize)
	header = engine.AppendUint64(header, uint64(len(colors)))
	header = append(header, byte(p))

	w := bitio.NewWriterSize(len(colors) * 4)
	scale := float64(maxUint(p))

	for _, c := range colors {
		for _, ch := range [4]float32{c.R, c.G, c.B, c.A} {
			if err := w.WriteBits(p, uint64(math.Round(float64(ch)*scale))); err != nil {
				return nil, err
			}
		}
	}

	return append(header, w.Flush()...), nil
}

// DecodeColors unpacks a color array previously produced by EncodeColors.
func DecodeColors(data []byte) ([]Color, error) {
	if len(data) < colorHeaderSize {
		return nil, errs.ErrUnexpectedEnd
	}

	engine := endian.GetLittleEndianEngine()
	count := engine.Uint64(data[0:8])
	p := int(data[8])

	r := bitio.NewReader(data[colorHeaderSize:])
	scale := float64(maxUint(p))

	out := make([]Color, count)
	for i := range out {
		var ch [4]float32

		for j := range ch {
			field, err := r.ReadBits(p)
			if err != nil {
				return nil, err
			}

			ch[j] = float32(float64(field) / scale)
		}

		out[i] = Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
	}

	return out, nil
}
