package codec

import (
	"math"

	"github.com/nyxworks/tmf/bitio"
	"github.com/nyxworks/tmf/endian"
	"github.com/nyxworks/tmf/errs"
)

// UV is a 2D texture coordinate with components in [0,1].
type UV struct {
	U, V float32
}

const uvHeaderSize = 8 + 1 // count u64, precision u8

// EncodeUVs packs a UV coordinate array (§4.4).
func EncodeUVs(uvs []UV, targetPrecision float64) ([]byte, error) {
	p, err := bitsForSpan(1, targetPrecision, 63)
	if err != nil {
		return nil, err
	}

	engine := endian.GetLittleEndianEngine()
	header := make([]byte, 0, uvHeaderSize)
	header = engine.AppendUint64(header, uint64(len(uvs)))
	header = append(header, byte(p))

	w := bitio.NewWriterSize(len(uvs) * 3)
	scale := float64(maxUint(p))

	for _, c := range uvs {
		if err := w.WriteBits(p, uint64(math.Round(float64(c.U)*scale))); err != nil {
			return nil, err
		}

		if err := w.WriteBits(p, uint64(math.Round(float64(c.V)*scale))); err != nil {
			return nil, err
		}
	}

	return append(header, w.Flush()...), nil
}

// DecodeUVs unpacks a UV array previously produced by EncodeUVs.
func DecodeUVs(data []byte) ([]UV, error) {
	if len(data) < uvHeaderSize {
		return nil, errs.ErrUnexpectedEnd
	}

	engine := endian.GetLittleEndianEngine()
	count := engine.Uint64(data[0:8])
	p := int(data[8])

	r := bitio.NewReader(data[uvHeaderSize:])
	scale := float64(maxUint(p))

	out := make([]UV, count)
	for i := range out {
		u, err := r.ReadBits(p)
		if err != nil {
			return nil, err
		}

		v, err := r.ReadBits(p)
		if err != nil {
			return nil, err
		}

		out[i] = UV{U: float32(float64(u) / scale), V: float32(float64(v) / scale)}
	}

	return out, nil
}
