package codec

import (
	"github.com/nyxworks/tmf/bitio"
	"github.com/nyxworks/tmf/endian"
	"github.com/nyxworks/tmf/errs"
)

// Tangent is a unit-length tangent direction plus the handedness sign
// used to reconstruct the bitangent (bitangent = cross(normal, Dir) *
// Handedness).
type Tangent struct {
	Dir        Vec3
	Handedness float32 // +1 or -1
}

// EncodeTangents packs a tangent array: the normal codec's bit layout
// plus one leading handedness bit per tangent (§4.3).
func EncodeTangents(tangents []Tangent, angularPrecision float64) ([]byte, error) {
	p, err := bitsForAngular(angularPrecision, 62)
	if err != nil {
		return nil, err
	}

	engine := endian.GetLittleEndianEngine()
	header := make([]byte, 0, normalHeaderSize)
	header = engine.AppendUint64(header, uint64(len(tangents)))
	header = append(header, byte(p))

	w := bitio.NewWriterSize(len(tangents) * 4)
	for _, tg := range tangents {
		if err := w.WriteBit(tg.Handedness < 0); err != nil {
			return nil, err
		}

		if err := writeNormal(w, tg.Dir, p); err != nil {
			return nil, err
		}
	}

	return append(header, w.Flush()...), nil
}

// DecodeTangents unpacks a tangent array previously produced by
// EncodeTangents.
func DecodeTangents(data []byte) ([]Tangent, error) {
	if len(data) < normalHeaderSize {
		return nil, errs.ErrUnexpectedEnd
	}

	engine := endian.GetLittleEndianEngine()
	count := engine.Uint64(data[0:8])
	p := int(data[8])

	r := bitio.NewReader(data[normalHeaderSize:])

	out := make([]Tangent, count)
	for i := range out {
		negHanded, err := r.ReadBit()
		if err != nil {
			return nil, err
		}

		dir, err := readNormal(r, p)
		if err != nil {
			return nil, err
		}

		handedness := float32(1)
		if negHanded {
			handedness = -1
		}

		out[i] = Tangent{Dir: dir, Handedness: handedness}
	}

	return out, nil
}
