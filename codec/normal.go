package codec

import (
	"math"

	"github.com/nyxworks/tmf/bitio"
	"github.com/nyxworks/tmf/endian"
	"github.com/nyxworks/tmf/errs"
)

const normalHeaderSize = 8 + 1 // count u64, precision u8

// EncodeNormals packs a unit-length normal array using three sign bits
// and two magnitude fields per normal (§4.3): z is reconstructed on
// decode from x and y via the unit-length constraint, so it is never
// stored.
func EncodeNormals(normals []Vec3, angularPrecision float64) ([]byte, error) {
	p, err := bitsForAngular(angularPrecision, 62)
	if err != nil {
		return nil, err
	}

	engine := endian.GetLittleEndianEngine()
	header := make([]byte, 0, normalHeaderSize)
	header = engine.AppendUint64(header, uint64(len(normals)))
	header = append(header, byte(p))

	w := bitio.NewWriterSize(len(normals) * 4)
	for _, n := range normals {
		if err := writeNormal(w, n, p); err != nil {
			return nil, err
		}
	}

	return append(header, w.Flush()...), nil
}

// DecodeNormals unpacks a normal array previously produced by
// EncodeNormals.
func DecodeNormals(data []byte) ([]Vec3, error) {
	if len(data) < normalHeaderSize {
		return nil, errs.ErrUnexpectedEnd
	}

	engine := endian.GetLittleEndianEngine()
	count := engine.Uint64(data[0:8])
	p := int(data[8])

	r := bitio.NewReader(data[normalHeaderSize:])

	out := make([]Vec3, count)
	for i := range out {
		n, err := readNormal(r, p)
		if err != nil {
			return nil, err
		}

		out[i] = n
	}

	return out, nil
}

// writeNormal writes the sign(x), |x|, sign(y), |y|, sign(z) fields for
// one normal, in that bit order.
func writeNormal(w *bitio.Writer, n Vec3, p int) error {
	if err := writeSignedMagnitude(w, n.X, p); err != nil {
		return err
	}

	if err := writeSignedMagnitude(w, n.Y, p); err != nil {
		return err
	}

	return w.WriteBit(n.Z < 0)
}

// readNormal reads the fields written by writeNormal and reconstructs z
// from the unit-length constraint.
func readNormal(r *bitio.Reader, p int) (Vec3, error) {
	x, err := readSignedMagnitude(r, p)
	if err != nil {
		return Vec3{}, err
	}

	y, err := readSignedMagnitude(r, p)
	if err != nil {
		return Vec3{}, err
	}

	zNeg, err := r.ReadBit()
	if err != nil {
		return Vec3{}, err
	}

	z2 := 1 - float64(x)*float64(x) - float64(y)*float64(y)
	if z2 < 0 {
		z2 = 0
	}

	z := float32(math.Sqrt(z2))
	if zNeg {
		z = -z
	}

	return Vec3{X: x, Y: y, Z: z}, nil
}

// writeSignedMagnitude writes sign(v) as one bit followed by |v|
// quantized to p bits.
func writeSignedMagnitude(w *bitio.Writer, v float32, p int) error {
	if err := w.WriteBit(v < 0); err != nil {
		return err
	}

	mag := math.Abs(float64(v))
	field := uint64(math.Round(mag * float64(maxUint(p))))

	return w.WriteBits(p, field)
}

// readSignedMagnitude inverts writeSignedMagnitude.
func readSignedMagnitude(r *bitio.Reader, p int) (float32, error) {
	neg, err := r.ReadBit()
	if err != nil {
		return 0, err
	}

	field, err := r.ReadBits(p)
	if err != nil {
		return 0, err
	}

	mag := float32(float64(field) / float64(maxUint(p)))
	if neg {
		mag = -mag
	}

	return mag, nil
}
