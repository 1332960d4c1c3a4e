package codec

import (
	"math"

	"github.com/nyxworks/tmf/bitio"
	"github.com/nyxworks/tmf/endian"
	"github.com/nyxworks/tmf/errs"
	"github.com/nyxworks/tmf/section"
)

// Vec3 is a 3-component float32 tuple, used for vertex positions and
// (unit-length) normals and tangent directions.
type Vec3 struct {
	X, Y, Z float32
}

const vertexHeaderSize = 6*4 + 8 + 3 // six f32 bounds, u64 count, 3 precision bytes

// EncodeVertices packs a bounded-box-quantized vertex array.
//
// targetPrecision is PrecisionInfo.Vertex's raw per-axis tolerance;
// shortestEdge is the shortest triangulated edge length in the mesh (or
// 1.0 when the mesh has no triangles), which scales targetPrecision into
// the physical worst-case deviation bound §4.2 specifies.
func EncodeVertices(vertices []Vec3, targetPrecision, shortestEdge float64) ([]byte, error) {
	targetPrecision *= shortestEdge

	minX, maxX := boundsX(vertices)
	minY, maxY := boundsY(vertices)
	minZ, maxZ := boundsZ(vertices)

	px, err := bitsForSpan(float64(maxX-minX), targetPrecision, 63)
	if err != nil {
		return nil, err
	}

	py, err := bitsForSpan(float64(maxY-minY), targetPrecision, 63)
	if err != nil {
		return nil, err
	}

	pz, err := bitsForSpan(float64(maxZ-minZ), targetPrecision, 63)
	if err != nil {
		return nil, err
	}

	totalBits := uint64(len(vertices)) * uint64(px+py+pz)
	if totalBits/8 > section.MaxSegSize {
		return nil, errs.ErrSegmentTooLong
	}

	engine := endian.GetLittleEndianEngine()
	header := make([]byte, 0, vertexHeaderSize)
	header = engine.AppendUint32(header, math.Float32bits(minX))
	header = engine.AppendUint32(header, math.Float32bits(maxX))
	header = engine.AppendUint32(header, math.Float32bits(minY))
	header = engine.AppendUint32(header, math.Float32bits(maxY))
	header = engine.AppendUint32(header, math.Float32bits(minZ))
	header = engine.AppendUint32(header, math.Float32bits(maxZ))
	header = engine.AppendUint64(header, uint64(len(vertices)))
	header = append(header, byte(px), byte(py), byte(pz))

	w := bitio.NewWriterSize(len(vertices) * 4)
	for _, v := range vertices {
		if err := writeAxis(w, v.X, minX, maxX, px); err != nil {
			return nil, err
		}

		if err := writeAxis(w, v.Y, minY, maxY, py); err != nil {
			return nil, err
		}

		if err := writeAxis(w, v.Z, minZ, maxZ, pz); err != nil {
			return nil, err
		}
	}

	return append(header, w.Flush()...), nil
}

// DecodeVertices unpacks a vertex array previously produced by
// EncodeVertices.
func DecodeVertices(data []byte) ([]Vec3, error) {
	if len(data) < vertexHeaderSize {
		return nil, errs.ErrUnexpectedEnd
	}

	engine := endian.GetLittleEndianEngine()
	minX := math.Float32frombits(engine.Uint32(data[0:4]))
	maxX := math.Float32frombits(engine.Uint32(data[4:8]))
	minY := math.Float32frombits(engine.Uint32(data[8:12]))
	maxY := math.Float32frombits(engine.Uint32(data[12:16]))
	minZ := math.Float32frombits(engine.Uint32(data[16:20]))
	maxZ := math.Float32frombits(engine.Uint32(data[20:24]))
	count := engine.Uint64(data[24:32])
	px, py, pz := int(data[32]), int(data[33]), int(data[34])

	r := bitio.NewReader(data[vertexHeaderSize:])

	out := make([]Vec3, count)
	for i := range out {
		x, err := readAxis(r, minX, maxX, px)
		if err != nil {
			return nil, err
		}

		y, err := readAxis(r, minY, maxY, py)
		if err != nil {
			return nil, err
		}

		z, err := readAxis(r, minZ, maxZ, pz)
		if err != nil {
			return nil, err
		}

		out[i] = Vec3{X: x, Y: y, Z: z}
	}

	return out, nil
}

func writeAxis(w *bitio.Writer, v, min, max float32, p int) error {
	span := max - min
	var field uint64

	if span > 0 {
		field = uint64(math.Round(float64(v-min) / float64(span) * float64(maxUint(p))))
	}

	return w.WriteBits(p, field)
}

func readAxis(r *bitio.Reader, min, max float32, p int) (float32, error) {
	field, err := r.ReadBits(p)
	if err != nil {
		return 0, err
	}

	span := max - min
	if span <= 0 {
		return min, nil
	}

	return min + float32(float64(field)/float64(maxUint(p)))*span, nil
}

func boundsX(vs []Vec3) (min, max float32) {
	if len(vs) == 0 {
		return 0, 0
	}

	min, max = vs[0].X, vs[0].X
	for _, v := range vs[1:] {
		if v.X < min {
			min = v.X
		}

		if v.X > max {
			max = v.X
		}
	}

	return min, max
}

func boundsY(vs []Vec3) (min, max float32) {
	if len(vs) == 0 {
		return 0, 0
	}

	min, max = vs[0].Y, vs[0].Y
	for _, v := range vs[1:] {
		if v.Y < min {
			min = v.Y
		}

		if v.Y > max {
			max = v.Y
		}
	}

	return min, max
}

func boundsZ(vs []Vec3) (min, max float32) {
	if len(vs) == 0 {
		return 0, 0
	}

	min, max = vs[0].Z, vs[0].Z
	for _, v := range vs[1:] {
		if v.Z < min {
			min = v.Z
		}

		if v.Z > max {
			max = v.Z
		}
	}

	return min, max
}
