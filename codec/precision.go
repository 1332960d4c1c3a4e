// Package codec implements the per-attribute quantization codecs: vertex
// positions, normals, tangents, UVs, colors, generic float arrays, and
// triangle/custom index streams. Every codec operates on a fully
// buffered in-memory array and produces or consumes a packed bit stream
// through bitio; none of them do I/O of their own.
package codec

import (
	"math"

	"github.com/nyxworks/tmf/errs"
)

// PrecisionInfo gives the encoder's target worst-case per-sample
// deviation for each attribute kind. Vertex precision is a length in
// model units; Normal and Tangent precision are angular tolerances in
// radians; UV and Color precision are fractions of their [0,1] range.
// These values drive bit-width selection; they are never stored
// verbatim in the file.
type PrecisionInfo struct {
	Vertex float64
	Normal float64
	Tangent float64
	UV     float64
	Color  float64
}

// DefaultPrecisionInfo mirrors the reference implementation's default:
// a vertex tolerance of one tenth of a model unit. EncodeVertices scales
// it by the mesh's shortest triangulated edge length at encode time.
func DefaultPrecisionInfo() PrecisionInfo {
	return PrecisionInfo{
		Vertex:  0.1,
		Normal:  0.01,
		Tangent: 0.01,
		UV:      1.0 / 4096,
		Color:   1.0 / 256,
	}
}

// bitsForSpan returns the bit precision needed to resolve a value range
// of the given span to within targetPrecision, clamped to [1, maxBits].
func bitsForSpan(span, targetPrecision float64, maxBits int) (int, error) {
	if targetPrecision <= 0 {
		return 0, &errs.InvalidPrecisionError{Precision: 0, Max: maxBits}
	}

	if span <= 0 {
		return 1, nil
	}

	p := int(math.Ceil(math.Log2(span / targetPrecision)))
	if p < 1 {
		p = 1
	}

	if p > maxBits {
		p = maxBits
	}

	return p, nil
}

// bitsForAngular returns the bit precision needed to resolve an angular
// quantity spanning [0, pi/2] to within angularPrecision radians,
// clamped to [1, maxBits].
func bitsForAngular(angularPrecision float64, maxBits int) (int, error) {
	return bitsForSpan(math.Pi/2, angularPrecision, maxBits)
}

// maxUint returns the maximum unsigned value representable in p bits.
func maxUint(p int) uint64 {
	if p >= 64 {
		return math.MaxUint64
	}

	return 1<<uint(p) - 1
}
