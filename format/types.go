// Package format defines the small wire-level enumerations shared by the
// section framing and codec layers: segment type tags and the
// per-segment compression byte.
package format

// SegmentType identifies the payload carried by a single on-wire segment.
type SegmentType uint8

// Segment type tags. 1-10 are the built-in attribute and triangle-index
// segments; 15-16 are the custom-data segments, kept numerically apart
// from the built-ins so new built-in kinds can be added without
// colliding with user data.
const (
	SegmentVertex          SegmentType = 1
	SegmentVertexTriangle  SegmentType = 2
	SegmentNormal          SegmentType = 3
	SegmentNormalTriangle  SegmentType = 4
	SegmentUV              SegmentType = 5
	SegmentUVTriangle      SegmentType = 6
	SegmentTangent         SegmentType = 7
	SegmentTangentTriangle SegmentType = 8
	SegmentColor           SegmentType = 9
	SegmentColorTriangle   SegmentType = 10
	SegmentCustomIndex     SegmentType = 15
	SegmentCustomFloat     SegmentType = 16
)

func (t SegmentType) String() string {
	switch t {
	case SegmentVertex:
		return "Vertex"
	case SegmentVertexTriangle:
		return "VertexTriangle"
	case SegmentNormal:
		return "Normal"
	case SegmentNormalTriangle:
		return "NormalTriangle"
	case SegmentUV:
		return "UV"
	case SegmentUVTriangle:
		return "UVTriangle"
	case SegmentTangent:
		return "Tangent"
	case SegmentTangentTriangle:
		return "TangentTriangle"
	case SegmentColor:
		return "Color"
	case SegmentColorTriangle:
		return "ColorTriangle"
	case SegmentCustomIndex:
		return "CustomIndex"
	case SegmentCustomFloat:
		return "CustomFloat"
	default:
		return "Unknown"
	}
}

// Known reports whether t is a segment type this reader understands. An
// unknown-but-well-formed segment is skipped rather than treated as an
// error (its declared length is consumed).
func (t SegmentType) Known() bool {
	switch t {
	case SegmentVertex, SegmentVertexTriangle, SegmentNormal, SegmentNormalTriangle,
		SegmentUV, SegmentUVTriangle, SegmentTangent, SegmentTangentTriangle,
		SegmentColor, SegmentColorTriangle, SegmentCustomIndex, SegmentCustomFloat:
		return true
	default:
		return false
	}
}

// CompressionType identifies the per-segment compression byte.
type CompressionType uint8

const (
	// CompressionNone stores the segment payload uncompressed.
	CompressionNone CompressionType = 0
	// CompressionOmitted marks a segment whose payload was intentionally
	// left empty (zero bytes on the wire).
	CompressionOmitted CompressionType = 1
	// CompressionUnalignedLZ names an LZ77-style scheme over unaligned bit
	// fields. The format is not yet specified; segments declaring it are
	// always rejected with CompressionTypeUnknown.
	CompressionUnalignedLZ CompressionType = 2
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionOmitted:
		return "Omitted"
	case CompressionUnalignedLZ:
		return "UnalignedLZ"
	default:
		return "Unknown"
	}
}
