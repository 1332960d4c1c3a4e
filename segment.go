package tmf

import (
	"github.com/nyxworks/tmf/codec"
	"github.com/nyxworks/tmf/errs"
	"github.com/nyxworks/tmf/format"
	"github.com/nyxworks/tmf/internal/collision"
	"github.com/nyxworks/tmf/internal/hash"
)

// decodedSegment is the in-memory tagged variant a decode task produces:
// the attribute it targets plus its own decoded payload. Unknown segment
// types decode to a nil-value decodedSegment that apply simply ignores,
// mirroring the "ignore variant" called for by the tagged-dispatch model.
type decodedSegment struct {
	typ  format.SegmentType
	name string // populated for custom segments

	vec3s   []codec.Vec3
	uvs     []codec.UV
	tangent []codec.Tangent
	colors  []codec.Color
	indices []uint64
	floats  []float64
}

// decodeSegmentPayload dispatches on typ to the matching codec decoder.
// withMinField must reflect the file's Regime.HasMinIndex().
func decodeSegmentPayload(typ format.SegmentType, payload []byte, withMinField bool) (decodedSegment, error) {
	switch typ {
	case format.SegmentVertex:
		v, err := codec.DecodeVertices(payload)
		return decodedSegment{typ: typ, vec3s: v}, err
	case format.SegmentNormal:
		v, err := codec.DecodeNormals(payload)
		return decodedSegment{typ: typ, vec3s: v}, err
	case format.SegmentUV:
		v, err := codec.DecodeUVs(payload)
		return decodedSegment{typ: typ, uvs: v}, err
	case format.SegmentTangent:
		v, err := codec.DecodeTangents(payload)
		return decodedSegment{typ: typ, tangent: v}, err
	case format.SegmentColor:
		v, err := codec.DecodeColors(payload)
		return decodedSegment{typ: typ, colors: v}, err
	case format.SegmentVertexTriangle, format.SegmentNormalTriangle, format.SegmentUVTriangle,
		format.SegmentTangentTriangle, format.SegmentColorTriangle:
		v, err := codec.DecodeIndices(payload, withMinField)
		return decodedSegment{typ: typ, indices: v}, err
	case format.SegmentCustomIndex:
		name, rest, err := splitCustomName(payload)
		if err != nil {
			return decodedSegment{}, err
		}

		v, err := codec.DecodeIndices(rest, withMinField)

		return decodedSegment{typ: typ, name: name, indices: v}, err
	case format.SegmentCustomFloat:
		name, rest, err := splitCustomName(payload)
		if err != nil {
			return decodedSegment{}, err
		}

		v, err := codec.DecodeFloatArray(rest)

		return decodedSegment{typ: typ, name: name, floats: v}, err
	default:
		return decodedSegment{typ: typ}, nil
	}
}

// splitCustomName peels the name_length(u8) | name_bytes prefix off a
// custom segment's payload (§4.9).
func splitCustomName(payload []byte) (string, []byte, error) {
	if len(payload) < 1 {
		return "", nil, errs.ErrUnexpectedEnd
	}

	nameLen := int(payload[0])
	if nameLen == 0 {
		return "", nil, errs.ErrNameInvalid
	}

	if len(payload) < 1+nameLen {
		return "", nil, errs.ErrUnexpectedEnd
	}

	return string(payload[1 : 1+nameLen]), payload[1+nameLen:], nil
}

// apply merges a decoded segment into mesh, in on-wire arrival order.
// Attribute-array kinds are true singletons: a second occurrence is
// rejected via tracker as a DuplicateSegmentError. Triangle-index kinds
// instead append across repeated occurrences, since the split optimizer
// (§4.7) may legitimately emit the same kind as several consecutive
// segments.
func (s decodedSegment) apply(mesh *Mesh, tracker *collision.Tracker) error {
	switch s.typ {
	case format.SegmentVertex:
		if err := tracker.TrackKind(errs.SegmentKindVertex); err != nil {
			return err
		}

		mesh.Vertices = s.vec3s
	case format.SegmentNormal:
		if err := tracker.TrackKind(errs.SegmentKindNormal); err != nil {
			return err
		}

		mesh.Normals = s.vec3s
	case format.SegmentUV:
		if err := tracker.TrackKind(errs.SegmentKindUV); err != nil {
			return err
		}

		mesh.UVs = s.uvs
	case format.SegmentTangent:
		if err := tracker.TrackKind(errs.SegmentKindTangent); err != nil {
			return err
		}

		mesh.Tangents = s.tangent
	case format.SegmentColor:
		if err := tracker.TrackKind(errs.SegmentKindColor); err != nil {
			return err
		}

		mesh.Colors = s.colors
	case format.SegmentVertexTriangle:
		mesh.VertexTris = append(mesh.VertexTris, s.indices...)
	case format.SegmentNormalTriangle:
		mesh.NormalTris = append(mesh.NormalTris, s.indices...)
	case format.SegmentUVTriangle:
		mesh.UVTris = append(mesh.UVTris, s.indices...)
	case format.SegmentTangentTriangle:
		mesh.TangentTris = append(mesh.TangentTris, s.indices...)
	case format.SegmentColorTriangle:
		mesh.ColorTris = append(mesh.ColorTris, s.indices...)
	case format.SegmentCustomIndex:
		if err := tracker.TrackName(s.name, hash.ID(s.name)); err != nil {
			return err
		}

		return mesh.AddCustomData(s.name, CustomData{Kind: CustomIndexData, Indices: s.indices})
	case format.SegmentCustomFloat:
		if err := tracker.TrackName(s.name, hash.ID(s.name)); err != nil {
			return err
		}

		return mesh.AddCustomData(s.name, CustomData{Kind: CustomFloatData, Floats: s.floats})
	default:
		// unknown type: ignore variant, nothing to apply
	}

	return nil
}
