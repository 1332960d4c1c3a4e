// Package tmf implements a lossy 3D mesh codec: a compact binary
// container plus bit-packed encoders/decoders for per-attribute
// payloads (vertex positions, normals, tangents, UVs, colors, triangle
// index streams, and user-defined custom attribute arrays).
//
// The codec trades exactness for size: every quantized attribute
// carries an explicit precision parameter, and the on-wire
// representation uses sub-byte (unaligned) fields. See Read, ReadOne,
// and Write for the container-level entry points, and Mesh for the
// in-memory record they produce and consume.
package tmf

import (
	"github.com/nyxworks/tmf/codec"
	"github.com/nyxworks/tmf/errs"
	"github.com/nyxworks/tmf/internal/hash"
)

// Mesh is a mapping from attribute kind to an optional owned array, plus
// an optional list of named custom segments. All arrays are exclusively
// owned by the Mesh; nil means the attribute is absent.
type Mesh struct {
	Vertices []codec.Vec3
	Normals  []codec.Vec3
	UVs      []codec.UV
	Tangents []codec.Tangent
	Colors   []codec.Color

	VertexTris  []uint64
	NormalTris  []uint64
	UVTris      []uint64
	TangentTris []uint64
	ColorTris   []uint64

	custom     []CustomData
	customHash map[uint64][]int // xxhash(name) -> indices into custom sharing that hash
}

// CustomDataKind identifies the payload shape of a CustomData segment.
type CustomDataKind uint8

const (
	CustomIndexData CustomDataKind = iota
	CustomFloatData
)

// CustomData is a named, user-defined attribute array multiplexed
// through the same framing as the built-in attributes (§4.9). Exactly
// one of Indices or Floats is populated, selected by Kind.
type CustomData struct {
	Name    string
	Kind    CustomDataKind
	Indices []uint64
	Floats  []float64
}

// AddCustomData attaches a named custom segment to the mesh. It fails
// with NameInvalid if name is empty or longer than 255 bytes, and with a
// DuplicateSegmentError if a custom segment with the same name already
// exists.
func (m *Mesh) AddCustomData(name string, data CustomData) error {
	if len(name) == 0 || len(name) > 255 {
		return errs.ErrNameInvalid
	}

	data.Name = name

	h := hash.ID(name)
	for _, idx := range m.customHash[h] {
		if m.custom[idx].Name == name {
			return &errs.DuplicateSegmentError{Kind: errs.SegmentKindCustom, Name: name}
		}
	}

	if m.customHash == nil {
		m.customHash = make(map[uint64][]int)
	}

	idx := len(m.custom)
	m.custom = append(m.custom, data)
	m.customHash[h] = append(m.customHash[h], idx)

	return nil
}

// LookupCustomData returns the custom segment registered under name, or
// ErrCustomDataNotFound if none exists.
func (m *Mesh) LookupCustomData(name string) (CustomData, error) {
	h := hash.ID(name)
	for _, idx := range m.customHash[h] {
		if m.custom[idx].Name == name {
			return m.custom[idx], nil
		}
	}

	return CustomData{}, errs.ErrCustomDataNotFound
}

// CustomDataNames returns the names of all custom segments, in the order
// they were added.
func (m *Mesh) CustomDataNames() []string {
	names := make([]string, len(m.custom))
	for i, c := range m.custom {
		names[i] = c.Name
	}

	return names
}
