package tmf

import (
	"math"

	"github.com/nyxworks/tmf/errs"
)

const normalToleranceDefault = 1e-3

// Verify runs the mesh's integrity checks: paired arrays, index bounds
// per attribute kind, normal normalization tolerance, and UV range
// (advisory). Every check runs independently; failures are collected
// into a CompositeIntegrityError rather than short-circuiting on the
// first one (§4.10).
//
// Verify returns nil when the mesh is internally consistent, a single
// *errs.IntegrityError when exactly one check failed, or a
// *errs.CompositeIntegrityError when more than one did.
func (m *Mesh) Verify() error {
	var found []*errs.IntegrityError

	checks := []func() []*errs.IntegrityError{
		m.verifyPaired,
		m.verifyTriangleBounds,
		m.verifyNormals,
		m.verifyUVRange,
	}

	for _, check := range checks {
		found = append(found, check()...)
	}

	switch len(found) {
	case 0:
		return nil
	case 1:
		return found[0]
	default:
		return &errs.CompositeIntegrityError{Errors: found}
	}
}

func (m *Mesh) verifyPaired() []*errs.IntegrityError {
	var out []*errs.IntegrityError

	pairs := []struct {
		name     string
		trisLen  int
		arrayLen int
	}{
		{"vertex", len(m.VertexTris), len(m.Vertices)},
		{"normal", len(m.NormalTris), len(m.Normals)},
		{"uv", len(m.UVTris), len(m.UVs)},
		{"tangent", len(m.TangentTris), len(m.Tangents)},
		{"color", len(m.ColorTris), len(m.Colors)},
	}

	for _, p := range pairs {
		if p.trisLen > 0 && p.arrayLen == 0 {
			out = append(out, &errs.IntegrityError{
				Code: p.name + "_tris_without_array",
				Msg:  p.name + "_tris is present but " + p.name + " array is absent",
			})
		}

		if p.trisLen%3 != 0 {
			out = append(out, &errs.IntegrityError{
				Code: p.name + "_tris_not_triple",
				Msg:  p.name + "_tris length is not divisible by 3",
			})
		}
	}

	return out
}

func (m *Mesh) verifyTriangleBounds() []*errs.IntegrityError {
	var out []*errs.IntegrityError

	checks := []struct {
		name     string
		tris     []uint64
		arrayLen int
	}{
		{"vertex", m.VertexTris, len(m.Vertices)},
		{"normal", m.NormalTris, len(m.Normals)},
		{"uv", m.UVTris, len(m.UVs)},
		{"tangent", m.TangentTris, len(m.Tangents)},
		{"color", m.ColorTris, len(m.Colors)},
	}

	for _, c := range checks {
		if c.arrayLen == 0 {
			continue
		}

		for _, idx := range c.tris {
			if idx >= uint64(c.arrayLen) {
				out = append(out, &errs.IntegrityError{
					Code: c.name + "_index_out_of_range",
					Msg:  c.name + " triangle index exceeds array length",
				})

				break
			}
		}
	}

	return out
}

func (m *Mesh) verifyNormals() []*errs.IntegrityError {
	for _, n := range m.Normals {
		length := math.Sqrt(float64(n.X)*float64(n.X) + float64(n.Y)*float64(n.Y) + float64(n.Z)*float64(n.Z))
		if math.Abs(length-1) > normalToleranceDefault {
			return []*errs.IntegrityError{{
				Code: "normal_not_unit_length",
				Msg:  "a normal deviates from unit length by more than 1e-3",
			}}
		}
	}

	return nil
}

func (m *Mesh) verifyUVRange() []*errs.IntegrityError {
	for _, uv := range m.UVs {
		if uv.U < 0 || uv.U > 1 || uv.V < 0 || uv.V > 1 {
			return []*errs.IntegrityError{{
				Code: "uv_out_of_range",
				Msg:  "a UV component falls outside [0,1] (advisory)",
			}}
		}
	}

	return nil
}
