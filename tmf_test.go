package tmf_test

import (
	"testing"

	"github.com/nyxworks/tmf"
	"github.com/nyxworks/tmf/codec"
	"github.com/nyxworks/tmf/errs"
	"github.com/stretchr/testify/require"
)

func hundredVertices(seed float32) []codec.Vec3 {
	out := make([]codec.Vec3, 100)
	for i := range out {
		out[i] = codec.Vec3{X: seed + float32(i), Y: float32(i) * 0.5, Z: -float32(i)}
	}

	return out
}

// TestContainer_TwoNamedMeshes reproduces the container scenario: two
// meshes named "A" and "B", each with 100 vertices, round-tripped
// through Write/Read with matching names and in-tolerance attributes.
func TestContainer_TwoNamedMeshes(t *testing.T) {
	entries := []tmf.MeshEntry{
		{Name: "A", Mesh: &tmf.Mesh{Vertices: hundredVertices(0)}},
		{Name: "B", Mesh: &tmf.Mesh{Vertices: hundredVertices(1000)}},
	}

	data, err := tmf.Write(entries, codec.DefaultPrecisionInfo())
	require.NoError(t, err)

	out, err := tmf.Read(data)
	require.NoError(t, err)
	require.Len(t, out, 2)

	require.Equal(t, "A", out[0].Name)
	require.Equal(t, "B", out[1].Name)
	require.Len(t, out[0].Mesh.Vertices, 100)
	require.Len(t, out[1].Mesh.Vertices, 100)

	for i := range entries[0].Mesh.Vertices {
		require.InDelta(t, entries[0].Mesh.Vertices[i].X, out[0].Mesh.Vertices[i].X, 0.2)
	}
}

func TestReadOne_RejectsMultipleMeshes(t *testing.T) {
	entries := []tmf.MeshEntry{
		{Name: "A", Mesh: &tmf.Mesh{Vertices: hundredVertices(0)}},
		{Name: "B", Mesh: &tmf.Mesh{Vertices: hundredVertices(1)}},
	}

	data, err := tmf.Write(entries, codec.DefaultPrecisionInfo())
	require.NoError(t, err)

	_, err = tmf.ReadOne(data)
	require.Error(t, err)
}

func TestReadOne_SingleMesh(t *testing.T) {
	entries := []tmf.MeshEntry{
		{Name: "solo", Mesh: &tmf.Mesh{Vertices: hundredVertices(0)}},
	}

	data, err := tmf.Write(entries, codec.DefaultPrecisionInfo())
	require.NoError(t, err)

	entry, err := tmf.ReadOne(data)
	require.NoError(t, err)
	require.Equal(t, "solo", entry.Name)
}

func TestWriteRead_FullMeshWithTrianglesAndCustomData(t *testing.T) {
	mesh := &tmf.Mesh{
		Vertices:   hundredVertices(0),
		VertexTris: []uint64{0, 1, 2, 3, 4, 5},
	}

	require.NoError(t, mesh.AddCustomData("weights", tmf.CustomData{
		Kind:   tmf.CustomFloatData,
		Floats: []float64{0.1, 0.2, 0.3, 0.4},
	}))
	require.NoError(t, mesh.AddCustomData("material_ids", tmf.CustomData{
		Kind:    tmf.CustomIndexData,
		Indices: []uint64{1, 2, 3},
	}))

	data, err := tmf.Write([]tmf.MeshEntry{{Name: "mesh0", Mesh: mesh}}, codec.DefaultPrecisionInfo())
	require.NoError(t, err)

	entry, err := tmf.ReadOne(data)
	require.NoError(t, err)

	require.Equal(t, mesh.VertexTris, entry.Mesh.VertexTris)

	weights, err := entry.Mesh.LookupCustomData("weights")
	require.NoError(t, err)
	require.Len(t, weights.Floats, 4)

	materials, err := entry.Mesh.LookupCustomData("material_ids")
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2, 3}, materials.Indices)

	_, err = entry.Mesh.LookupCustomData("nonexistent")
	require.ErrorIs(t, err, errs.ErrCustomDataNotFound)
}

func TestRead_RejectsBadMagic(t *testing.T) {
	_, err := tmf.Read([]byte("not-a-tmf-file-at-all"))
	require.ErrorIs(t, err, errs.ErrNotTMFFile)
}

func TestMesh_VerifyCatchesOutOfRangeTriangleIndex(t *testing.T) {
	mesh := &tmf.Mesh{
		Vertices:   hundredVertices(0),
		VertexTris: []uint64{0, 1, 999},
	}

	err := mesh.Verify()
	require.Error(t, err)
	require.True(t, errs.IsIntegrityError(err))
}

func TestMesh_VerifyPassesOnWellFormedMesh(t *testing.T) {
	mesh := &tmf.Mesh{
		Vertices:   hundredVertices(0),
		VertexTris: []uint64{0, 1, 2},
	}

	require.NoError(t, mesh.Verify())
}

func TestMesh_AddCustomData_RejectsDuplicateName(t *testing.T) {
	mesh := &tmf.Mesh{}

	require.NoError(t, mesh.AddCustomData("a", tmf.CustomData{Kind: tmf.CustomFloatData, Floats: []float64{1}}))

	err := mesh.AddCustomData("a", tmf.CustomData{Kind: tmf.CustomFloatData, Floats: []float64{2}})
	require.True(t, errs.IsDuplicateSegment(err))
}

func TestMesh_AddCustomData_RejectsInvalidName(t *testing.T) {
	mesh := &tmf.Mesh{}

	err := mesh.AddCustomData("", tmf.CustomData{Kind: tmf.CustomFloatData, Floats: []float64{1}})
	require.ErrorIs(t, err, errs.ErrNameInvalid)
}
