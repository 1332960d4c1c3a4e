package tmf

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/nyxworks/tmf/codec"
	"github.com/nyxworks/tmf/compress"
	"github.com/nyxworks/tmf/format"
	"github.com/nyxworks/tmf/internal/options"
	"github.com/nyxworks/tmf/internal/pool"
	"github.com/nyxworks/tmf/section"
)

const (
	defaultMaxSegmentSize  = 4096 // matches codec's own default split chunk size
	defaultMeshParallelism = 0    // 0 means runtime.GOMAXPROCS(0)
)

// encodedSegment is one outgoing segment frame's type, compression tag,
// and already-compressed payload, ready to append to the mesh frame.
type encodedSegment struct {
	typ         format.SegmentType
	compression format.CompressionType
	payload     []byte
}

// Write encodes entries into a single container, in the order given.
// precision controls the quantization of the built-in attribute codecs
// and applies to every mesh in entries; custom float arrays are quantized
// at defaultCustomFloatPrecision instead.
func Write(entries []MeshEntry, precision codec.PrecisionInfo, opts ...WriteOption) ([]byte, error) {
	cfg := newWriteConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	header := section.NewFileHeader(uint32(len(entries)))
	regime := header.Regime()

	buf := header.AppendTo(make([]byte, 0, pool.FrameBufferDefaultSize))

	for i, entry := range entries {
		frameBytes, err := encodeMeshFrame(entry, precision, regime, cfg)
		if err != nil {
			return nil, fmt.Errorf("tmf: mesh %d (%q): %w", i, entry.Name, err)
		}

		buf = append(buf, frameBytes...)
	}

	return buf, nil
}

// encodeMeshFrame builds the segment list for one mesh in the fixed
// iteration order (§5: vertices, normals, uvs, tangents, colors, then
// each attribute's triangle stream, then custom segments in insertion
// order), encodes every segment concurrently, and frames the result.
func encodeMeshFrame(entry MeshEntry, precision codec.PrecisionInfo, regime section.Regime, cfg *writeConfig) ([]byte, error) {
	mesh := entry.Mesh

	jobs := meshEncodeJobs(mesh, precision, cfg)

	segments, err := encodeSegmentsConcurrently(jobs, cfg)
	if err != nil {
		return nil, err
	}

	bb := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(bb)

	meshHeader := section.MeshFrameHeader{Name: entry.Name, SegmentCount: uint16(len(segments))}
	bb.MustWrite(meshHeader.AppendTo(nil))

	for _, seg := range segments {
		frameHeader := section.SegmentFrameHeader{
			Type:        seg.typ,
			Length:      uint32(len(seg.payload)),
			Compression: seg.compression,
		}
		bb.MustWrite(frameHeader.AppendTo(nil, regime))
		bb.MustWrite(seg.payload)
	}

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out, nil
}

// encodeJob is one pending segment encode: its type and the closure that
// produces the uncompressed payload.
type encodeJob struct {
	typ    format.SegmentType
	encode func() ([]byte, error)
}

func meshEncodeJobs(mesh *Mesh, precision codec.PrecisionInfo, cfg *writeConfig) []encodeJob {
	var jobs []encodeJob

	if len(mesh.Vertices) > 0 {
		vs := mesh.Vertices
		shortestEdge := shortestEdgeLength(vs, mesh.VertexTris)
		jobs = append(jobs, encodeJob{format.SegmentVertex, func() ([]byte, error) {
			return codec.EncodeVertices(vs, precision.Vertex, shortestEdge)
		}})
	}

	if len(mesh.Normals) > 0 {
		ns := mesh.Normals
		jobs = append(jobs, encodeJob{format.SegmentNormal, func() ([]byte, error) {
			return codec.EncodeNormals(ns, precision.Normal)
		}})
	}

	if len(mesh.UVs) > 0 {
		uvs := mesh.UVs
		jobs = append(jobs, encodeJob{format.SegmentUV, func() ([]byte, error) {
			return codec.EncodeUVs(uvs, precision.UV)
		}})
	}

	if len(mesh.Tangents) > 0 {
		ts := mesh.Tangents
		jobs = append(jobs, encodeJob{format.SegmentTangent, func() ([]byte, error) {
			return codec.EncodeTangents(ts, precision.Tangent)
		}})
	}

	if len(mesh.Colors) > 0 {
		cs := mesh.Colors
		jobs = append(jobs, encodeJob{format.SegmentColor, func() ([]byte, error) {
			return codec.EncodeColors(cs, precision.Color)
		}})
	}

	jobs = append(jobs, triangleJobs(format.SegmentVertexTriangle, mesh.VertexTris, cfg)...)
	jobs = append(jobs, triangleJobs(format.SegmentNormalTriangle, mesh.NormalTris, cfg)...)
	jobs = append(jobs, triangleJobs(format.SegmentUVTriangle, mesh.UVTris, cfg)...)
	jobs = append(jobs, triangleJobs(format.SegmentTangentTriangle, mesh.TangentTris, cfg)...)
	jobs = append(jobs, triangleJobs(format.SegmentColorTriangle, mesh.ColorTris, cfg)...)

	for _, cd := range mesh.custom {
		cd := cd

		switch cd.Kind {
		case CustomIndexData:
			jobs = append(jobs, encodeJob{format.SegmentCustomIndex, func() ([]byte, error) {
				return encodeCustomIndex(cd)
			}})
		case CustomFloatData:
			jobs = append(jobs, encodeJob{format.SegmentCustomFloat, func() ([]byte, error) {
				return encodeCustomFloat(cd)
			}})
		}
	}

	return jobs
}

// shortestEdgeLength returns the shortest edge among tris' triangles, or
// 1.0 if the mesh has no triangulation to measure (§4.2).
func shortestEdgeLength(vertices []codec.Vec3, tris []uint64) float64 {
	shortest := math.Inf(1)

	for i := 0; i+2 < len(tris); i += 3 {
		a, b, c := vertices[tris[i]], vertices[tris[i+1]], vertices[tris[i+2]]

		shortest = math.Min(shortest, math.Min(edgeLength(a, b), math.Min(edgeLength(b, c), edgeLength(c, a))))
	}

	if math.IsInf(shortest, 1) {
		return 1.0
	}

	return shortest
}

func edgeLength(a, b codec.Vec3) float64 {
	dx, dy, dz := float64(a.X-b.X), float64(a.Y-b.Y), float64(a.Z-b.Z)

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// triangleJobs splits a triangle-index stream per the size optimizer
// (§4.7) and returns one encode job per resulting run, preserving order.
func triangleJobs(typ format.SegmentType, tris []uint64, cfg *writeConfig) []encodeJob {
	if len(tris) == 0 {
		return nil
	}

	runs := codec.SplitIndicesChunked(tris, cfg.maxSegmentSize)

	jobs := make([]encodeJob, len(runs))
	for i, run := range runs {
		run := run
		jobs[i] = encodeJob{typ, func() ([]byte, error) {
			return codec.EncodeIndices(run, true)
		}}
	}

	return jobs
}

func encodeCustomIndex(cd CustomData) ([]byte, error) {
	payload, err := codec.EncodeIndices(cd.Indices, true)
	if err != nil {
		return nil, err
	}

	return prependName(cd.Name, payload), nil
}

func encodeCustomFloat(cd CustomData) ([]byte, error) {
	payload, err := codec.EncodeFloatArray(cd.Floats, defaultCustomFloatPrecision)
	if err != nil {
		return nil, err
	}

	return prependName(cd.Name, payload), nil
}

// defaultCustomFloatPrecision is the quantization tolerance used for every
// custom float array; CustomData carries no precision of its own.
const defaultCustomFloatPrecision = 1e-4

func prependName(name string, payload []byte) []byte {
	out := make([]byte, 0, 1+len(name)+len(payload))
	out = append(out, byte(len(name)))
	out = append(out, name...)
	out = append(out, payload...)

	return out
}

// encodeSegmentsConcurrently runs every job's encoder and the segment's
// chosen compression codec as an independent task, collecting results
// into their original positions so segment order on the wire matches
// meshEncodeJobs's iteration order regardless of goroutine scheduling.
func encodeSegmentsConcurrently(jobs []encodeJob, cfg *writeConfig) ([]encodedSegment, error) {
	parallelism := cfg.parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	results := make([]encodedSegment, len(jobs))
	errs := make([]error, len(jobs))

	sem := make(chan struct{}, parallelism)

	var wg sync.WaitGroup

	for i, job := range jobs {
		wg.Add(1)
		sem <- struct{}{}

		go func(i int, job encodeJob) {
			defer wg.Done()
			defer func() { <-sem }()

			payload, err := job.encode()
			if err != nil {
				errs[i] = err
				return
			}

			noneCodec, _ := compress.GetCodec(format.CompressionNone)

			compressed, err := noneCodec.Compress(payload)
			if err != nil {
				errs[i] = err
				return
			}

			results[i] = encodedSegment{
				typ:         job.typ,
				compression: format.CompressionNone,
				payload:     compressed,
			}
		}(i, job)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
