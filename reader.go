package tmf

import (
	"context"
	"fmt"
	"sync"

	"github.com/nyxworks/tmf/compress"
	"github.com/nyxworks/tmf/errs"
	"github.com/nyxworks/tmf/internal/collision"
	"github.com/nyxworks/tmf/section"
)

// MeshEntry pairs a decoded or to-be-encoded Mesh with its name within a
// container.
type MeshEntry struct {
	Name string
	Mesh *Mesh
}

// rawSegment is a single segment frame's header plus its own payload
// slice, captured while the framing layer walks the input sequentially.
// Decode workers operate only on their own rawSegment, never on the
// shared input slice.
type rawSegment struct {
	header  section.SegmentFrameHeader
	payload []byte
}

// Read parses a whole container and decodes every mesh frame it
// contains, returning the entries in on-wire order.
func Read(data []byte) ([]MeshEntry, error) {
	header, n, err := section.ParseFileHeader(data)
	if err != nil {
		return nil, err
	}

	regime := header.Regime()
	data = data[n:]

	entries := make([]MeshEntry, header.MeshCount)

	for i := range entries {
		frame, consumed, err := readMeshFrame(data, regime)
		if err != nil {
			return nil, fmt.Errorf("tmf: mesh %d: %w", i, err)
		}

		entries[i] = frame
		data = data[consumed:]
	}

	return entries, nil
}

// ReadOne parses a container expected to hold exactly one mesh frame and
// returns it. It fails if the container holds zero or more than one mesh.
func ReadOne(data []byte) (MeshEntry, error) {
	entries, err := Read(data)
	if err != nil {
		return MeshEntry{}, err
	}

	if len(entries) != 1 {
		return MeshEntry{}, fmt.Errorf("tmf: expected exactly one mesh, found %d", len(entries))
	}

	return entries[0], nil
}

// readMeshFrame reads one mesh frame (header, its segment frames, and
// their payloads) from the front of data, decoding the segments
// concurrently, and returns the assembled entry plus the number of bytes
// consumed.
func readMeshFrame(data []byte, regime section.Regime) (MeshEntry, int, error) {
	frameHeader, pos, err := section.ParseMeshFrameHeader(data)
	if err != nil {
		return MeshEntry{}, 0, err
	}

	raws := make([]rawSegment, frameHeader.SegmentCount)

	for i := range raws {
		sh, consumed, err := section.ParseSegmentFrameHeader(data[pos:], regime)
		if err != nil {
			return MeshEntry{}, 0, err
		}

		pos += consumed

		if int(sh.Length) > len(data)-pos {
			return MeshEntry{}, 0, errs.ErrUnexpectedEnd
		}

		payload := data[pos : pos+int(sh.Length)]
		pos += int(sh.Length)

		raws[i] = rawSegment{header: sh, payload: payload}
	}

	mesh, err := decodeSegmentsConcurrently(raws, regime)
	if err != nil {
		return MeshEntry{}, 0, err
	}

	return MeshEntry{Name: frameHeader.Name, Mesh: mesh}, pos, nil
}

// decodeSegmentsConcurrently decompresses and decodes every raw segment
// as an independent task, then applies the decoded segments to a fresh
// Mesh in on-wire order. The first task error cancels the rest; per §5 a
// cancelled mesh import surfaces no partial mesh.
func decodeSegmentsConcurrently(raws []rawSegment, regime section.Regime) (*Mesh, error) {
	results := make([]decodedSegment, len(raws))
	errs2 := make([]error, len(raws))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup

	for i, raw := range raws {
		wg.Add(1)

		go func(i int, raw rawSegment) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			default:
			}

			codec, err := compress.GetCodec(raw.header.Compression)
			if err != nil {
				errs2[i] = err
				cancel()

				return
			}

			payload, err := codec.Decompress(raw.payload)
			if err != nil {
				errs2[i] = err
				cancel()

				return
			}

			seg, err := decodeSegmentPayload(raw.header.Type, payload, regime.HasMinIndex())
			if err != nil {
				errs2[i] = err
				cancel()

				return
			}

			results[i] = seg
		}(i, raw)
	}

	wg.Wait()

	for _, err := range errs2 {
		if err != nil {
			return nil, err
		}
	}

	mesh := &Mesh{}
	tracker := collision.NewTracker()

	for _, seg := range results {
		if err := seg.apply(mesh, tracker); err != nil {
			return nil, err
		}
	}

	return mesh, nil
}
