package codec

// segmentOverheadBits is the fixed per-segment framing overhead (section
// frame header plus the index codec's own count/min/max-delta fields),
// expressed in bits, used to decide whether splitting a run pays for
// itself.
const segmentOverheadBits = (6 + indexHeaderSizeMin) * 8

// splitChunkSize is the run length SplitIndices evaluates splitting at.
// Smaller chunks find more local structure but add more per-segment
// overhead; this is a reasonable middle ground for typical mesh sizes.
const splitChunkSize = 4096

// SplitIndices partitions a decoded index stream into one or more
// contiguous, order-preserving runs, reducing total packed bit-width
// when chunking into fixed-size runs needs fewer total bits than a
// single whole-stream run by more than the extra segments' fixed
// overhead (§4.7). It chunks at splitChunkSize; use SplitIndicesChunked
// to target a different chunk size.
//
// The split is purely a size optimization: concatenating the returned
// runs in order reproduces indices exactly, and callers may always fall
// back to treating the whole input as one segment.
func SplitIndices(indices []uint64) [][]uint64 {
	return SplitIndicesChunked(indices, splitChunkSize)
}

// SplitIndicesChunked is SplitIndices parameterized on the candidate
// chunk size, so callers can trade finer local rebasing against more
// per-segment framing overhead.
func SplitIndicesChunked(indices []uint64, chunkSize int) [][]uint64 {
	if chunkSize <= 0 {
		chunkSize = splitChunkSize
	}

	if len(indices) <= chunkSize {
		return [][]uint64{indices}
	}

	wholeBits := uint64(len(indices)) * uint64(precisionForDelta(rangeOf(indices)))

	var chunked [][]uint64

	var chunkedBits uint64

	for start := 0; start < len(indices); start += chunkSize {
		end := start + chunkSize
		if end > len(indices) {
			end = len(indices)
		}

		chunk := indices[start:end]
		chunked = append(chunked, chunk)
		chunkedBits += uint64(len(chunk)) * uint64(precisionForDelta(rangeOf(chunk)))
	}

	extraSegments := uint64(len(chunked) - 1)
	if wholeBits > chunkedBits && wholeBits-chunkedBits > extraSegments*segmentOverheadBits {
		return chunked
	}

	return [][]uint64{indices}
}

func rangeOf(indices []uint64) uint64 {
	if len(indices) == 0 {
		return 0
	}

	min, max := indices[0], indices[0]
	for _, v := range indices[1:] {
		if v < min {
			min = v
		}

		if v > max {
			max = v
		}
	}

	return max - min
}
