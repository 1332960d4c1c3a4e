// Package section defines the low-level binary structures and constants
// for the TMF mesh container: the file header, the per-mesh frame header,
// and the per-segment frame header, plus the version-gated dispatch
// between the two on-wire width regimes.
//
// # File layout
//
//	┌──────────────────────────────────────────────┐
//	│ FileHeader (15 bytes, fixed)                  │
//	│  magic "TMF" | major | minor | min_major |    │
//	│  min_minor | mesh_count                       │
//	├──────────────────────────────────────────────┤
//	│ Mesh frame 0                                  │
//	│  name_length | name | segment_count | segs... │
//	├──────────────────────────────────────────────┤
//	│ Mesh frame 1                                  │
//	│  ...                                          │
//	└──────────────────────────────────────────────┘
//
// Each segment within a mesh frame is itself framed as
// type | length | compression | payload, with the width of type and
// length chosen by the Regime the file's required-minimum version
// selects (see regime.go). In the legacy regime the compression byte is
// absent and the payload is uncompressed.
package section
