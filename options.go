package tmf

import "github.com/nyxworks/tmf/internal/options"

// WriteOption configures a single Write call.
type WriteOption = options.Option[*writeConfig]

type writeConfig struct {
	maxSegmentSize int
	parallelism    int
}

func newWriteConfig() *writeConfig {
	return &writeConfig{
		maxSegmentSize: defaultMaxSegmentSize,
		parallelism:    defaultMeshParallelism,
	}
}

// WithMaxSegmentSize bounds the triangle-index split optimizer's target
// per-segment element count. It has no effect on attribute-array
// segments, which are never split.
func WithMaxSegmentSize(n int) WriteOption {
	return options.NoError(func(c *writeConfig) {
		c.maxSegmentSize = n
	})
}

// WithMeshParallelism caps the number of segments of one mesh that Write
// encodes concurrently; meshes themselves are encoded one after another.
// It does not affect Read. The default is runtime.GOMAXPROCS(0).
func WithMeshParallelism(n int) WriteOption {
	return options.NoError(func(c *writeConfig) {
		c.parallelism = n
	})
}
