package compress_test

import (
	"testing"

	"github.com/nyxworks/tmf/compress"
	"github.com/nyxworks/tmf/format"
	"github.com/stretchr/testify/require"
)

func TestGetCodec_None(t *testing.T) {
	c, err := compress.GetCodec(format.CompressionNone)
	require.NoError(t, err)

	data := []byte{1, 2, 3}
	out, err := c.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, out)

	back, err := c.Decompress(out)
	require.NoError(t, err)
	require.Equal(t, data, back)
}

func TestGetCodec_Omitted(t *testing.T) {
	c, err := compress.GetCodec(format.CompressionOmitted)
	require.NoError(t, err)

	out, err := c.Compress([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestGetCodec_UnalignedLZRejected(t *testing.T) {
	c, err := compress.GetCodec(format.CompressionUnalignedLZ)
	require.NoError(t, err)

	_, err = c.Compress([]byte{1})
	require.Error(t, err)

	_, err = c.Decompress([]byte{1})
	require.Error(t, err)
}

func TestGetCodec_Unknown(t *testing.T) {
	_, err := compress.GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}
