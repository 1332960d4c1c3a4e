package section_test

import (
	"testing"

	"github.com/nyxworks/tmf/errs"
	"github.com/nyxworks/tmf/format"
	"github.com/nyxworks/tmf/section"
	"github.com/stretchr/testify/require"
)

func TestFileHeader_RoundTrip(t *testing.T) {
	h := section.NewFileHeader(3)

	buf := h.AppendTo(nil)
	require.Len(t, buf, section.FileHeaderSize)

	got, n, err := section.ParseFileHeader(buf)
	require.NoError(t, err)
	require.Equal(t, section.FileHeaderSize, n)
	require.Equal(t, h, got)
	require.Equal(t, section.RegimeCurrent, got.Regime())
}

func TestFileHeader_BadMagic(t *testing.T) {
	h := section.NewFileHeader(1)
	buf := h.AppendTo(nil)
	buf[0] = 'X'

	_, _, err := section.ParseFileHeader(buf)
	require.ErrorIs(t, err, errs.ErrNotTMFFile)
}

func TestFileHeader_NewerVersionRequired(t *testing.T) {
	h := section.FileHeader{Major: 1, Minor: 2, MinMajor: 9, MinMinor: 0, MeshCount: 0}
	buf := h.AppendTo(nil)

	_, _, err := section.ParseFileHeader(buf)
	require.ErrorIs(t, err, errs.ErrNewerVersionRequired)
}

func TestMeshFrameHeader_RoundTrip(t *testing.T) {
	h := section.MeshFrameHeader{Name: "cube", SegmentCount: 4}
	buf := h.AppendTo(nil)

	got, n, err := section.ParseMeshFrameHeader(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, h, got)
}

func TestMeshFrameHeader_NonUTF8(t *testing.T) {
	buf := []byte{2, 0, 0xFF, 0xFE, 0, 0}
	_, _, err := section.ParseMeshFrameHeader(buf)
	require.ErrorIs(t, err, errs.ErrNameNotUTF8)
}

func TestSegmentFrameHeader_CurrentRegime(t *testing.T) {
	h := section.SegmentFrameHeader{Type: format.SegmentVertex, Length: 128, Compression: format.CompressionNone}
	buf := h.AppendTo(nil, section.RegimeCurrent)
	require.Len(t, buf, 6)

	got, n, err := section.ParseSegmentFrameHeader(buf, section.RegimeCurrent)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, h, got)
}

func TestSegmentFrameHeader_LegacyRegime(t *testing.T) {
	h := section.SegmentFrameHeader{Type: format.SegmentNormal, Length: 64}
	buf := h.AppendTo(nil, section.RegimeLegacy)
	require.Len(t, buf, 10)

	got, n, err := section.ParseSegmentFrameHeader(buf, section.RegimeLegacy)
	require.NoError(t, err)
	require.Equal(t, 10, n)
	require.Equal(t, format.SegmentNormal, got.Type)
	require.Equal(t, uint32(64), got.Length)
	require.Equal(t, format.CompressionNone, got.Compression)
}

func TestRegimeFor(t *testing.T) {
	require.Equal(t, section.RegimeLegacy, section.RegimeFor(1, 0))
	require.Equal(t, section.RegimeLegacy, section.RegimeFor(1, 1))
	require.Equal(t, section.RegimeCurrent, section.RegimeFor(1, 2))
}
