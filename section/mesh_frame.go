package section

import (
	"unicode/utf8"

	"github.com/nyxworks/tmf/endian"
	"github.com/nyxworks/tmf/errs"
)

// MeshFrameHeader is the fixed prefix of a per-mesh frame: its name and
// the count of segments that follow.
type MeshFrameHeader struct {
	Name         string
	SegmentCount uint16
}

// AppendTo appends the frame header's wire encoding (name_length | name |
// segment_count) to buf.
func (h MeshFrameHeader) AppendTo(buf []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	buf = engine.AppendUint16(buf, uint16(len(h.Name)))
	buf = append(buf, h.Name...)
	buf = engine.AppendUint16(buf, h.SegmentCount)

	return buf
}

// ParseMeshFrameHeader reads a MeshFrameHeader from the front of data,
// returning the header and the number of bytes consumed.
func ParseMeshFrameHeader(data []byte) (MeshFrameHeader, int, error) {
	if len(data) < 2 {
		return MeshFrameHeader{}, 0, errs.ErrUnexpectedEnd
	}

	engine := endian.GetLittleEndianEngine()
	nameLen := int(engine.Uint16(data[0:2]))
	pos := 2

	if len(data) < pos+nameLen+2 {
		return MeshFrameHeader{}, 0, errs.ErrUnexpectedEnd
	}

	nameBytes := data[pos : pos+nameLen]
	if !utf8.Valid(nameBytes) {
		return MeshFrameHeader{}, 0, errs.ErrNameNotUTF8
	}

	name := string(nameBytes)
	pos += nameLen

	segCount := engine.Uint16(data[pos : pos+2])
	pos += 2

	return MeshFrameHeader{Name: name, SegmentCount: segCount}, pos, nil
}
