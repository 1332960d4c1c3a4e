package section

import (
	"github.com/nyxworks/tmf/endian"
	"github.com/nyxworks/tmf/errs"
	"github.com/nyxworks/tmf/format"
)

// SegmentFrameHeader is the fixed prefix of a single on-wire segment:
// its type tag, declared payload length, and compression tag. Width of
// Type and Length on the wire depends on the file's Regime.
type SegmentFrameHeader struct {
	Type        format.SegmentType
	Length      uint32
	Compression format.CompressionType
}

// AppendTo appends the segment frame header's wire encoding to buf,
// using the field widths r dictates.
func (h SegmentFrameHeader) AppendTo(buf []byte, r Regime) []byte {
	engine := endian.GetLittleEndianEngine()

	switch r {
	case RegimeLegacy:
		buf = engine.AppendUint16(buf, uint16(h.Type))
		buf = engine.AppendUint64(buf, uint64(h.Length))
	default:
		buf = append(buf, byte(h.Type))
		buf = engine.AppendUint32(buf, h.Length)
		buf = append(buf, byte(h.Compression))
	}

	return buf
}

// ParseSegmentFrameHeader reads a SegmentFrameHeader from the front of
// data per regime r, returning the header and the number of header
// bytes consumed (not including the payload).
func ParseSegmentFrameHeader(data []byte, r Regime) (SegmentFrameHeader, int, error) {
	engine := endian.GetLittleEndianEngine()

	switch r {
	case RegimeLegacy:
		if len(data) < 10 {
			return SegmentFrameHeader{}, 0, errs.ErrUnexpectedEnd
		}

		typ := engine.Uint16(data[0:2])
		length := engine.Uint64(data[2:10])

		if length > MaxSegSize {
			return SegmentFrameHeader{}, 0, errs.ErrSegmentTooLong
		}

		return SegmentFrameHeader{
			Type:        format.SegmentType(typ),
			Length:      uint32(length),
			Compression: format.CompressionNone,
		}, 10, nil
	default:
		if len(data) < 6 {
			return SegmentFrameHeader{}, 0, errs.ErrUnexpectedEnd
		}

		typ := data[0]
		length := engine.Uint32(data[1:5])
		compression := data[5]

		return SegmentFrameHeader{
			Type:        format.SegmentType(typ),
			Length:      length,
			Compression: format.CompressionType(compression),
		}, 6, nil
	}
}
