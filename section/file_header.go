package section

import (
	"github.com/nyxworks/tmf/endian"
	"github.com/nyxworks/tmf/errs"
)

// FileHeader is the fixed-size header at the start of every TMF file.
type FileHeader struct {
	// Major and Minor are the version of the writer that produced the file.
	Major uint16
	Minor uint16
	// MinMajor and MinMinor are the minimum (major, minor) a reader must
	// implement to decode this file. They also select the on-wire width
	// regime for every segment frame in the file (see Regime).
	MinMajor uint16
	MinMinor uint16
	// MeshCount is the number of mesh frames that follow the header.
	MeshCount uint32
}

// NewFileHeader builds the header a writer emits: the current format
// version, with the required-minimum version pinned to the same value
// so every reader of this package can decode what it writes.
func NewFileHeader(meshCount uint32) FileHeader {
	return FileHeader{
		Major:     CurrentMajor,
		Minor:     CurrentMinor,
		MinMajor:  RequiredMajor,
		MinMinor:  RequiredMinor,
		MeshCount: meshCount,
	}
}

// SupportsVersion reports whether a reader implementing (major, minor)
// satisfies this header's required minimum version.
func (h FileHeader) SupportsVersion(major, minor uint16) bool {
	if major != h.MinMajor {
		return major > h.MinMajor
	}

	return minor >= h.MinMinor
}

// Regime returns the on-wire segment-frame width regime this file uses,
// selected by the required-minimum version (§4.6).
func (h FileHeader) Regime() Regime {
	return RegimeFor(h.MinMajor, h.MinMinor)
}

// AppendTo appends the header's wire encoding to buf and returns the
// extended slice.
func (h FileHeader) AppendTo(buf []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	buf = append(buf, Magic...)
	buf = engine.AppendUint16(buf, h.Major)
	buf = engine.AppendUint16(buf, h.Minor)
	buf = engine.AppendUint16(buf, h.MinMajor)
	buf = engine.AppendUint16(buf, h.MinMinor)
	buf = engine.AppendUint32(buf, h.MeshCount)

	return buf
}

// ParseFileHeader reads a FileHeader from the front of data, returning the
// header and the number of bytes consumed.
func ParseFileHeader(data []byte) (FileHeader, int, error) {
	if len(data) < FileHeaderSize {
		return FileHeader{}, 0, errs.ErrUnexpectedEnd
	}

	if string(data[0:3]) != Magic {
		return FileHeader{}, 0, errs.ErrNotTMFFile
	}

	engine := endian.GetLittleEndianEngine()
	h := FileHeader{
		Major:     engine.Uint16(data[3:5]),
		Minor:     engine.Uint16(data[5:7]),
		MinMajor:  engine.Uint16(data[7:9]),
		MinMinor:  engine.Uint16(data[9:11]),
		MeshCount: engine.Uint32(data[11:15]),
	}

	if !h.SupportsVersion(CurrentMajor, CurrentMinor) {
		return FileHeader{}, 0, errs.ErrNewerVersionRequired
	}

	return h, FileHeaderSize, nil
}
