package section

// Magic is the fixed 3-byte prefix of every TMF file.
const Magic = "TMF"

// FileHeaderSize is the fixed byte size of FileHeader: 3 (magic) + 2*4
// (version fields) + 4 (mesh count).
const FileHeaderSize = 3 + 2*4 + 4

// CurrentMajor and CurrentMinor are the version this package writes.
// RequiredMajor and RequiredMinor pin the minimum reader version a file
// declares it needs; RequiredMinor is > 1 so a writer always emits the
// current regime (see regime.go).
const (
	CurrentMajor = 1
	CurrentMinor = 2

	RequiredMajor = 1
	RequiredMinor = 2
)

// MaxSegSize caps a single segment's declared byte length, bounding
// worst-case allocation when parsing an untrusted file.
const MaxSegSize = 1<<32 - 1
