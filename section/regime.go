package section

// Regime selects the on-wire width of a segment frame's type and length
// fields, and whether the triangle-index codec carries a min-index field.
// It is fixed for an entire file by the file header's required-minimum
// version (§4.6).
type Regime uint8

const (
	// RegimeLegacy is used when min_minor <= 1: segment type is a u16,
	// segment length is a u64, and triangle-index segments carry no
	// explicit min-index field (the decoder assumes min=0).
	RegimeLegacy Regime = iota
	// RegimeCurrent is used when min_minor > 1: segment type is a u8,
	// segment length is a u32, and triangle-index segments carry an
	// explicit min-index field enabling arbitrary rebasing.
	RegimeCurrent
)

// RegimeFor selects the regime implied by a file's required-minimum
// version pair.
func RegimeFor(minMajor, minMinor uint16) Regime {
	_ = minMajor // the gate is defined purely on minor per §4.6

	if minMinor > 1 {
		return RegimeCurrent
	}

	return RegimeLegacy
}

// HasMinIndex reports whether the triangle-index codec's min-index field
// is present on the wire in this regime.
func (r Regime) HasMinIndex() bool {
	return r == RegimeCurrent
}

// HasCompressionByte reports whether a segment frame carries an explicit
// compression tag byte in this regime. The legacy regime predates the
// compression scheme and always implies CompressionNone.
func (r Regime) HasCompressionByte() bool {
	return r == RegimeCurrent
}
