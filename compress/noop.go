package compress

// NoneCodec stores a segment payload uncompressed (compression byte 0).
//
// Compress and Decompress both return the input slice as-is: the caller
// must not mutate it afterward if it still needs the original.
type NoneCodec struct{}

var _ Codec = NoneCodec{}

func (NoneCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (NoneCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// OmittedCodec marks a segment whose payload was intentionally left
// empty (compression byte 1). Compress always discards its input and
// returns a zero-length slice; Decompress likewise returns a zero-length
// slice whatever its input, since an omitted segment carries no bytes to
// recover.
type OmittedCodec struct{}

var _ Codec = OmittedCodec{}

func (OmittedCodec) Compress([]byte) ([]byte, error) {
	return nil, nil
}

func (OmittedCodec) Decompress(data []byte) ([]byte, error) {
	return data[:0], nil
}
