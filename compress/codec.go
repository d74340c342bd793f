package compress

import (
	"fmt"

	"github.com/arloliu/nrrd/errs"
	"github.com/arloliu/nrrd/format"
)

// Compressor compresses a complete payload buffer.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The returned slice is newly allocated and owned by the caller; the
	// input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload buffer previously produced by the
// matching Compressor.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original
	// bytes. It returns an error if the data is corrupted or was produced
	// by an incompatible algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of the transform.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.Encoding]Codec{
	format.EncodingRaw:   NewNoOpCodec(),
	format.EncodingASCII: NewNoOpCodec(),
	format.EncodingGzip:  NewGzipCodec(),
}

// GetCodec retrieves the built-in Codec for the specified payload encoding.
//
// The ascii encoding maps to the pass-through codec: text payloads are
// never compressed.
func GetCodec(encoding format.Encoding) (Codec, error) {
	if codec, ok := builtinCodecs[encoding]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedEncoding, encoding)
}
