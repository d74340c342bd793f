package payload

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/nrrd/compress"
	"github.com/arloliu/nrrd/endian"
	"github.com/arloliu/nrrd/errs"
	"github.com/arloliu/nrrd/format"
)

// Decode transcodes the payload bytes that follow a header into a typed
// array shaped by sizes in on-disk order.
//
// Binary encodings decode through the source byte-order engine, so the
// resulting values are native regardless of host order. The ascii
// encoding ignores byte order entirely.
func Decode(data []byte, typ format.ElementType, sizes []int, enc format.Encoding, src endian.EndianEngine) (*Array, error) {
	count, err := elementCount(sizes)
	if err != nil {
		return nil, err
	}

	if enc == format.EncodingASCII {
		buf, err := decodeASCII(data, typ, count)
		if err != nil {
			return nil, err
		}

		return New(typ, sizes, buf)
	}

	codec, err := compress.GetCodec(enc)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrIoFailure, err)
	}

	size := typ.Size()
	if size > 0 && count > math.MaxInt/size {
		return nil, fmt.Errorf("%w: %d elements of %s overflow the byte count", errs.ErrPayloadSize, count, typ)
	}

	if len(raw) != count*size {
		return nil, fmt.Errorf("%w: got %d payload bytes, need %d", errs.ErrPayloadSize, len(raw), count*size)
	}

	buf, err := decodeBinary(raw, typ, count, src)
	if err != nil {
		return nil, err
	}

	return New(typ, sizes, buf)
}

// Encode transcodes an array back into payload bytes. Binary encodings
// serialize through dst; the ascii encoding joins values with delim and,
// for exactly 2-D shapes, emits one line per slowest-varying index.
func Encode(a *Array, enc format.Encoding, dst endian.EndianEngine, delim byte) ([]byte, error) {
	if enc == format.EncodingASCII {
		return encodeASCII(a, delim), nil
	}

	codec, err := compress.GetCodec(enc)
	if err != nil {
		return nil, err
	}

	raw := encodeBinary(a, dst)

	out, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrIoFailure, err)
	}

	return out, nil
}

func decodeBinary(raw []byte, typ format.ElementType, count int, src endian.EndianEngine) (any, error) {
	switch typ {
	case format.TypeInt8:
		out := make([]int8, count)
		for i := range out {
			out[i] = int8(raw[i])
		}

		return out, nil

	case format.TypeUint8:
		out := make([]uint8, count)
		copy(out, raw)

		return out, nil

	case format.TypeInt16:
		out := make([]int16, count)
		for i := range out {
			out[i] = int16(src.Uint16(raw[2*i:]))
		}

		return out, nil

	case format.TypeUint16:
		out := make([]uint16, count)
		for i := range out {
			out[i] = src.Uint16(raw[2*i:])
		}

		return out, nil

	case format.TypeInt32:
		out := make([]int32, count)
		for i := range out {
			out[i] = int32(src.Uint32(raw[4*i:]))
		}

		return out, nil

	case format.TypeUint32:
		out := make([]uint32, count)
		for i := range out {
			out[i] = src.Uint32(raw[4*i:])
		}

		return out, nil

	case format.TypeInt64:
		out := make([]int64, count)
		for i := range out {
			out[i] = int64(src.Uint64(raw[8*i:]))
		}

		return out, nil

	case format.TypeUint64:
		out := make([]uint64, count)
		for i := range out {
			out[i] = src.Uint64(raw[8*i:])
		}

		return out, nil

	case format.TypeFloat32:
		out := make([]float32, count)
		for i := range out {
			out[i] = math.Float32frombits(src.Uint32(raw[4*i:]))
		}

		return out, nil

	case format.TypeFloat64:
		out := make([]float64, count)
		for i := range out {
			out[i] = math.Float64frombits(src.Uint64(raw[8*i:]))
		}

		return out, nil

	default:
		return nil, fmt.Errorf("%w: invalid element type", errs.ErrUnknownType)
	}
}

func encodeBinary(a *Array, dst endian.EndianEngine) []byte {
	buf := make([]byte, 0, a.Len()*a.typ.Size())

	switch data := a.data.(type) {
	case []int8:
		for _, v := range data {
			buf = append(buf, byte(v))
		}
	case []uint8:
		buf = append(buf, data...)
	case []int16:
		for _, v := range data {
			buf = dst.AppendUint16(buf, uint16(v))
		}
	case []uint16:
		for _, v := range data {
			buf = dst.AppendUint16(buf, v)
		}
	case []int32:
		for _, v := range data {
			buf = dst.AppendUint32(buf, uint32(v))
		}
	case []uint32:
		for _, v := range data {
			buf = dst.AppendUint32(buf, v)
		}
	case []int64:
		for _, v := range data {
			buf = dst.AppendUint64(buf, uint64(v))
		}
	case []uint64:
		for _, v := range data {
			buf = dst.AppendUint64(buf, v)
		}
	case []float32:
		for _, v := range data {
			buf = dst.AppendUint32(buf, math.Float32bits(v))
		}
	case []float64:
		for _, v := range data {
			buf = dst.AppendUint64(buf, math.Float64bits(v))
		}
	}

	return buf
}

func decodeASCII(data []byte, typ format.ElementType, count int) (any, error) {
	toks := strings.Fields(string(data))
	if len(toks) != count {
		return nil, fmt.Errorf("%w: got %d ascii values, need %d", errs.ErrPayloadSize, len(toks), count)
	}

	badToken := func(tok string) error {
		return fmt.Errorf("%w: bad ascii payload value %q", errs.ErrMalformedValue, tok)
	}

	switch typ {
	case format.TypeInt8, format.TypeInt16, format.TypeInt32, format.TypeInt64:
		bits := typ.Size() * 8
		vs := make([]int64, count)
		for i, tok := range toks {
			v, err := strconv.ParseInt(tok, 10, bits)
			if err != nil {
				return nil, badToken(tok)
			}

			vs[i] = v
		}

		switch typ {
		case format.TypeInt8:
			return narrow(vs, func(v int64) int8 { return int8(v) }), nil
		case format.TypeInt16:
			return narrow(vs, func(v int64) int16 { return int16(v) }), nil
		case format.TypeInt32:
			return narrow(vs, func(v int64) int32 { return int32(v) }), nil
		default:
			return vs, nil
		}

	case format.TypeUint8, format.TypeUint16, format.TypeUint32, format.TypeUint64:
		bits := typ.Size() * 8
		vs := make([]uint64, count)
		for i, tok := range toks {
			v, err := strconv.ParseUint(tok, 10, bits)
			if err != nil {
				return nil, badToken(tok)
			}

			vs[i] = v
		}

		switch typ {
		case format.TypeUint8:
			return narrow(vs, func(v uint64) uint8 { return uint8(v) }), nil
		case format.TypeUint16:
			return narrow(vs, func(v uint64) uint16 { return uint16(v) }), nil
		case format.TypeUint32:
			return narrow(vs, func(v uint64) uint32 { return uint32(v) }), nil
		default:
			return vs, nil
		}

	case format.TypeFloat32:
		vs := make([]float32, count)
		for i, tok := range toks {
			v, err := strconv.ParseFloat(tok, 32)
			if err != nil {
				return nil, badToken(tok)
			}

			vs[i] = float32(v)
		}

		return vs, nil

	case format.TypeFloat64:
		vs := make([]float64, count)
		for i, tok := range toks {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, badToken(tok)
			}

			vs[i] = v
		}

		return vs, nil

	default:
		return nil, fmt.Errorf("%w: invalid element type", errs.ErrUnknownType)
	}
}

func narrow[S, D any](src []S, conv func(S) D) []D {
	dst := make([]D, len(src))
	for i, v := range src {
		dst[i] = conv(v)
	}

	return dst
}

// encodeASCII renders all elements as decimal literals. An exactly 2-D
// shape emits one line per slowest-varying index for readability; other
// shapes emit a single delimited run.
func encodeASCII(a *Array, delim byte) []byte {
	toks := asciiTokens(a)

	var sb strings.Builder

	if len(a.sizes) == 2 {
		cols := a.sizes[0]
		for i, tok := range toks {
			sb.WriteString(tok)
			if (i+1)%cols == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(delim)
			}
		}

		return []byte(sb.String())
	}

	for i, tok := range toks {
		if i > 0 {
			sb.WriteByte(delim)
		}

		sb.WriteString(tok)
	}

	sb.WriteByte('\n')

	return []byte(sb.String())
}

func asciiTokens(a *Array) []string {
	toks := make([]string, 0, a.Len())

	switch data := a.data.(type) {
	case []int8:
		for _, v := range data {
			toks = append(toks, strconv.FormatInt(int64(v), 10))
		}
	case []uint8:
		for _, v := range data {
			toks = append(toks, strconv.FormatUint(uint64(v), 10))
		}
	case []int16:
		for _, v := range data {
			toks = append(toks, strconv.FormatInt(int64(v), 10))
		}
	case []uint16:
		for _, v := range data {
			toks = append(toks, strconv.FormatUint(uint64(v), 10))
		}
	case []int32:
		for _, v := range data {
			toks = append(toks, strconv.FormatInt(int64(v), 10))
		}
	case []uint32:
		for _, v := range data {
			toks = append(toks, strconv.FormatUint(uint64(v), 10))
		}
	case []int64:
		for _, v := range data {
			toks = append(toks, strconv.FormatInt(v, 10))
		}
	case []uint64:
		for _, v := range data {
			toks = append(toks, strconv.FormatUint(v, 10))
		}
	case []float32:
		for _, v := range data {
			toks = append(toks, strconv.FormatFloat(float64(v), 'g', -1, 32))
		}
	case []float64:
		for _, v := range data {
			toks = append(toks, strconv.FormatFloat(v, 'g', -1, 64))
		}
	}

	return toks
}
