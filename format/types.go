// Package format defines the element types and payload encodings of the
// NRRD container format, with alias resolution between the many accepted
// header spellings and the single canonical tag used internally.
package format

import (
	"fmt"

	"github.com/arloliu/nrrd/errs"
)

type (
	// ElementType identifies the numeric type of one array element.
	ElementType uint8

	// Encoding identifies how the payload bytes are stored after the header.
	Encoding uint8
)

const (
	TypeInvalid ElementType = iota
	TypeInt8
	TypeUint8
	TypeInt16
	TypeUint16
	TypeInt32
	TypeUint32
	TypeInt64
	TypeUint64
	TypeFloat32
	TypeFloat64
)

const (
	EncodingInvalid Encoding = iota
	EncodingRaw              // raw binary, host-width elements
	EncodingASCII            // whitespace-separated decimal literals
	EncodingGzip             // gzip-compressed raw binary
)

// Size returns the byte width of one element of the type.
func (t ElementType) Size() int {
	switch t {
	case TypeInt8, TypeUint8:
		return 1
	case TypeInt16, TypeUint16:
		return 2
	case TypeInt32, TypeUint32, TypeFloat32:
		return 4
	case TypeInt64, TypeUint64, TypeFloat64:
		return 8
	default:
		return 0
	}
}

// String returns the canonical on-disk spelling of the type.
//
// Note the NRRD asymmetry inherited from the C-type alias table:
// TypeFloat32 spells "float" and TypeFloat64 spells "double", while the
// integer types use their width-suffixed names.
func (t ElementType) String() string {
	switch t {
	case TypeInt8:
		return "int8"
	case TypeUint8:
		return "uint8"
	case TypeInt16:
		return "int16"
	case TypeUint16:
		return "uint16"
	case TypeInt32:
		return "int32"
	case TypeUint32:
		return "uint32"
	case TypeInt64:
		return "int64"
	case TypeUint64:
		return "uint64"
	case TypeFloat32:
		return "float"
	case TypeFloat64:
		return "double"
	default:
		return "invalid"
	}
}

// IsFloat reports whether the type is a floating-point type.
func (t ElementType) IsFloat() bool {
	return t == TypeFloat32 || t == TypeFloat64
}

// IsSigned reports whether the type is a signed integer type.
func (t ElementType) IsSigned() bool {
	switch t {
	case TypeInt8, TypeInt16, TypeInt32, TypeInt64:
		return true
	default:
		return false
	}
}

// String returns the canonical on-disk spelling of the encoding.
func (e Encoding) String() string {
	switch e {
	case EncodingRaw:
		return "raw"
	case EncodingASCII:
		return "ascii"
	case EncodingGzip:
		return "gzip"
	default:
		return "invalid"
	}
}

// ParseEncoding resolves an encoding spelling from a header value.
// Accepted aliases: "raw"; "ascii", "text", "txt"; "gzip", "gz".
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "raw":
		return EncodingRaw, nil
	case "ascii", "text", "txt":
		return EncodingASCII, nil
	case "gzip", "gz":
		return EncodingGzip, nil
	default:
		return EncodingInvalid, fmt.Errorf("%w: %q", errs.ErrUnsupportedEncoding, s)
	}
}
