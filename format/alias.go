package format

import (
	"fmt"

	"github.com/arloliu/nrrd/errs"
)

// typeAliases maps every recognized element-type spelling to its canonical
// tag. Matching is case-sensitive, following the NRRD specification's
// C-type spellings.
var typeAliases = map[string]ElementType{
	"signed char": TypeInt8,
	"int8":        TypeInt8,
	"int8_t":      TypeInt8,

	"uchar":         TypeUint8,
	"unsigned char": TypeUint8,
	"uint8":         TypeUint8,
	"uint8_t":       TypeUint8,

	"short":            TypeInt16,
	"short int":        TypeInt16,
	"signed short":     TypeInt16,
	"signed short int": TypeInt16,
	"int16":            TypeInt16,
	"int16_t":          TypeInt16,

	"ushort":             TypeUint16,
	"unsigned short":     TypeUint16,
	"unsigned short int": TypeUint16,
	"uint16":             TypeUint16,
	"uint16_t":           TypeUint16,

	"int":        TypeInt32,
	"signed int": TypeInt32,
	"int32":      TypeInt32,
	"int32_t":    TypeInt32,

	"uint":         TypeUint32,
	"unsigned int": TypeUint32,
	"uint32":       TypeUint32,
	"uint32_t":     TypeUint32,

	"longlong":             TypeInt64,
	"long long":            TypeInt64,
	"long long int":        TypeInt64,
	"signed long long":     TypeInt64,
	"signed long long int": TypeInt64,
	"int64":                TypeInt64,
	"int64_t":              TypeInt64,

	"ulonglong":              TypeUint64,
	"unsigned long long":     TypeUint64,
	"unsigned long long int": TypeUint64,
	"uint64":                 TypeUint64,
	"uint64_t":               TypeUint64,

	"float":   TypeFloat32,
	"float32": TypeFloat32,

	"double":  TypeFloat64,
	"float64": TypeFloat64,
}

// Resolve maps an element-type spelling from a header to its canonical tag.
// An unrecognized spelling is a fatal parse error.
func Resolve(alias string) (ElementType, error) {
	if t, ok := typeAliases[alias]; ok {
		return t, nil
	}

	return TypeInvalid, fmt.Errorf("%w: %q", errs.ErrUnknownType, alias)
}
