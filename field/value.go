// Package field implements the header field schema of the NRRD format:
// the grammar assigned to each canonical field name, the canonical write
// order, and the bidirectional value codec for every grammar.
package field

import (
	"math"

	"github.com/arloliu/nrrd/format"
)

// Kind identifies the value grammar of a header field.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindDouble
	KindString
	KindElementType
	KindIntList
	KindDoubleList
	KindStringList
	KindIntVector
	KindDoubleVector
	KindIntMatrix
	KindDoubleMatrix
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindElementType:
		return "element type"
	case KindIntList:
		return "int list"
	case KindDoubleList:
		return "double list"
	case KindStringList:
		return "string list"
	case KindIntVector:
		return "int vector"
	case KindDoubleVector:
		return "double vector"
	case KindIntMatrix:
		return "int matrix"
	case KindDoubleMatrix:
		return "double matrix"
	default:
		return "invalid"
	}
}

// Value holds the parsed result of one field grammar. Exactly one payload
// slot is populated, selected by Kind.
//
// Vector and matrix values store float64 regardless of int/double flavor;
// the kind controls formatting. This lets the all-NaN "none" sentinel row
// work uniformly for both flavors.
type Value struct {
	Kind Kind

	Int     int64
	Double  float64
	Str     string
	Type    format.ElementType
	Ints    []int64
	Doubles []float64
	Strs    []string
	Vector  []float64
	Matrix  [][]float64
}

// IntValue builds a KindInt value.
func IntValue(v int64) Value { return Value{Kind: KindInt, Int: v} }

// DoubleValue builds a KindDouble value.
func DoubleValue(v float64) Value { return Value{Kind: KindDouble, Double: v} }

// StringValue builds a KindString value.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// TypeValue builds a KindElementType value.
func TypeValue(t format.ElementType) Value { return Value{Kind: KindElementType, Type: t} }

// IntListValue builds a KindIntList value.
func IntListValue(vs ...int64) Value { return Value{Kind: KindIntList, Ints: vs} }

// DoubleListValue builds a KindDoubleList value.
func DoubleListValue(vs ...float64) Value { return Value{Kind: KindDoubleList, Doubles: vs} }

// StringListValue builds a KindStringList value.
func StringListValue(ss ...string) Value { return Value{Kind: KindStringList, Strs: ss} }

// VectorValue builds a KindDoubleVector value.
func VectorValue(vs ...float64) Value { return Value{Kind: KindDoubleVector, Vector: vs} }

// MatrixValue builds a KindDoubleMatrix value.
func MatrixValue(rows ...[]float64) Value { return Value{Kind: KindDoubleMatrix, Matrix: rows} }

// NoneRow builds an all-NaN row of the given width, the "not a spatial
// axis" sentinel for vector and matrix fields.
func NoneRow(width int) []float64 {
	row := make([]float64, width)
	for i := range row {
		row[i] = math.NaN()
	}

	return row
}

// IsNoneRow reports whether every entry of the row is NaN.
func IsNoneRow(row []float64) bool {
	if len(row) == 0 {
		return false
	}

	for _, v := range row {
		if !math.IsNaN(v) {
			return false
		}
	}

	return true
}
