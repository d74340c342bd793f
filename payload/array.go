// Package payload implements the NRRD payload transcoder: raw, ascii and
// gzip encodings, byte-order correction, and the axis-reorder contract
// between on-disk fastest-varying-first layout and row-major presentation.
package payload

import (
	"fmt"
	"math"

	"github.com/arloliu/nrrd/errs"
	"github.com/arloliu/nrrd/format"
)

// Array owns a contiguous buffer of product(sizes) elements, flat in
// on-disk order: sizes[0] is the fastest-varying axis. Data holds one of
// []int8, []uint8, ..., []float64 matching the element type.
//
// Presentation order reverses the axes: the value at logical coordinate
// vector c equals the value at file coordinate reverse(c). At applies
// that permutation; the flat buffer itself is never permuted on read or
// write, so the contract inverts exactly on the write path.
type Array struct {
	typ   format.ElementType
	sizes []int
	data  any
}

// New creates an array over an existing flat buffer. The buffer's
// element type must match typ and its length must equal product(sizes).
func New(typ format.ElementType, sizes []int, data any) (*Array, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: empty sizes", errs.ErrShapeMismatch)
	}

	count, err := elementCount(sizes)
	if err != nil {
		return nil, err
	}

	length, err := bufferLen(typ, data)
	if err != nil {
		return nil, err
	}

	if length != count {
		return nil, fmt.Errorf("%w: buffer holds %d elements, sizes need %d", errs.ErrPayloadSize, length, count)
	}

	owned := make([]int, len(sizes))
	copy(owned, sizes)

	return &Array{typ: typ, sizes: owned, data: data}, nil
}

// elementCount multiplies sizes with an overflow guard. Headers are
// untrusted input; an overflowing product must surface as an error, not
// wrap around into a plausible small count.
func elementCount(sizes []int) (int, error) {
	count := 1
	for _, n := range sizes {
		if n <= 0 {
			return 0, fmt.Errorf("%w: non-positive size %d", errs.ErrShapeMismatch, n)
		}

		if n > math.MaxInt/count {
			return 0, fmt.Errorf("%w: sizes product overflows", errs.ErrShapeMismatch)
		}

		count *= n
	}

	return count, nil
}

// Type returns the element type.
func (a *Array) Type() format.ElementType {
	return a.typ
}

// Sizes returns the shape in on-disk order, fastest-varying axis first.
func (a *Array) Sizes() []int {
	sizes := make([]int, len(a.sizes))
	copy(sizes, a.sizes)

	return sizes
}

// Dimension returns the number of axes.
func (a *Array) Dimension() int {
	return len(a.sizes)
}

// Len returns the total element count.
func (a *Array) Len() int {
	count := 1
	for _, n := range a.sizes {
		count *= n
	}

	return count
}

// Data returns the flat buffer in on-disk order.
func (a *Array) Data() any {
	return a.data
}

// Permutation returns the axis permutation from file order to
// presentation order: [N-1, ..., 0]. A 1-D array is exempt and returns
// the identity.
func (a *Array) Permutation() []int {
	n := len(a.sizes)
	perm := make([]int, n)

	if n == 1 {
		return perm
	}

	for i := range perm {
		perm[i] = n - 1 - i
	}

	return perm
}

// At returns the element at a logical (presentation-order) coordinate
// vector, remapping it onto the file-order buffer.
func (a *Array) At(coords ...int) (any, error) {
	n := len(a.sizes)
	if len(coords) != n {
		return nil, fmt.Errorf("%w: got %d coordinates for %d axes", errs.ErrShapeMismatch, len(coords), n)
	}

	idx := 0
	stride := 1

	// File axis i is presentation axis n-1-i; a single axis maps to itself.
	for i := 0; i < n; i++ {
		c := coords[n-1-i]
		if c < 0 || c >= a.sizes[i] {
			return nil, fmt.Errorf("%w: coordinate %d out of range for axis size %d", errs.ErrShapeMismatch, c, a.sizes[i])
		}

		idx += c * stride
		stride *= a.sizes[i]
	}

	return a.element(idx), nil
}

// ReverseAxes returns a new array with the axis order fully reversed and
// the buffer physically permuted to match. Applying it twice restores the
// original layout; a 1-D array comes back as a plain copy.
func (a *Array) ReverseAxes() *Array {
	reversed := make([]int, len(a.sizes))
	for i, n := range a.sizes {
		reversed[len(a.sizes)-1-i] = n
	}

	out := &Array{typ: a.typ, sizes: reversed}

	switch src := a.data.(type) {
	case []int8:
		out.data = permuteReversed(src, a.sizes)
	case []uint8:
		out.data = permuteReversed(src, a.sizes)
	case []int16:
		out.data = permuteReversed(src, a.sizes)
	case []uint16:
		out.data = permuteReversed(src, a.sizes)
	case []int32:
		out.data = permuteReversed(src, a.sizes)
	case []uint32:
		out.data = permuteReversed(src, a.sizes)
	case []int64:
		out.data = permuteReversed(src, a.sizes)
	case []uint64:
		out.data = permuteReversed(src, a.sizes)
	case []float32:
		out.data = permuteReversed(src, a.sizes)
	case []float64:
		out.data = permuteReversed(src, a.sizes)
	}

	return out
}

// permuteReversed copies src, shaped by sizes fastest-first, into a new
// buffer whose fastest axis is the old slowest one.
func permuteReversed[T any](src []T, sizes []int) []T {
	n := len(sizes)
	dst := make([]T, len(src))

	if n == 1 {
		copy(dst, src)
		return dst
	}

	// Strides of the destination layout, indexed by source axis: source
	// axis i becomes destination axis n-1-i.
	dstStride := make([]int, n)
	stride := 1
	for i := n - 1; i >= 0; i-- {
		dstStride[i] = stride
		stride *= sizes[i]
	}

	coords := make([]int, n)
	for i := range src {
		j := 0
		for k := 0; k < n; k++ {
			j += coords[k] * dstStride[k]
		}

		dst[j] = src[i]

		for k := 0; k < n; k++ {
			coords[k]++
			if coords[k] < sizes[k] {
				break
			}

			coords[k] = 0
		}
	}

	return dst
}

func (a *Array) element(i int) any {
	switch data := a.data.(type) {
	case []int8:
		return data[i]
	case []uint8:
		return data[i]
	case []int16:
		return data[i]
	case []uint16:
		return data[i]
	case []int32:
		return data[i]
	case []uint32:
		return data[i]
	case []int64:
		return data[i]
	case []uint64:
		return data[i]
	case []float32:
		return data[i]
	case []float64:
		return data[i]
	default:
		return nil
	}
}

// bufferLen validates that data is the slice type matching typ and
// returns its length.
func bufferLen(typ format.ElementType, data any) (int, error) {
	switch typ {
	case format.TypeInt8:
		if s, ok := data.([]int8); ok {
			return len(s), nil
		}
	case format.TypeUint8:
		if s, ok := data.([]uint8); ok {
			return len(s), nil
		}
	case format.TypeInt16:
		if s, ok := data.([]int16); ok {
			return len(s), nil
		}
	case format.TypeUint16:
		if s, ok := data.([]uint16); ok {
			return len(s), nil
		}
	case format.TypeInt32:
		if s, ok := data.([]int32); ok {
			return len(s), nil
		}
	case format.TypeUint32:
		if s, ok := data.([]uint32); ok {
			return len(s), nil
		}
	case format.TypeInt64:
		if s, ok := data.([]int64); ok {
			return len(s), nil
		}
	case format.TypeUint64:
		if s, ok := data.([]uint64); ok {
			return len(s), nil
		}
	case format.TypeFloat32:
		if s, ok := data.([]float32); ok {
			return len(s), nil
		}
	case format.TypeFloat64:
		if s, ok := data.([]float64); ok {
			return len(s), nil
		}
	default:
		return 0, fmt.Errorf("%w: invalid element type", errs.ErrUnknownType)
	}

	return 0, fmt.Errorf("%w: buffer type %T does not match element type %s", errs.ErrUnknownType, data, typ)
}
