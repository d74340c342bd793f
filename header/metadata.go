// Package header implements the line-oriented NRRD header: the magic
// line, comment and field grammar, the ordered metadata record, and the
// canonical writer.
package header

import (
	"strings"
	"unicode"

	"github.com/arloliu/nrrd/endian"
	"github.com/arloliu/nrrd/field"
	"github.com/arloliu/nrrd/format"
)

// Metadata is the ordered record of parsed header fields, keyed by
// canonical (space-stripped, lower-cased) field name. A side table maps
// canonical names back to the display spelling found in the input, used
// only to reconstruct output formatting.
type Metadata struct {
	// Version is the magic-line format version (1..5). Zero means the
	// record was built in code rather than read from a file.
	Version int

	// Warnings collects non-fatal parse diagnostics, such as unknown
	// field names stored as opaque strings.
	Warnings []string

	fields  map[string]field.Value
	order   []string
	display map[string]string
}

// NewMetadata creates an empty metadata record.
func NewMetadata() *Metadata {
	return &Metadata{
		fields:  make(map[string]field.Value),
		display: make(map[string]string),
	}
}

// CanonicalName reduces a field name to its canonical form: lower-cased
// with all whitespace stripped.
func CanonicalName(name string) string {
	lower := strings.ToLower(name)

	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, lower)
}

// Set stores a value under the canonical form of name, preserving the
// insertion position of an existing key. A name containing whitespace is
// remembered as the display spelling for output.
func (m *Metadata) Set(name string, v field.Value) {
	canonical := CanonicalName(name)

	if canonical != name {
		m.display[canonical] = name
	}

	if _, ok := m.fields[canonical]; !ok {
		m.order = append(m.order, canonical)
	}

	m.fields[canonical] = v
}

// Get returns the value stored under the canonical form of name.
func (m *Metadata) Get(name string) (field.Value, bool) {
	v, ok := m.fields[CanonicalName(name)]
	return v, ok
}

// Has reports whether a field is present.
func (m *Metadata) Has(name string) bool {
	_, ok := m.fields[CanonicalName(name)]
	return ok
}

// Delete removes a field, if present.
func (m *Metadata) Delete(name string) {
	canonical := CanonicalName(name)
	if _, ok := m.fields[canonical]; !ok {
		return
	}

	delete(m.fields, canonical)
	delete(m.display, canonical)

	for i, key := range m.order {
		if key == canonical {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Keys returns the canonical field names in insertion order.
func (m *Metadata) Keys() []string {
	keys := make([]string, len(m.order))
	copy(keys, m.order)

	return keys
}

// DisplayName returns the spelling used when emitting the field: the
// name recorded from the input if any, else the default spelling for
// canonical spaced fields, else the canonical name itself.
func (m *Metadata) DisplayName(canonical string) string {
	if display, ok := m.display[canonical]; ok {
		return display
	}

	return field.DisplayName(canonical)
}

// Sizes returns the array shape in on-disk order, fastest-varying axis
// first, or nil if the sizes field is absent.
func (m *Metadata) Sizes() []int {
	v, ok := m.fields["sizes"]
	if !ok || v.Kind != field.KindIntList {
		return nil
	}

	sizes := make([]int, len(v.Ints))
	for i, n := range v.Ints {
		sizes[i] = int(n)
	}

	return sizes
}

// Dimension returns the declared dimension, or zero if absent.
func (m *Metadata) Dimension() int {
	v, ok := m.fields["dimension"]
	if !ok || v.Kind != field.KindInt {
		return 0
	}

	return int(v.Int)
}

// ElementType returns the declared element type, or TypeInvalid if absent.
func (m *Metadata) ElementType() format.ElementType {
	v, ok := m.fields["type"]
	if !ok || v.Kind != field.KindElementType {
		return format.TypeInvalid
	}

	return v.Type
}

// Encoding resolves the declared payload encoding.
func (m *Metadata) Encoding() (format.Encoding, error) {
	v, ok := m.fields["encoding"]
	if !ok {
		return format.EncodingInvalid, missingField("encoding")
	}

	return format.ParseEncoding(v.Str)
}

// ByteOrder resolves the declared byte order, falling back to def when
// the endian field is absent.
func (m *Metadata) ByteOrder(def endian.EndianEngine) (endian.EndianEngine, error) {
	v, ok := m.fields["endian"]
	if !ok {
		return def, nil
	}

	return endian.Parse(v.Str)
}
