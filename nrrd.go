// Package nrrd reads and writes NRRD ("Nearly Raw Raster Data") files: a
// line-oriented text header describing an N-dimensional array, followed
// by the array payload in raw, ascii or gzip encoding.
//
// # Basic Usage
//
// Reading a file yields the typed array and the parsed header record:
//
//	arr, meta, err := nrrd.ReadFile("volume.nrrd")
//	if err != nil {
//	    return err
//	}
//	sizes := arr.Sizes()          // on-disk order, fastest axis first
//	data := arr.Data().([]uint16) // flat buffer in on-disk order
//
// Writing reverses the pipeline. Required header fields that are absent
// from the record are filled in from the array:
//
//	meta := header.NewMetadata()
//	meta.Set("encoding", field.StringValue("gzip"))
//	err := nrrd.WriteFile("out.nrrd", arr, meta)
//
// Reads and writes are pure functions of their inputs plus the supplied
// options; no process-wide state is touched, so independent calls are
// safe to run concurrently.
//
// # Presentation Order
//
// NRRD stores the fastest-varying axis first, the reverse of row-major
// presentation order. Array.At takes presentation-order coordinates and
// Array.ReverseAxes materializes the reversed layout; the flat buffer a
// read returns is always in on-disk order so that writing it back is an
// exact inverse.
package nrrd

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/nrrd/endian"
	"github.com/arloliu/nrrd/errs"
	"github.com/arloliu/nrrd/field"
	"github.com/arloliu/nrrd/format"
	"github.com/arloliu/nrrd/header"
	"github.com/arloliu/nrrd/payload"
)

// Read parses a complete NRRD stream: header, then payload.
//
// On success it returns the decoded array and the metadata record. On
// any error both results are nil; no partial record escapes.
func Read(r io.Reader, opts ...Option) (*payload.Array, *header.Metadata, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, nil, err
	}

	return read(bufio.NewReader(r), cfg)
}

// Decode parses a complete NRRD file held in memory.
func Decode(data []byte, opts ...Option) (*payload.Array, *header.Metadata, error) {
	return Read(bytes.NewReader(data), opts...)
}

// ReadFile reads and parses the named NRRD file. The file handle is
// released on every path, including parse errors.
func ReadFile(path string, opts ...Option) (*payload.Array, *header.Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errs.ErrIoFailure, err)
	}
	defer f.Close()

	return Read(f, opts...)
}

func read(br *bufio.Reader, cfg *config) (*payload.Array, *header.Metadata, error) {
	meta, err := header.Read(br, header.Config{
		Custom:           cfg.customFields,
		SuppressWarnings: cfg.suppressWarnings,
		Warn:             cfg.warnHandler,
		DefaultEndian:    cfg.defaultEndian,
	})
	if err != nil {
		return nil, nil, err
	}

	data, err := io.ReadAll(br)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errs.ErrIoFailure, err)
	}

	enc, err := meta.Encoding()
	if err != nil {
		return nil, nil, err
	}

	src, err := meta.ByteOrder(cfg.defaultEndian)
	if err != nil {
		return nil, nil, err
	}

	arr, err := payload.Decode(data, meta.ElementType(), meta.Sizes(), enc, src)
	if err != nil {
		return nil, nil, err
	}

	return arr, meta, nil
}

// Write serializes the array and record as a complete NRRD stream.
//
// Required fields missing from the record are filled in from the array
// (encoding defaults to raw); fields present in both must agree. The
// endian field is recorded for multi-byte binary encodings so the output
// is self-describing. A nil record writes a minimal header.
func Write(w io.Writer, a *payload.Array, meta *header.Metadata, opts ...Option) error {
	cfg, err := newConfig(opts...)
	if err != nil {
		return err
	}

	if a == nil {
		return errors.New("nrrd: nil array")
	}

	if meta == nil {
		meta = header.NewMetadata()
	}

	if err := reconcile(meta, a); err != nil {
		return err
	}

	enc, err := meta.Encoding()
	if err != nil {
		return err
	}

	engine, err := meta.ByteOrder(cfg.defaultEndian)
	if err != nil {
		return err
	}

	if enc != format.EncodingASCII && a.Type().Size() > 1 && !meta.Has("endian") {
		meta.Set("endian", field.StringValue(endian.Format(engine)))
	}

	writeCfg := header.WriteConfig{
		QuoteStringLists: cfg.quoteStringLists,
		Version:          cfg.writeVersion,
	}
	if err := header.Write(w, meta, writeCfg); err != nil {
		return err
	}

	data, err := payload.Encode(a, enc, engine, cfg.asciiDelimiter)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrIoFailure, err)
	}

	return nil
}

// Encode serializes the array and record into memory.
func Encode(a *payload.Array, meta *header.Metadata, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, a, meta, opts...); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteFile serializes to the named file, creating or truncating it.
func WriteFile(path string, a *payload.Array, meta *header.Metadata, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrIoFailure, err)
	}

	if err := Write(f, a, meta, opts...); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrIoFailure, err)
	}

	return nil
}

// reconcile fills the required fields from the array and rejects records
// that disagree with it.
func reconcile(meta *header.Metadata, a *payload.Array) error {
	if v, ok := meta.Get("type"); ok {
		if v.Kind != field.KindElementType || v.Type != a.Type() {
			return fmt.Errorf("%w: record type does not match array type %s", errs.ErrMalformedValue, a.Type())
		}
	} else {
		meta.Set("type", field.TypeValue(a.Type()))
	}

	sizes := a.Sizes()

	if recorded := meta.Sizes(); recorded != nil {
		if len(recorded) != len(sizes) {
			return fmt.Errorf("%w: record has %d sizes, array has %d axes", errs.ErrShapeMismatch, len(recorded), len(sizes))
		}

		for i := range sizes {
			if recorded[i] != sizes[i] {
				return fmt.Errorf("%w: record sizes disagree with array shape", errs.ErrShapeMismatch)
			}
		}
	} else {
		ints := make([]int64, len(sizes))
		for i, n := range sizes {
			ints[i] = int64(n)
		}

		meta.Set("sizes", field.IntListValue(ints...))
	}

	if meta.Has("dimension") {
		if meta.Dimension() != len(sizes) {
			return fmt.Errorf("%w: dimension %d with %d sizes", errs.ErrShapeMismatch, meta.Dimension(), len(sizes))
		}
	} else {
		meta.Set("dimension", field.IntValue(int64(len(sizes))))
	}

	if !meta.Has("encoding") {
		meta.Set("encoding", field.StringValue(format.EncodingRaw.String()))
	}

	return nil
}
