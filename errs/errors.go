// Package errs defines the sentinel errors returned by the nrrd codec.
//
// Every fatal condition maps to exactly one sentinel so callers can match
// with errors.Is. Call sites wrap the sentinel with fmt.Errorf("...: %w")
// to attach the field name or line number that triggered it.
package errs

import "errors"

var (
	// ErrHeaderSyntax indicates a header line that is not a comment, a
	// blank terminator, or a "name: value" / "key:= value" pair.
	ErrHeaderSyntax = errors.New("malformed header line")

	// ErrUnsupportedVersion indicates a magic line with a format version
	// newer than NRRD0005.
	ErrUnsupportedVersion = errors.New("unsupported NRRD version")

	// ErrUnknownType indicates an element type string that matches no
	// recognized alias.
	ErrUnknownType = errors.New("unknown element type")

	// ErrMalformedValue indicates a field value that does not satisfy the
	// grammar registered for its field.
	ErrMalformedValue = errors.New("malformed field value")

	// ErrMissingField indicates a header without one of the required
	// fields: type, dimension, sizes, encoding.
	ErrMissingField = errors.New("missing required field")

	// ErrShapeMismatch indicates dimension != len(sizes).
	ErrShapeMismatch = errors.New("dimension does not match sizes")

	// ErrUnsupportedEncoding indicates an encoding other than
	// raw, ascii (text, txt) or gzip (gz).
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrIoFailure wraps file or stream open/read/write failures.
	ErrIoFailure = errors.New("i/o failure")

	// ErrDetachedData indicates a header with a "data file" field.
	// Detached payloads are not supported.
	ErrDetachedData = errors.New("detached data files not supported")

	// ErrPayloadSize indicates a payload whose decoded element count does
	// not match the product of sizes.
	ErrPayloadSize = errors.New("payload size mismatch")
)
