package header

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/arloliu/nrrd/endian"
	"github.com/arloliu/nrrd/errs"
	"github.com/arloliu/nrrd/field"
)

// maxVersion is the newest magic-line format version this reader accepts.
const maxVersion = 5

// Config controls header parsing.
type Config struct {
	// Custom supplies grammars for non-standard field names, keyed by
	// canonical name. Standard fields cannot be overridden.
	Custom map[string]field.Kind

	// SuppressWarnings drops non-fatal diagnostics instead of surfacing them.
	SuppressWarnings bool

	// Warn receives non-fatal diagnostics. When nil, diagnostics are
	// collected on the returned Metadata instead.
	Warn func(msg string)

	// DefaultEndian is recorded as the endian field when the header omits
	// it. Nil leaves the field absent.
	DefaultEndian endian.EndianEngine
}

// separatorRe matches the field separator: a colon, an optional equals
// sign, and any following spaces or tabs. Both ":" and ":=" variants are
// treated identically on read.
var separatorRe = regexp.MustCompile(`:=?[ \t]*`)

// Read parses the header from br, consuming input through the blank line
// (or end of input) that terminates it. The remaining bytes on br are the
// payload. On any error no metadata is returned.
func Read(br *bufio.Reader, cfg Config) (*Metadata, error) {
	meta := NewMetadata()

	warn := func(msg string) {
		if cfg.SuppressWarnings {
			return
		}

		if cfg.Warn != nil {
			cfg.Warn(msg)
			return
		}

		meta.Warnings = append(meta.Warnings, msg)
	}

	magic, _, err := readLine(br)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrIoFailure, err)
	}

	version, err := parseMagic(magic)
	if err != nil {
		return nil, err
	}

	meta.Version = version

	for lineNo := 2; ; lineNo++ {
		line, eof, err := readLine(br)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrIoFailure, err)
		}

		// A blank line, or the end of input, terminates the header.
		if line == "" {
			break
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		if err := parseLine(meta, cfg, warn, line, lineNo); err != nil {
			return nil, err
		}

		if eof {
			break
		}
	}

	if err := validate(meta, cfg); err != nil {
		return nil, err
	}

	return meta, nil
}

// readLine returns the next line with its terminator stripped. The bool
// result reports that the input ended with this line.
func readLine(br *bufio.Reader) (string, bool, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return strings.TrimRight(line, "\r\n"), true, nil
		}

		return "", false, err
	}

	return strings.TrimRight(line, "\r\n"), false, nil
}

// parseMagic validates the "NRRD000v" magic line: the literal NRRD
// followed by exactly four digits. Versions newer than maxVersion are
// rejected before any field is parsed.
func parseMagic(line string) (int, error) {
	rest, ok := strings.CutPrefix(line, "NRRD")
	if !ok || len(rest) != 4 {
		return 0, fmt.Errorf("%w: not an NRRD magic line: %q", errs.ErrHeaderSyntax, line)
	}

	for _, r := range rest {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: bad magic version in %q", errs.ErrHeaderSyntax, line)
		}
	}

	version, err := strconv.Atoi(rest)
	if err != nil || version < 1 {
		return 0, fmt.Errorf("%w: bad magic version in %q", errs.ErrHeaderSyntax, line)
	}

	if version > maxVersion {
		return 0, fmt.Errorf("%w: NRRD%04d", errs.ErrUnsupportedVersion, version)
	}

	return version, nil
}

// parseLine splits one field or key/value line, resolves its grammar and
// stores the parsed value.
func parseLine(meta *Metadata, cfg Config, warn func(string), line string, lineNo int) error {
	loc := separatorRe.FindStringIndex(line)
	if loc == nil || loc[0] == 0 {
		return fmt.Errorf("%w: line %d: %q", errs.ErrHeaderSyntax, lineNo, line)
	}

	name := strings.ToLower(line[:loc[0]])
	raw := strings.TrimSpace(line[loc[1]:])

	canonical := name
	if strings.ContainsFunc(name, unicode.IsSpace) {
		canonical = CanonicalName(name)
	}

	kind, known := field.Lookup(canonical, cfg.Custom)
	if !known {
		warn(fmt.Sprintf("unknown field %q stored as string", name))
	}

	value, err := field.Parse(kind, canonical, raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", lineNo, err)
	}

	meta.Set(name, value)

	return nil
}

func missingField(name string) error {
	return fmt.Errorf("%w: %s", errs.ErrMissingField, name)
}

// validate enforces the post-parse invariants: required fields present,
// no detached data file, positive sizes, dimension matching the size
// count, a supported encoding, and a resolvable endian value.
func validate(meta *Metadata, cfg Config) error {
	for _, name := range []string{"type", "dimension", "sizes", "encoding"} {
		if !meta.Has(name) {
			return missingField(name)
		}
	}

	if meta.Has("datafile") {
		return errs.ErrDetachedData
	}

	sizes := meta.Sizes()
	for _, n := range sizes {
		if n <= 0 {
			return fmt.Errorf("%w: field \"sizes\": non-positive size %d", errs.ErrMalformedValue, n)
		}
	}

	if meta.Dimension() != len(sizes) {
		return fmt.Errorf("%w: dimension %d with %d sizes", errs.ErrShapeMismatch, meta.Dimension(), len(sizes))
	}

	if _, err := meta.Encoding(); err != nil {
		return err
	}

	if !meta.Has("endian") {
		if cfg.DefaultEndian != nil {
			meta.Set("endian", field.StringValue(endian.Format(cfg.DefaultEndian)))
		}

		return nil
	}

	if _, err := meta.ByteOrder(nil); err != nil {
		return fmt.Errorf("%w: field \"endian\": %v", errs.ErrMalformedValue, err)
	}

	return nil
}
