package header

import (
	"fmt"
	"io"

	"github.com/arloliu/nrrd/errs"
	"github.com/arloliu/nrrd/field"
)

// WriteConfig controls header serialization.
type WriteConfig struct {
	// QuoteStringLists wraps each string-list element in quotes.
	QuoteStringLists bool

	// Version selects the magic-line version. Zero uses the version the
	// record was read with, or the newest supported version.
	Version int
}

// Write serializes the record: the magic line, the standard fields in
// canonical order using the field separator, any remaining fields in
// insertion order using the key/value separator, and the blank line that
// terminates the header.
func Write(w io.Writer, meta *Metadata, cfg WriteConfig) error {
	version := cfg.Version
	if version == 0 {
		version = meta.Version
	}
	if version == 0 {
		version = maxVersion
	}
	if version < 1 || version > maxVersion {
		return fmt.Errorf("%w: NRRD%04d", errs.ErrUnsupportedVersion, version)
	}

	if err := writef(w, "NRRD%04d\n", version); err != nil {
		return err
	}

	written := make(map[string]bool, len(meta.order))

	for _, name := range field.WriteOrder() {
		value, ok := meta.fields[name]
		if !ok {
			continue
		}

		if err := writeField(w, meta, name, value, ": ", cfg.QuoteStringLists); err != nil {
			return err
		}

		written[name] = true
	}

	for _, name := range meta.order {
		if written[name] {
			continue
		}

		if err := writeField(w, meta, name, meta.fields[name], ":= ", cfg.QuoteStringLists); err != nil {
			return err
		}
	}

	return writef(w, "\n")
}

func writeField(w io.Writer, meta *Metadata, name string, v field.Value, sep string, quote bool) error {
	formatted, err := field.Format(v, quote)
	if err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}

	return writef(w, "%s%s%s\n", meta.DisplayName(name), sep, formatted)
}

func writef(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrIoFailure, err)
	}

	return nil
}
