package nrrd

import (
	"fmt"

	"github.com/arloliu/nrrd/endian"
	"github.com/arloliu/nrrd/field"
	"github.com/arloliu/nrrd/header"
	"github.com/arloliu/nrrd/internal/options"
)

// Option configures a read or write call.
type Option = options.Option[*config]

type config struct {
	suppressWarnings bool
	warnHandler      func(msg string)
	asciiDelimiter   byte
	quoteStringLists bool
	customFields     map[string]field.Kind
	defaultEndian    endian.EndianEngine
	writeVersion     int
}

func newConfig(opts ...Option) (*config, error) {
	cfg := &config{
		asciiDelimiter: ' ',
		defaultEndian:  endian.CheckEndianness(),
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SuppressWarnings drops non-fatal diagnostics such as unknown field
// names instead of surfacing them.
func SuppressWarnings() Option {
	return options.NoError(func(cfg *config) {
		cfg.suppressWarnings = true
	})
}

// WithWarningHandler routes non-fatal diagnostics to fn instead of
// collecting them on the metadata record.
func WithWarningHandler(fn func(msg string)) Option {
	return options.NoError(func(cfg *config) {
		cfg.warnHandler = fn
	})
}

// WithASCIIDelimiter sets the separator written between ascii payload
// values. It must be a space, tab or newline so the output stays
// readable as whitespace-separated literals.
func WithASCIIDelimiter(delim byte) Option {
	return options.New(func(cfg *config) error {
		switch delim {
		case ' ', '\t', '\n':
			cfg.asciiDelimiter = delim
			return nil
		default:
			return fmt.Errorf("invalid ascii delimiter %q", delim)
		}
	})
}

// WithQuotedStringLists wraps each string-list element in quotes when
// writing.
func WithQuotedStringLists() Option {
	return options.NoError(func(cfg *config) {
		cfg.quoteStringLists = true
	})
}

// WithCustomField registers a value grammar for a non-standard field
// name, consulted after the standard table.
func WithCustomField(name string, kind field.Kind) Option {
	return options.New(func(cfg *config) error {
		if kind == field.KindInvalid {
			return fmt.Errorf("invalid grammar for field %q", name)
		}

		if cfg.customFields == nil {
			cfg.customFields = make(map[string]field.Kind)
		}

		cfg.customFields[header.CanonicalName(name)] = kind

		return nil
	})
}

// WithEndian overrides the host byte order used when a header omits the
// endian field, and the order payloads are written in when the record
// does not pin one.
func WithEndian(engine endian.EndianEngine) Option {
	return options.New(func(cfg *config) error {
		if engine == nil {
			return fmt.Errorf("nil endian engine")
		}

		cfg.defaultEndian = engine

		return nil
	})
}

// WithWriteVersion pins the magic-line version written, between 1 and 5.
func WithWriteVersion(version int) Option {
	return options.New(func(cfg *config) error {
		if version < 1 || version > 5 {
			return fmt.Errorf("invalid NRRD version %d", version)
		}

		cfg.writeVersion = version

		return nil
	})
}
