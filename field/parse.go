package field

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/nrrd/errs"
	"github.com/arloliu/nrrd/format"
)

// noneToken is the sentinel spelling for a vector or matrix row with no
// spatial direction. It parses to an all-NaN row.
const noneToken = "none"

// Parse parses the trimmed raw value of a field according to the grammar
// registered for it. The field name is only used for error context.
func Parse(kind Kind, name, raw string) (Value, error) {
	switch kind {
	case KindInt:
		v, err := parseInt(name, raw)
		if err != nil {
			return Value{}, err
		}

		return IntValue(v), nil

	case KindDouble:
		v, err := parseDouble(name, raw)
		if err != nil {
			return Value{}, err
		}

		return DoubleValue(v), nil

	case KindString:
		return StringValue(strings.ToLower(raw)), nil

	case KindElementType:
		typ, err := format.Resolve(raw)
		if err != nil {
			return Value{}, fmt.Errorf("field %q: %w", name, err)
		}

		return TypeValue(typ), nil

	case KindIntList:
		return parseIntList(name, raw)

	case KindDoubleList:
		return parseDoubleList(name, raw)

	case KindStringList:
		return parseStringList(name, raw)

	case KindIntVector, KindDoubleVector:
		row, err := parseRow(name, raw)
		if err != nil {
			return Value{}, err
		}

		return Value{Kind: kind, Vector: row}, nil

	case KindIntMatrix, KindDoubleMatrix:
		rows, err := parseMatrix(name, raw)
		if err != nil {
			return Value{}, err
		}

		return Value{Kind: kind, Matrix: rows}, nil

	default:
		return Value{}, fmt.Errorf("%w: field %q has no grammar", errs.ErrMalformedValue, name)
	}
}

// parseInt parses an integer field. The value is parsed as a float and
// truncated, tolerating fractional text the way legacy readers do.
func parseInt(name, tok string) (int64, error) {
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: field %q: bad integer %q", errs.ErrMalformedValue, name, tok)
	}

	return int64(f), nil
}

func parseDouble(name, tok string) (float64, error) {
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: field %q: bad number %q", errs.ErrMalformedValue, name, tok)
	}

	return f, nil
}

// splitList splits a list value on single spaces. Empty tokens, produced
// by leading, trailing or doubled spaces, are an error.
func splitList(name, raw string) ([]string, error) {
	toks := strings.Split(raw, " ")
	for _, tok := range toks {
		if tok == "" {
			return nil, fmt.Errorf("%w: field %q: empty list token", errs.ErrMalformedValue, name)
		}
	}

	return toks, nil
}

func parseIntList(name, raw string) (Value, error) {
	toks, err := splitList(name, raw)
	if err != nil {
		return Value{}, err
	}

	vs := make([]int64, len(toks))
	for i, tok := range toks {
		if vs[i], err = parseInt(name, tok); err != nil {
			return Value{}, err
		}
	}

	return IntListValue(vs...), nil
}

// parseDoubleList parses a space-separated list of doubles. A "none"
// token is tolerated as NaN, matching the per-axis sentinel of the
// vector and matrix grammars; it re-serializes as "nan".
func parseDoubleList(name, raw string) (Value, error) {
	toks, err := splitList(name, raw)
	if err != nil {
		return Value{}, err
	}

	vs := make([]float64, len(toks))
	for i, tok := range toks {
		if tok == noneToken {
			vs[i] = math.NaN()
			continue
		}

		if vs[i], err = parseDouble(name, tok); err != nil {
			return Value{}, err
		}
	}

	return DoubleListValue(vs...), nil
}

// parseStringList splits a string-list value. When the value contains a
// quote character the whole list must be uniformly quoted: tokens are
// separated by the exact delimiter `" "`, with one leading quote on the
// first token and one trailing quote on the last. Mixed quoting is
// rejected rather than guessed at. Results are lower-cased.
func parseStringList(name, raw string) (Value, error) {
	var toks []string

	if strings.ContainsRune(raw, '"') {
		if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
			return Value{}, fmt.Errorf("%w: field %q: unbalanced quoting", errs.ErrMalformedValue, name)
		}

		toks = strings.Split(raw[1:len(raw)-1], `" "`)
	} else {
		var err error
		if toks, err = splitList(name, raw); err != nil {
			return Value{}, err
		}
	}

	for i, tok := range toks {
		if strings.ContainsRune(tok, '"') {
			return Value{}, fmt.Errorf("%w: field %q: mixed quoting in %q", errs.ErrMalformedValue, name, tok)
		}

		toks[i] = strings.ToLower(tok)
	}

	return StringListValue(toks...), nil
}

// parseRow parses one parenthesized comma-separated row, or the "none"
// sentinel, into a float64 row. Integer flavors share this path; their
// kind only changes formatting.
func parseRow(name, tok string) ([]float64, error) {
	if tok == noneToken {
		return []float64{math.NaN()}, nil
	}

	if len(tok) < 2 || tok[0] != '(' || tok[len(tok)-1] != ')' {
		return nil, fmt.Errorf("%w: field %q: expected (...) or none, got %q", errs.ErrMalformedValue, name, tok)
	}

	parts := strings.Split(tok[1:len(tok)-1], ",")
	row := make([]float64, len(parts))

	for i, part := range parts {
		v, err := parseDouble(name, strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}

		row[i] = v
	}

	return row, nil
}

// parseMatrix parses a space-separated sequence of rows. Every "none"
// token becomes an all-NaN row of the same width as the numeric rows;
// ragged numeric rows are rejected.
func parseMatrix(name, raw string) ([][]float64, error) {
	toks, err := splitList(name, raw)
	if err != nil {
		return nil, err
	}

	rows := make([][]float64, len(toks))
	noneAt := make([]int, 0)
	width := 0

	for i, tok := range toks {
		if tok == noneToken {
			noneAt = append(noneAt, i)
			continue
		}

		row, err := parseRow(name, tok)
		if err != nil {
			return nil, err
		}

		if width == 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, fmt.Errorf("%w: field %q: ragged matrix row %q", errs.ErrMalformedValue, name, tok)
		}

		rows[i] = row
	}

	// A matrix of nothing but none rows has no measurable width.
	if width == 0 {
		width = 1
	}

	for _, i := range noneAt {
		rows[i] = NoneRow(width)
	}

	return rows, nil
}
