package field

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/nrrd/errs"
)

// doublePrecision is the number of significant digits used when
// formatting floating-point field values.
const doublePrecision = 16

// Format renders a value back into its header spelling, the exact
// inverse of Parse. The quote flag controls whether string-list elements
// are wrapped in quotes.
func Format(v Value, quote bool) (string, error) {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10), nil

	case KindDouble:
		return formatDouble(v.Double), nil

	case KindString:
		return v.Str, nil

	case KindElementType:
		return v.Type.String(), nil

	case KindIntList:
		toks := make([]string, len(v.Ints))
		for i, n := range v.Ints {
			toks[i] = strconv.FormatInt(n, 10)
		}

		return strings.Join(toks, " "), nil

	case KindDoubleList:
		toks := make([]string, len(v.Doubles))
		for i, f := range v.Doubles {
			toks[i] = formatDouble(f)
		}

		return strings.Join(toks, " "), nil

	case KindStringList:
		if !quote {
			return strings.Join(v.Strs, " "), nil
		}

		toks := make([]string, len(v.Strs))
		for i, s := range v.Strs {
			toks[i] = `"` + s + `"`
		}

		return strings.Join(toks, " "), nil

	case KindIntVector, KindDoubleVector:
		return formatRow(v.Vector, v.Kind == KindIntVector), nil

	case KindIntMatrix, KindDoubleMatrix:
		toks := make([]string, len(v.Matrix))
		for i, row := range v.Matrix {
			toks[i] = formatRow(row, v.Kind == KindIntMatrix)
		}

		return strings.Join(toks, " "), nil

	default:
		return "", fmt.Errorf("%w: cannot format kind %s", errs.ErrMalformedValue, v.Kind)
	}
}

// formatRow renders one vector/matrix row. All-NaN rows re-emit the
// "none" sentinel; integer flavor rows format without a fraction.
func formatRow(row []float64, asInt bool) string {
	if IsNoneRow(row) {
		return noneToken
	}

	toks := make([]string, len(row))
	for i, f := range row {
		if asInt && !math.IsNaN(f) {
			toks[i] = strconv.FormatInt(int64(f), 10)
		} else {
			toks[i] = formatDouble(f)
		}
	}

	return "(" + strings.Join(toks, ",") + ")"
}

func formatDouble(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(f, 'g', doublePrecision, 64)
	}
}
