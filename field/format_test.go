package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/nrrd/format"
)

func TestFormat_Scalars(t *testing.T) {
	s, err := Format(IntValue(-42), false)
	require.NoError(t, err)
	require.Equal(t, "-42", s)

	s, err = Format(DoubleValue(0.1), false)
	require.NoError(t, err)
	require.Equal(t, "0.1", s)

	s, err = Format(DoubleValue(math.NaN()), false)
	require.NoError(t, err)
	require.Equal(t, "nan", s)

	s, err = Format(StringValue("gzip"), false)
	require.NoError(t, err)
	require.Equal(t, "gzip", s)

	s, err = Format(TypeValue(format.TypeFloat32), false)
	require.NoError(t, err)
	require.Equal(t, "float", s)
}

func TestFormat_DoublePrecision(t *testing.T) {
	// Doubles round-trip through 16 significant digits.
	v := 1.0 / 3.0
	s, err := Format(DoubleValue(v), false)
	require.NoError(t, err)
	require.Equal(t, "0.3333333333333333", s)
}

func TestFormat_Lists(t *testing.T) {
	s, err := Format(IntListValue(3, 9, 27), false)
	require.NoError(t, err)
	require.Equal(t, "3 9 27", s)

	s, err = Format(DoubleListValue(1.5, math.NaN()), false)
	require.NoError(t, err)
	require.Equal(t, "1.5 nan", s)
}

func TestFormat_StringList(t *testing.T) {
	v := StringListValue("left ear", "nose")

	s, err := Format(v, false)
	require.NoError(t, err)
	require.Equal(t, "left ear nose", s)

	s, err = Format(v, true)
	require.NoError(t, err)
	require.Equal(t, `"left ear" "nose"`, s)
}

func TestFormat_VectorAndMatrix(t *testing.T) {
	s, err := Format(VectorValue(0, 1.5, -2), false)
	require.NoError(t, err)
	require.Equal(t, "(0,1.5,-2)", s)

	s, err = Format(Value{Kind: KindIntVector, Vector: []float64{1, 0, 0}}, false)
	require.NoError(t, err)
	require.Equal(t, "(1,0,0)", s)

	s, err = Format(MatrixValue([]float64{1, 0}, NoneRow(2)), false)
	require.NoError(t, err)
	require.Equal(t, "(1,0) none", s)
}

// The sentinel law: an all-NaN row formats to none, and none parses to an
// all-NaN row, for both int and double flavors.
func TestNoneSentinelLaw(t *testing.T) {
	for _, kind := range []Kind{KindIntMatrix, KindDoubleMatrix} {
		v := Value{Kind: kind, Matrix: [][]float64{NoneRow(3), {1, 2, 3}}}

		s, err := Format(v, false)
		require.NoError(t, err)
		require.Equal(t, "none (1,2,3)", s)

		back, err := Parse(kind, "m", s)
		require.NoError(t, err)
		require.True(t, IsNoneRow(back.Matrix[0]))
		require.Equal(t, []float64{1, 2, 3}, back.Matrix[1])
	}
}

func TestFormatParse_RoundTrip(t *testing.T) {
	cases := []struct {
		name string
		v    Value
	}{
		{"int", IntValue(7)},
		{"double", DoubleValue(2.5)},
		{"type", TypeValue(format.TypeInt16)},
		{"int list", IntListValue(1, 2, 3)},
		{"double list", DoubleListValue(0.5, 1.25)},
		{"string list", StringListValue("cell", "node")},
		{"vector", VectorValue(1, 0, 0)},
		{"matrix", MatrixValue([]float64{1, 0}, []float64{0, 1})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Format(tc.v, false)
			require.NoError(t, err)

			back, err := Parse(tc.v.Kind, tc.name, s)
			require.NoError(t, err)
			require.Equal(t, tc.v, back)
		})
	}
}
