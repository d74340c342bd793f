package header

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/nrrd/endian"
	"github.com/arloliu/nrrd/errs"
	"github.com/arloliu/nrrd/field"
	"github.com/arloliu/nrrd/format"
)

func parse(t *testing.T, input string, cfg Config) (*Metadata, error) {
	t.Helper()
	return Read(bufio.NewReader(strings.NewReader(input)), cfg)
}

const minimalHeader = "NRRD0004\ntype: uint8\ndimension: 1\nsizes: 27\nencoding: ascii\n\n"

func TestRead_Minimal(t *testing.T) {
	meta, err := parse(t, minimalHeader, Config{})
	require.NoError(t, err)

	require.Equal(t, 4, meta.Version)
	require.Equal(t, format.TypeUint8, meta.ElementType())
	require.Equal(t, 1, meta.Dimension())
	require.Equal(t, []int{27}, meta.Sizes())

	enc, err := meta.Encoding()
	require.NoError(t, err)
	require.Equal(t, format.EncodingASCII, enc)
}

func TestRead_CommentsAndCRLF(t *testing.T) {
	input := "NRRD0001\r\n# a comment\r\ntype: int16\r\n# another\r\ndimension: 2\r\nsizes: 4 5\r\nencoding: raw\r\nendian: little\r\n\r\n"

	meta, err := parse(t, input, Config{})
	require.NoError(t, err)
	require.Equal(t, 1, meta.Version)
	require.Equal(t, []int{4, 5}, meta.Sizes())
}

func TestRead_HeaderEndsAtEOF(t *testing.T) {
	// No blank line; the header runs to the end of input.
	input := "NRRD0004\ntype: uint8\ndimension: 1\nsizes: 3\nencoding: raw"

	meta, err := parse(t, input, Config{})
	require.NoError(t, err)
	require.Equal(t, []int{3}, meta.Sizes())
}

func TestRead_SpacedFieldName(t *testing.T) {
	input := "NRRD0004\ntype: uint32\ndimension: 3\nsizes: 3 3 3\nspace directions: (1,0,0) (0,1,0) (0,0,1)\nencoding: raw\nendian: little\n\n"

	meta, err := parse(t, input, Config{})
	require.NoError(t, err)

	v, ok := meta.Get("spacedirections")
	require.True(t, ok)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, v.Matrix)
	require.Equal(t, "space directions", meta.DisplayName("spacedirections"))
}

func TestRead_CustomKeyValue(t *testing.T) {
	input := "NRRD0004\ntype: uint8\ndimension: 1\nsizes: 3\nencoding: raw\nversion:= 2.1.0\n\n"

	meta, err := parse(t, input, Config{})
	require.NoError(t, err)

	v, ok := meta.Get("version")
	require.True(t, ok)
	require.Equal(t, field.KindString, v.Kind)
	require.Equal(t, "2.1.0", v.Str)
	require.Len(t, meta.Warnings, 1)
	require.Contains(t, meta.Warnings[0], "version")
}

func TestRead_CustomGrammarOverride(t *testing.T) {
	input := "NRRD0004\ntype: uint8\ndimension: 1\nsizes: 3\nencoding: raw\ngradients:= (1,0) (0,1)\n\n"

	cfg := Config{Custom: map[string]field.Kind{"gradients": field.KindDoubleMatrix}}
	meta, err := parse(t, input, cfg)
	require.NoError(t, err)

	v, ok := meta.Get("gradients")
	require.True(t, ok)
	require.Equal(t, [][]float64{{1, 0}, {0, 1}}, v.Matrix)
	require.Empty(t, meta.Warnings)
}

func TestRead_WarningDelivery(t *testing.T) {
	input := "NRRD0004\ntype: uint8\ndimension: 1\nsizes: 3\nencoding: raw\nmystery: 5\n\n"

	t.Run("handler", func(t *testing.T) {
		var got []string
		cfg := Config{Warn: func(msg string) { got = append(got, msg) }}

		meta, err := parse(t, input, cfg)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Empty(t, meta.Warnings)
	})

	t.Run("suppressed", func(t *testing.T) {
		var got []string
		cfg := Config{SuppressWarnings: true, Warn: func(msg string) { got = append(got, msg) }}

		meta, err := parse(t, input, cfg)
		require.NoError(t, err)
		require.Empty(t, got)
		require.Empty(t, meta.Warnings)
	})
}

func TestRead_DefaultEndian(t *testing.T) {
	input := "NRRD0004\ntype: int32\ndimension: 1\nsizes: 3\nencoding: raw\n\n"

	meta, err := parse(t, input, Config{DefaultEndian: endian.GetBigEndianEngine()})
	require.NoError(t, err)

	v, ok := meta.Get("endian")
	require.True(t, ok)
	require.Equal(t, "big", v.Str)

	order, err := meta.ByteOrder(nil)
	require.NoError(t, err)
	require.Equal(t, endian.GetBigEndianEngine(), order)
}

func TestRead_Errors(t *testing.T) {
	t.Run("unsupported version", func(t *testing.T) {
		_, err := parse(t, "NRRD0006\ntype: uint8\n\n", Config{})
		require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
	})

	t.Run("not nrrd", func(t *testing.T) {
		_, err := parse(t, "P5\n", Config{})
		require.ErrorIs(t, err, errs.ErrHeaderSyntax)
	})

	t.Run("magic needs exactly four digits", func(t *testing.T) {
		for _, magic := range []string{"NRRD4", "NRRD000000004", "NRRD", "NRRD00x4", "NRRD0000"} {
			_, err := parse(t, magic+"\ntype: uint8\ndimension: 1\nsizes: 3\nencoding: raw\n\n", Config{})
			require.ErrorIs(t, err, errs.ErrHeaderSyntax, "magic %q", magic)
		}
	})

	t.Run("line without separator", func(t *testing.T) {
		_, err := parse(t, "NRRD0004\ntype uint8\n\n", Config{})
		require.ErrorIs(t, err, errs.ErrHeaderSyntax)
		require.ErrorContains(t, err, "line 2")
	})

	t.Run("missing required field", func(t *testing.T) {
		_, err := parse(t, "NRRD0004\ntype: uint8\ndimension: 1\nsizes: 3\n\n", Config{})
		require.ErrorIs(t, err, errs.ErrMissingField)
		require.ErrorContains(t, err, "encoding")
	})

	t.Run("shape mismatch", func(t *testing.T) {
		_, err := parse(t, "NRRD0004\ntype: uint8\ndimension: 2\nsizes: 3 3 3\nencoding: raw\n\n", Config{})
		require.ErrorIs(t, err, errs.ErrShapeMismatch)
	})

	t.Run("non-positive size", func(t *testing.T) {
		_, err := parse(t, "NRRD0004\ntype: uint8\ndimension: 2\nsizes: 3 0\nencoding: raw\n\n", Config{})
		require.ErrorIs(t, err, errs.ErrMalformedValue)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := parse(t, "NRRD0004\ntype: quark\ndimension: 1\nsizes: 3\nencoding: raw\n\n", Config{})
		require.ErrorIs(t, err, errs.ErrUnknownType)
	})

	t.Run("unsupported encoding", func(t *testing.T) {
		_, err := parse(t, "NRRD0004\ntype: uint8\ndimension: 1\nsizes: 3\nencoding: bzip2\n\n", Config{})
		require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)
	})

	t.Run("detached data file", func(t *testing.T) {
		_, err := parse(t, "NRRD0004\ntype: uint8\ndimension: 1\nsizes: 3\nencoding: raw\ndata file: vol.raw\n\n", Config{})
		require.ErrorIs(t, err, errs.ErrDetachedData)
	})

	t.Run("bad endian value", func(t *testing.T) {
		_, err := parse(t, "NRRD0004\ntype: uint8\ndimension: 1\nsizes: 3\nencoding: raw\nendian: middle\n\n", Config{})
		require.ErrorIs(t, err, errs.ErrMalformedValue)
	})
}

func TestRead_LeavesPayloadOnReader(t *testing.T) {
	br := bufio.NewReader(strings.NewReader(minimalHeader + "1 2 3"))

	_, err := Read(br, Config{})
	require.NoError(t, err)

	rest := make([]byte, 16)
	n, _ := br.Read(rest)
	require.Equal(t, "1 2 3", string(rest[:n]))
}
