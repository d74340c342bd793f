package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	result := CheckEndianness()

	// Verify the result matches the actual system endianness.
	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(t, EndianEngine(binary.BigEndian), result)
	case 0x02:
		require.Equal(t, EndianEngine(binary.LittleEndian), result)
	default:
		require.Failf(t, "unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestIsNativeEndiannessInverse(t *testing.T) {
	littleEndian := IsNativeLittleEndian()
	bigEndian := IsNativeBigEndian()

	require.NotEqual(t, littleEndian, bigEndian)
	require.True(t, littleEndian || bigEndian)
}

func TestCompareNativeEndian(t *testing.T) {
	if IsNativeLittleEndian() {
		require.True(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.False(t, CompareNativeEndian(GetBigEndianEngine()))
	} else {
		require.False(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.True(t, CompareNativeEndian(GetBigEndianEngine()))
	}
}

func TestEndianEngines(t *testing.T) {
	littleEngine := GetLittleEndianEngine()
	bigEngine := GetBigEndianEngine()

	var testUint32 uint32 = 0x01020304
	littleBytes := make([]byte, 4)
	bigBytes := make([]byte, 4)

	littleEngine.PutUint32(littleBytes, testUint32)
	bigEngine.PutUint32(bigBytes, testUint32)

	require.NotEqual(t, littleBytes, bigBytes)
	require.Equal(t, testUint32, littleEngine.Uint32(littleBytes))
	require.Equal(t, testUint32, bigEngine.Uint32(bigBytes))
}

func TestParse(t *testing.T) {
	t.Run("little", func(t *testing.T) {
		engine, err := Parse("little")
		require.NoError(t, err)
		require.Equal(t, EndianEngine(binary.LittleEndian), engine)
	})

	t.Run("big", func(t *testing.T) {
		engine, err := Parse("big")
		require.NoError(t, err)
		require.Equal(t, EndianEngine(binary.BigEndian), engine)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := Parse("middle")
		require.Error(t, err)
	})
}

func TestFormatRoundTrip(t *testing.T) {
	for _, name := range []string{"little", "big"} {
		engine, err := Parse(name)
		require.NoError(t, err)
		require.Equal(t, name, Format(engine))
	}
}
