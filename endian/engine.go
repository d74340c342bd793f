// Package endian provides byte order utilities for payload transcoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface, probes the host
// byte order, and resolves the "endian" header field spellings. Engines
// are immutable and safe for concurrent use.
package endian

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for byte order operations.
//
// The interface is satisfied by binary.LittleEndian and binary.BigEndian,
// so engines interoperate with any code built on the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
//
// The host order is only ever used as a caller-supplied default for files
// whose header omits the "endian" field; the transcoder itself takes
// explicit engines.
func CheckEndianness() EndianEngine {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == EndianEngine(binary.LittleEndian)
}

func IsNativeBigEndian() bool {
	return CheckEndianness() == EndianEngine(binary.BigEndian)
}

// CompareNativeEndian reports whether engine matches the host byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Parse resolves the value of an "endian" header field to an engine.
func Parse(s string) (EndianEngine, error) {
	switch s {
	case "little":
		return binary.LittleEndian, nil
	case "big":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("invalid endian value: %q", s)
	}
}

// Format returns the header spelling of the engine's byte order.
func Format(engine EndianEngine) string {
	if engine == EndianEngine(binary.BigEndian) {
		return "big"
	}

	return "little"
}
