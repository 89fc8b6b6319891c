// Package cbor implements a codec between CBOR (RFC 7049) byte streams
// and the tagged value tree in package value. Width selection on encode,
// including IEEE-754 float narrowing, always picks the shortest
// representation that round-trips exactly, so a decoded float may be
// re-encoded into a narrower wire width than it first arrived in.
package cbor

// CBOR major types (high 3 bits of the initial byte).
const (
	majorUint   = 0
	majorNegInt = 1
	majorBytes  = 2
	majorText   = 3
	majorArray  = 4
	majorMap    = 5
	majorTag    = 6
	majorSimple = 7
)

// Additional-info thresholds (low 5 bits of the initial byte).
const (
	addInfoDirectMax  = 23
	addInfoUint8      = 24
	addInfoUint16     = 25
	addInfoUint32     = 26
	addInfoUint64     = 27
	addInfoIndefinite = 31
)

// Simple-value additional-info codes for major type 7.
const (
	simpleFalse     = 20
	simpleTrue      = 21
	simpleNull      = 22
	simpleUndefined = 23
	simpleExt1Byte  = 24
	simpleFloat16   = 25
	simpleFloat32   = 26
	simpleFloat64   = 27
	simpleBreak     = 31
)

const breakByte = 0xFF

func makeInitialByte(major, addInfo uint8) byte {
	return byte(major<<5) | (addInfo & 0x1F)
}

func splitInitialByte(b byte) (major, addInfo uint8) {
	return uint8(b) >> 5, uint8(b) & 0x1F
}
