package png

import "fmt"

// ChunkType is a 4-byte chunk tag. Every byte is an ASCII letter; the case
// of each byte (bit 5) encodes one property of the chunk, per the PNG
// chunk-naming convention.
type ChunkType struct {
	b [4]byte
}

// caseBit selects the upper/lowercase bit of an ASCII letter.
const caseBit = 0x20

// ParseChunkType builds a ChunkType from four raw bytes. It fails with
// ErrBadChunkType unless every byte is an ASCII letter.
func ParseChunkType(b [4]byte) (ChunkType, error) {
	for _, c := range b {
		if !isASCIILetter(c) {
			return ChunkType{}, fmt.Errorf("%w: byte 0x%02x is not an ASCII letter", ErrBadChunkType, c)
		}
	}
	return ChunkType{b: b}, nil
}

// ParseChunkTypeString builds a ChunkType from a 4-character code such as
// "tEXt". The code must be exactly four bytes long.
func ParseChunkTypeString(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, fmt.Errorf("%w: code %q is not 4 characters", ErrBadChunkType, s)
	}
	return ParseChunkType([4]byte{s[0], s[1], s[2], s[3]})
}

// Bytes returns the four tag bytes in original order.
func (t ChunkType) Bytes() [4]byte {
	return t.b
}

// String renders the tag as its 4-character code.
func (t ChunkType) String() string {
	return string(t.b[:])
}

// Critical reports whether the chunk is critical (first byte uppercase)
// rather than ancillary.
func (t ChunkType) Critical() bool {
	return t.b[0]&caseBit == 0
}

// Public reports whether the chunk type is public (second byte uppercase).
func (t ChunkType) Public() bool {
	return t.b[1]&caseBit == 0
}

// ReservedBitValid reports whether the reserved bit (third byte) is in its
// valid, uppercase state. This is informational only: a lowercase third
// byte still constructs and behaves like any other type.
func (t ChunkType) ReservedBitValid() bool {
	return t.b[2]&caseBit == 0
}

// SafeToCopy reports whether the chunk is safe to copy across edits
// (fourth byte lowercase).
func (t ChunkType) SafeToCopy() bool {
	return t.b[3]&caseBit != 0
}

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
