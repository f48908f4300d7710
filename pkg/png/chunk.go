package png

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"strings"
)

// chunkEnvelopeSize is the fixed overhead of a chunk record:
// 4-byte length, 4-byte type, 4-byte CRC.
const chunkEnvelopeSize = 12

// Chunk is one PNG chunk record: a typed, checksummed payload. A Chunk is
// never observably inconsistent; its length always equals the payload size
// and its CRC always matches the type and payload bytes. Chunks are
// immutable after creation.
type Chunk struct {
	length uint32
	typ    ChunkType
	data   []byte
	crc    uint32
}

// NewChunk builds a chunk from a type and payload, computing the CRC fresh.
func NewChunk(typ ChunkType, data []byte) Chunk {
	owned := make([]byte, len(data))
	copy(owned, data)
	return Chunk{
		length: uint32(len(owned)),
		typ:    typ,
		data:   owned,
		crc:    chunkCRC(typ, owned),
	}
}

// ParseChunk decodes one complete chunk record. The input must be exactly
// one record: 4-byte big-endian length, 4 type bytes, payload, 4-byte
// big-endian CRC. Any structural violation fails with ErrBadChunk, with
// the sub-reason preserved in the error text.
func ParseChunk(data []byte) (Chunk, error) {
	if len(data) < chunkEnvelopeSize {
		return Chunk{}, fmt.Errorf("%w: %d bytes is below the 12-byte minimum", ErrBadChunk, len(data))
	}

	length := binary.BigEndian.Uint32(data[:4])
	payload := data[8 : len(data)-4]
	if uint64(length) != uint64(len(payload)) {
		return Chunk{}, fmt.Errorf("%w: declared length %d, payload is %d bytes", ErrBadChunk, length, len(payload))
	}

	typ, err := ParseChunkType([4]byte{data[4], data[5], data[6], data[7]})
	if err != nil {
		return Chunk{}, fmt.Errorf("%w: %w", ErrBadChunk, err)
	}

	stored := binary.BigEndian.Uint32(data[len(data)-4:])
	if computed := chunkCRC(typ, payload); computed != stored {
		return Chunk{}, fmt.Errorf("%w: crc mismatch, stored %08x computed %08x", ErrBadChunk, stored, computed)
	}

	owned := make([]byte, len(payload))
	copy(owned, payload)
	return Chunk{length: length, typ: typ, data: owned, crc: stored}, nil
}

// Length returns the payload size in bytes.
func (c Chunk) Length() uint32 {
	return c.length
}

// Type returns the chunk's type tag.
func (c Chunk) Type() ChunkType {
	return c.typ
}

// Data returns a copy of the payload bytes.
func (c Chunk) Data() []byte {
	out := make([]byte, len(c.data))
	copy(out, c.data)
	return out
}

// CRC returns the chunk's checksum.
func (c Chunk) CRC() uint32 {
	return c.crc
}

// DataText renders the payload as text, one character per byte (Latin-1).
// The length consistency gate fails with ErrLengthMismatch; it is
// unreachable for chunks built through NewChunk or ParseChunk.
func (c Chunk) DataText() (string, error) {
	if uint64(c.length) != uint64(len(c.data)) {
		return "", fmt.Errorf("%w: length field %d, payload is %d bytes", ErrLengthMismatch, c.length, len(c.data))
	}
	var sb strings.Builder
	sb.Grow(len(c.data))
	for _, b := range c.data {
		sb.WriteRune(rune(b))
	}
	return sb.String(), nil
}

// String is the human-oriented view of a chunk: its payload text. It is
// lossy and never used for serialization.
func (c Chunk) String() string {
	s, err := c.DataText()
	if err != nil {
		return "<invalid chunk data>"
	}
	return s
}

// Bytes serializes the chunk record. It is the exact inverse of ParseChunk.
func (c Chunk) Bytes() []byte {
	return c.appendBytes(make([]byte, 0, chunkEnvelopeSize+len(c.data)))
}

func (c Chunk) appendBytes(out []byte) []byte {
	out = binary.BigEndian.AppendUint32(out, c.length)
	out = append(out, c.typ.b[:]...)
	out = append(out, c.data...)
	return binary.BigEndian.AppendUint32(out, c.crc)
}

// chunkCRC computes the CRC-32 (ISO-HDLC polynomial, as used by PNG and
// zip) over the type bytes followed by the payload. Both the construction
// and parse paths go through this table.
func chunkCRC(typ ChunkType, data []byte) uint32 {
	h := crc32.NewIEEE()
	_, _ = h.Write(typ.b[:])
	_, _ = h.Write(data)
	return h.Sum32()
}
