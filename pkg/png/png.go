// Package png implements the PNG chunk container format.
//
// It models a PNG stream as a fixed 8-byte signature followed by an ordered
// sequence of chunks and never interprets chunk payloads beyond an optional
// textual view. Parsing is strict: every chunk must carry a consistent
// length field and a matching CRC-32 checksum, and a parsed stream
// serializes back to the exact input bytes.
package png

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Signature is the fixed 8-byte sequence that starts every PNG stream.
var Signature = [8]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// File is a parsed PNG stream: the signature plus chunks in encounter order.
// Order is significant; it is preserved on serialization and determines
// first-match semantics for lookup and removal.
type File struct {
	chunks []Chunk
}

// NewFile builds a File from an explicit chunk list.
func NewFile(chunks ...Chunk) *File {
	f := &File{chunks: make([]Chunk, len(chunks))}
	copy(f.chunks, chunks)
	return f
}

// ParseFile validates the signature and decodes every chunk in the stream.
// Any chunk failure propagates; there is no partial recovery. A stream that
// is only the signature parses to a File with zero chunks.
func ParseFile(data []byte) (*File, error) {
	if len(data) < len(Signature) || !bytes.Equal(data[:len(Signature)], Signature[:]) {
		return nil, ErrBadSignature
	}

	f := &File{}
	rest := data[len(Signature):]
	for len(rest) > 0 {
		if len(rest) < chunkEnvelopeSize {
			return nil, fmt.Errorf("%w: %d trailing bytes cannot hold a chunk", ErrBadChunk, len(rest))
		}
		// The declared length bounds this record; the chunk parser
		// re-validates it against the slice it receives.
		total := uint64(chunkEnvelopeSize) + uint64(binary.BigEndian.Uint32(rest[:4]))
		if total > uint64(len(rest)) {
			return nil, fmt.Errorf("%w: declared length overruns input", ErrBadChunk)
		}
		c, err := ParseChunk(rest[:total])
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", len(f.chunks), err)
		}
		f.chunks = append(f.chunks, c)
		rest = rest[total:]
	}
	return f, nil
}

// Chunks returns the contained chunks in stored order.
// The slice is a copy; the chunks themselves are immutable.
func (f *File) Chunks() []Chunk {
	out := make([]Chunk, len(f.chunks))
	copy(out, f.chunks)
	return out
}

// AppendChunk adds a chunk to the end of the sequence. Multiple chunks of
// the same type may coexist.
func (f *File) AppendChunk(c Chunk) {
	f.chunks = append(f.chunks, c)
}

// ChunkByType returns the first chunk whose type's textual form equals code.
func (f *File) ChunkByType(code string) (Chunk, bool) {
	for _, c := range f.chunks {
		if c.Type().String() == code {
			return c, true
		}
	}
	return Chunk{}, false
}

// RemoveFirstChunk removes and returns the first chunk of the given type.
// It fails with ErrChunkNotFound, leaving the File unmodified, when no
// chunk matches. Relative order of the remaining chunks is preserved.
func (f *File) RemoveFirstChunk(code string) (Chunk, error) {
	for i, c := range f.chunks {
		if c.Type().String() == code {
			f.chunks = append(f.chunks[:i], f.chunks[i+1:]...)
			return c, nil
		}
	}
	return Chunk{}, fmt.Errorf("%w: %q", ErrChunkNotFound, code)
}

// Bytes serializes the File: the signature followed by every chunk's bytes
// in stored order. For a parsed, unmodified File this reproduces the
// original stream exactly.
func (f *File) Bytes() []byte {
	size := len(Signature)
	for i := range f.chunks {
		size += chunkEnvelopeSize + len(f.chunks[i].data)
	}
	out := make([]byte, 0, size)
	out = append(out, Signature[:]...)
	for i := range f.chunks {
		out = f.chunks[i].appendBytes(out)
	}
	return out
}
