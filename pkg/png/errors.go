package png

import "errors"

var (
	// ErrBadChunkType rejects type bytes outside the ASCII letter range,
	// or a textual code that is not exactly 4 characters.
	ErrBadChunkType = errors.New("invalid chunk type")
	// ErrBadChunk rejects a chunk record that is too short, declares the
	// wrong length, carries an invalid type, or fails its checksum.
	ErrBadChunk = errors.New("invalid chunk")
	// ErrBadSignature rejects a stream that does not start with the PNG
	// signature.
	ErrBadSignature = errors.New("invalid PNG signature")
	// ErrChunkNotFound reports a removal for a type with no match.
	ErrChunkNotFound = errors.New("chunk not found")
	// ErrLengthMismatch reports a chunk whose length field disagrees with
	// its payload at text-rendering time.
	ErrLengthMismatch = errors.New("chunk length does not match data length")
)
