package png

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

const (
	testMessage    = "This is where your secret message will be!"
	testMessageCRC = 2882656334 // CRC-32/ISO-HDLC over "RuSt" + testMessage
)

func chunkRecord(t *testing.T, code string, payload []byte, crc uint32) []byte {
	t.Helper()
	out := binary.BigEndian.AppendUint32(nil, uint32(len(payload)))
	out = append(out, code...)
	out = append(out, payload...)
	return binary.BigEndian.AppendUint32(out, crc)
}

func TestNewChunkComputesCRC(t *testing.T) {
	t.Parallel()

	typ, err := ParseChunkTypeString("RuSt")
	if err != nil {
		t.Fatalf("parse type: %v", err)
	}
	c := NewChunk(typ, []byte(testMessage))
	if c.Length() != 42 {
		t.Fatalf("length: got %d want 42", c.Length())
	}
	if c.CRC() != testMessageCRC {
		t.Fatalf("crc: got %d want %d", c.CRC(), uint32(testMessageCRC))
	}
}

func TestParseChunkValidRecord(t *testing.T) {
	t.Parallel()

	c, err := ParseChunk(chunkRecord(t, "RuSt", []byte(testMessage), testMessageCRC))
	if err != nil {
		t.Fatalf("parse chunk: %v", err)
	}
	if c.Length() != 42 {
		t.Fatalf("length: got %d want 42", c.Length())
	}
	if c.Type().String() != "RuSt" {
		t.Fatalf("type: got %q want %q", c.Type().String(), "RuSt")
	}
	if c.CRC() != testMessageCRC {
		t.Fatalf("crc: got %d want %d", c.CRC(), uint32(testMessageCRC))
	}
	text, err := c.DataText()
	if err != nil {
		t.Fatalf("data text: %v", err)
	}
	if text != testMessage {
		t.Fatalf("text: got %q want %q", text, testMessage)
	}
}

func TestChunkBytesRoundTrip(t *testing.T) {
	t.Parallel()

	raw := chunkRecord(t, "RuSt", []byte(testMessage), testMessageCRC)
	c, err := ParseChunk(raw)
	if err != nil {
		t.Fatalf("parse chunk: %v", err)
	}
	if !bytes.Equal(c.Bytes(), raw) {
		t.Fatalf("serialize mismatch:\n got %x\nwant %x", c.Bytes(), raw)
	}

	typ, err := ParseChunkTypeString("RuSt")
	if err != nil {
		t.Fatalf("parse type: %v", err)
	}
	fresh := NewChunk(typ, []byte(testMessage))
	reparsed, err := ParseChunk(fresh.Bytes())
	if err != nil {
		t.Fatalf("reparse fresh chunk: %v", err)
	}
	if reparsed.Type() != fresh.Type() || reparsed.CRC() != fresh.CRC() ||
		reparsed.Length() != fresh.Length() || !bytes.Equal(reparsed.Data(), fresh.Data()) {
		t.Fatalf("round-trip mismatch: got %+v want %+v", reparsed, fresh)
	}
}

func TestParseChunkRejectsBadCRC(t *testing.T) {
	t.Parallel()

	raw := chunkRecord(t, "RuSt", []byte(testMessage), testMessageCRC-1)
	if _, err := ParseChunk(raw); !errors.Is(err, ErrBadChunk) {
		t.Fatalf("bad crc: got %v want ErrBadChunk", err)
	}
}

func TestParseChunkRejectsShortInput(t *testing.T) {
	t.Parallel()

	if _, err := ParseChunk(make([]byte, 11)); !errors.Is(err, ErrBadChunk) {
		t.Fatalf("short input: got %v want ErrBadChunk", err)
	}
}

func TestParseChunkRejectsLengthMismatch(t *testing.T) {
	t.Parallel()

	raw := chunkRecord(t, "RuSt", []byte(testMessage), testMessageCRC)
	binary.BigEndian.PutUint32(raw[:4], 41)
	if _, err := ParseChunk(raw); !errors.Is(err, ErrBadChunk) {
		t.Fatalf("length mismatch: got %v want ErrBadChunk", err)
	}
}

func TestParseChunkRejectsBadType(t *testing.T) {
	t.Parallel()

	raw := chunkRecord(t, "Ru1t", []byte(testMessage), testMessageCRC)
	_, err := ParseChunk(raw)
	if !errors.Is(err, ErrBadChunk) {
		t.Fatalf("bad type: got %v want ErrBadChunk", err)
	}
	if !errors.Is(err, ErrBadChunkType) {
		t.Fatalf("bad type: got %v want wrapped ErrBadChunkType", err)
	}
}

func TestParseChunkChecksumSensitivity(t *testing.T) {
	t.Parallel()

	payload := []byte("hello")
	typ, err := ParseChunkTypeString("teSt")
	if err != nil {
		t.Fatalf("parse type: %v", err)
	}
	raw := NewChunk(typ, payload).Bytes()

	// Flip every bit of the type and payload regions in turn while keeping
	// the stored CRC; each corruption must be caught.
	for i := 4; i < len(raw)-4; i++ {
		for bit := 0; bit < 8; bit++ {
			corrupted := make([]byte, len(raw))
			copy(corrupted, raw)
			corrupted[i] ^= 1 << bit
			if _, err := ParseChunk(corrupted); !errors.Is(err, ErrBadChunk) {
				t.Fatalf("flip byte %d bit %d: got %v want ErrBadChunk", i, bit, err)
			}
		}
	}
}

func TestChunkStringFallsBackOnError(t *testing.T) {
	t.Parallel()

	c := Chunk{length: 5, data: []byte("four")}
	if _, err := c.DataText(); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("inconsistent chunk: got %v want ErrLengthMismatch", err)
	}
	if c.String() != "<invalid chunk data>" {
		t.Fatalf("string fallback: got %q", c.String())
	}
}
