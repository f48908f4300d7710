package api

import "github.com/WesleyTran0/pngme/pkg/png"

// ChunkInfo is one row of the chunk table.
type ChunkInfo struct {
	Index            int    `json:"index"`
	Type             string `json:"type"`
	Length           uint32 `json:"length"`
	CRC              uint32 `json:"crc"`
	Critical         bool   `json:"critical"`
	Public           bool   `json:"public"`
	ReservedBitValid bool   `json:"reserved_bit_valid"`
	SafeToCopy       bool   `json:"safe_to_copy"`
}

// ChunkPayload extends ChunkInfo with the textual payload view.
type ChunkPayload struct {
	ChunkInfo
	Text string `json:"text"`
}

// ChunkListResponse is the body of GET /v1/chunks.
type ChunkListResponse struct {
	Path   string      `json:"path"`
	Chunks []ChunkInfo `json:"chunks"`
}

// AppendChunkRequest is the body of POST /v1/chunks.
type AppendChunkRequest struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// RemoveChunkResponse is the body of DELETE /v1/chunks/:type.
type RemoveChunkResponse struct {
	Removed ChunkPayload `json:"removed"`
}

// APIError is the error payload nested under "error" in failure responses.
type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func chunkInfo(idx int, c png.Chunk) ChunkInfo {
	typ := c.Type()
	return ChunkInfo{
		Index:            idx,
		Type:             typ.String(),
		Length:           c.Length(),
		CRC:              c.CRC(),
		Critical:         typ.Critical(),
		Public:           typ.Public(),
		ReservedBitValid: typ.ReservedBitValid(),
		SafeToCopy:       typ.SafeToCopy(),
	}
}

func chunkPayload(idx int, c png.Chunk) ChunkPayload {
	text, err := c.DataText()
	if err != nil {
		text = ""
	}
	return ChunkPayload{ChunkInfo: chunkInfo(idx, c), Text: text}
}
