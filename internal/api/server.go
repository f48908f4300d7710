package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/WesleyTran0/pngme/internal/logger"
	"github.com/WesleyTran0/pngme/pkg/png"
)

// Server exposes chunk inspection and mutation over one PNG file.
type Server struct {
	store *Store
	log   logger.Logger
}

// NewServer builds a Server around an open store.
func NewServer(store *Store, log logger.Logger) *Server {
	if log == nil {
		log = logger.Default()
	}
	return &Server{store: store, log: log}
}

// Register installs the chunk routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/v1/chunks", s.handleListChunks)
	e.GET("/v1/chunks/:type", s.handleGetChunk)
	e.POST("/v1/chunks", s.handleAppendChunk)
	e.DELETE("/v1/chunks/:type", s.handleRemoveChunk)
}

func (s *Server) handleListChunks(c *echo.Context) error {
	chunks := s.store.Chunks()
	out := ChunkListResponse{
		Path:   s.store.Path(),
		Chunks: make([]ChunkInfo, 0, len(chunks)),
	}
	for i, ch := range chunks {
		out.Chunks = append(out.Chunks, chunkInfo(i, ch))
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetChunk(c *echo.Context) error {
	code := c.Param("type")
	if _, err := png.ParseChunkTypeString(code); err != nil {
		return writeBadRequest(c, err.Error())
	}
	for i, ch := range s.store.Chunks() {
		if ch.Type().String() == code {
			return c.JSON(http.StatusOK, chunkPayload(i, ch))
		}
	}
	return writeNotFound(c, fmt.Sprintf("no %q chunk", code))
}

func (s *Server) handleAppendChunk(c *echo.Context) error {
	req, err := decodeJSON[AppendChunkRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	typ, err := png.ParseChunkTypeString(req.Type)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}

	chunk, err := s.store.Append(typ, []byte(req.Message))
	if err != nil {
		s.log.Error("append chunk failed", "type", req.Type, "error", err)
		return writeServerError(c, err.Error())
	}
	s.log.Info("appended chunk", "type", req.Type, "length", chunk.Length())
	return c.JSON(http.StatusOK, chunkPayload(len(s.store.Chunks())-1, chunk))
}

func (s *Server) handleRemoveChunk(c *echo.Context) error {
	code := c.Param("type")
	if _, err := png.ParseChunkTypeString(code); err != nil {
		return writeBadRequest(c, err.Error())
	}

	chunk, err := s.store.Remove(code)
	if err != nil {
		if errors.Is(err, png.ErrChunkNotFound) {
			return writeNotFound(c, err.Error())
		}
		s.log.Error("remove chunk failed", "type", code, "error", err)
		return writeServerError(c, err.Error())
	}
	s.log.Info("removed chunk", "type", code, "length", chunk.Length())
	return c.JSON(http.StatusOK, RemoveChunkResponse{Removed: chunkPayload(-1, chunk)})
}
