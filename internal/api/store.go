// Package api serves a REST inspection surface over a single PNG file.
package api

import (
	"fmt"
	"sync"

	"github.com/WesleyTran0/pngme/internal/pngfile"
	"github.com/WesleyTran0/pngme/pkg/png"
)

// Store holds the parsed PNG behind the API and serializes all access to
// it. Mutations are written back to disk before they become visible; a
// failed write rolls the in-memory state back.
type Store struct {
	mu   sync.Mutex
	path string
	file *png.File
}

// OpenStore reads and parses the PNG at path.
func OpenStore(path string) (*Store, error) {
	data, err := pngfile.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	file, err := png.ParseFile(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &Store{path: path, file: file}, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Chunks returns the current chunk sequence.
func (s *Store) Chunks() []png.Chunk {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Chunks()
}

// Find returns the first chunk with the given type code.
func (s *Store) Find(code string) (png.Chunk, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.ChunkByType(code)
}

// Append adds a chunk and persists the stream.
func (s *Store) Append(typ png.ChunkType, data []byte) (png.Chunk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.file.Chunks()
	c := png.NewChunk(typ, data)
	s.file.AppendChunk(c)
	if err := pngfile.Write(s.path, s.file.Bytes()); err != nil {
		s.file = png.NewFile(before...)
		return png.Chunk{}, fmt.Errorf("write %s: %w", s.path, err)
	}
	return c, nil
}

// Remove deletes the first chunk of the given type and persists the stream.
func (s *Store) Remove(code string) (png.Chunk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.file.Chunks()
	c, err := s.file.RemoveFirstChunk(code)
	if err != nil {
		return png.Chunk{}, err
	}
	if err := pngfile.Write(s.path, s.file.Bytes()); err != nil {
		s.file = png.NewFile(before...)
		return png.Chunk{}, fmt.Errorf("write %s: %w", s.path, err)
	}
	return c, nil
}
