// Package storage provides a small persistent key-value store with
// JSON values. Reads and writes never fail loudly: a missing or
// corrupt entry leaves the caller's default in place, and a failed
// write is absorbed so the in-memory state stays authoritative for
// the session.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Store is the persistence contract. Get decodes the value stored
// under key into v and reports whether it did; on a missing key,
// malformed data or unavailable backing store it returns false and
// leaves v untouched. Set encodes v and writes it under key,
// swallowing any failure.
type Store interface {
	Get(key string, v any) bool
	Set(key string, v any)
}

// FileStore keeps one JSON file per key under a base directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the base directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string, v any) bool {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	return json.Unmarshal(b, v) == nil
}

func (s *FileStore) Set(key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	// Best effort: quota or permission problems cost persistence,
	// not the session.
	_ = os.WriteFile(s.path(key), b, 0o644)
}

// MemStore is a map-backed Store. It backs tests and serves as the
// fallback when the data directory cannot be created.
type MemStore struct {
	m map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string][]byte)}
}

func (s *MemStore) Get(key string, v any) bool {
	b, ok := s.m[key]
	if !ok {
		return false
	}
	return json.Unmarshal(b, v) == nil
}

func (s *MemStore) Set(key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.m[key] = b
}
