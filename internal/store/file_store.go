package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists key-value pairs as a single JSON object on disk.
// Only handles file-based persistence.
type FileStore struct {
	filePath string
	mu       sync.RWMutex
	logger   Logger
}

// NewFileStore creates a new file store. The file is created on first Set.
func NewFileStore(filePath string, logger Logger) *FileStore {
	return &FileStore{
		filePath: filePath,
		logger:   logger,
	}
}

// Get returns the value stored under key.
func (s *FileStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values, err := s.load()
	if err != nil {
		return "", err
	}

	value, ok := values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set writes value under key, rewriting the whole file atomically.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		// A corrupt file is replaced rather than blocking writes.
		s.logger.Printf("[FileStore] Discarding unreadable state file %s: %v", s.filePath, err)
		values = make(map[string]string)
	}
	values[key] = value

	return s.save(values)
}

func (s *FileStore) Close() error {
	return nil
}

// load reads the state file. A missing file yields an empty map.
func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	values := make(map[string]string)
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	return values, nil
}

func (s *FileStore) save(values map[string]string) error {
	jsonData, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	// Write to temporary file first (atomic write)
	tempFile := s.filePath + ".tmp"
	if err := os.WriteFile(tempFile, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tempFile, s.filePath); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	s.logger.Printf("[FileStore] Saved %d key(s) to %s", len(values), s.filePath)
	return nil
}
