package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bigpasteldabel/storefront/internal/models"
)

// FileStore keeps the snapshot in a local JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a file store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and decodes the snapshot file.
func (s *FileStore) Load(ctx context.Context) (models.AppData, error) {
	var data models.AppData

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return data, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return data, fmt.Errorf("failed to decode snapshot file: %w", err)
	}
	return data, nil
}

// Save overwrites the snapshot file.
func (s *FileStore) Save(ctx context.Context, data models.AppData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}
	return nil
}
