package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bigpasteldabel/storefront/internal/models"
)

// BlobStore reads and writes the snapshot as one public JSON blob over
// HTTP (GET to load, PUT to save).
type BlobStore struct {
	url    string
	client *http.Client
}

// NewBlobStore creates a blob store for the given document URL.
func NewBlobStore(url string) *BlobStore {
	return &BlobStore{
		url: url,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Load fetches and decodes the snapshot.
func (s *BlobStore) Load(ctx context.Context) (models.AppData, error) {
	var data models.AppData

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return data, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return data, fmt.Errorf("failed to download snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return data, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return data, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return data, nil
}

// Save overwrites the stored snapshot.
func (s *BlobStore) Save(ctx context.Context, data models.AppData) error {
	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to upload snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
