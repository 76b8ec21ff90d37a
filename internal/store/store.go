// Package store persists the catalog as a single whole-snapshot JSON
// document. Saves replace stored state wholesale; last writer wins.
package store

import (
	"context"

	"github.com/bigpasteldabel/storefront/internal/models"
)

// Store loads and saves the catalog snapshot. The engine does not
// depend on which backing store is active.
type Store interface {
	Load(ctx context.Context) (models.AppData, error)
	Save(ctx context.Context, data models.AppData) error
}
