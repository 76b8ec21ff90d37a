package store

import (
	"context"
	"log/slog"

	"github.com/bigpasteldabel/storefront/internal/models"
)

// LoadOrDefault loads the catalog snapshot from the given store,
// falling back to the bundled default dataset on any transport or
// parse failure. A load failure is a degrade-gracefully condition, not
// a fatal error. A nil store yields the defaults directly.
func LoadOrDefault(ctx context.Context, s Store, log *slog.Logger) models.AppData {
	if s == nil {
		return models.DefaultAppData()
	}

	data, err := s.Load(ctx)
	if err != nil {
		log.Warn("failed to load catalog snapshot, using bundled defaults", "error", err)
		return models.DefaultAppData()
	}

	// An unusable snapshot is treated like a missing one.
	if len(data.MenuItems) == 0 {
		log.Warn("loaded catalog snapshot is empty, using bundled defaults")
		return models.DefaultAppData()
	}
	return data
}
