package handlers

import (
	"io"
	"log/slog"
	"testing"

	"github.com/bigpasteldabel/storefront/internal/catalog"
	"github.com/bigpasteldabel/storefront/internal/highlight"
	"github.com/bigpasteldabel/storefront/internal/models"
	"github.com/bigpasteldabel/storefront/internal/service"
	"github.com/bigpasteldabel/storefront/internal/whatsapp"
)

// newTestServices wires a catalog service (memory store, zero highlight
// delay) and an order service over the bundled default dataset.
func newTestServices(t *testing.T) (*service.CatalogService, *service.OrderService, *catalog.Store) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cat := catalog.New(models.DefaultAppData())
	scheduler := highlight.NewScheduler(0)
	catalogService := service.NewCatalogService(cat, nil, scheduler, log)
	orderService := service.NewOrderService(cat, whatsapp.NewFormatter("5561991775501", "Big Pastel da Bel"))
	return catalogService, orderService, cat
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
