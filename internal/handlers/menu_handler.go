package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bigpasteldabel/storefront/internal/catalog"
	"github.com/bigpasteldabel/storefront/internal/service"
	"github.com/go-chi/chi/v5"
)

// MenuHandler handles menu and app-data HTTP requests
type MenuHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(service *service.CatalogService, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger,
	}
}

// ListMenuItems handles GET /api/menu-items
// An optional ?category= query narrows the list to one category.
func (h *MenuHandler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		WriteJSON(w, http.StatusOK, h.service.ItemsByCategory(category), h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, h.service.MenuItems(), h.logger)
}

// GetMenuItem handles GET /api/menu-items/{itemID}
// Returns a single item or:
// - 404: item not found
func (h *MenuHandler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	item, err := h.service.MenuItem(itemID)
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			h.logger.Info("menu item not found", "itemId", itemID)
			WriteError(w, http.StatusNotFound, "Menu item not found", h.logger)
			return
		}
		h.logger.Error("failed to get menu item", "itemId", itemID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, item, h.logger)
}

// ListToppings handles GET /api/toppings
// Returns the toppings currently offered in the composition flow.
func (h *MenuHandler) ListToppings(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.service.AvailableToppings(), h.logger)
}

// GetAppData handles GET /api/app-data
// Returns the whole catalog snapshot.
func (h *MenuHandler) GetAppData(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.service.Snapshot(), h.logger)
}
