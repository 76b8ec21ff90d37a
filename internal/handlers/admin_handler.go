package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bigpasteldabel/storefront/internal/catalog"
	"github.com/bigpasteldabel/storefront/internal/models"
	"github.com/bigpasteldabel/storefront/internal/service"
	"github.com/go-chi/chi/v5"
)

// AdminHandler handles the administrative catalog mutations. A failed
// persistence save is reported to the admin caller but never rolls
// back the in-memory state.
type AdminHandler struct {
	service *service.CatalogService
	log     *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service *service.CatalogService, log *slog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log,
	}
}

// ReplaceAppData handles POST /api/admin/app-data
// The payload replaces stored state wholesale; last writer wins.
func (h *AdminHandler) ReplaceAppData(w http.ResponseWriter, r *http.Request) {
	var data models.AppData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}
	if data.MenuItems == nil || data.Coupons == nil {
		WriteError(w, http.StatusBadRequest, "menuItems and coupons must be arrays", h.log)
		return
	}

	if err := h.service.ReplaceAll(r.Context(), data); err != nil {
		h.respondSaveFailed(w)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "App data updated successfully."}, h.log)
}

// ToggleItemAvailability handles PUT /api/admin/menu-items/{itemID}/availability
func (h *AdminHandler) ToggleItemAvailability(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	if err := h.service.ToggleItemAvailability(r.Context(), itemID); err != nil {
		h.respondSaveFailed(w)
		return
	}

	item, err := h.service.MenuItem(itemID)
	if err != nil {
		// Unknown ids are a no-op toggle; report that nothing matched.
		WriteError(w, http.StatusNotFound, "Menu item not found", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, item, h.log)
}

// AddCoupon handles POST /api/admin/coupons
// Rejects, mutating nothing, when the code already exists in any case.
func (h *AdminHandler) AddCoupon(w http.ResponseWriter, r *http.Request) {
	var coupon models.Coupon
	if err := json.NewDecoder(r.Body).Decode(&coupon); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}
	if coupon.Code == "" {
		WriteError(w, http.StatusBadRequest, "Coupon code is required", h.log)
		return
	}

	added, err := h.service.AddCoupon(r.Context(), coupon)
	if err != nil {
		if errors.Is(err, catalog.ErrDuplicateCouponCode) {
			WriteError(w, http.StatusConflict, "A coupon with this code already exists", h.log)
			return
		}
		h.respondSaveFailed(w)
		return
	}
	WriteJSON(w, http.StatusCreated, added, h.log)
}

// UpdateCoupon handles PUT /api/admin/coupons/{couponID}
func (h *AdminHandler) UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	var coupon models.Coupon
	if err := json.NewDecoder(r.Body).Decode(&coupon); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}
	coupon.ID = chi.URLParam(r, "couponID")

	err := h.service.UpdateCoupon(r.Context(), coupon)
	switch {
	case errors.Is(err, catalog.ErrDuplicateCouponCode):
		WriteError(w, http.StatusConflict, "Another coupon already uses this code", h.log)
	case errors.Is(err, catalog.ErrCouponNotFound):
		WriteError(w, http.StatusNotFound, "Coupon not found", h.log)
	case err != nil:
		h.respondSaveFailed(w)
	default:
		WriteJSON(w, http.StatusOK, coupon, h.log)
	}
}

// ToggleCouponActivity handles PUT /api/admin/coupons/{couponID}/activity
func (h *AdminHandler) ToggleCouponActivity(w http.ResponseWriter, r *http.Request) {
	couponID := chi.URLParam(r, "couponID")

	if err := h.service.ToggleCouponActive(r.Context(), couponID); err != nil {
		h.respondSaveFailed(w)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "toggled"}, h.log)
}

func (h *AdminHandler) respondSaveFailed(w http.ResponseWriter) {
	// Optimistic update semantics: the change is live in memory and
	// will be retried on the next successful save.
	WriteError(w, http.StatusBadGateway, "Change applied but could not be persisted", h.log)
}
