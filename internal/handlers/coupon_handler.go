package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bigpasteldabel/storefront/internal/catalog"
	"github.com/bigpasteldabel/storefront/internal/service"
	"github.com/go-chi/chi/v5"
)

// CouponHandler handles the customer-facing coupon endpoints
type CouponHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCouponHandler creates a new CouponHandler
func NewCouponHandler(service *service.CatalogService, logger *slog.Logger) *CouponHandler {
	return &CouponHandler{
		service: service,
		logger:  logger,
	}
}

// ListCoupons handles GET /api/coupons
func (h *CouponHandler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.service.Coupons(), h.logger)
}

// GetCoupon handles GET /api/coupons/{couponID}
// Returns a single coupon or:
// - 404: coupon not found
func (h *CouponHandler) GetCoupon(w http.ResponseWriter, r *http.Request) {
	couponID := chi.URLParam(r, "couponID")

	coupon, err := h.service.Coupon(couponID)
	if err != nil {
		if errors.Is(err, catalog.ErrCouponNotFound) {
			h.logger.Info("coupon not found", "couponId", couponID)
			WriteError(w, http.StatusNotFound, "Coupon not found", h.logger)
			return
		}
		h.logger.Error("failed to get coupon", "couponId", couponID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, coupon, h.logger)
}

// GetHighlight handles GET /api/coupons/highlight
// Returns the currently surfaced promotional coupon, or 204 when no
// highlight is up (cooldown active, delay pending or nothing active).
func (h *CouponHandler) GetHighlight(w http.ResponseWriter, r *http.Request) {
	coupon := h.service.HighlightedCoupon()
	if coupon == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	WriteJSON(w, http.StatusOK, coupon, h.logger)
}

// DismissHighlight handles POST /api/coupons/highlight/dismiss
// Records the explicit dismissal that starts the cooldown window.
func (h *CouponHandler) DismissHighlight(w http.ResponseWriter, r *http.Request) {
	h.service.DismissHighlight()
	WriteJSON(w, http.StatusOK, map[string]string{"status": "dismissed"}, h.logger)
}
