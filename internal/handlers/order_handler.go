package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bigpasteldabel/storefront/internal/cart"
	"github.com/bigpasteldabel/storefront/internal/models"
	"github.com/bigpasteldabel/storefront/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest

	// Parse request body
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		h.log.Warn("failed to create order", "error", err)

		switch {
		case errors.Is(err, service.ErrEmptyOrder):
			WriteError(w, http.StatusBadRequest, "Order must contain at least one selection", h.log)
		case errors.Is(err, service.ErrMissingName):
			WriteError(w, http.StatusBadRequest, "Customer name is required", h.log)
		case errors.Is(err, service.ErrMissingAddress):
			WriteError(w, http.StatusBadRequest, "Delivery address is required", h.log)
		case errors.Is(err, service.ErrInvalidQuantity):
			WriteError(w, http.StatusBadRequest, "Quantity must be positive", h.log)
		case errors.Is(err, service.ErrInvalidProduct):
			WriteError(w, http.StatusBadRequest, "Invalid product", h.log)
		case errors.Is(err, service.ErrInvalidCoupon):
			WriteError(w, http.StatusBadRequest, "Coupon code is not valid", h.log)
		case errors.Is(err, cart.ErrUnavailable),
			errors.Is(err, cart.ErrToppingUnavailable),
			errors.Is(err, cart.ErrToppingDirectAdd),
			errors.Is(err, cart.ErrNotTopping):
			// Recoverable, user-facing conditions; the message names
			// the offending item.
			WriteError(w, http.StatusBadRequest, err.Error(), h.log)
		default:
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusOK, order, h.log)
	h.log.Info("order created successfully", "order_id", order.ID, "lines", len(order.Lines), "item_count", order.ItemCount)
}
