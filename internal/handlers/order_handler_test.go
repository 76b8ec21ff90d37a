package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bigpasteldabel/storefront/internal/catalog"
	"github.com/bigpasteldabel/storefront/internal/models"
	"github.com/go-chi/chi/v5"
)

func newOrderRouter(t *testing.T) (chi.Router, *catalog.Store) {
	t.Helper()

	_, orderService, cat := newTestServices(t)
	h := NewOrderHandler(orderService, testLogger())

	r := chi.NewRouter()
	r.Post("/api/orders", h.CreateOrder)
	return r, cat
}

func postOrder(t *testing.T, r chi.Router, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	t.Run("successful order with composition", func(t *testing.T) {
		r, _ := newOrderRouter(t)

		rec := postOrder(t, r, `{
			"selections": [
				{"itemId": "pastel_queijo", "toppingId": "borda_cheddar", "quantity": 1},
				{"itemId": "bebida_coca_lata", "quantity": 2}
			],
			"customerName": "Ana",
			"deliveryAddress": "Rua das Flores, 123",
			"paymentMethod": "PIX"
		}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
		}

		var order models.Order
		if err := json.NewDecoder(rec.Body).Decode(&order); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if order.ID == "" {
			t.Error("order id is empty")
		}
		if len(order.Lines) != 2 {
			t.Errorf("lines = %d, want 2", len(order.Lines))
		}
		if order.Lines[0].DisplayName != "QUEIJO (Borda: CHEDDAR)" {
			t.Errorf("display name = %q", order.Lines[0].DisplayName)
		}
		if !strings.HasPrefix(order.WhatsAppURL, "https://wa.me/") {
			t.Errorf("whatsapp url = %q", order.WhatsAppURL)
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		if rec := postOrder(t, r, `{bad json`); rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("empty order", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		if rec := postOrder(t, r, `{"selections": []}`); rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("missing customer name", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		rec := postOrder(t, r, `{
			"selections": [{"itemId": "bebida_coca_lata", "quantity": 1}],
			"deliveryAddress": "Rua das Flores, 123"
		}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Customer name") {
			t.Errorf("body should mention the customer name: %s", rec.Body.String())
		}
	})

	t.Run("missing delivery address", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		rec := postOrder(t, r, `{
			"selections": [{"itemId": "bebida_coca_lata", "quantity": 1}],
			"customerName": "Ana"
		}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Delivery address") {
			t.Errorf("body should mention the address: %s", rec.Body.String())
		}
	})

	t.Run("zero quantity", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		rec := postOrder(t, r, `{
			"selections": [{"itemId": "bebida_coca_lata", "quantity": 0}],
			"customerName": "Ana",
			"deliveryAddress": "Rua das Flores, 123"
		}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		rec := postOrder(t, r, `{
			"selections": [{"itemId": "nope", "quantity": 1}],
			"customerName": "Ana",
			"deliveryAddress": "Rua das Flores, 123"
		}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("unavailable item names the item", func(t *testing.T) {
		r, cat := newOrderRouter(t)
		cat.ToggleItemAvailability("pastel_queijo")

		rec := postOrder(t, r, `{
			"selections": [{"itemId": "pastel_queijo", "quantity": 1}],
			"customerName": "Ana",
			"deliveryAddress": "Rua das Flores, 123"
		}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "QUEIJO") {
			t.Errorf("body should name the item: %s", rec.Body.String())
		}
	})

	t.Run("invalid coupon", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		rec := postOrder(t, r, `{
			"selections": [{"itemId": "bebida_coca_lata", "quantity": 1}],
			"customerName": "Ana",
			"deliveryAddress": "Rua das Flores, 123",
			"couponCode": "NAOEXISTE"
		}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}
