package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bigpasteldabel/storefront/internal/cart"
	"github.com/bigpasteldabel/storefront/internal/catalog"
	"github.com/bigpasteldabel/storefront/internal/models"
	"github.com/bigpasteldabel/storefront/internal/whatsapp"
	"github.com/shopspring/decimal"
)

func newOrderService() (*OrderService, *catalog.Store) {
	cat := catalog.New(models.DefaultAppData())
	return NewOrderService(cat, whatsapp.NewFormatter("5561991775501", "Big Pastel da Bel")), cat
}

func TestOrderService_CreateOrder(t *testing.T) {
	tests := []struct {
		name    string
		req     models.OrderRequest
		wantErr error
	}{
		{
			name: "composable item with topping",
			req: models.OrderRequest{
				Selections: []models.Selection{
					{ItemID: "pastel_queijo", ToppingID: "borda_cheddar", Quantity: 1},
				},
				CustomerName:    "Ana",
				DeliveryAddress: "Rua das Flores, 123",
			},
		},
		{
			name: "standalone item",
			req: models.OrderRequest{
				Selections: []models.Selection{
					{ItemID: "bebida_coca_lata", Quantity: 2},
				},
				CustomerName:    "Ana",
				DeliveryAddress: "Rua das Flores, 123",
			},
		},
		{
			name:    "empty order",
			req:     models.OrderRequest{},
			wantErr: ErrEmptyOrder,
		},
		{
			name: "missing customer name",
			req: models.OrderRequest{
				Selections: []models.Selection{
					{ItemID: "bebida_coca_lata", Quantity: 1},
				},
				DeliveryAddress: "Rua das Flores, 123",
			},
			wantErr: ErrMissingName,
		},
		{
			name: "blank customer name",
			req: models.OrderRequest{
				Selections: []models.Selection{
					{ItemID: "bebida_coca_lata", Quantity: 1},
				},
				CustomerName:    "   ",
				DeliveryAddress: "Rua das Flores, 123",
			},
			wantErr: ErrMissingName,
		},
		{
			name: "missing delivery address",
			req: models.OrderRequest{
				Selections: []models.Selection{
					{ItemID: "bebida_coca_lata", Quantity: 1},
				},
				CustomerName: "Ana",
			},
			wantErr: ErrMissingAddress,
		},
		{
			name: "zero quantity",
			req: models.OrderRequest{
				Selections: []models.Selection{
					{ItemID: "bebida_coca_lata", Quantity: 0},
				},
				CustomerName:    "Ana",
				DeliveryAddress: "Rua das Flores, 123",
			},
			wantErr: ErrInvalidQuantity,
		},
		{
			name: "unknown item",
			req: models.OrderRequest{
				Selections: []models.Selection{
					{ItemID: "pastel_inexistente", Quantity: 1},
				},
				CustomerName:    "Ana",
				DeliveryAddress: "Rua das Flores, 123",
			},
			wantErr: ErrInvalidProduct,
		},
		{
			name: "unknown topping",
			req: models.OrderRequest{
				Selections: []models.Selection{
					{ItemID: "pastel_queijo", ToppingID: "borda_inexistente", Quantity: 1},
				},
				CustomerName:    "Ana",
				DeliveryAddress: "Rua das Flores, 123",
			},
			wantErr: ErrInvalidProduct,
		},
		{
			name: "topping on a standalone item",
			req: models.OrderRequest{
				Selections: []models.Selection{
					{ItemID: "bebida_coca_lata", ToppingID: "borda_cheddar", Quantity: 1},
				},
				CustomerName:    "Ana",
				DeliveryAddress: "Rua das Flores, 123",
			},
			wantErr: ErrInvalidProduct,
		},
		{
			name: "topping selected directly",
			req: models.OrderRequest{
				Selections: []models.Selection{
					{ItemID: "borda_cheddar", Quantity: 1},
				},
				CustomerName:    "Ana",
				DeliveryAddress: "Rua das Flores, 123",
			},
			wantErr: cart.ErrToppingDirectAdd,
		},
		{
			name: "unknown coupon code",
			req: models.OrderRequest{
				Selections: []models.Selection{
					{ItemID: "bebida_coca_lata", Quantity: 1},
				},
				CustomerName:    "Ana",
				DeliveryAddress: "Rua das Flores, 123",
				CouponCode:      "NOPE1234",
			},
			wantErr: ErrInvalidCoupon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newOrderService()
			order, err := svc.CreateOrder(context.Background(), tt.req)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("CreateOrder() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateOrder() unexpected error = %v", err)
			}
			if order.ID == "" {
				t.Error("CreateOrder() order ID is empty")
			}
			if order.WhatsAppURL == "" {
				t.Error("CreateOrder() missing WhatsApp link")
			}
		})
	}
}

func TestOrderService_CreateOrder_PastelScenario(t *testing.T) {
	svc, _ := newOrderService()

	// Same pastel with a topping, then again without: two distinct
	// lines, never merged.
	order, err := svc.CreateOrder(context.Background(), models.OrderRequest{
		Selections: []models.Selection{
			{ItemID: "pastel_queijo", ToppingID: "borda_cheddar", Quantity: 1},
			{ItemID: "pastel_queijo", Quantity: 1},
		},
		CustomerName:    "Ana",
		DeliveryAddress: "Rua das Flores, 123",
	})
	if err != nil {
		t.Fatalf("CreateOrder() unexpected error = %v", err)
	}

	if len(order.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(order.Lines))
	}
	first := order.Lines[0]
	if first.DisplayName != "QUEIJO (Borda: CHEDDAR)" {
		t.Errorf("display name = %q", first.DisplayName)
	}
	if !first.UnitPrice.Equal(decimal.RequireFromString("17.00")) {
		t.Errorf("unit price = %s, want 17.00 (zero-priced topping)", first.UnitPrice)
	}
	if order.Lines[1].LineID == first.LineID {
		t.Error("with-topping and no-topping lines merged")
	}
	if !order.Subtotal.Equal(decimal.RequireFromString("34.00")) {
		t.Errorf("subtotal = %s, want 34.00", order.Subtotal)
	}
}

func TestOrderService_CreateOrder_MergesAndCounts(t *testing.T) {
	svc, _ := newOrderService()

	// The same soda twice, once via quantity and once as a repeated
	// selection: one line, quantity 3.
	order, err := svc.CreateOrder(context.Background(), models.OrderRequest{
		Selections: []models.Selection{
			{ItemID: "bebida_coca_lata", Quantity: 2},
			{ItemID: "bebida_coca_lata", Quantity: 1},
		},
		CustomerName:    "Ana",
		DeliveryAddress: "Rua das Flores, 123",
	})
	if err != nil {
		t.Fatalf("CreateOrder() unexpected error = %v", err)
	}

	if len(order.Lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(order.Lines))
	}
	if order.Lines[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", order.Lines[0].Quantity)
	}
	if order.ItemCount != 3 {
		t.Errorf("item count = %d, want 3", order.ItemCount)
	}
	if !order.Subtotal.Equal(decimal.RequireFromString("18.00")) {
		t.Errorf("subtotal = %s, want 18.00", order.Subtotal)
	}
}

func TestOrderService_CreateOrder_CustomerDetailsCarried(t *testing.T) {
	svc, _ := newOrderService()

	order, err := svc.CreateOrder(context.Background(), models.OrderRequest{
		Selections: []models.Selection{
			{ItemID: "bebida_coca_lata", Quantity: 1},
		},
		CustomerName:    "Ana",
		DeliveryAddress: "Rua das Flores, 123",
	})
	if err != nil {
		t.Fatalf("CreateOrder() unexpected error = %v", err)
	}

	if order.CustomerName != "Ana" {
		t.Errorf("customer name = %q, want Ana", order.CustomerName)
	}
	if order.DeliveryAddress != "Rua das Flores, 123" {
		t.Errorf("delivery address = %q", order.DeliveryAddress)
	}
	if !strings.Contains(order.Message, "*Cliente:* Ana") {
		t.Errorf("message missing customer block: %q", order.Message)
	}
	if !strings.Contains(order.Message, "*Endereço para Entrega:*\nRua das Flores, 123") {
		t.Errorf("message missing address block: %q", order.Message)
	}
}

func TestOrderService_CreateOrder_UnavailableItem(t *testing.T) {
	svc, cat := newOrderService()
	cat.ToggleItemAvailability("pastel_queijo")

	_, err := svc.CreateOrder(context.Background(), models.OrderRequest{
		Selections: []models.Selection{
			{ItemID: "pastel_queijo", Quantity: 1},
		},
		CustomerName:    "Ana",
		DeliveryAddress: "Rua das Flores, 123",
	})
	if !errors.Is(err, cart.ErrUnavailable) {
		t.Fatalf("error = %v, want ErrUnavailable", err)
	}
	if !strings.Contains(err.Error(), "QUEIJO") {
		t.Errorf("error should name the item, got %q", err.Error())
	}
}

func TestOrderService_CreateOrder_UnavailableTopping(t *testing.T) {
	svc, cat := newOrderService()
	cat.ToggleItemAvailability("borda_cheddar")

	_, err := svc.CreateOrder(context.Background(), models.OrderRequest{
		Selections: []models.Selection{
			{ItemID: "pastel_queijo", ToppingID: "borda_cheddar", Quantity: 1},
		},
		CustomerName:    "Ana",
		DeliveryAddress: "Rua das Flores, 123",
	})
	if !errors.Is(err, cart.ErrToppingUnavailable) {
		t.Fatalf("error = %v, want ErrToppingUnavailable", err)
	}
	if !strings.Contains(err.Error(), "CHEDDAR") {
		t.Errorf("error should name the topping, got %q", err.Error())
	}
}

func TestOrderService_CreateOrder_CouponAnyCase(t *testing.T) {
	svc, _ := newOrderService()

	order, err := svc.CreateOrder(context.Background(), models.OrderRequest{
		Selections: []models.Selection{
			{ItemID: "bebida_coca_lata", Quantity: 1},
		},
		CustomerName:    "Ana",
		DeliveryAddress: "Rua das Flores, 123",
		CouponCode:      "bemvindo10",
	})
	if err != nil {
		t.Fatalf("CreateOrder() unexpected error = %v", err)
	}
	if order.CouponCode != "BEMVINDO10" {
		t.Errorf("coupon code = %q, want canonical BEMVINDO10", order.CouponCode)
	}
}

func TestOrderService_CreateOrder_InactiveCoupon(t *testing.T) {
	svc, cat := newOrderService()
	cat.ToggleCouponActive("coupon_bemvindo10")

	_, err := svc.CreateOrder(context.Background(), models.OrderRequest{
		Selections: []models.Selection{
			{ItemID: "bebida_coca_lata", Quantity: 1},
		},
		CustomerName:    "Ana",
		DeliveryAddress: "Rua das Flores, 123",
		CouponCode:      "BEMVINDO10",
	})
	if !errors.Is(err, ErrInvalidCoupon) {
		t.Fatalf("error = %v, want ErrInvalidCoupon", err)
	}
}
