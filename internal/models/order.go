package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Selection is one customer choice in an order request: a menu item,
// an optional topping for composable items, and an absolute quantity.
type Selection struct {
	ItemID    string `json:"itemId"`
	ToppingID string `json:"toppingId,omitempty"`
	Quantity  int    `json:"quantity"`
}

// OrderRequest represents an incoming order request. Customer name and
// delivery address are required; the vendor needs both to confirm the
// order over WhatsApp.
type OrderRequest struct {
	Selections      []Selection `json:"selections"`
	CustomerName    string      `json:"customerName"`
	DeliveryAddress string      `json:"deliveryAddress"`
	CouponCode      string      `json:"couponCode,omitempty"`
	PaymentMethod   string      `json:"paymentMethod,omitempty"`
}

// Order represents a priced, merged order ready for the WhatsApp
// hand-off.
type Order struct {
	ID              string          `json:"id"`
	Lines           []OrderLine     `json:"lines"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	ItemCount       int             `json:"itemCount"`
	CustomerName    string          `json:"customerName"`
	DeliveryAddress string          `json:"deliveryAddress"`
	CouponCode      string          `json:"couponCode,omitempty"`
	PaymentMethod   string          `json:"paymentMethod,omitempty"`
	Message         string          `json:"message"`
	WhatsAppURL     string          `json:"whatsappUrl"`
	CreatedAt       time.Time       `json:"createdAt"`
}
