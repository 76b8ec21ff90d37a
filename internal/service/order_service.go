package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bigpasteldabel/storefront/internal/cart"
	"github.com/bigpasteldabel/storefront/internal/catalog"
	"github.com/bigpasteldabel/storefront/internal/models"
	"github.com/bigpasteldabel/storefront/internal/whatsapp"
	"github.com/google/uuid"
)

var (
	ErrEmptyOrder      = errors.New("order must contain at least one selection")
	ErrMissingName     = errors.New("customer name is required")
	ErrMissingAddress  = errors.New("delivery address is required")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidCoupon   = errors.New("coupon code is not valid")
)

// OrderService turns an order request into a priced, merged line list
// and the WhatsApp hand-off payload.
type OrderService struct {
	catalog   *catalog.Store
	formatter *whatsapp.Formatter
}

// NewOrderService creates a new order service.
func NewOrderService(cat *catalog.Store, formatter *whatsapp.Formatter) *OrderService {
	return &OrderService{
		catalog:   cat,
		formatter: formatter,
	}
}

// CreateOrder runs every selection through the selection engine
// (availability checks, composition, line merging), validates the
// coupon if one is given, and formats the WhatsApp message. The cart
// is cleared after a successful hand-off.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	if len(req.Selections) == 0 {
		return nil, ErrEmptyOrder
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, ErrMissingName
	}
	if strings.TrimSpace(req.DeliveryAddress) == "" {
		return nil, ErrMissingAddress
	}

	c := cart.New(s.catalog)

	for _, sel := range req.Selections {
		if sel.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if err := s.applySelection(c, sel); err != nil {
			return nil, err
		}
	}

	couponCode := ""
	if req.CouponCode != "" {
		coupon, err := s.catalog.CouponByCode(req.CouponCode)
		if err != nil || !coupon.IsActive {
			return nil, ErrInvalidCoupon
		}
		couponCode = coupon.Code
	}

	lines := c.Lines()
	subtotal := c.Subtotal()
	itemCount := c.TotalItemCount()

	message := s.formatter.Message(lines, subtotal, whatsapp.OrderInfo{
		CustomerName:    req.CustomerName,
		DeliveryAddress: req.DeliveryAddress,
		CouponCode:      couponCode,
		PaymentMethod:   req.PaymentMethod,
	})
	order := &models.Order{
		ID:              uuid.New().String(),
		Lines:           lines,
		Subtotal:        subtotal,
		ItemCount:       itemCount,
		CustomerName:    req.CustomerName,
		DeliveryAddress: req.DeliveryAddress,
		CouponCode:      couponCode,
		PaymentMethod:   req.PaymentMethod,
		Message:         message,
		WhatsAppURL:     s.formatter.Link(message),
		CreatedAt:       time.Now().UTC(),
	}

	// Hand-off complete; the pending selection is gone.
	c.Clear()

	return order, nil
}

// applySelection feeds one selection through the engine and raises the
// resulting line to the selection's absolute quantity contribution.
func (s *OrderService) applySelection(c *cart.Cart, sel models.Selection) error {
	item, err := s.catalog.MenuItem(sel.ItemID)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidProduct, sel.ItemID)
	}

	res, err := c.SelectOrAdd(item)
	if err != nil {
		return err
	}

	if res.PendingComposition {
		var topping *models.MenuItem
		if sel.ToppingID != "" {
			t, err := s.catalog.MenuItem(sel.ToppingID)
			if err != nil {
				c.CancelComposition()
				return fmt.Errorf("%w: %s", ErrInvalidProduct, sel.ToppingID)
			}
			topping = &t
		}
		res, err = c.ConfirmComposition(item, topping)
		if err != nil {
			return err
		}
	} else if sel.ToppingID != "" {
		// Toppings only attach to composable items.
		return fmt.Errorf("%w: %s does not take a topping", ErrInvalidProduct, item.Name)
	}

	if sel.Quantity > 1 {
		c.UpdateQuantity(res.Line.LineID, res.Line.Quantity+sel.Quantity-1)
	}
	return nil
}
