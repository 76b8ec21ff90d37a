package models

import "github.com/shopspring/decimal"

// ItemType classifies how a menu item enters an order.
type ItemType string

const (
	// ItemTypeComposable items prompt for an optional topping before
	// being added (tradicional, especial and doce pastéis).
	ItemTypeComposable ItemType = "composable"
	// ItemTypeStandalone items are added directly (bebidas).
	ItemTypeStandalone ItemType = "standalone"
	// ItemTypeTopping items are only selectable through the
	// composition flow (bordas).
	ItemTypeTopping ItemType = "topping"
)

// MenuItem represents a catalog entry.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Category    string          `json:"category"`
	ItemType    ItemType        `json:"itemType"`
	IsAvailable bool            `json:"isAvailable"`
}
