package models

import "github.com/shopspring/decimal"

// OrderLine is one row in a customer's pending order. Two selections
// resolving to the same LineID merge into a single line.
type OrderLine struct {
	// LineID is the composite identity: base item id plus either the
	// chosen topping id, ":none" for a composable added without a
	// topping, or ":direct" for a standalone item.
	LineID string `json:"lineId"`

	// BaseItemName is the unmodified name of the underlying item,
	// retained even when DisplayName is composite.
	BaseItemName string `json:"baseItemName"`

	// DisplayName is BaseItemName, suffixed with the topping name in
	// parentheses when a topping was chosen.
	DisplayName string `json:"displayName"`

	// UnitPrice is the base item price plus the chosen topping price.
	UnitPrice decimal.Decimal `json:"unitPrice"`

	Quantity int `json:"quantity"`

	// SelectedTopping is kept for redisplay; it is not re-validated
	// after the line is created.
	SelectedTopping *MenuItem `json:"selectedTopping,omitempty"`
}

// LineTotal returns UnitPrice multiplied by Quantity.
func (l OrderLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
