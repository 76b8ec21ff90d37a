package models

import "github.com/shopspring/decimal"

// DiscountType describes how a coupon value is applied.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Coupon represents a promotional code. Code is unique
// (case-insensitive) within the active coupon set.
type Coupon struct {
	ID            string           `json:"id"`
	Code          string           `json:"code"`
	Description   string           `json:"description,omitempty"`
	DiscountType  DiscountType     `json:"discountType"`
	Value         decimal.Decimal  `json:"value"`
	IsActive      bool             `json:"isActive"`
	ExpiryDate    string           `json:"expiryDate,omitempty"`
	MinOrderValue *decimal.Decimal `json:"minOrderValue,omitempty"`
}
