// Package highlight picks at most one coupon to surface as a
// promotional popup, honoring a 24h dismissal cooldown.
package highlight

import (
	"time"

	"github.com/bigpasteldabel/storefront/internal/models"
)

// DismissCooldown is how long the highlight stays suppressed after an
// explicit dismissal.
const DismissCooldown = 24 * time.Hour

// Pick chooses the coupon to highlight, or nil.
//
// A dismissal within the cooldown suppresses the highlight regardless
// of the coupon set. Among active coupons the precedence is fixed and
// deterministic: first (in catalog order) with an expiry date, else
// first with a description, else the first. The rule deliberately does
// not compare discount values.
func Pick(coupons []models.Coupon, dismissedAt time.Time, now time.Time) *models.Coupon {
	if !dismissedAt.IsZero() && now.Sub(dismissedAt) < DismissCooldown {
		return nil
	}

	var active []models.Coupon
	for _, c := range coupons {
		if c.IsActive {
			active = append(active, c)
		}
	}
	if len(active) == 0 {
		return nil
	}

	for _, c := range active {
		if c.ExpiryDate != "" {
			picked := c
			return &picked
		}
	}
	for _, c := range active {
		if c.Description != "" {
			picked := c
			return &picked
		}
	}
	picked := active[0]
	return &picked
}
