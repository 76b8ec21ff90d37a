package catalog

import (
	"errors"
	"strings"
	"sync"

	"github.com/bigpasteldabel/storefront/internal/models"
	"github.com/google/uuid"
)

var (
	ErrItemNotFound        = errors.New("menu item not found")
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrDuplicateCouponCode = errors.New("coupon code already exists")
)

// CouponsListener is invoked after any mutation of the coupon
// collection, with a copy of the new collection.
type CouponsListener func(coupons []models.Coupon)

// Store holds the catalog (menu items and coupons) in memory.
// Collections keep insertion order; all access is mutex-guarded so the
// availability filter always sees the latest admin toggle.
type Store struct {
	mu        sync.RWMutex
	items     []models.MenuItem
	itemIndex map[string]int
	coupons   []models.Coupon
	listener  CouponsListener
}

// New creates a catalog store seeded with the given snapshot.
func New(data models.AppData) *Store {
	s := &Store{}
	s.ReplaceAll(data)
	return s
}

// OnCouponsChanged registers the listener notified after coupon
// mutations. Intended to be set once during wiring.
func (s *Store) OnCouponsChanged(fn CouponsListener) {
	s.mu.Lock()
	s.listener = fn
	s.mu.Unlock()
}

// ReplaceAll overwrites the whole catalog with the given snapshot.
// Last writer wins; there are no partial updates.
func (s *Store) ReplaceAll(data models.AppData) {
	s.mu.Lock()
	s.items = make([]models.MenuItem, len(data.MenuItems))
	copy(s.items, data.MenuItems)
	s.itemIndex = make(map[string]int, len(s.items))
	for i, item := range s.items {
		s.itemIndex[item.ID] = i
	}
	s.coupons = make([]models.Coupon, len(data.Coupons))
	copy(s.coupons, data.Coupons)
	listener, coupons := s.listener, s.couponsCopyLocked()
	s.mu.Unlock()

	if listener != nil {
		listener(coupons)
	}
}

// Snapshot returns a copy of the full catalog state.
func (s *Store) Snapshot() models.AppData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.MenuItem, len(s.items))
	copy(items, s.items)
	return models.AppData{MenuItems: items, Coupons: s.couponsCopyLocked()}
}

// MenuItems returns all menu items in insertion order.
func (s *Store) MenuItems() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.MenuItem, len(s.items))
	copy(items, s.items)
	return items
}

// MenuItem returns the item with the given id.
func (s *Store) MenuItem(id string) (models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.itemIndex[id]
	if !ok {
		return models.MenuItem{}, ErrItemNotFound
	}
	return s.items[i], nil
}

// ItemsByCategory returns the items in the given category, preserving
// catalog order.
func (s *Store) ItemsByCategory(category string) []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []models.MenuItem
	for _, item := range s.items {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items
}

// AvailableToppings returns the toppings currently offered in the
// composition flow.
func (s *Store) AvailableToppings() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var toppings []models.MenuItem
	for _, item := range s.items {
		if item.ItemType == models.ItemTypeTopping && item.IsAvailable {
			toppings = append(toppings, item)
		}
	}
	return toppings
}

// IsSelectable reports whether the item exists and is currently
// available. It reads live state, so an admin toggle is visible on the
// next call.
func (s *Store) IsSelectable(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.itemIndex[id]
	return ok && s.items[i].IsAvailable
}

// ToggleItemAvailability flips IsAvailable on the matching item.
// Missing ids are a no-op, not an error.
func (s *Store) ToggleItemAvailability(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.itemIndex[id]; ok {
		s.items[i].IsAvailable = !s.items[i].IsAvailable
	}
}

// Coupons returns all coupons in insertion order.
func (s *Store) Coupons() []models.Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.couponsCopyLocked()
}

// Coupon returns the coupon with the given id.
func (s *Store) Coupon(id string) (models.Coupon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.coupons {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Coupon{}, ErrCouponNotFound
}

// CouponByCode returns the coupon holding the given code,
// case-insensitively.
func (s *Store) CouponByCode(code string) (models.Coupon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.coupons {
		if strings.EqualFold(c.Code, code) {
			return c, nil
		}
	}
	return models.Coupon{}, ErrCouponNotFound
}

// AddCoupon assigns a new id to the coupon and appends it. It fails
// with ErrDuplicateCouponCode, mutating nothing, if any existing
// coupon already holds the code in any case.
func (s *Store) AddCoupon(coupon models.Coupon) (models.Coupon, error) {
	s.mu.Lock()
	for _, c := range s.coupons {
		if strings.EqualFold(c.Code, coupon.Code) {
			s.mu.Unlock()
			return models.Coupon{}, ErrDuplicateCouponCode
		}
	}
	coupon.ID = "coupon_" + uuid.New().String()
	s.coupons = append(s.coupons, coupon)
	listener, coupons := s.listener, s.couponsCopyLocked()
	s.mu.Unlock()

	if listener != nil {
		listener(coupons)
	}
	return coupon, nil
}

// UpdateCoupon replaces the stored coupon with the matching id in
// place, preserving its position. It fails with ErrDuplicateCouponCode
// if another coupon holds the same code in any case.
func (s *Store) UpdateCoupon(updated models.Coupon) error {
	s.mu.Lock()
	pos := -1
	for i, c := range s.coupons {
		if c.ID != updated.ID && strings.EqualFold(c.Code, updated.Code) {
			s.mu.Unlock()
			return ErrDuplicateCouponCode
		}
		if c.ID == updated.ID {
			pos = i
		}
	}
	if pos < 0 {
		s.mu.Unlock()
		return ErrCouponNotFound
	}
	s.coupons[pos] = updated
	listener, coupons := s.listener, s.couponsCopyLocked()
	s.mu.Unlock()

	if listener != nil {
		listener(coupons)
	}
	return nil
}

// ToggleCouponActive flips IsActive on the matching coupon. Missing
// ids are a no-op.
func (s *Store) ToggleCouponActive(id string) {
	s.mu.Lock()
	changed := false
	for i, c := range s.coupons {
		if c.ID == id {
			s.coupons[i].IsActive = !c.IsActive
			changed = true
			break
		}
	}
	listener, coupons := s.listener, s.couponsCopyLocked()
	s.mu.Unlock()

	if changed && listener != nil {
		listener(coupons)
	}
}

func (s *Store) couponsCopyLocked() []models.Coupon {
	coupons := make([]models.Coupon, len(s.coupons))
	copy(coupons, s.coupons)
	return coupons
}
