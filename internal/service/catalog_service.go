package service

import (
	"context"
	"log/slog"

	"github.com/bigpasteldabel/storefront/internal/catalog"
	"github.com/bigpasteldabel/storefront/internal/highlight"
	"github.com/bigpasteldabel/storefront/internal/models"
	"github.com/bigpasteldabel/storefront/internal/store"
)

// CatalogService exposes the catalog read surface and the
// administrative mutations. Every successful mutation persists the
// whole snapshot; a persistence failure keeps the in-memory state
// (optimistic update) and is reported to the admin caller.
type CatalogService struct {
	catalog   *catalog.Store
	store     store.Store // nil for the memory backend
	scheduler *highlight.Scheduler
	log       *slog.Logger
}

// NewCatalogService wires the catalog to its persistence store and the
// highlight scheduler. Coupon mutations re-run the highlight selection.
func NewCatalogService(cat *catalog.Store, st store.Store, scheduler *highlight.Scheduler, log *slog.Logger) *CatalogService {
	s := &CatalogService{
		catalog:   cat,
		store:     st,
		scheduler: scheduler,
		log:       log,
	}
	cat.OnCouponsChanged(scheduler.Refresh)
	scheduler.Refresh(cat.Coupons())
	return s
}

// MenuItems returns the full menu in catalog order.
func (s *CatalogService) MenuItems() []models.MenuItem {
	return s.catalog.MenuItems()
}

// MenuItem returns one item by id.
func (s *CatalogService) MenuItem(id string) (models.MenuItem, error) {
	return s.catalog.MenuItem(id)
}

// ItemsByCategory returns the items in one category, catalog order.
func (s *CatalogService) ItemsByCategory(category string) []models.MenuItem {
	return s.catalog.ItemsByCategory(category)
}

// AvailableToppings returns the toppings offered in the composition
// flow.
func (s *CatalogService) AvailableToppings() []models.MenuItem {
	return s.catalog.AvailableToppings()
}

// Coupons returns all coupons in catalog order.
func (s *CatalogService) Coupons() []models.Coupon {
	return s.catalog.Coupons()
}

// Coupon returns one coupon by id.
func (s *CatalogService) Coupon(id string) (models.Coupon, error) {
	return s.catalog.Coupon(id)
}

// HighlightedCoupon returns the currently surfaced promotional
// highlight, if any.
func (s *CatalogService) HighlightedCoupon() *models.Coupon {
	return s.scheduler.Current()
}

// DismissHighlight records an explicit dismissal, suppressing the
// highlight for the cooldown window.
func (s *CatalogService) DismissHighlight() {
	s.scheduler.Dismiss()
}

// Snapshot returns the whole catalog state.
func (s *CatalogService) Snapshot() models.AppData {
	return s.catalog.Snapshot()
}

// ReplaceAll overwrites the whole catalog and persists it.
func (s *CatalogService) ReplaceAll(ctx context.Context, data models.AppData) error {
	s.catalog.ReplaceAll(data)
	return s.persist(ctx)
}

// ToggleItemAvailability flips an item's availability and persists.
// The toggle is visible to selection checks immediately, before the
// save completes.
func (s *CatalogService) ToggleItemAvailability(ctx context.Context, id string) error {
	s.catalog.ToggleItemAvailability(id)
	return s.persist(ctx)
}

// AddCoupon appends a coupon, enforcing case-insensitive code
// uniqueness, and persists.
func (s *CatalogService) AddCoupon(ctx context.Context, coupon models.Coupon) (models.Coupon, error) {
	added, err := s.catalog.AddCoupon(coupon)
	if err != nil {
		return models.Coupon{}, err
	}
	return added, s.persist(ctx)
}

// UpdateCoupon replaces a coupon in place and persists.
func (s *CatalogService) UpdateCoupon(ctx context.Context, coupon models.Coupon) error {
	if err := s.catalog.UpdateCoupon(coupon); err != nil {
		return err
	}
	return s.persist(ctx)
}

// ToggleCouponActive flips a coupon's activity and persists.
func (s *CatalogService) ToggleCouponActive(ctx context.Context, id string) error {
	s.catalog.ToggleCouponActive(id)
	return s.persist(ctx)
}

// persist saves the current snapshot. Failures do not roll back the
// in-memory state; the local view may diverge until the next
// successful save.
func (s *CatalogService) persist(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Save(ctx, s.catalog.Snapshot()); err != nil {
		s.log.Error("failed to persist catalog snapshot", "error", err)
		return err
	}
	return nil
}
