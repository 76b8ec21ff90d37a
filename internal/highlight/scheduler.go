package highlight

import (
	"sync"
	"time"

	"github.com/bigpasteldabel/storefront/internal/models"
)

// Scheduler re-evaluates the highlight pick whenever the coupon
// collection changes and surfaces it only after a fixed display delay,
// so the popup does not appear the instant data loads. A Refresh
// supersedes any pending timer, keeping stale picks from surfacing
// after state has moved on.
type Scheduler struct {
	delay time.Duration
	now   func() time.Time

	mu          sync.Mutex
	timer       *time.Timer
	gen         uint64
	dismissedAt time.Time
	visible     *models.Coupon
}

// NewScheduler creates a scheduler with the given display delay.
func NewScheduler(delay time.Duration) *Scheduler {
	return &Scheduler{
		delay: delay,
		now:   time.Now,
	}
}

// Refresh re-runs the selection over the given coupons. A non-nil pick
// becomes visible after the display delay; a nil pick hides the
// highlight immediately.
func (s *Scheduler) Refresh(coupons []models.Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()

	picked := Pick(coupons, s.dismissedAt, s.now())
	if picked == nil {
		s.visible = nil
		return
	}

	if s.delay <= 0 {
		s.visible = picked
		return
	}
	gen := s.gen
	s.timer = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		// A Dismiss or newer Refresh may have landed while this callback
		// waited on the lock; its generation no longer matches then.
		if s.gen != gen {
			return
		}
		s.visible = picked
		s.timer = nil
	})
}

// Current returns the highlight currently surfaced, if any. A pick
// still inside its display delay is not yet current.
func (s *Scheduler) Current() *models.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.visible == nil {
		return nil
	}
	c := *s.visible
	return &c
}

// Dismiss hides the highlight and records the dismissal timestamp.
// Only an explicit dismissal counts; viewing does not.
func (s *Scheduler) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()
	s.visible = nil
	s.dismissedAt = s.now()
}

// DismissedAt returns the last dismissal time (zero if never).
func (s *Scheduler) DismissedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dismissedAt
}

func (s *Scheduler) cancelLocked() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
