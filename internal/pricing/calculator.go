package pricing

import (
	"time"

	"vehicle-rental-backend/internal/domain"
)

// Mode says whether the total is derived or user-supplied.
type Mode string

const (
	// ModeAuto recomputes the total whenever any pricing input changes.
	ModeAuto Mode = "auto"
	// ModeManual freezes the total at a user-supplied value and ignores
	// every recompute trigger until AutoCalculate is called.
	ModeManual Mode = "manual"
)

// Calculator holds the pricing state of one booking session and owns the
// auto/manual override reconciliation. It replaces the reactive
// recompute-on-change effects of the booking form with an explicit state
// machine: every setter either recomputes (auto) or is recorded but
// ignored (manual).
type Calculator struct {
	perDay     int64
	rentType   domain.RentType
	customDays int32
	dur        Duration
	hasWindow  bool

	mode  Mode
	total int64
}

// NewCalculator starts a session in auto mode with daily billing.
func NewCalculator() *Calculator {
	return &Calculator{rentType: domain.RentTypeDaily, mode: ModeAuto}
}

// SetPerDayPrice updates the base rate and recomputes when in auto mode.
func (c *Calculator) SetPerDayPrice(perDay int64) {
	c.perDay = perDay
	c.recompute()
}

// SetRentType switches the billing granularity and recomputes when in
// auto mode.
func (c *Calculator) SetRentType(rt domain.RentType) {
	c.rentType = rt
	c.recompute()
}

// SetCustomDays sets an explicit day count. A non-zero custom day count
// takes precedence over the date-derived duration whatever the rent type,
// matching the booking form's behavior. Stays in auto mode: the total is
// still a derived value.
func (c *Calculator) SetCustomDays(days int32) {
	c.customDays = days
	c.recompute()
}

// SetWindow derives the duration from the delivery/return pair. The
// caller must have validated that ret is after delivery.
func (c *Calculator) SetWindow(delivery, ret time.Time) {
	c.dur = ComputeDuration(delivery, ret)
	c.hasWindow = true
	c.recompute()
}

// EditTotal is the user typing a total directly: the amount is frozen and
// the session switches to manual mode.
func (c *Calculator) EditTotal(total int64) {
	c.mode = ModeManual
	c.total = total
}

// SelectTier applies a quick-pick tier price as the total. Like a direct
// edit, this freezes the amount in manual mode.
func (c *Calculator) SelectTier(tierTotal int64) {
	c.mode = ModeManual
	c.total = tierTotal
}

// AutoCalculate returns to auto mode and immediately recomputes from the
// current inputs.
func (c *Calculator) AutoCalculate() {
	c.mode = ModeAuto
	c.recompute()
}

// Total returns the current total amount.
func (c *Calculator) Total() int64 { return c.total }

// Mode returns the current override mode.
func (c *Calculator) Mode() Mode { return c.mode }

// Duration returns the date-derived duration, zero until SetWindow is
// called.
func (c *Calculator) Duration() Duration { return c.dur }

func (c *Calculator) recompute() {
	if c.mode != ModeAuto {
		return
	}
	if c.perDay <= 0 {
		c.total = 0
		return
	}

	switch {
	case c.customDays > 0:
		// An explicit day count wins over the date-derived duration.
		c.total = c.perDay * int64(c.customDays)
	case c.hasWindow:
		c.total = ComputeTotal(c.perDay, c.rentType, c.dur, c.customDays)
	default:
		c.total = 0
	}
}
