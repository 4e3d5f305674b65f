package pricing

import (
	"testing"

	"vehicle-rental-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCalculator_AutoRecompute(t *testing.T) {
	c := NewCalculator()
	assert.Equal(t, ModeAuto, c.Mode())
	assert.Equal(t, int64(0), c.Total())

	c.SetPerDayPrice(3000)
	// No window and no custom days yet.
	assert.Equal(t, int64(0), c.Total())

	c.SetWindow(mustTime(t, "2024-01-01T10:00"), mustTime(t, "2024-01-03T10:00"))
	assert.Equal(t, int64(6000), c.Total())

	c.SetRentType(domain.RentTypeHourly)
	assert.Equal(t, int64(6000), c.Total()) // 125 * 48

	c.SetPerDayPrice(2400)
	assert.Equal(t, int64(4800), c.Total()) // 100 * 48
}

func TestCalculator_CustomDaysPrecedence(t *testing.T) {
	c := NewCalculator()
	c.SetPerDayPrice(1000)
	c.SetWindow(mustTime(t, "2024-01-01T10:00"), mustTime(t, "2024-01-03T10:00"))
	assert.Equal(t, int64(2000), c.Total())

	// An explicit day count overrides the window even for daily billing,
	// and the total stays derived (auto mode).
	c.SetCustomDays(5)
	assert.Equal(t, int64(5000), c.Total())
	assert.Equal(t, ModeAuto, c.Mode())

	c.SetCustomDays(0)
	assert.Equal(t, int64(2000), c.Total())
}

func TestCalculator_ManualOverride(t *testing.T) {
	c := NewCalculator()
	c.SetPerDayPrice(3000)
	c.SetWindow(mustTime(t, "2024-01-01T10:00"), mustTime(t, "2024-01-03T10:00"))
	assert.Equal(t, int64(6000), c.Total())

	c.EditTotal(5500)
	assert.Equal(t, ModeManual, c.Mode())
	assert.Equal(t, int64(5500), c.Total())

	// No sequence of input changes may alter a frozen total.
	c.SetPerDayPrice(9000)
	c.SetRentType(domain.RentTypeMonthly)
	c.SetCustomDays(40)
	c.SetWindow(mustTime(t, "2024-01-01T10:00"), mustTime(t, "2024-06-01T10:00"))
	assert.Equal(t, int64(5500), c.Total())

	// Explicit auto-calculate recomputes from the current inputs.
	c.AutoCalculate()
	assert.Equal(t, ModeAuto, c.Mode())
	assert.Equal(t, int64(9000*40), c.Total()) // custom days still win
}

func TestCalculator_SelectTier(t *testing.T) {
	c := NewCalculator()
	c.SetPerDayPrice(3000)
	c.SetWindow(mustTime(t, "2024-01-01T10:00"), mustTime(t, "2024-01-03T10:00"))

	tiers := DeriveTierPrices(3000)
	c.SelectTier(tiers.Weekly)
	assert.Equal(t, ModeManual, c.Mode())
	assert.Equal(t, int64(21000), c.Total())

	c.SetPerDayPrice(100)
	assert.Equal(t, int64(21000), c.Total())
}

func TestCalculator_UnconfiguredPrice(t *testing.T) {
	c := NewCalculator()
	c.SetWindow(mustTime(t, "2024-01-01T10:00"), mustTime(t, "2024-01-05T10:00"))
	assert.Equal(t, int64(0), c.Total())

	c.SetPerDayPrice(0)
	assert.Equal(t, int64(0), c.Total())
}
