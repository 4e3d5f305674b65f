package pricing

import (
	"fmt"
	"time"

	"vehicle-rental-backend/internal/domain"
)

// Duration is the billable breakdown of a rental window. Partial periods
// bill as full periods, so every field is rounded up; days, weeks, and
// months never drop below one.
type Duration struct {
	Hours  int32 `json:"hours"`
	Days   int32 `json:"days"`
	Weeks  int32 `json:"weeks"`
	Months int32 `json:"months"`
}

// TierPrices are the per-tier prices derived from a single per-day price.
// Each tier is a pure function of the per-day price; none is stored
// independently.
type TierPrices struct {
	Hourly     int64 `json:"hourly"`
	Daily      int64 `json:"daily"`
	Weekly     int64 `json:"weekly"`
	FifteenDay int64 `json:"fifteen_day"`
	Monthly    int64 `json:"monthly"`
}

const (
	hoursPerDay  = 24
	daysPerWeek  = 7
	daysPer15    = 15
	daysPerMonth = 30
)

// CombineDateTime joins a yyyy-mm-dd date and an HH:MM time into a single
// timestamp.
func CombineDateTime(date, clock string) (time.Time, error) {
	t, err := time.Parse("2006-01-02T15:04", date+"T"+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q: %w", date, clock, err)
	}
	return t, nil
}

// ComputeDuration derives the billable duration from the delivery and
// return timestamps. It performs no ordering validation; callers must
// reject windows where return is not after delivery. Behavior on a
// negative window is undefined but non-crashing.
func ComputeDuration(delivery, ret time.Time) Duration {
	diff := ret.Sub(delivery)

	hours := int32(ceilDiv(int64(diff), int64(time.Hour)))
	days := int32(ceilDiv(int64(diff), int64(24*time.Hour)))
	if days < 1 {
		days = 1
	}
	weeks := int32(ceilDiv(int64(days), daysPerWeek))
	if weeks < 1 {
		weeks = 1
	}
	months := int32(ceilDiv(int64(days), daysPerMonth))
	if months < 1 {
		months = 1
	}

	return Duration{Hours: hours, Days: days, Weeks: weeks, Months: months}
}

// DeriveTierPrices computes every tier price from the per-day price.
// The hourly tier rounds half-up; all other tiers are exact multiples.
func DeriveTierPrices(perDay int64) TierPrices {
	if perDay <= 0 {
		return TierPrices{}
	}
	return TierPrices{
		Hourly:     roundHalfUp(perDay, hoursPerDay),
		Daily:      perDay,
		Weekly:     perDay * daysPerWeek,
		FifteenDay: perDay * daysPer15,
		Monthly:    perDay * daysPerMonth,
	}
}

// ComputeTotal produces the rental total for the selected rent type.
// A per-day price of zero or less means pricing is not configured yet and
// yields zero for every type; it is not an error. customDays only applies
// to the custom rent type and is independent of the date-derived duration.
func ComputeTotal(perDay int64, rentType domain.RentType, dur Duration, customDays int32) int64 {
	if perDay <= 0 {
		return 0
	}

	switch rentType {
	case domain.RentTypeHourly:
		return roundHalfUp(perDay, hoursPerDay) * int64(dur.Hours)
	case domain.RentTypeDaily:
		return perDay * int64(dur.Days)
	case domain.RentTypeWeekly:
		return perDay * daysPerWeek * int64(dur.Weeks)
	case domain.RentTypeMonthly:
		return perDay * daysPerMonth * int64(dur.Months)
	case domain.RentTypeCustom:
		return perDay * int64(customDays)
	default:
		return 0
	}
}

// DerivePaymentStatus recomputes the balance and payment status from the
// two amounts. It is pure and runs identically during booking creation and
// later invoice edits. Overpayment yields a negative balance and a paid
// status; the balance is deliberately not clamped.
func DerivePaymentStatus(total, advance int64) (int64, domain.PaymentStatus) {
	balance := total - advance

	switch {
	case advance >= total:
		return balance, domain.PaymentStatusPaid
	case advance > 0:
		return balance, domain.PaymentStatusPartial
	default:
		return balance, domain.PaymentStatusPending
	}
}

// SavePrice records the current per-day price into the quick-pick list,
// keeping at most the five most recently saved distinct prices.
func SavePrice(sp *domain.SmartPricing) {
	if sp.PerDayPrice <= 0 {
		return
	}
	for _, p := range sp.SavedPrices {
		if p == sp.PerDayPrice {
			return
		}
	}
	sp.SavedPrices = append(sp.SavedPrices, sp.PerDayPrice)
	if n := len(sp.SavedPrices); n > 5 {
		sp.SavedPrices = sp.SavedPrices[n-5:]
	}
}

// ceilDiv rounds the quotient toward positive infinity for positive
// divisors.
func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b > 0 {
		q++
	}
	return q
}

// roundHalfUp divides and rounds ties away from zero, the conventional
// currency rounding.
func roundHalfUp(a, b int64) int64 {
	return (a + b/2) / b
}
