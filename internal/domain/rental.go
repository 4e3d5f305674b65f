package domain

// RentType is the billing granularity selected for a booking.
type RentType string

const (
	RentTypeHourly  RentType = "hourly"
	RentTypeDaily   RentType = "daily"
	RentTypeWeekly  RentType = "weekly"
	RentTypeMonthly RentType = "monthly"
	RentTypeCustom  RentType = "custom"
)

// PaymentStatus summarizes how much of the total has been paid.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPending PaymentStatus = "pending"
)

// SmartPricing is the per-booking pricing state. PerDayPrice is the single
// source of truth for every derived tier; SavedPrices keeps the five most
// recently saved per-day prices for quick re-selection.
type SmartPricing struct {
	PerDayPrice int64   `json:"per_day_price"`
	CustomDays  int32   `json:"custom_days"`
	SavedPrices []int64 `json:"saved_prices,omitempty"`
}

// Rental is one persisted rental agreement. The client, vehicle, and
// pricing fields are snapshots taken at booking time; once saved, the
// amounts are plain fields and are no longer re-derived automatically.
type Rental struct {
	ID              int32         `json:"id"`
	AgreementNumber string        `json:"agreement_number,omitempty"`
	VehicleID       int32         `json:"vehicle_id"`
	Client          Client        `json:"client"`
	Vehicle         Vehicle       `json:"vehicle"`
	Witness         Witness       `json:"witness"`
	DeliveryDate    string        `json:"delivery_date"` // yyyy-mm-dd
	DeliveryTime    string        `json:"delivery_time"` // HH:MM
	ReturnDate      string        `json:"return_date"`
	ReturnTime      string        `json:"return_time"`
	RentType        RentType      `json:"rent_type"`
	CustomDays      int32         `json:"custom_days,omitempty"`
	TotalAmount     int64         `json:"total_amount"`
	AdvancePayment  int64         `json:"advance_payment"`
	Balance         int64         `json:"balance"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	Overdue         bool          `json:"overdue,omitempty"`
	Notes           string        `json:"notes,omitempty"`

	Accessories      *AccessoriesChecklist `json:"accessories,omitempty"`
	VehicleCondition *VehicleCondition     `json:"vehicle_condition,omitempty"`
	DentsScratches   *DentsScratchesReport `json:"dents_scratches,omitempty"`
	SmartPricing     *SmartPricing         `json:"smart_pricing,omitempty"`

	ClientSignatureURL string `json:"client_signature_url,omitempty"`
	OwnerSignatureURL  string `json:"owner_signature_url,omitempty"`

	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}

// DashboardStats is the reduction over the rental collection shown on the
// dashboard.
type DashboardStats struct {
	TotalIncome     int64 `json:"total_income"`
	PendingPayments int64 `json:"pending_payments"`
	ActiveRentals   int32 `json:"active_rentals"`
	TotalClients    int32 `json:"total_clients"`
}
