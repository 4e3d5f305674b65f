package service

import (
	"context"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/pricing"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (string, string, error)
	FirebaseLogin(ctx context.Context, firebaseUID, email, name string) (string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}

type VehicleService interface {
	AddVehicle(ctx context.Context, vehicle *domain.Vehicle, imageDataURI, logoDataURI string) error
	GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle, imageDataURI, logoDataURI string) error
	DeleteVehicle(ctx context.Context, id int32) error
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
}

// QuoteRequest carries the pricing inputs of an in-progress booking.
type QuoteRequest struct {
	PerDayPrice  int64           `json:"per_day_price"`
	RentType     domain.RentType `json:"rent_type"`
	DeliveryDate string          `json:"delivery_date"`
	DeliveryTime string          `json:"delivery_time"`
	ReturnDate   string          `json:"return_date"`
	ReturnTime   string          `json:"return_time"`
	CustomDays   int32           `json:"custom_days"`
}

// Quote is the engine's answer: the duration breakdown, the tier prices
// derived from the per-day price, and the auto-calculated total.
type Quote struct {
	Duration    pricing.Duration   `json:"duration"`
	TierPrices  pricing.TierPrices `json:"tier_prices"`
	TotalAmount int64              `json:"total_amount"`
}

// CreateRentalInput is the booking wizard's submission. ManualTotal
// mirrors the wizard's override flag: when set, TotalAmount on the draft
// is taken as-is instead of being recomputed.
type CreateRentalInput struct {
	Rental             *domain.Rental
	ManualTotal        bool
	ClientSignatureURI string
	OwnerSignatureURI  string
}

type RentalService interface {
	Quote(ctx context.Context, req QuoteRequest) (*Quote, error)
	CreateRental(ctx context.Context, input CreateRentalInput) (*domain.Rental, error)
	GetRental(ctx context.Context, id int32) (*domain.Rental, error)
	UpdateRental(ctx context.Context, rental *domain.Rental) error
	DeleteRental(ctx context.Context, id int32) error
	ListRentals(ctx context.Context, paymentStatus string, page, pageSize int32) ([]domain.Rental, int32, error)
	UpdatePayment(ctx context.Context, id int32, advancePayment int64) (*domain.Rental, error)
	MarkFullyPaid(ctx context.Context, id int32) (*domain.Rental, error)
}

type DashboardService interface {
	GetStats(ctx context.Context) (*domain.DashboardStats, error)
	UpcomingReturns(ctx context.Context) ([]domain.Rental, error)
	ListClients(ctx context.Context) ([]domain.ClientSummary, error)
}

type EmailService interface {
	SendPasswordReset(ctx context.Context, to, name, resetToken string) error
	SendBookingConfirmation(ctx context.Context, to, clientName, vehicleName, agreementNumber string, total, advance, balance int64) error
	SendPaymentReceipt(ctx context.Context, to, clientName, agreementNumber string, advance, balance int64) error
	SendPaymentReminder(ctx context.Context, to, clientName, agreementNumber string, balance int64) error
}
