package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/logger"
	"vehicle-rental-backend/internal/pricing"
	"vehicle-rental-backend/internal/repository"
	"vehicle-rental-backend/internal/storage"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow      = errors.New("return date/time must be after delivery date/time")
	ErrPriceNotConfigured = errors.New("per-day price is not configured")
	ErrNegativeAmount     = errors.New("amounts must be non-negative")
)

type rentalService struct {
	rentalRepo  repository.RentalRepository
	vehicleRepo repository.VehicleRepository
	assets      storage.AssetStore
	emailSvc    EmailService
	notifyEmail string
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	vehicleRepo repository.VehicleRepository,
	assets storage.AssetStore,
	emailSvc EmailService,
	notifyEmail string,
) RentalService {
	return &rentalService{
		rentalRepo:  rentalRepo,
		vehicleRepo: vehicleRepo,
		assets:      assets,
		emailSvc:    emailSvc,
		notifyEmail: notifyEmail,
	}
}

// Quote runs the pricing engine over the in-progress booking inputs. The
// window is validated here, before the engine sees it: the engine itself
// is total and does not reject bad ordering.
func (s *rentalService) Quote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	delivery, ret, err := parseWindow(req.DeliveryDate, req.DeliveryTime, req.ReturnDate, req.ReturnTime)
	if err != nil {
		return nil, err
	}

	calc := pricing.NewCalculator()
	calc.SetPerDayPrice(req.PerDayPrice)
	calc.SetRentType(req.RentType)
	calc.SetWindow(delivery, ret)
	calc.SetCustomDays(req.CustomDays)

	return &Quote{
		Duration:    calc.Duration(),
		TierPrices:  pricing.DeriveTierPrices(req.PerDayPrice),
		TotalAmount: calc.Total(),
	}, nil
}

func (s *rentalService) CreateRental(ctx context.Context, input CreateRentalInput) (*domain.Rental, error) {
	rt := input.Rental

	delivery, ret, err := parseWindow(rt.DeliveryDate, rt.DeliveryTime, rt.ReturnDate, rt.ReturnTime)
	if err != nil {
		return nil, err
	}
	if rt.AdvancePayment < 0 {
		return nil, ErrNegativeAmount
	}

	// Snapshot the vehicle: its rate sheet is immutable for the lifetime
	// of this agreement even if the vehicle record is edited later.
	vehicle, err := s.vehicleRepo.GetByID(ctx, rt.VehicleID)
	if err != nil {
		return nil, err
	}
	rt.Vehicle = *vehicle

	perDay := int64(0)
	if rt.SmartPricing != nil {
		perDay = rt.SmartPricing.PerDayPrice
	}

	calc := pricing.NewCalculator()
	calc.SetPerDayPrice(perDay)
	calc.SetRentType(rt.RentType)
	calc.SetWindow(delivery, ret)
	calc.SetCustomDays(rt.CustomDays)
	if input.ManualTotal {
		calc.EditTotal(rt.TotalAmount)
	}
	rt.TotalAmount = calc.Total()

	if rt.TotalAmount <= 0 {
		// A zero total means pricing was never configured; the booking
		// form should prompt for a price instead of submitting.
		return nil, ErrPriceNotConfigured
	}

	rt.Balance, rt.PaymentStatus = pricing.DerivePaymentStatus(rt.TotalAmount, rt.AdvancePayment)

	if rt.AgreementNumber == "" {
		rt.AgreementNumber = generateAgreementNumber()
	}

	// Record the per-day price in the quick-pick history stored with
	// the agreement.
	if rt.SmartPricing != nil {
		pricing.SavePrice(rt.SmartPricing)
	}

	if input.ClientSignatureURI != "" {
		url, err := s.assets.SaveDataURI(ctx, "signatures", input.ClientSignatureURI)
		if err != nil {
			return nil, err
		}
		rt.ClientSignatureURL = url
	}
	if input.OwnerSignatureURI != "" {
		url, err := s.assets.SaveDataURI(ctx, "signatures", input.OwnerSignatureURI)
		if err != nil {
			return nil, err
		}
		rt.OwnerSignatureURL = url
	}

	if err := s.rentalRepo.Create(ctx, rt); err != nil {
		return nil, err
	}

	if s.notifyEmail != "" {
		if err := s.emailSvc.SendBookingConfirmation(ctx, s.notifyEmail, rt.Client.FullName, vehicle.Name, rt.AgreementNumber, rt.TotalAmount, rt.AdvancePayment, rt.Balance); err != nil {
			logger.Warn("Failed to send booking confirmation", "error", err, "rental_id", rt.ID)
		}
	}

	return rt, nil
}

func (s *rentalService) GetRental(ctx context.Context, id int32) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) UpdateRental(ctx context.Context, rt *domain.Rental) error {
	if _, _, err := parseWindow(rt.DeliveryDate, rt.DeliveryTime, rt.ReturnDate, rt.ReturnTime); err != nil {
		return err
	}
	// Amounts on an edited agreement keep the same derivation rules as
	// at creation.
	rt.Balance, rt.PaymentStatus = pricing.DerivePaymentStatus(rt.TotalAmount, rt.AdvancePayment)
	return s.rentalRepo.Update(ctx, rt)
}

func (s *rentalService) DeleteRental(ctx context.Context, id int32) error {
	return s.rentalRepo.Delete(ctx, id)
}

func (s *rentalService) ListRentals(ctx context.Context, paymentStatus string, page, pageSize int32) ([]domain.Rental, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.rentalRepo.List(ctx, paymentStatus, page, pageSize)
}

// UpdatePayment is the invoice edit path: the stored total stays fixed
// and the balance/status are re-derived from the new advance payment.
func (s *rentalService) UpdatePayment(ctx context.Context, id int32, advancePayment int64) (*domain.Rental, error) {
	if advancePayment < 0 {
		return nil, ErrNegativeAmount
	}

	rt, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rt.AdvancePayment = advancePayment
	rt.Balance, rt.PaymentStatus = pricing.DerivePaymentStatus(rt.TotalAmount, rt.AdvancePayment)

	if err := s.rentalRepo.UpdatePayment(ctx, id, rt.TotalAmount, rt.AdvancePayment, rt.Balance, rt.PaymentStatus); err != nil {
		return nil, err
	}

	if s.notifyEmail != "" {
		if err := s.emailSvc.SendPaymentReceipt(ctx, s.notifyEmail, rt.Client.FullName, rt.AgreementNumber, rt.AdvancePayment, rt.Balance); err != nil {
			logger.Warn("Failed to send payment receipt", "error", err, "rental_id", id)
		}
	}

	return rt, nil
}

// MarkFullyPaid settles the agreement in one step.
func (s *rentalService) MarkFullyPaid(ctx context.Context, id int32) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.UpdatePayment(ctx, id, rt.TotalAmount)
}

func parseWindow(deliveryDate, deliveryTime, returnDate, returnTime string) (delivery, ret time.Time, err error) {
	delivery, err = pricing.CombineDateTime(deliveryDate, deliveryTime)
	if err != nil {
		return
	}
	ret, err = pricing.CombineDateTime(returnDate, returnTime)
	if err != nil {
		return
	}
	if !ret.After(delivery) {
		err = ErrInvalidWindow
	}
	return
}

func generateAgreementNumber() string {
	return "AGR-" + strings.ToUpper(uuid.New().String()[:8])
}
