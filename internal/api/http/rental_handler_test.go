package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/pricing"
	"vehicle-rental-backend/internal/service"
)

// stubRentalService wires canned responses into the handler under test.
type stubRentalService struct {
	quote      *service.Quote
	quoteErr   error
	rental     *domain.Rental
	createErr  error
	lastInput  service.CreateRentalInput
	lastStatus string
}

func (s *stubRentalService) Quote(ctx context.Context, req service.QuoteRequest) (*service.Quote, error) {
	return s.quote, s.quoteErr
}
func (s *stubRentalService) CreateRental(ctx context.Context, input service.CreateRentalInput) (*domain.Rental, error) {
	s.lastInput = input
	return s.rental, s.createErr
}
func (s *stubRentalService) GetRental(ctx context.Context, id int32) (*domain.Rental, error) {
	return s.rental, nil
}
func (s *stubRentalService) UpdateRental(ctx context.Context, rental *domain.Rental) error {
	return nil
}
func (s *stubRentalService) DeleteRental(ctx context.Context, id int32) error { return nil }
func (s *stubRentalService) ListRentals(ctx context.Context, paymentStatus string, page, pageSize int32) ([]domain.Rental, int32, error) {
	s.lastStatus = paymentStatus
	return []domain.Rental{*s.rental}, 1, nil
}
func (s *stubRentalService) UpdatePayment(ctx context.Context, id int32, advancePayment int64) (*domain.Rental, error) {
	return s.rental, nil
}
func (s *stubRentalService) MarkFullyPaid(ctx context.Context, id int32) (*domain.Rental, error) {
	return s.rental, nil
}

func testRouterFor(h *RentalHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/rentals/quote", h.Quote).Methods(http.MethodPost)
	r.HandleFunc("/rentals", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/rentals", h.List).Methods(http.MethodGet)
	r.HandleFunc("/rentals/{id:[0-9]+}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/rentals/{id:[0-9]+}/payment", h.UpdatePayment).Methods(http.MethodPut)
	return r
}

func TestRentalHandler_Quote(t *testing.T) {
	stub := &stubRentalService{
		quote: &service.Quote{
			Duration:    pricing.Duration{Hours: 48, Days: 2, Weeks: 1, Months: 1},
			TierPrices:  pricing.TierPrices{Hourly: 125, Daily: 3000, Weekly: 21000, FifteenDay: 45000, Monthly: 90000},
			TotalAmount: 6000,
		},
	}
	router := testRouterFor(NewRentalHandler(stub))

	body, _ := json.Marshal(service.QuoteRequest{
		PerDayPrice: 3000, RentType: domain.RentTypeDaily,
		DeliveryDate: "2026-03-01", DeliveryTime: "10:00",
		ReturnDate: "2026-03-03", ReturnTime: "10:00",
	})
	req := httptest.NewRequest(http.MethodPost, "/rentals/quote", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var quote service.Quote
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	assert.Equal(t, int64(6000), quote.TotalAmount)
	assert.Equal(t, int32(2), quote.Duration.Days)
}

func TestRentalHandler_Quote_InvalidWindow(t *testing.T) {
	stub := &stubRentalService{quoteErr: service.ErrInvalidWindow}
	router := testRouterFor(NewRentalHandler(stub))

	body, _ := json.Marshal(service.QuoteRequest{PerDayPrice: 3000})
	req := httptest.NewRequest(http.MethodPost, "/rentals/quote", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRentalHandler_Create(t *testing.T) {
	stub := &stubRentalService{
		rental: &domain.Rental{ID: 7, AgreementNumber: "AGR-AB12CD34", TotalAmount: 6000},
	}
	router := testRouterFor(NewRentalHandler(stub))

	payload := map[string]interface{}{
		"vehicle_id": 2,
		"client": map[string]string{
			"full_name": "Ahmed Khan",
			"cnic":      "35202-1234567-1",
		},
		"delivery_date": "2026-03-01", "delivery_time": "10:00",
		"return_date": "2026-03-03", "return_time": "10:00",
		"rent_type":    "daily",
		"manual_total": true,
		"total_amount": 5500,
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/rentals", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, stub.lastInput.ManualTotal)
	assert.Equal(t, int64(5500), stub.lastInput.Rental.TotalAmount)
}

func TestRentalHandler_Create_MissingClient(t *testing.T) {
	router := testRouterFor(NewRentalHandler(&stubRentalService{}))

	body, _ := json.Marshal(map[string]interface{}{"vehicle_id": 2})
	req := httptest.NewRequest(http.MethodPost, "/rentals", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRentalHandler_List_PassesFilter(t *testing.T) {
	stub := &stubRentalService{rental: &domain.Rental{ID: 7}}
	router := testRouterFor(NewRentalHandler(stub))

	req := httptest.NewRequest(http.MethodGet, "/rentals?payment_status=pending&page=2&page_size=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pending", stub.lastStatus)
}
