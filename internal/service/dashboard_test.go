package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/service"
)

func dashboardRentals(today time.Time) []domain.Rental {
	day := func(offset int) string { return today.AddDate(0, 0, offset).Format("2006-01-02") }
	return []domain.Rental{
		{
			Client:         domain.Client{FullName: "Ahmed Khan", CNIC: "35202-1111111-1", Phone: "0300-1111111"},
			DeliveryDate:   day(-2),
			ReturnDate:     day(1),
			ReturnTime:     "10:00",
			TotalAmount:    6000,
			AdvancePayment: 2000,
			Balance:        4000,
			PaymentStatus:  domain.PaymentStatusPartial,
		},
		{
			Client:         domain.Client{FullName: "Ahmed Khan", CNIC: "35202-1111111-1", Phone: "0300-9999999"},
			DeliveryDate:   day(-10),
			ReturnDate:     day(-5),
			ReturnTime:     "09:00",
			TotalAmount:    9000,
			AdvancePayment: 9000,
			Balance:        0,
			PaymentStatus:  domain.PaymentStatusPaid,
		},
		{
			Client:         domain.Client{FullName: "Sara Malik", CNIC: "35202-2222222-2"},
			DeliveryDate:   day(-1),
			ReturnDate:     day(10),
			ReturnTime:     "12:00",
			TotalAmount:    15000,
			AdvancePayment: 0,
			Balance:        15000,
			PaymentStatus:  domain.PaymentStatusPending,
		},
	}
}

func TestDashboardService_GetStats(t *testing.T) {
	ctx := context.Background()
	rentalRepo := new(MockRentalRepo)
	rentalRepo.On("ListAll", ctx).Return(dashboardRentals(time.Now()), nil)

	svc := service.NewDashboardService(rentalRepo)

	stats, err := svc.GetStats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(11000), stats.TotalIncome)     // sum of advances
	assert.Equal(t, int64(19000), stats.PendingPayments) // balances of non-paid rentals
	assert.Equal(t, int32(2), stats.ActiveRentals)       // returns today or later
	assert.Equal(t, int32(2), stats.TotalClients)        // unique CNICs
}

func TestDashboardService_UpcomingReturns(t *testing.T) {
	ctx := context.Background()
	rentalRepo := new(MockRentalRepo)
	rentalRepo.On("ListAll", ctx).Return(dashboardRentals(time.Now()), nil)

	svc := service.NewDashboardService(rentalRepo)

	upcoming, err := svc.UpcomingReturns(ctx)
	assert.NoError(t, err)
	// Only the rental due tomorrow falls within the 7-day horizon.
	assert.Len(t, upcoming, 1)
	assert.Equal(t, "Ahmed Khan", upcoming[0].Client.FullName)
}

func TestDashboardService_ListClients(t *testing.T) {
	ctx := context.Background()
	rentalRepo := new(MockRentalRepo)
	rentalRepo.On("ListAll", ctx).Return(dashboardRentals(time.Now()), nil)

	svc := service.NewDashboardService(rentalRepo)

	clients, err := svc.ListClients(ctx)
	assert.NoError(t, err)
	assert.Len(t, clients, 2)

	byCNIC := make(map[string]domain.ClientSummary)
	for _, c := range clients {
		byCNIC[c.CNIC] = c
	}

	ahmed := byCNIC["35202-1111111-1"]
	assert.Equal(t, int32(2), ahmed.TotalRentals)
	assert.Equal(t, int64(15000), ahmed.TotalSpent)
	// Details come from the most recent rental.
	assert.Equal(t, "0300-1111111", ahmed.Phone)

	sara := byCNIC["35202-2222222-2"]
	assert.Equal(t, int32(1), sara.TotalRentals)
	assert.Equal(t, int64(15000), sara.TotalSpent)
}
