package service

import (
	"context"
	"sort"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type dashboardService struct {
	rentalRepo repository.RentalRepository
	now        func() time.Time
}

func NewDashboardService(rentalRepo repository.RentalRepository) DashboardService {
	return &dashboardService{rentalRepo: rentalRepo, now: time.Now}
}

// GetStats reduces the full rental collection into the four headline
// numbers. Income counts money actually received (advance payments),
// not agreement totals; pending payments sum outstanding balances on
// anything not fully paid.
func (s *dashboardService) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	rentals, err := s.rentalRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	today := s.today()
	stats := &domain.DashboardStats{}
	clients := make(map[string]struct{})

	for i := range rentals {
		rt := &rentals[i]
		stats.TotalIncome += rt.AdvancePayment
		if rt.PaymentStatus != domain.PaymentStatusPaid {
			stats.PendingPayments += rt.Balance
		}
		if rt.ReturnDate >= today {
			stats.ActiveRentals++
		}
		if rt.Client.CNIC != "" {
			clients[rt.Client.CNIC] = struct{}{}
		}
	}
	stats.TotalClients = int32(len(clients))

	return stats, nil
}

// UpcomingReturns lists rentals due back within the next seven days,
// soonest first.
func (s *dashboardService) UpcomingReturns(ctx context.Context) ([]domain.Rental, error) {
	rentals, err := s.rentalRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	today := s.today()
	horizon := s.now().AddDate(0, 0, 7).Format("2006-01-02")

	upcoming := make([]domain.Rental, 0)
	for _, rt := range rentals {
		if rt.ReturnDate >= today && rt.ReturnDate <= horizon {
			upcoming = append(upcoming, rt)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		if upcoming[i].ReturnDate != upcoming[j].ReturnDate {
			return upcoming[i].ReturnDate < upcoming[j].ReturnDate
		}
		return upcoming[i].ReturnTime < upcoming[j].ReturnTime
	})
	return upcoming, nil
}

// ListClients folds the rental history into one summary row per client,
// keyed by CNIC. The most recent rental wins for name, phone, address,
// and photo, so an updated detail on a later booking supersedes older
// snapshots.
func (s *dashboardService) ListClients(ctx context.Context) ([]domain.ClientSummary, error) {
	rentals, err := s.rentalRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byCNIC := make(map[string]*domain.ClientSummary)
	for _, rt := range rentals {
		cnic := rt.Client.CNIC
		if cnic == "" {
			continue
		}
		summary, ok := byCNIC[cnic]
		if !ok {
			summary = &domain.ClientSummary{CNIC: cnic}
			byCNIC[cnic] = summary
		}
		summary.TotalRentals++
		summary.TotalSpent += rt.TotalAmount
		if rt.DeliveryDate >= summary.LastRental {
			summary.LastRental = rt.DeliveryDate
			summary.FullName = rt.Client.FullName
			summary.Phone = rt.Client.Phone
			summary.Address = rt.Client.Address
			summary.PhotoURL = rt.Client.PhotoURL
		}
	}

	summaries := make([]domain.ClientSummary, 0, len(byCNIC))
	for _, summary := range byCNIC {
		summaries = append(summaries, *summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].LastRental > summaries[j].LastRental
	})
	return summaries, nil
}

func (s *dashboardService) today() string {
	return s.now().Format("2006-01-02")
}
