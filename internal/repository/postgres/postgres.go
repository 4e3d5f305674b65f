package postgres

import (
	"database/sql"
	"time"

	"vehicle-rental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.VehicleRepository
	repository.RentalRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		UserRepository:    NewUserRepository(db),
		VehicleRepository: NewVehicleRepository(db),
		RentalRepository:  NewRentalRepository(db),
	}
}

// formatTimestamp keeps API timestamps in one shape regardless of the
// session timezone.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
