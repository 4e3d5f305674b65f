package repository

import (
	"context"

	"vehicle-rental-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByFirebaseUID(ctx context.Context, uid string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int32, passwordHash string) error
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Vehicle, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	UpdatePayment(ctx context.Context, id int32, total, advance, balance int64, status domain.PaymentStatus) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, paymentStatus string, page, pageSize int32) ([]domain.Rental, int32, error)
	ListAll(ctx context.Context) ([]domain.Rental, error)
}
