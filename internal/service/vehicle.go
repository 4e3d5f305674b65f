package service

import (
	"context"
	"errors"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
	"vehicle-rental-backend/internal/storage"
)

var ErrNegativeRate = errors.New("vehicle rates must be non-negative")

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	assets      storage.AssetStore
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, assets storage.AssetStore) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo, assets: assets}
}

func (s *vehicleService) AddVehicle(ctx context.Context, v *domain.Vehicle, imageDataURI, logoDataURI string) error {
	if err := validateRates(v); err != nil {
		return err
	}
	if err := s.storeImages(ctx, v, imageDataURI, logoDataURI); err != nil {
		return err
	}
	return s.vehicleRepo.Create(ctx, v)
}

func (s *vehicleService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, v *domain.Vehicle, imageDataURI, logoDataURI string) error {
	if err := validateRates(v); err != nil {
		return err
	}
	if err := s.storeImages(ctx, v, imageDataURI, logoDataURI); err != nil {
		return err
	}
	return s.vehicleRepo.Update(ctx, v)
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id int32) error {
	return s.vehicleRepo.Delete(ctx, id)
}

func (s *vehicleService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

func (s *vehicleService) storeImages(ctx context.Context, v *domain.Vehicle, imageDataURI, logoDataURI string) error {
	if imageDataURI != "" {
		url, err := s.assets.SaveDataURI(ctx, "vehicles", imageDataURI)
		if err != nil {
			return err
		}
		v.ImageURL = url
	}
	if logoDataURI != "" {
		url, err := s.assets.SaveDataURI(ctx, "vehicles", logoDataURI)
		if err != nil {
			return err
		}
		v.LogoURL = url
	}
	return nil
}

func validateRates(v *domain.Vehicle) error {
	if v.HourlyRate < 0 || v.DailyRate < 0 || v.WeeklyRate < 0 || v.MonthlyRate < 0 {
		return ErrNegativeRate
	}
	return nil
}
