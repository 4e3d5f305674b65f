package postgres

import (
	"context"
	"database/sql"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, name, type, brand, model, year, color, logo_url, image_url, hourly_rate, daily_rate, weekly_rate, monthly_rate, created_on, updated_on`

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (name, type, brand, model, year, color, logo_url, image_url, hourly_rate, daily_rate, weekly_rate, monthly_rate, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		v.Name, v.Type, v.Brand, v.Model, v.Year, v.Color, v.LogoURL, v.ImageURL,
		v.HourlyRate, v.DailyRate, v.WeeklyRate, v.MonthlyRate, time.Now(), time.Now(),
	).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	var createdOn, updatedOn time.Time
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Type, &v.Brand, &v.Model, &v.Year, &v.Color, &v.LogoURL, &v.ImageURL,
		&v.HourlyRate, &v.DailyRate, &v.WeeklyRate, &v.MonthlyRate, &createdOn, &updatedOn,
	)
	if err != nil {
		return nil, err
	}
	v.CreatedOn = formatTimestamp(createdOn)
	v.UpdatedOn = formatTimestamp(updatedOn)
	return v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET name=$1, type=$2, brand=$3, model=$4, year=$5, color=$6, logo_url=$7, image_url=$8,
	          hourly_rate=$9, daily_rate=$10, weekly_rate=$11, monthly_rate=$12, updated_on=$13 WHERE id=$14`
	_, err := r.db.ExecContext(ctx, query,
		v.Name, v.Type, v.Brand, v.Model, v.Year, v.Color, v.LogoURL, v.ImageURL,
		v.HourlyRate, v.DailyRate, v.WeeklyRate, v.MonthlyRate, time.Now(), v.ID,
	)
	return err
}

func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	return err
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		var createdOn, updatedOn time.Time
		if err := rows.Scan(
			&v.ID, &v.Name, &v.Type, &v.Brand, &v.Model, &v.Year, &v.Color, &v.LogoURL, &v.ImageURL,
			&v.HourlyRate, &v.DailyRate, &v.WeeklyRate, &v.MonthlyRate, &createdOn, &updatedOn,
		); err != nil {
			return nil, err
		}
		v.CreatedOn = formatTimestamp(createdOn)
		v.UpdatedOn = formatTimestamp(updatedOn)
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}
