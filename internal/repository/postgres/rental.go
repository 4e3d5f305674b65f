package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, agreement_number, vehicle_id,
	client_name, client_cnic, client_phone, client_address, client_photo_url, client_cnic_front_url, client_cnic_back_url, client_license_url,
	witness_name, witness_cnic, witness_phone, witness_address, witness_image_url,
	vehicle_snapshot,
	delivery_date, delivery_time, return_date, return_time, rent_type, custom_days,
	total_amount, advance_payment, balance, payment_status, overdue, notes,
	accessories, vehicle_condition, dents_scratches, smart_pricing,
	client_signature_url, owner_signature_url, created_on, updated_on`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	vehicleSnap, err := json.Marshal(rt.Vehicle)
	if err != nil {
		return fmt.Errorf("marshal vehicle snapshot: %w", err)
	}
	accessories, err := marshalNullable(rt.Accessories)
	if err != nil {
		return err
	}
	condition, err := marshalNullable(rt.VehicleCondition)
	if err != nil {
		return err
	}
	dents, err := marshalNullable(rt.DentsScratches)
	if err != nil {
		return err
	}
	smartPricing, err := marshalNullable(rt.SmartPricing)
	if err != nil {
		return err
	}

	query := `INSERT INTO rentals (agreement_number, vehicle_id,
			client_name, client_cnic, client_phone, client_address, client_photo_url, client_cnic_front_url, client_cnic_back_url, client_license_url,
			witness_name, witness_cnic, witness_phone, witness_address, witness_image_url,
			vehicle_snapshot,
			delivery_date, delivery_time, return_date, return_time, rent_type, custom_days,
			total_amount, advance_payment, balance, payment_status, notes,
			accessories, vehicle_condition, dents_scratches, smart_pricing,
			client_signature_url, owner_signature_url, created_on, updated_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34, $35)
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		rt.AgreementNumber, rt.VehicleID,
		rt.Client.FullName, rt.Client.CNIC, rt.Client.Phone, rt.Client.Address,
		rt.Client.PhotoURL, rt.Client.CNICFrontImageURL, rt.Client.CNICBackImageURL, rt.Client.DrivingLicenseURL,
		rt.Witness.Name, rt.Witness.CNIC, rt.Witness.Phone, rt.Witness.Address, rt.Witness.ImageURL,
		vehicleSnap,
		rt.DeliveryDate, rt.DeliveryTime, rt.ReturnDate, rt.ReturnTime, rt.RentType, rt.CustomDays,
		rt.TotalAmount, rt.AdvancePayment, rt.Balance, rt.PaymentStatus, rt.Notes,
		accessories, condition, dents, smartPricing,
		rt.ClientSignatureURL, rt.OwnerSignatureURL, time.Now(), time.Now(),
	).Scan(&rt.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanRental(row)
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	accessories, err := marshalNullable(rt.Accessories)
	if err != nil {
		return err
	}
	condition, err := marshalNullable(rt.VehicleCondition)
	if err != nil {
		return err
	}
	dents, err := marshalNullable(rt.DentsScratches)
	if err != nil {
		return err
	}
	smartPricing, err := marshalNullable(rt.SmartPricing)
	if err != nil {
		return err
	}

	query := `UPDATE rentals SET agreement_number=$1,
			delivery_date=$2, delivery_time=$3, return_date=$4, return_time=$5, rent_type=$6, custom_days=$7,
			total_amount=$8, advance_payment=$9, balance=$10, payment_status=$11, overdue=$12, notes=$13,
			accessories=$14, vehicle_condition=$15, dents_scratches=$16, smart_pricing=$17,
			client_signature_url=$18, owner_signature_url=$19, updated_on=$20
		WHERE id=$21`
	_, err = r.db.ExecContext(ctx, query,
		rt.AgreementNumber,
		rt.DeliveryDate, rt.DeliveryTime, rt.ReturnDate, rt.ReturnTime, rt.RentType, rt.CustomDays,
		rt.TotalAmount, rt.AdvancePayment, rt.Balance, rt.PaymentStatus, rt.Overdue, rt.Notes,
		accessories, condition, dents, smartPricing,
		rt.ClientSignatureURL, rt.OwnerSignatureURL, time.Now(), rt.ID,
	)
	return err
}

func (r *rentalRepository) UpdatePayment(ctx context.Context, id int32, total, advance, balance int64, status domain.PaymentStatus) error {
	query := `UPDATE rentals SET total_amount=$1, advance_payment=$2, balance=$3, payment_status=$4, updated_on=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, total, advance, balance, status, time.Now(), id)
	return err
}

func (r *rentalRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	return err
}

func (r *rentalRepository) List(ctx context.Context, paymentStatus string, page, pageSize int32) ([]domain.Rental, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + rentalColumns + ` FROM rentals`
	countQuery := `SELECT count(*) FROM rentals`

	var args []interface{}
	if paymentStatus != "" {
		query += ` WHERE payment_status = $1`
		countQuery += ` WHERE payment_status = $1`
		args = append(args, paymentStatus)
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(` ORDER BY created_on DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, 0, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, count, rows.Err()
}

func (r *rentalRepository) ListAll(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var vehicleSnap []byte
	var accessories, condition, dents, smartPricing []byte
	var createdOn, updatedOn time.Time

	err := row.Scan(
		&rt.ID, &rt.AgreementNumber, &rt.VehicleID,
		&rt.Client.FullName, &rt.Client.CNIC, &rt.Client.Phone, &rt.Client.Address,
		&rt.Client.PhotoURL, &rt.Client.CNICFrontImageURL, &rt.Client.CNICBackImageURL, &rt.Client.DrivingLicenseURL,
		&rt.Witness.Name, &rt.Witness.CNIC, &rt.Witness.Phone, &rt.Witness.Address, &rt.Witness.ImageURL,
		&vehicleSnap,
		&rt.DeliveryDate, &rt.DeliveryTime, &rt.ReturnDate, &rt.ReturnTime, &rt.RentType, &rt.CustomDays,
		&rt.TotalAmount, &rt.AdvancePayment, &rt.Balance, &rt.PaymentStatus, &rt.Overdue, &rt.Notes,
		&accessories, &condition, &dents, &smartPricing,
		&rt.ClientSignatureURL, &rt.OwnerSignatureURL, &createdOn, &updatedOn,
	)
	if err != nil {
		return nil, err
	}
	rt.CreatedOn = formatTimestamp(createdOn)
	rt.UpdatedOn = formatTimestamp(updatedOn)

	if len(vehicleSnap) > 0 {
		if err := json.Unmarshal(vehicleSnap, &rt.Vehicle); err != nil {
			return nil, fmt.Errorf("unmarshal vehicle snapshot: %w", err)
		}
	}
	if err := unmarshalNullable(accessories, &rt.Accessories); err != nil {
		return nil, err
	}
	if err := unmarshalNullable(condition, &rt.VehicleCondition); err != nil {
		return nil, err
	}
	if err := unmarshalNullable(dents, &rt.DentsScratches); err != nil {
		return nil, err
	}
	if err := unmarshalNullable(smartPricing, &rt.SmartPricing); err != nil {
		return nil, err
	}
	return rt, nil
}

func marshalNullable(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	switch val := v.(type) {
	case *domain.AccessoriesChecklist:
		if val == nil {
			return nil, nil
		}
	case *domain.VehicleCondition:
		if val == nil {
			return nil, nil
		}
	case *domain.DentsScratchesReport:
		if val == nil {
			return nil, nil
		}
	case *domain.SmartPricing:
		if val == nil {
			return nil, nil
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal json column: %w", err)
	}
	return data, nil
}

func unmarshalNullable[T any](data []byte, dst **T) error {
	if len(data) == 0 {
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal json column: %w", err)
	}
	*dst = &v
	return nil
}
