package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the schema if it does not exist. The rental row keeps a
// strict typed shape: client, witness, and vehicle snapshots live in
// dedicated columns, and only the checklist sub-documents use JSONB.
func Migrate(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL DEFAULT '',
			firebase_uid TEXT,
			created_on TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS vehicles (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT '',
			brand TEXT NOT NULL DEFAULT '',
			model TEXT NOT NULL DEFAULT '',
			year TEXT NOT NULL DEFAULT '',
			color TEXT NOT NULL DEFAULT '',
			logo_url TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			hourly_rate BIGINT NOT NULL DEFAULT 0 CHECK (hourly_rate >= 0),
			daily_rate BIGINT NOT NULL DEFAULT 0 CHECK (daily_rate >= 0),
			weekly_rate BIGINT NOT NULL DEFAULT 0 CHECK (weekly_rate >= 0),
			monthly_rate BIGINT NOT NULL DEFAULT 0 CHECK (monthly_rate >= 0),
			created_on TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_on TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS rentals (
			id SERIAL PRIMARY KEY,
			agreement_number TEXT NOT NULL DEFAULT '',
			vehicle_id INTEGER NOT NULL REFERENCES vehicles(id),

			client_name TEXT NOT NULL,
			client_cnic TEXT NOT NULL,
			client_phone TEXT NOT NULL DEFAULT '',
			client_address TEXT NOT NULL DEFAULT '',
			client_photo_url TEXT NOT NULL DEFAULT '',
			client_cnic_front_url TEXT NOT NULL DEFAULT '',
			client_cnic_back_url TEXT NOT NULL DEFAULT '',
			client_license_url TEXT NOT NULL DEFAULT '',

			witness_name TEXT NOT NULL DEFAULT '',
			witness_cnic TEXT NOT NULL DEFAULT '',
			witness_phone TEXT NOT NULL DEFAULT '',
			witness_address TEXT NOT NULL DEFAULT '',
			witness_image_url TEXT NOT NULL DEFAULT '',

			vehicle_snapshot JSONB NOT NULL DEFAULT '{}',

			delivery_date TEXT NOT NULL,
			delivery_time TEXT NOT NULL,
			return_date TEXT NOT NULL,
			return_time TEXT NOT NULL,
			rent_type TEXT NOT NULL,
			custom_days INTEGER NOT NULL DEFAULT 0,

			total_amount BIGINT NOT NULL DEFAULT 0,
			advance_payment BIGINT NOT NULL DEFAULT 0,
			balance BIGINT NOT NULL DEFAULT 0,
			payment_status TEXT NOT NULL DEFAULT 'pending',
			overdue BOOLEAN NOT NULL DEFAULT FALSE,
			notes TEXT NOT NULL DEFAULT '',

			accessories JSONB,
			vehicle_condition JSONB,
			dents_scratches JSONB,
			smart_pricing JSONB,

			client_signature_url TEXT NOT NULL DEFAULT '',
			owner_signature_url TEXT NOT NULL DEFAULT '',

			created_on TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_on TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rentals_created_on ON rentals (created_on DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_rentals_payment_status ON rentals (payment_status)`,
		`CREATE INDEX IF NOT EXISTS idx_rentals_client_cnic ON rentals (client_cnic)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
