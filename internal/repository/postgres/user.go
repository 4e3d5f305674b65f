package postgres

import (
	"context"
	"database/sql"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, name, password_hash, firebase_uid, created_on) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, u.Email, u.Name, u.PasswordHash, u.FirebaseUID, time.Now()).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	var createdOn time.Time
	query := `SELECT id, email, name, password_hash, firebase_uid, created_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.FirebaseUID, &createdOn)
	if err != nil {
		return nil, err
	}
	u.CreatedOn = formatTimestamp(createdOn)
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	var createdOn time.Time
	query := `SELECT id, email, name, password_hash, firebase_uid, created_on FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.FirebaseUID, &createdOn)
	if err != nil {
		return nil, err
	}
	u.CreatedOn = formatTimestamp(createdOn)
	return u, nil
}

func (r *userRepository) GetByFirebaseUID(ctx context.Context, uid string) (*domain.User, error) {
	u := &domain.User{}
	var createdOn time.Time
	query := `SELECT id, email, name, password_hash, firebase_uid, created_on FROM users WHERE firebase_uid = $1`
	err := r.db.QueryRowContext(ctx, query, uid).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.FirebaseUID, &createdOn)
	if err != nil {
		return nil, err
	}
	u.CreatedOn = formatTimestamp(createdOn)
	return u, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int32, passwordHash string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET password_hash = $1 WHERE id = $2`, passwordHash, id)
	return err
}
