package service

import (
	"context"
	"database/sql"
	"errors"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/logger"
	"vehicle-rental-backend/internal/repository"
	"vehicle-rental-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
	emailSvc EmailService
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager, emailSvc EmailService) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens, emailSvc: emailSvc}
}

func (s *authService) Signup(ctx context.Context, name, email, password string) (*domain.User, string, string, error) {
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", "", err
	}

	access, refresh, err := s.generateTokens(user)
	if err != nil {
		return nil, "", "", err
	}
	user.PasswordHash = ""
	return user, access, refresh, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	return s.generateTokens(user)
}

// FirebaseLogin signs in a user whose identity was already verified
// against the Firebase Admin SDK by the HTTP layer. First login creates
// the local account.
func (s *authService) FirebaseLogin(ctx context.Context, firebaseUID, email, name string) (string, string, error) {
	user, err := s.userRepo.GetByFirebaseUID(ctx, firebaseUID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return "", "", err
		}
		user = &domain.User{
			Email:       email,
			Name:        name,
			FirebaseUID: &firebaseUID,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return "", "", err
		}
		logger.Info("Created account from Firebase login", "email", email)
	}
	return s.generateTokens(user)
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil {
		return "", "", err
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", security.ErrWrongTokenType
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", err
	}
	return s.generateTokens(user)
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the address exists.
		logger.Warn("Password reset requested for unknown email", "email", email)
		return nil
	}

	token, err := s.tokens.GenerateResetToken(user.ID, user.Email)
	if err != nil {
		return err
	}
	return s.emailSvc.SendPasswordReset(ctx, user.Email, user.Name, token)
}

func (s *authService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	claims, err := s.tokens.ValidateToken(resetToken)
	if err != nil {
		return err
	}
	if claims.Type != security.TokenTypeReset {
		return security.ErrWrongTokenType
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, claims.UserID, string(hash))
}

func (s *authService) generateTokens(user *domain.User) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

