package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/security"
	"vehicle-rental-backend/internal/service"
)

func newTestTokens() security.TokenManager {
	return security.NewTokenManager("test-secret", 60, 1440, 30)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, newTestTokens(), new(MockEmailService))

		userRepo.On("GetByEmail", ctx, "new@test.com").Return(nil, sql.ErrNoRows)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, access, refresh, err := svc.Signup(ctx, "New User", "new@test.com", "password123")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Empty(t, user.PasswordHash, "hash must not leak in the response")
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, newTestTokens(), new(MockEmailService))

		userRepo.On("GetByEmail", ctx, "taken@test.com").Return(&domain.User{ID: 1, Email: "taken@test.com"}, nil)

		_, _, _, err := svc.Signup(ctx, "User", "taken@test.com", "password123")
		assert.ErrorIs(t, err, service.ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &domain.User{ID: 1, Email: "user@test.com", PasswordHash: string(hash)}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, newTestTokens(), new(MockEmailService))
		userRepo.On("GetByEmail", ctx, "user@test.com").Return(user, nil)

		access, refresh, err := svc.Login(ctx, "user@test.com", "password123")
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, newTestTokens(), new(MockEmailService))
		userRepo.On("GetByEmail", ctx, "user@test.com").Return(user, nil)

		_, _, err := svc.Login(ctx, "user@test.com", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, newTestTokens(), new(MockEmailService))
		userRepo.On("GetByEmail", ctx, "nobody@test.com").Return(nil, sql.ErrNoRows)

		_, _, err := svc.Login(ctx, "nobody@test.com", "password123")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_FirebaseLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing User", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, newTestTokens(), new(MockEmailService))
		userRepo.On("GetByFirebaseUID", ctx, "fb-uid-1").Return(&domain.User{ID: 5, Email: "fb@test.com"}, nil)

		access, refresh, err := svc.FirebaseLogin(ctx, "fb-uid-1", "fb@test.com", "FB User")
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("First Login Creates Account", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, newTestTokens(), new(MockEmailService))
		userRepo.On("GetByFirebaseUID", ctx, "fb-uid-2").Return(nil, sql.ErrNoRows)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		_, _, err := svc.FirebaseLogin(ctx, "fb-uid-2", "new-fb@test.com", "New FB User")
		assert.NoError(t, err)
		userRepo.AssertCalled(t, "Create", ctx, mock.AnythingOfType("*domain.User"))
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	tokens := newTestTokens()
	userRepo := new(MockUserRepo)
	svc := service.NewAuthService(userRepo, tokens, new(MockEmailService))

	refresh, err := tokens.GenerateRefreshToken(1, "user@test.com")
	assert.NoError(t, err)

	userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Email: "user@test.com"}, nil)

	t.Run("Success", func(t *testing.T) {
		access, newRefresh, err := svc.RefreshToken(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
	})

	t.Run("Access Token Rejected", func(t *testing.T) {
		access, err := tokens.GenerateAccessToken(1, "user@test.com")
		assert.NoError(t, err)

		_, _, err = svc.RefreshToken(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})
}

func TestAuthService_PasswordReset(t *testing.T) {
	ctx := context.Background()
	tokens := newTestTokens()

	t.Run("Request Sends Email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewAuthService(userRepo, tokens, emailSvc)

		userRepo.On("GetByEmail", ctx, "user@test.com").Return(&domain.User{ID: 1, Email: "user@test.com", Name: "User"}, nil)
		emailSvc.On("SendPasswordReset", ctx, "user@test.com", "User", mock.AnythingOfType("string")).Return(nil)

		err := svc.RequestPasswordReset(ctx, "user@test.com")
		assert.NoError(t, err)
		emailSvc.AssertExpectations(t)
	})

	t.Run("Unknown Email Is Silent", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewAuthService(userRepo, tokens, emailSvc)

		userRepo.On("GetByEmail", ctx, "nobody@test.com").Return(nil, sql.ErrNoRows)

		err := svc.RequestPasswordReset(ctx, "nobody@test.com")
		assert.NoError(t, err)
		emailSvc.AssertNotCalled(t, "SendPasswordReset", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Reset Updates Password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens, new(MockEmailService))

		resetToken, err := tokens.GenerateResetToken(1, "user@test.com")
		assert.NoError(t, err)

		userRepo.On("UpdatePassword", ctx, int32(1), mock.AnythingOfType("string")).Return(nil)

		err = svc.ResetPassword(ctx, resetToken, "new-password")
		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("Access Token Cannot Reset", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens, new(MockEmailService))

		access, err := tokens.GenerateAccessToken(1, "user@test.com")
		assert.NoError(t, err)

		err = svc.ResetPassword(ctx, access, "new-password")
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})
}
