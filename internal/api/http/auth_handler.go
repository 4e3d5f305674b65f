package http

import (
	"net/http"

	fbauth "firebase.google.com/go/v4/auth"

	"vehicle-rental-backend/internal/service"
)

type AuthHandler struct {
	authSvc  service.AuthService
	firebase *fbauth.Client
}

func NewAuthHandler(authSvc service.AuthService, firebase *fbauth.Client) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, firebase: firebase}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type firebaseLoginRequest struct {
	IDToken string `json:"id_token"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type passwordResetRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	ResetToken  string `json:"reset_token"`
	NewPassword string `json:"new_password"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, access, refresh, err := h.authSvc.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"user":          user,
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	access, refresh, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tokenResponse{AccessToken: access, RefreshToken: refresh})
}

// FirebaseLogin exchanges a verified Firebase ID token for local API
// tokens. The identity comes from the verified token, never from the
// request body.
func (h *AuthHandler) FirebaseLogin(w http.ResponseWriter, r *http.Request) {
	if h.firebase == nil {
		respondError(w, http.StatusNotImplemented, "firebase auth is not configured")
		return
	}

	var req firebaseLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	decoded, err := h.firebase.VerifyIDToken(r.Context(), req.IDToken)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid firebase token")
		return
	}
	email, _ := decoded.Claims["email"].(string)
	name, _ := decoded.Claims["name"].(string)
	if email == "" {
		respondError(w, http.StatusUnauthorized, "firebase token has no email claim")
		return
	}

	access, refresh, err := h.authSvc.FirebaseLogin(r.Context(), decoded.UID, email, name)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tokenResponse{AccessToken: access, RefreshToken: refresh})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	access, refresh, err := h.authSvc.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}
	respondJSON(w, http.StatusOK, tokenResponse{AccessToken: access, RefreshToken: refresh})
}

func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req passwordResetRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.authSvc.RequestPasswordReset(r.Context(), req.Email); err != nil {
		respondServiceError(w, err)
		return
	}
	// Always 200 so the endpoint cannot be used to probe for accounts.
	respondJSON(w, http.StatusOK, map[string]string{"message": "if the email exists, a reset link has been sent"})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.NewPassword == "" {
		respondError(w, http.StatusBadRequest, "new password is required")
		return
	}

	if err := h.authSvc.ResetPassword(r.Context(), req.ResetToken, req.NewPassword); err != nil {
		respondError(w, http.StatusUnauthorized, "invalid or expired reset token")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}
