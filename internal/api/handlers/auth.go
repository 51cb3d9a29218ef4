package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/moodgarden/backend/internal/domain"
	"github.com/moodgarden/backend/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	Created bool         `json:"created"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

func toUserResponse(user *domain.User) UserResponse {
	resp := UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
	if user.Email != nil {
		resp.Email = *user.Email
	}
	return resp
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.authService.Signup(r.Context(), service.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, "handlers.Signup", err)
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Created: true,
		Token:   result.Token,
		User:    toUserResponse(result.User),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		writeServiceError(w, "handlers.Login", err)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Created: false,
		Token:   result.Token,
		User:    toUserResponse(result.User),
	})
}

// Me verifies the bearer token itself rather than sitting behind the auth
// middleware, so an account deleted after token issuance yields 404 instead
// of 401.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		writeError(w, http.StatusUnauthorized, "No token provided")
		return
	}

	user, err := h.authService.WhoAmI(r.Context(), strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		writeServiceError(w, "handlers.Me", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]UserResponse{"user": toUserResponse(user)})
}
