package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Faizansait10/portfolio-advisor/internal/apperrors"
	"github.com/Faizansait10/portfolio-advisor/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

type registerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, apperrors.InvalidInput("Invalid request body."))
		return
	}

	user, err := h.users.Register(req.Name, req.Email, req.Password, req.PhoneNumber, req.Address)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login handles user authentication and issues a session token
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, apperrors.InvalidInput("Invalid request body."))
		return
	}

	user, err := h.users.Login(req.Email, req.Password)
	if err != nil {
		h.respondError(w, err)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		h.respondError(w, fmt.Errorf("failed to generate token: %w", err))
		return
	}

	h.respondJSON(w, http.StatusOK, loginResponse{Token: tokenString, User: user})
}

// ListUsers returns all registered users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.GetAllUsers()
	if err != nil {
		h.respondError(w, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	h.respondJSON(w, http.StatusOK, users)
}
