package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Faizansait10/portfolio-advisor/internal/apperrors"
	"github.com/Faizansait10/portfolio-advisor/internal/config"
	"github.com/Faizansait10/portfolio-advisor/internal/models"
	"github.com/Faizansait10/portfolio-advisor/internal/service"
	"github.com/Faizansait10/portfolio-advisor/internal/utils/email"
	"github.com/sirupsen/logrus"
)

// Handler exposes the services over HTTP
type Handler struct {
	users    *service.UserService
	advisor  *service.AdvisorService
	products *service.ProductService
	mail     *email.Sender // nil when SMTP is not configured
	cfg      *config.Config
	log      *logrus.Logger
}

// NewHandler initializes a new handler
func NewHandler(users *service.UserService, advisor *service.AdvisorService, products *service.ProductService, mail *email.Sender, cfg *config.Config, log *logrus.Logger) *Handler {
	return &Handler{users: users, advisor: advisor, products: products, mail: mail, cfg: cfg, log: log}
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}

// respondError maps error kinds to HTTP statuses. Anything unrecognized is a
// 500 with a generic body.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrAuthentication):
		status = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrPrediction):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		h.log.Errorf("Internal error: %v", err)
		h.respondJSON(w, status, map[string]string{"error": "Internal server error"})
		return
	}
	h.respondJSON(w, status, map[string]string{"error": err.Error()})
}

// currentUser resolves the authenticated user from the request context
func (h *Handler) currentUser(r *http.Request) (*models.User, error) {
	userIDStr, ok := r.Context().Value("userID").(string)
	if !ok || userIDStr == "" {
		return nil, apperrors.Authentication("Missing user identity.")
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return nil, apperrors.Authentication("Invalid user identity.")
	}
	user, err := h.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.Authentication("Unknown user.")
	}
	return user, nil
}
