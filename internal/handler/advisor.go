package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Faizansait10/portfolio-advisor/internal/apperrors"
	"github.com/Faizansait10/portfolio-advisor/internal/models"
)

type predictionRequest struct {
	Age                       int     `json:"age"`
	IncomeLakhs               float64 `json:"income_lakhs"`
	InvestmentExperienceYears int     `json:"investment_experience_years"`
	FinancialGoal             string  `json:"financial_goal"`
}

// CreatePrediction runs the risk prediction and stores the resulting profile
func (h *Handler) CreatePrediction(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	var req predictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, apperrors.InvalidInput("Invalid request body."))
		return
	}

	profile, err := h.advisor.GetAndSaveRiskPrediction(user, req.Age, req.IncomeLakhs, req.InvestmentExperienceYears, req.FinancialGoal)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, profile)
}

type recommendationResponse struct {
	Profile    *models.UserRiskProfile     `json:"profile"`
	Allocation *models.PortfolioAllocation `json:"allocation"`
}

// CreateRecommendation runs the full chain: predict, persist the profile,
// derive the allocation and persist it
func (h *Handler) CreateRecommendation(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	var req predictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, apperrors.InvalidInput("Invalid request body."))
		return
	}

	profile, err := h.advisor.GetAndSaveRiskPrediction(user, req.Age, req.IncomeLakhs, req.InvestmentExperienceYears, req.FinancialGoal)
	if err != nil {
		h.respondError(w, err)
		return
	}

	allocation := h.advisor.RecommendAllocation(profile)
	if err := h.advisor.SaveAllocation(allocation); err != nil {
		h.respondError(w, err)
		return
	}

	if h.mail != nil {
		if err := h.mail.SendRecommendationSummary(user.Email, user.Name, allocation); err != nil {
			h.log.Warnf("Failed to send recommendation summary to %s: %v", user.Email, err)
		}
	}

	h.respondJSON(w, http.StatusCreated, recommendationResponse{Profile: profile, Allocation: allocation})
}

// GetRecommendationHistory returns the user's allocations, most recent first
func (h *Handler) GetRecommendationHistory(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	history, err := h.advisor.GetHistory(user)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if history == nil {
		history = []models.PortfolioAllocation{}
	}
	h.respondJSON(w, http.StatusOK, history)
}

// GetLatestProfile returns the user's most recent risk profile
func (h *Handler) GetLatestProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	profile, err := h.advisor.GetLatestProfile(user)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if profile == nil {
		h.respondError(w, apperrors.NotFound("No risk profile found."))
		return
	}
	h.respondJSON(w, http.StatusOK, profile)
}

// GetProfileHistory returns the user's risk profiles, most recent first
func (h *Handler) GetProfileHistory(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	profiles, err := h.advisor.GetProfileHistory(user)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if profiles == nil {
		profiles = []models.UserRiskProfile{}
	}
	h.respondJSON(w, http.StatusOK, profiles)
}
