package service

import (
	"strings"
	"time"

	"github.com/Faizansait10/portfolio-advisor/internal/integrations/predictor"
	"github.com/Faizansait10/portfolio-advisor/internal/models"
	"github.com/sirupsen/logrus"
)

// RiskPredictor is the prediction service boundary
type RiskPredictor interface {
	Predict(req predictor.Request) (*predictor.Result, error)
}

// RiskProfileRepository is the storage contract for risk profiles
type RiskProfileRepository interface {
	Create(profile *models.UserRiskProfile) error
	FindByID(id int64) (*models.UserRiskProfile, error)
	FindLatestByUser(userID int64) (*models.UserRiskProfile, error)
	FindAllByUser(userID int64) ([]models.UserRiskProfile, error)
	Update(profile *models.UserRiskProfile) (bool, error)
	Delete(id int64) (bool, error)
}

// AllocationRepository is the storage contract for portfolio allocations
type AllocationRepository interface {
	Create(allocation *models.PortfolioAllocation) error
	FindByID(id int64) (*models.PortfolioAllocation, error)
	FindAllByUser(userID int64) ([]models.PortfolioAllocation, error)
	Delete(id int64) (bool, error)
}

// AdvisorService orchestrates risk prediction and portfolio recommendation
type AdvisorService struct {
	profiles    RiskProfileRepository
	allocations AllocationRepository
	predictor   RiskPredictor
	log         *logrus.Logger
}

// NewAdvisorService initializes a new advisor service
func NewAdvisorService(profiles RiskProfileRepository, allocations AllocationRepository, pred RiskPredictor, log *logrus.Logger) *AdvisorService {
	return &AdvisorService{profiles: profiles, allocations: allocations, predictor: pred, log: log}
}

// GetAndSaveRiskPrediction asks the ML service for a risk category and
// persists the resulting profile. Nothing is persisted when the prediction
// call fails.
func (s *AdvisorService) GetAndSaveRiskPrediction(user *models.User, age int, incomeLakhs float64, investmentExperienceYears int, financialGoal string) (*models.UserRiskProfile, error) {
	result, err := s.predictor.Predict(predictor.Request{
		Age:                       age,
		IncomeLakhs:               incomeLakhs,
		InvestmentExperienceYears: investmentExperienceYears,
		FinancialGoal:             financialGoal,
	})
	if err != nil {
		return nil, err
	}

	profile := &models.UserRiskProfile{
		UserID:                    user.ID,
		PredictedRiskCategory:     result.PredictedRiskCategory,
		PredictionDate:            time.Now(),
		ConfidenceScore:           result.ConfidenceScore,
		Age:                       &age,
		IncomeLakhs:               &incomeLakhs,
		InvestmentExperienceYears: &investmentExperienceYears,
		FinancialGoal:             &financialGoal,
	}
	if err := s.profiles.Create(profile); err != nil {
		return nil, err
	}

	s.log.Infof("Risk profile %d saved for user %d: %s", profile.ID, user.ID, profile.PredictedRiskCategory)
	return profile, nil
}

// RecommendAllocation maps a predicted risk category to a fixed allocation.
// The lookup is case-insensitive and unknown categories fall through to the
// default split. The result is not persisted.
func (s *AdvisorService) RecommendAllocation(profile *models.UserRiskProfile) *models.PortfolioAllocation {
	var equity, debt, alternative float64
	var details string

	switch strings.ToLower(profile.PredictedRiskCategory) {
	case "conservative":
		equity, debt, alternative = 0.20, 0.70, 0.10
		details = "Conservative portfolio for low-risk, stable returns."
	case "moderate":
		equity, debt, alternative = 0.50, 0.40, 0.10
		details = "Moderate portfolio for balanced growth and risk."
	case "aggressive":
		equity, debt, alternative = 0.80, 0.10, 0.10
		details = "Aggressive portfolio for high growth potential."
	default:
		equity, debt, alternative = 0.30, 0.60, 0.10
		details = "Default portfolio recommendation."
	}

	return &models.PortfolioAllocation{
		UserID:             profile.UserID,
		RecommendationDate: time.Now(),
		EquityPct:          equity,
		DebtPct:            debt,
		AlternativePct:     alternative,
		OtherDetails:       details,
	}
}

// SaveAllocation persists a recommended allocation
func (s *AdvisorService) SaveAllocation(allocation *models.PortfolioAllocation) error {
	if err := s.allocations.Create(allocation); err != nil {
		return err
	}
	s.log.Infof("Allocation %d saved for user %d", allocation.ID, allocation.UserID)
	return nil
}

// GetHistory retrieves the user's allocation history, most recent first
func (s *AdvisorService) GetHistory(user *models.User) ([]models.PortfolioAllocation, error) {
	return s.allocations.FindAllByUser(user.ID)
}

// GetLatestProfile retrieves the user's most recent risk profile;
// returns (nil, nil) when the user has none
func (s *AdvisorService) GetLatestProfile(user *models.User) (*models.UserRiskProfile, error) {
	return s.profiles.FindLatestByUser(user.ID)
}

// GetProfileHistory retrieves the user's risk profile history, most recent first
func (s *AdvisorService) GetProfileHistory(user *models.User) ([]models.UserRiskProfile, error) {
	return s.profiles.FindAllByUser(user.ID)
}
