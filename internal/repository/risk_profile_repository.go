package repository

import (
	"database/sql"

	"github.com/Faizansait10/portfolio-advisor/internal/apperrors"
	"github.com/Faizansait10/portfolio-advisor/internal/models"
)

const riskProfileColumns = `risk_profile_id, user_id, predicted_risk_category, prediction_date, confidence_score, age, income_lakhs, investment_experience_years, financial_goal`

// RiskProfileRepository provides database operations for user risk profiles
type RiskProfileRepository struct {
	db *sql.DB
}

// NewRiskProfileRepository initializes a new risk profile repository
func NewRiskProfileRepository(db *sql.DB) *RiskProfileRepository {
	return &RiskProfileRepository{db: db}
}

// Create inserts a new risk profile and assigns its id. Optional fields
// persist as NULLs when nil.
func (r *RiskProfileRepository) Create(profile *models.UserRiskProfile) error {
	query := `
		INSERT INTO user_risk_profiles (user_id, predicted_risk_category, prediction_date, confidence_score, age, income_lakhs, investment_experience_years, financial_goal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING risk_profile_id`
	err := r.db.QueryRow(query,
		profile.UserID, profile.PredictedRiskCategory, profile.PredictionDate, profile.ConfidenceScore,
		profile.Age, profile.IncomeLakhs, profile.InvestmentExperienceYears, profile.FinancialGoal).
		Scan(&profile.ID)
	if err != nil {
		return apperrors.DataAccess("failed to create risk profile: %v", err)
	}
	return nil
}

// FindByID retrieves a risk profile by id; returns (nil, nil) when absent
func (r *RiskProfileRepository) FindByID(id int64) (*models.UserRiskProfile, error) {
	query := `
		SELECT ` + riskProfileColumns + `
		FROM user_risk_profiles
		WHERE risk_profile_id = $1`
	profile, err := scanRiskProfile(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.DataAccess("failed to find risk profile: %v", err)
	}
	return profile, nil
}

// FindLatestByUser retrieves the user's most recent risk profile;
// returns (nil, nil) when the user has none
func (r *RiskProfileRepository) FindLatestByUser(userID int64) (*models.UserRiskProfile, error) {
	query := `
		SELECT ` + riskProfileColumns + `
		FROM user_risk_profiles
		WHERE user_id = $1
		ORDER BY prediction_date DESC
		LIMIT 1`
	profile, err := scanRiskProfile(r.db.QueryRow(query, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.DataAccess("failed to find latest risk profile: %v", err)
	}
	return profile, nil
}

// FindAllByUser retrieves the user's risk profile history, most recent first
func (r *RiskProfileRepository) FindAllByUser(userID int64) ([]models.UserRiskProfile, error) {
	query := `
		SELECT ` + riskProfileColumns + `
		FROM user_risk_profiles
		WHERE user_id = $1
		ORDER BY prediction_date DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, apperrors.DataAccess("failed to list risk profiles: %v", err)
	}
	defer rows.Close()

	var profiles []models.UserRiskProfile
	for rows.Next() {
		profile, err := scanRiskProfile(rows)
		if err != nil {
			return nil, apperrors.DataAccess("failed to scan risk profile: %v", err)
		}
		profiles = append(profiles, *profile)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.DataAccess("failed to list risk profiles: %v", err)
	}
	return profiles, nil
}

// Update rewrites a risk profile matched by id; returns false when no row matched
func (r *RiskProfileRepository) Update(profile *models.UserRiskProfile) (bool, error) {
	query := `
		UPDATE user_risk_profiles
		SET user_id = $1, predicted_risk_category = $2, prediction_date = $3, confidence_score = $4, age = $5, income_lakhs = $6, investment_experience_years = $7, financial_goal = $8
		WHERE risk_profile_id = $9`
	res, err := r.db.Exec(query,
		profile.UserID, profile.PredictedRiskCategory, profile.PredictionDate, profile.ConfidenceScore,
		profile.Age, profile.IncomeLakhs, profile.InvestmentExperienceYears, profile.FinancialGoal, profile.ID)
	if err != nil {
		return false, apperrors.DataAccess("failed to update risk profile: %v", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperrors.DataAccess("failed to update risk profile: %v", err)
	}
	return affected > 0, nil
}

// Delete removes a risk profile by id; returns false when no row matched
func (r *RiskProfileRepository) Delete(id int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM user_risk_profiles WHERE risk_profile_id = $1`, id)
	if err != nil {
		return false, apperrors.DataAccess("failed to delete risk profile: %v", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperrors.DataAccess("failed to delete risk profile: %v", err)
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanRiskProfile maps a row onto a profile, converting NULLs to nil pointers
func scanRiskProfile(s rowScanner) (*models.UserRiskProfile, error) {
	profile := &models.UserRiskProfile{}
	var (
		age        sql.NullInt64
		income     sql.NullFloat64
		experience sql.NullInt64
		goal       sql.NullString
	)
	err := s.Scan(&profile.ID, &profile.UserID, &profile.PredictedRiskCategory, &profile.PredictionDate,
		&profile.ConfidenceScore, &age, &income, &experience, &goal)
	if err != nil {
		return nil, err
	}
	if age.Valid {
		v := int(age.Int64)
		profile.Age = &v
	}
	if income.Valid {
		v := income.Float64
		profile.IncomeLakhs = &v
	}
	if experience.Valid {
		v := int(experience.Int64)
		profile.InvestmentExperienceYears = &v
	}
	if goal.Valid {
		v := goal.String
		profile.FinancialGoal = &v
	}
	return profile, nil
}
