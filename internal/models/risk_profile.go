package models

import "time"

// UserRiskProfile is one prediction snapshot for a user. The demographic
// inputs are optional and persist as NULLs when not provided.
type UserRiskProfile struct {
	ID                        int64     `json:"id"`
	UserID                    int64     `json:"user_id"`
	PredictedRiskCategory     string    `json:"predicted_risk_category"` // e.g. 'Conservative', 'Moderate', 'Aggressive'
	PredictionDate            time.Time `json:"prediction_date"`
	ConfidenceScore           float64   `json:"confidence_score"`
	Age                       *int      `json:"age,omitempty"`
	IncomeLakhs               *float64  `json:"income_lakhs,omitempty"`
	InvestmentExperienceYears *int      `json:"investment_experience_years,omitempty"`
	FinancialGoal             *string   `json:"financial_goal,omitempty"` // e.g. 'Retirement', 'Home Purchase'
}
