package models

import "time"

// PortfolioAllocation is one recommendation record. The three percentages
// are produced by the allocation rules and sum to 1.0 by construction.
type PortfolioAllocation struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	RecommendationDate time.Time `json:"recommendation_date"`
	EquityPct          float64   `json:"equity_pct"`
	DebtPct            float64   `json:"debt_pct"`
	AlternativePct     float64   `json:"alternative_pct"`
	OtherDetails       string    `json:"other_details"`
}
