package models

import "time"

// FinancialProduct represents a catalog product, e.g. a stock or bond fund.
// It is reference data only and is not consumed by the recommendation flow.
type FinancialProduct struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Type               string    `json:"type"`       // e.g. 'Stock', 'Bond', 'Mutual Fund', 'ETF'
	Description        string    `json:"description"`
	RiskLevel          string    `json:"risk_level"` // e.g. 'Low', 'Medium', 'High'
	ExpectedReturnRate float64   `json:"expected_return_rate"`
	MinimumInvestment  float64   `json:"minimum_investment"`
	CreatedAt          time.Time `json:"created_at"`
}
