package predictor

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/Faizansait10/portfolio-advisor/internal/apperrors"
	"github.com/Faizansait10/portfolio-advisor/internal/config"
	"github.com/sirupsen/logrus"
)

// Request is the payload the ML prediction service expects
type Request struct {
	Age                       int     `json:"age"`
	IncomeLakhs               float64 `json:"income_lakhs"`
	InvestmentExperienceYears int     `json:"investment_experience_years"`
	FinancialGoal             string  `json:"financial_goal"`
}

// Result is the prediction service response body
type Result struct {
	PredictedRiskCategory string  `json:"predicted_risk_category"`
	ConfidenceScore       float64 `json:"confidence_score"`
}

// Client handles integration with the ML risk prediction service
type Client struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewClient initializes a new prediction client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url: cfg.PredictionURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// Predict submits the inputs and returns the predicted risk category.
// Any transport failure, non-200 status or malformed body surfaces as a
// prediction error; the call is not retried.
func (c *Client) Predict(req Request) (*Result, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, apperrors.Prediction("failed to encode prediction request: %v", err)
	}

	httpReq, err := http.NewRequest("POST", c.url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, apperrors.Prediction("failed to create prediction request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, apperrors.Prediction("Failed to connect to the ML prediction service: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Prediction("failed to read prediction response: %v", err)
	}
	c.log.Debugf("Prediction service response: %s", string(body))

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.Prediction("ML service returned an error. Status code: %d | Body: %s", resp.StatusCode, string(body))
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, apperrors.Prediction("failed to parse prediction response: %v", err)
	}

	c.log.Infof("Predicted risk category: %s (confidence %.2f)", result.PredictedRiskCategory, result.ConfidenceScore)
	return &result, nil
}
