package email

import (
	"fmt"
	"net/smtp"

	"github.com/Faizansait10/portfolio-advisor/internal/config"
	"github.com/Faizansait10/portfolio-advisor/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendWelcome sends a welcome email after registration
func (s *Sender) SendWelcome(to, name string) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Welcome to Portfolio Advisor"

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your account has been created.\n"+
			"Log in to get a personalized risk assessment and portfolio recommendation.\n",
		name,
	)
	body += "\nBest regards,\nPortfolio Advisor"
	e.Text = []byte(body)

	return s.send(e)
}

// SendRecommendationSummary sends the saved allocation to the user
func (s *Sender) SendRecommendationSummary(to, name string, allocation *models.PortfolioAllocation) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Your Portfolio Recommendation"

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your recommended portfolio allocation as of %s:\n"+
			"Equity: %.0f%%\n"+
			"Debt: %.0f%%\n"+
			"Alternative: %.0f%%\n\n"+
			"%s\n",
		name,
		allocation.RecommendationDate.Format("2006-01-02 15:04:05"),
		allocation.EquityPct*100, allocation.DebtPct*100, allocation.AlternativePct*100,
		allocation.OtherDetails,
	)
	body += "\nBest regards,\nPortfolio Advisor"
	e.Text = []byte(body)

	return s.send(e)
}

func (s *Sender) send(e *email.Email) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", e.To[0], err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", e.To[0], e.Subject)
	return nil
}
