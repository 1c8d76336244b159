package service

import (
	"strings"
	"time"

	"github.com/Faizansait10/portfolio-advisor/internal/apperrors"
	"github.com/Faizansait10/portfolio-advisor/internal/models"
	"github.com/Faizansait10/portfolio-advisor/internal/utils/email"
	"github.com/sirupsen/logrus"
)

// UserRepository is the storage contract the user service depends on
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id int64) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindAll() ([]models.User, error)
	Update(user *models.User) (bool, error)
	Delete(id int64) (bool, error)
}

// UserService handles registration and authentication
type UserService struct {
	repo UserRepository
	mail *email.Sender // nil when SMTP is not configured
	log  *logrus.Logger
}

// NewUserService initializes a new user service
func NewUserService(repo UserRepository, mail *email.Sender, log *logrus.Logger) *UserService {
	return &UserService{repo: repo, mail: mail, log: log}
}

// Register validates and persists a new user. Email uniqueness is enforced
// here, not by storage.
func (s *UserService) Register(name, email, password, phoneNumber, address string) (*models.User, error) {
	if !strings.Contains(email, "@") {
		return nil, apperrors.InvalidInput("Invalid email format.")
	}
	if len(password) < 6 {
		return nil, apperrors.InvalidInput("Password must be at least 6 characters.")
	}

	existing, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// Unlike login, this message confirms the address is registered.
		return nil, apperrors.InvalidInput("User with this email already exists.")
	}

	user := &models.User{
		Name:        name,
		Email:       email,
		Password:    password,
		PhoneNumber: phoneNumber,
		Address:     address,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	if s.mail != nil {
		if err := s.mail.SendWelcome(user.Email, user.Name); err != nil {
			s.log.Warnf("Failed to send welcome email to %s: %v", user.Email, err)
		}
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user by email and password. The stored credential is
// compared as plain text for compatibility with the existing user table; a
// real deployment should store a salted one-way hash instead.
func (s *UserService) Login(email, password string) (*models.User, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != password {
		return nil, apperrors.Authentication("Invalid email or password.")
	}

	s.log.Infof("User logged in: %s", user.Email)
	return user, nil
}

// GetByID retrieves a user by id; returns (nil, nil) when absent
func (s *UserService) GetByID(id int64) (*models.User, error) {
	return s.repo.FindByID(id)
}

// GetAllUsers retrieves all registered users
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.FindAll()
}
