package service

import (
	"strings"
	"time"

	"github.com/Faizansait10/portfolio-advisor/internal/apperrors"
	"github.com/Faizansait10/portfolio-advisor/internal/models"
	"github.com/sirupsen/logrus"
)

// ProductRepository is the storage contract for financial products
type ProductRepository interface {
	Create(product *models.FinancialProduct) error
	FindByID(id int64) (*models.FinancialProduct, error)
	FindAll() ([]models.FinancialProduct, error)
	Update(product *models.FinancialProduct) (bool, error)
	Delete(id int64) (bool, error)
}

// ProductService manages the financial product catalog (reference data)
type ProductService struct {
	repo ProductRepository
	log  *logrus.Logger
}

// NewProductService initializes a new product service
func NewProductService(repo ProductRepository, log *logrus.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

// Add persists a new catalog product
func (s *ProductService) Add(product *models.FinancialProduct) error {
	if product.Name == "" {
		return apperrors.InvalidInput("Product name is required.")
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.log.Infof("Product added: %s (%s)", product.Name, product.Type)
	return nil
}

// GetByID retrieves a product by id; returns (nil, nil) when absent
func (s *ProductService) GetByID(id int64) (*models.FinancialProduct, error) {
	return s.repo.FindByID(id)
}

// GetAll retrieves the full catalog
func (s *ProductService) GetAll() ([]models.FinancialProduct, error) {
	return s.repo.FindAll()
}

// GetByRiskLevel filters the catalog by risk level, case-insensitively
func (s *ProductService) GetByRiskLevel(riskLevel string) ([]models.FinancialProduct, error) {
	products, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	var filtered []models.FinancialProduct
	for _, p := range products {
		if strings.EqualFold(p.RiskLevel, riskLevel) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Update rewrites a product matched by id; returns false when it does not exist
func (s *ProductService) Update(product *models.FinancialProduct) (bool, error) {
	return s.repo.Update(product)
}

// Delete removes a product by id; returns false when it does not exist
func (s *ProductService) Delete(id int64) (bool, error) {
	return s.repo.Delete(id)
}
