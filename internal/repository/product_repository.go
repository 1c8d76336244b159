package repository

import (
	"database/sql"

	"github.com/Faizansait10/portfolio-advisor/internal/apperrors"
	"github.com/Faizansait10/portfolio-advisor/internal/models"
)

// ProductRepository provides database operations for financial products
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository initializes a new product repository
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a new product and assigns its id
func (r *ProductRepository) Create(product *models.FinancialProduct) error {
	query := `
		INSERT INTO financial_products (name, type, description, risk_level, expected_return_rate, minimum_investment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING product_id`
	err := r.db.QueryRow(query,
		product.Name, product.Type, product.Description, product.RiskLevel,
		product.ExpectedReturnRate, product.MinimumInvestment, product.CreatedAt).
		Scan(&product.ID)
	if err != nil {
		return apperrors.DataAccess("failed to create product: %v", err)
	}
	return nil
}

// FindByID retrieves a product by id; returns (nil, nil) when absent
func (r *ProductRepository) FindByID(id int64) (*models.FinancialProduct, error) {
	product := &models.FinancialProduct{}
	query := `
		SELECT product_id, name, type, description, risk_level, expected_return_rate, minimum_investment, created_at
		FROM financial_products
		WHERE product_id = $1`
	err := r.db.QueryRow(query, id).
		Scan(&product.ID, &product.Name, &product.Type, &product.Description, &product.RiskLevel,
			&product.ExpectedReturnRate, &product.MinimumInvestment, &product.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.DataAccess("failed to find product: %v", err)
	}
	return product, nil
}

// FindAll retrieves all products
func (r *ProductRepository) FindAll() ([]models.FinancialProduct, error) {
	query := `
		SELECT product_id, name, type, description, risk_level, expected_return_rate, minimum_investment, created_at
		FROM financial_products`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, apperrors.DataAccess("failed to list products: %v", err)
	}
	defer rows.Close()

	var products []models.FinancialProduct
	for rows.Next() {
		var p models.FinancialProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Description, &p.RiskLevel,
			&p.ExpectedReturnRate, &p.MinimumInvestment, &p.CreatedAt); err != nil {
			return nil, apperrors.DataAccess("failed to scan product: %v", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.DataAccess("failed to list products: %v", err)
	}
	return products, nil
}

// Update rewrites a product matched by id; returns false when no row matched
func (r *ProductRepository) Update(product *models.FinancialProduct) (bool, error) {
	query := `
		UPDATE financial_products
		SET name = $1, type = $2, description = $3, risk_level = $4, expected_return_rate = $5, minimum_investment = $6
		WHERE product_id = $7`
	res, err := r.db.Exec(query,
		product.Name, product.Type, product.Description, product.RiskLevel,
		product.ExpectedReturnRate, product.MinimumInvestment, product.ID)
	if err != nil {
		return false, apperrors.DataAccess("failed to update product: %v", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperrors.DataAccess("failed to update product: %v", err)
	}
	return affected > 0, nil
}

// Delete removes a product by id; returns false when no row matched
func (r *ProductRepository) Delete(id int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM financial_products WHERE product_id = $1`, id)
	if err != nil {
		return false, apperrors.DataAccess("failed to delete product: %v", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperrors.DataAccess("failed to delete product: %v", err)
	}
	return affected > 0, nil
}
