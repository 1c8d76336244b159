package repository

import (
	"database/sql"

	"github.com/Faizansait10/portfolio-advisor/internal/apperrors"
	"github.com/Faizansait10/portfolio-advisor/internal/models"
)

// AllocationRepository provides database operations for portfolio allocations
type AllocationRepository struct {
	db *sql.DB
}

// NewAllocationRepository initializes a new allocation repository
func NewAllocationRepository(db *sql.DB) *AllocationRepository {
	return &AllocationRepository{db: db}
}

// Create inserts a new allocation and assigns its id
func (r *AllocationRepository) Create(allocation *models.PortfolioAllocation) error {
	query := `
		INSERT INTO portfolio_allocations (user_id, recommendation_date, equity_pct, debt_pct, alternative_pct, other_details)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING allocation_id`
	err := r.db.QueryRow(query,
		allocation.UserID, allocation.RecommendationDate, allocation.EquityPct,
		allocation.DebtPct, allocation.AlternativePct, allocation.OtherDetails).
		Scan(&allocation.ID)
	if err != nil {
		return apperrors.DataAccess("failed to create allocation: %v", err)
	}
	return nil
}

// FindByID retrieves an allocation by id; returns (nil, nil) when absent
func (r *AllocationRepository) FindByID(id int64) (*models.PortfolioAllocation, error) {
	allocation := &models.PortfolioAllocation{}
	query := `
		SELECT allocation_id, user_id, recommendation_date, equity_pct, debt_pct, alternative_pct, other_details
		FROM portfolio_allocations
		WHERE allocation_id = $1`
	err := r.db.QueryRow(query, id).
		Scan(&allocation.ID, &allocation.UserID, &allocation.RecommendationDate,
			&allocation.EquityPct, &allocation.DebtPct, &allocation.AlternativePct, &allocation.OtherDetails)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.DataAccess("failed to find allocation: %v", err)
	}
	return allocation, nil
}

// FindAllByUser retrieves the user's allocation history, most recent first
func (r *AllocationRepository) FindAllByUser(userID int64) ([]models.PortfolioAllocation, error) {
	query := `
		SELECT allocation_id, user_id, recommendation_date, equity_pct, debt_pct, alternative_pct, other_details
		FROM portfolio_allocations
		WHERE user_id = $1
		ORDER BY recommendation_date DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, apperrors.DataAccess("failed to list allocations: %v", err)
	}
	defer rows.Close()

	var allocations []models.PortfolioAllocation
	for rows.Next() {
		var a models.PortfolioAllocation
		if err := rows.Scan(&a.ID, &a.UserID, &a.RecommendationDate,
			&a.EquityPct, &a.DebtPct, &a.AlternativePct, &a.OtherDetails); err != nil {
			return nil, apperrors.DataAccess("failed to scan allocation: %v", err)
		}
		allocations = append(allocations, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.DataAccess("failed to list allocations: %v", err)
	}
	return allocations, nil
}

// Update rewrites an allocation matched by id; returns false when no row matched
func (r *AllocationRepository) Update(allocation *models.PortfolioAllocation) (bool, error) {
	query := `
		UPDATE portfolio_allocations
		SET user_id = $1, recommendation_date = $2, equity_pct = $3, debt_pct = $4, alternative_pct = $5, other_details = $6
		WHERE allocation_id = $7`
	res, err := r.db.Exec(query,
		allocation.UserID, allocation.RecommendationDate, allocation.EquityPct,
		allocation.DebtPct, allocation.AlternativePct, allocation.OtherDetails, allocation.ID)
	if err != nil {
		return false, apperrors.DataAccess("failed to update allocation: %v", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperrors.DataAccess("failed to update allocation: %v", err)
	}
	return affected > 0, nil
}

// Delete removes an allocation by id; returns false when no row matched
func (r *AllocationRepository) Delete(id int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM portfolio_allocations WHERE allocation_id = $1`, id)
	if err != nil {
		return false, apperrors.DataAccess("failed to delete allocation: %v", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperrors.DataAccess("failed to delete allocation: %v", err)
	}
	return affected > 0, nil
}
