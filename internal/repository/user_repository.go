package repository

import (
	"database/sql"

	"github.com/Faizansait10/portfolio-advisor/internal/apperrors"
	"github.com/Faizansait10/portfolio-advisor/internal/models"
)

// UserRepository provides database operations for users
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository initializes a new user repository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and assigns its id
func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (name, email, password, phone_number, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING user_id`
	err := r.db.QueryRow(query, user.Name, user.Email, user.Password, user.PhoneNumber, user.Address, user.CreatedAt).
		Scan(&user.ID)
	if err != nil {
		return apperrors.DataAccess("failed to create user: %v", err)
	}
	return nil
}

// FindByID retrieves a user by id; returns (nil, nil) when absent
func (r *UserRepository) FindByID(id int64) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT user_id, name, email, password, phone_number, address, created_at
		FROM users
		WHERE user_id = $1`
	err := r.db.QueryRow(query, id).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.PhoneNumber, &user.Address, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.DataAccess("failed to find user: %v", err)
	}
	return user, nil
}

// FindByEmail retrieves a user by email; returns (nil, nil) when absent
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT user_id, name, email, password, phone_number, address, created_at
		FROM users
		WHERE email = $1`
	err := r.db.QueryRow(query, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.PhoneNumber, &user.Address, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.DataAccess("failed to find user: %v", err)
	}
	return user, nil
}

// FindAll retrieves all users
func (r *UserRepository) FindAll() ([]models.User, error) {
	query := `
		SELECT user_id, name, email, password, phone_number, address, created_at
		FROM users`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, apperrors.DataAccess("failed to list users: %v", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.PhoneNumber, &u.Address, &u.CreatedAt); err != nil {
			return nil, apperrors.DataAccess("failed to scan user: %v", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.DataAccess("failed to list users: %v", err)
	}
	return users, nil
}

// Update rewrites a user matched by id; returns false when no row matched
func (r *UserRepository) Update(user *models.User) (bool, error) {
	query := `
		UPDATE users
		SET name = $1, email = $2, password = $3, phone_number = $4, address = $5
		WHERE user_id = $6`
	res, err := r.db.Exec(query, user.Name, user.Email, user.Password, user.PhoneNumber, user.Address, user.ID)
	if err != nil {
		return false, apperrors.DataAccess("failed to update user: %v", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperrors.DataAccess("failed to update user: %v", err)
	}
	return affected > 0, nil
}

// Delete removes a user by id; returns false when no row matched
func (r *UserRepository) Delete(id int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return false, apperrors.DataAccess("failed to delete user: %v", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperrors.DataAccess("failed to delete user: %v", err)
	}
	return affected > 0, nil
}
