package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{
		db: db,
	}
}

// ExistsByID checks if a user with the given ID exists
func (r *userRepository) ExistsByID(ctx context.Context, userID string) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM users WHERE user_id = ?)"
	var exists bool
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

// CountStudents counts users holding the Student role
func (r *userRepository) CountStudents(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(DISTINCT ur.user_id)
		FROM user_roles ur
		JOIN roles ro ON ro.role_id = ur.role_id
		WHERE ro.name = 'Student'
	`

	var count int
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}
