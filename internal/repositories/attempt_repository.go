package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/embryolab/backend/internal/models"
)

type attemptRepository struct {
	db *sql.DB
}

// NewAttemptRepository creates a new attempt repository
func NewAttemptRepository(db *sql.DB) *attemptRepository {
	return &attemptRepository{
		db: db,
	}
}

// GetByID retrieves an attempt by its ID.
// Returns nil without error when the attempt does not exist.
func (r *attemptRepository) GetByID(ctx context.Context, attemptID string) (*models.Attempt, error) {
	query := `
		SELECT attempt_id, score, attempted_at, duration, user_id, quiz_id
		FROM attempts
		WHERE attempt_id = ?
		LIMIT 1
	`

	var a models.Attempt
	err := r.db.QueryRowContext(ctx, query, attemptID).Scan(
		&a.AttemptID,
		&a.Score,
		&a.AttemptedAt,
		&a.Duration,
		&a.UserID,
		&a.QuizID,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attempt by id: %w", err)
	}

	return &a, nil
}

// Exists checks if an attempt with the given ID exists
func (r *attemptRepository) Exists(ctx context.Context, attemptID string) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM attempts WHERE attempt_id = ?)"
	var exists bool
	err := r.db.QueryRowContext(ctx, query, attemptID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check attempt existence: %w", err)
	}
	return exists, nil
}

// List retrieves attempts with filtering and pagination, newest first
func (r *attemptRepository) List(ctx context.Context, q models.AttemptListQuery) ([]models.Attempt, int, error) {
	var whereClauses []string
	var args []any

	if q.QuizID != "" {
		whereClauses = append(whereClauses, "quiz_id = ?")
		args = append(args, q.QuizID)
	}
	if q.UserID != "" {
		whereClauses = append(whereClauses, "user_id = ?")
		args = append(args, q.UserID)
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM attempts %s", whereClause)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attempts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT attempt_id, score, attempted_at, duration, user_id, quiz_id
		FROM attempts
		%s
		ORDER BY attempted_at DESC, attempt_id DESC
		LIMIT ? OFFSET ?
	`, whereClause)

	args = append(args, q.PageSize, q.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attempts: %w", err)
	}
	defer rows.Close()

	var items []models.Attempt
	for rows.Next() {
		var a models.Attempt
		err := rows.Scan(
			&a.AttemptID,
			&a.Score,
			&a.AttemptedAt,
			&a.Duration,
			&a.UserID,
			&a.QuizID,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attempt: %w", err)
		}
		items = append(items, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, total, nil
}

// Create inserts a new attempt
func (r *attemptRepository) Create(ctx context.Context, a *models.Attempt) error {
	query := `
		INSERT INTO attempts (attempt_id, score, attempted_at, duration, user_id, quiz_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		a.AttemptID,
		a.Score,
		a.AttemptedAt,
		a.Duration,
		a.UserID,
		a.QuizID,
	)
	if err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}

	return nil
}

// Delete removes an attempt by ID. Returns false when no row matched.
func (r *attemptRepository) Delete(ctx context.Context, attemptID string) (bool, error) {
	query := "DELETE FROM attempts WHERE attempt_id = ?"

	result, err := r.db.ExecContext(ctx, query, attemptID)
	if err != nil {
		return false, fmt.Errorf("failed to delete attempt: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// StatsByUser groups one user's attempts by quiz, returning per-quiz attempt
// counts and average scores
func (r *attemptRepository) StatsByUser(ctx context.Context, userID string) ([]models.AttemptStats, error) {
	query := `
		SELECT quiz_id, COUNT(*), AVG(score)
		FROM attempts
		WHERE user_id = ?
		GROUP BY quiz_id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attempt stats: %w", err)
	}
	defer rows.Close()

	var stats []models.AttemptStats
	for rows.Next() {
		var s models.AttemptStats
		if err := rows.Scan(&s.QuizID, &s.AttemptCount, &s.AverageScore); err != nil {
			return nil, fmt.Errorf("failed to scan attempt stats: %w", err)
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return stats, nil
}

// GlobalStatsByUser returns the total attempt count and overall average
// score for one user. The average is 0 when the user has no attempts.
func (r *attemptRepository) GlobalStatsByUser(ctx context.Context, userID string) (*models.AttemptGlobalStats, error) {
	query := "SELECT COUNT(*), COALESCE(AVG(score), 0) FROM attempts WHERE user_id = ?"

	var stats models.AttemptGlobalStats
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&stats.TotalAttempts, &stats.GlobalAverageScore)
	if err != nil {
		return nil, fmt.Errorf("failed to query global attempt stats: %w", err)
	}

	return &stats, nil
}
