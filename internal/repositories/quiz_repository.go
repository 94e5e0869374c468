package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/embryolab/backend/internal/models"
)

type quizRepository struct {
	db *sql.DB
}

// NewQuizRepository creates a new quiz repository
func NewQuizRepository(db *sql.DB) *quizRepository {
	return &quizRepository{
		db: db,
	}
}

// GetByID retrieves a quiz by its ID.
// Returns nil without error when the quiz does not exist.
func (r *quizRepository) GetByID(ctx context.Context, quizID string) (*models.Quiz, error) {
	query := `
		SELECT quiz_id, title, description, time_limit, attempts, status, published_at, model_id
		FROM quizzes
		WHERE quiz_id = ?
		LIMIT 1
	`

	var q models.Quiz
	err := r.db.QueryRowContext(ctx, query, quizID).Scan(
		&q.QuizID,
		&q.Title,
		&q.Description,
		&q.TimeLimit,
		&q.Attempts,
		&q.Status,
		&q.PublishedAt,
		&q.ModelID,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz by id: %w", err)
	}

	return &q, nil
}

// Exists checks if a quiz with the given ID exists
func (r *quizRepository) Exists(ctx context.Context, quizID string) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM quizzes WHERE quiz_id = ?)"
	var exists bool
	err := r.db.QueryRowContext(ctx, query, quizID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check quiz existence: %w", err)
	}
	return exists, nil
}

// List retrieves quizzes with filtering and pagination, newest published first
func (r *quizRepository) List(ctx context.Context, q models.QuizListQuery) ([]models.Quiz, int, error) {
	var whereClauses []string
	var args []any

	if q.ModelID != "" {
		whereClauses = append(whereClauses, "model_id = ?")
		args = append(args, q.ModelID)
	}
	if q.Status != nil {
		whereClauses = append(whereClauses, "status = ?")
		args = append(args, q.Status.String())
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM quizzes %s", whereClause)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count quizzes: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT quiz_id, title, description, time_limit, attempts, status, published_at, model_id
		FROM quizzes
		%s
		ORDER BY published_at DESC, quiz_id DESC
		LIMIT ? OFFSET ?
	`, whereClause)

	args = append(args, q.PageSize, q.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query quizzes: %w", err)
	}
	defer rows.Close()

	var items []models.Quiz
	for rows.Next() {
		var qz models.Quiz
		err := rows.Scan(
			&qz.QuizID,
			&qz.Title,
			&qz.Description,
			&qz.TimeLimit,
			&qz.Attempts,
			&qz.Status,
			&qz.PublishedAt,
			&qz.ModelID,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan quiz: %w", err)
		}
		items = append(items, qz)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, total, nil
}

// Create inserts a new quiz
func (r *quizRepository) Create(ctx context.Context, q *models.Quiz) error {
	query := `
		INSERT INTO quizzes (quiz_id, title, description, time_limit, attempts, status, published_at, model_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		q.QuizID,
		q.Title,
		q.Description,
		q.TimeLimit,
		q.Attempts,
		q.Status.String(),
		q.PublishedAt,
		q.ModelID,
	)
	if err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}

	return nil
}

// Update persists the full state of a quiz
func (r *quizRepository) Update(ctx context.Context, q *models.Quiz) error {
	query := `
		UPDATE quizzes
		SET title = ?, description = ?, time_limit = ?, attempts = ?, status = ?, published_at = ?, model_id = ?
		WHERE quiz_id = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		q.Title,
		q.Description,
		q.TimeLimit,
		q.Attempts,
		q.Status.String(),
		q.PublishedAt,
		q.ModelID,
		q.QuizID,
	)
	if err != nil {
		return fmt.Errorf("failed to update quiz: %w", err)
	}

	return nil
}

// Delete removes a quiz by ID. Returns false when no row matched.
func (r *quizRepository) Delete(ctx context.Context, quizID string) (bool, error) {
	query := "DELETE FROM quizzes WHERE quiz_id = ?"

	result, err := r.db.ExecContext(ctx, query, quizID)
	if err != nil {
		return false, fmt.Errorf("failed to delete quiz: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// Count returns the total number of quizzes
func (r *quizRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM quizzes").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count quizzes: %w", err)
	}
	return count, nil
}
