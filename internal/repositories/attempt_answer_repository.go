package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/embryolab/backend/internal/models"
)

type attemptAnswerRepository struct {
	db *sql.DB
}

// NewAttemptAnswerRepository creates a new attempt answer repository
func NewAttemptAnswerRepository(db *sql.DB) *attemptAnswerRepository {
	return &attemptAnswerRepository{
		db: db,
	}
}

// Get retrieves one answer by its composite attempt+question key.
// Returns nil without error when no such answer exists.
func (r *attemptAnswerRepository) Get(ctx context.Context, attemptID, questionID string) (*models.AttemptAnswer, error) {
	query := `
		SELECT attempt_id, question_id, response, is_correct
		FROM attempt_answers
		WHERE attempt_id = ? AND question_id = ?
		LIMIT 1
	`

	var a models.AttemptAnswer
	err := r.db.QueryRowContext(ctx, query, attemptID, questionID).Scan(
		&a.AttemptID,
		&a.QuestionID,
		&a.Response,
		&a.IsCorrect,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attempt answer: %w", err)
	}

	return &a, nil
}

// ListByAttempt retrieves all answers recorded for an attempt, in question order
func (r *attemptAnswerRepository) ListByAttempt(ctx context.Context, attemptID string) ([]models.AttemptAnswer, error) {
	query := `
		SELECT attempt_id, question_id, response, is_correct
		FROM attempt_answers
		WHERE attempt_id = ?
		ORDER BY question_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, attemptID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attempt answers: %w", err)
	}
	defer rows.Close()

	var items []models.AttemptAnswer
	for rows.Next() {
		var a models.AttemptAnswer
		err := rows.Scan(
			&a.AttemptID,
			&a.QuestionID,
			&a.Response,
			&a.IsCorrect,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attempt answer: %w", err)
		}
		items = append(items, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

// Create inserts a new attempt answer
func (r *attemptAnswerRepository) Create(ctx context.Context, a *models.AttemptAnswer) error {
	query := `
		INSERT INTO attempt_answers (attempt_id, question_id, response, is_correct)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		a.AttemptID,
		a.QuestionID,
		a.Response,
		a.IsCorrect,
	)
	if err != nil {
		return fmt.Errorf("failed to create attempt answer: %w", err)
	}

	return nil
}

// Delete removes one answer by its composite key. Returns false when no row matched.
func (r *attemptAnswerRepository) Delete(ctx context.Context, attemptID, questionID string) (bool, error) {
	query := "DELETE FROM attempt_answers WHERE attempt_id = ? AND question_id = ?"

	result, err := r.db.ExecContext(ctx, query, attemptID, questionID)
	if err != nil {
		return false, fmt.Errorf("failed to delete attempt answer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}
