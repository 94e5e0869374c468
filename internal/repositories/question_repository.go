package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/embryolab/backend/internal/models"
)

type questionRepository struct {
	db *sql.DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *sql.DB) *questionRepository {
	return &questionRepository{
		db: db,
	}
}

// scanQuestion decodes one question row, unpacking the JSON options column
func scanQuestion(scan func(dest ...any) error) (*models.Question, error) {
	var q models.Question
	var optionsJSON sql.NullString
	err := scan(
		&q.QuestionID,
		&q.QuestionType,
		&q.Statement,
		&optionsJSON,
		&q.CorrectAnswer,
		&q.QuizID,
	)
	if err != nil {
		return nil, err
	}
	if optionsJSON.Valid && optionsJSON.String != "" {
		if err := json.Unmarshal([]byte(optionsJSON.String), &q.Options); err != nil {
			return nil, fmt.Errorf("failed to decode options: %w", err)
		}
	}
	return &q, nil
}

// encodeOptions packs the options list into its JSON column form, NULL when absent
func encodeOptions(options []string) (any, error) {
	if options == nil {
		return nil, nil
	}
	data, err := json.Marshal(options)
	if err != nil {
		return nil, fmt.Errorf("failed to encode options: %w", err)
	}
	return string(data), nil
}

// GetByID retrieves a question by its ID.
// Returns nil without error when the question does not exist.
func (r *questionRepository) GetByID(ctx context.Context, questionID string) (*models.Question, error) {
	query := `
		SELECT question_id, question_type, statement, options, correct_answer, quiz_id
		FROM questions
		WHERE question_id = ?
		LIMIT 1
	`

	row := r.db.QueryRowContext(ctx, query, questionID)
	q, err := scanQuestion(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get question by id: %w", err)
	}

	return q, nil
}

// ListByQuiz retrieves the questions of one quiz with pagination, in
// insertion-stable id order
func (r *questionRepository) ListByQuiz(ctx context.Context, q models.QuestionListQuery) ([]models.Question, int, error) {
	var total int
	countQuery := "SELECT COUNT(*) FROM questions WHERE quiz_id = ?"
	if err := r.db.QueryRowContext(ctx, countQuery, q.QuizID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count questions: %w", err)
	}

	query := `
		SELECT question_id, question_type, statement, options, correct_answer, quiz_id
		FROM questions
		WHERE quiz_id = ?
		ORDER BY question_id ASC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, q.QuizID, q.PageSize, q.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var items []models.Question
	for rows.Next() {
		question, err := scanQuestion(rows.Scan)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan question: %w", err)
		}
		items = append(items, *question)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, total, nil
}

// Exists checks if a question with the given ID exists
func (r *questionRepository) Exists(ctx context.Context, questionID string) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM questions WHERE question_id = ?)"
	var exists bool
	err := r.db.QueryRowContext(ctx, query, questionID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check question existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new question
func (r *questionRepository) Create(ctx context.Context, q *models.Question) error {
	options, err := encodeOptions(q.Options)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO questions (question_id, question_type, statement, options, correct_answer, quiz_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		q.QuestionID,
		q.QuestionType.String(),
		q.Statement,
		options,
		q.CorrectAnswer,
		q.QuizID,
	)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}

	return nil
}

// Update persists the full state of a question
func (r *questionRepository) Update(ctx context.Context, q *models.Question) error {
	options, err := encodeOptions(q.Options)
	if err != nil {
		return err
	}

	query := `
		UPDATE questions
		SET question_type = ?, statement = ?, options = ?, correct_answer = ?, quiz_id = ?
		WHERE question_id = ?
	`

	_, err = r.db.ExecContext(ctx, query,
		q.QuestionType.String(),
		q.Statement,
		options,
		q.CorrectAnswer,
		q.QuizID,
		q.QuestionID,
	)
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}

	return nil
}

// Delete removes a question by ID. Returns false when no row matched.
func (r *questionRepository) Delete(ctx context.Context, questionID string) (bool, error) {
	query := "DELETE FROM questions WHERE question_id = ?"

	result, err := r.db.ExecContext(ctx, query, questionID)
	if err != nil {
		return false, fmt.Errorf("failed to delete question: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}
