package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/embryolab/backend/internal/models"
)

type model3DRepository struct {
	db *sql.DB
}

// NewModel3DRepository creates a new 3D model repository
func NewModel3DRepository(db *sql.DB) *model3DRepository {
	return &model3DRepository{
		db: db,
	}
}

// GetByID retrieves a model by its ID.
// Returns nil without error when the model does not exist.
func (r *model3DRepository) GetByID(ctx context.Context, modelID string) (*models.Model3D, error) {
	query := `
		SELECT model_id, title, discipline, embryo_day, description, status, published_at, author_user_id
		FROM models_3d
		WHERE model_id = ?
		LIMIT 1
	`

	var m models.Model3D
	err := r.db.QueryRowContext(ctx, query, modelID).Scan(
		&m.ModelID,
		&m.Title,
		&m.Discipline,
		&m.EmbryoDay,
		&m.Description,
		&m.Status,
		&m.PublishedAt,
		&m.AuthorUserID,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get model by id: %w", err)
	}

	return &m, nil
}

// Exists checks if a model with the given ID exists
func (r *model3DRepository) Exists(ctx context.Context, modelID string) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM models_3d WHERE model_id = ?)"
	var exists bool
	err := r.db.QueryRowContext(ctx, query, modelID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check model existence: %w", err)
	}
	return exists, nil
}

// List retrieves models with filtering and pagination, newest published first.
// The returned total counts all matching rows, ignoring pagination.
func (r *model3DRepository) List(ctx context.Context, q models.Model3DListQuery) ([]models.Model3D, int, error) {
	var whereClauses []string
	var args []any

	if q.Search != "" {
		whereClauses = append(whereClauses, "(title LIKE ? OR (discipline IS NOT NULL AND discipline LIKE ?))")
		pattern := "%" + q.Search + "%"
		args = append(args, pattern, pattern)
	}
	if q.Status != nil {
		whereClauses = append(whereClauses, "status = ?")
		args = append(args, q.Status.String())
	}
	if q.AuthorUserID != "" {
		whereClauses = append(whereClauses, "author_user_id = ?")
		args = append(args, q.AuthorUserID)
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM models_3d %s", whereClause)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count models: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT model_id, title, discipline, embryo_day, description, status, published_at, author_user_id
		FROM models_3d
		%s
		ORDER BY published_at DESC, model_id DESC
		LIMIT ? OFFSET ?
	`, whereClause)

	args = append(args, q.PageSize, q.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query models: %w", err)
	}
	defer rows.Close()

	var items []models.Model3D
	for rows.Next() {
		var m models.Model3D
		err := rows.Scan(
			&m.ModelID,
			&m.Title,
			&m.Discipline,
			&m.EmbryoDay,
			&m.Description,
			&m.Status,
			&m.PublishedAt,
			&m.AuthorUserID,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan model: %w", err)
		}
		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, total, nil
}

// Create inserts a new model
func (r *model3DRepository) Create(ctx context.Context, m *models.Model3D) error {
	query := `
		INSERT INTO models_3d (model_id, title, discipline, embryo_day, description, status, published_at, author_user_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		m.ModelID,
		m.Title,
		m.Discipline,
		m.EmbryoDay,
		m.Description,
		m.Status.String(),
		m.PublishedAt,
		m.AuthorUserID,
	)
	if err != nil {
		return fmt.Errorf("failed to create model: %w", err)
	}

	return nil
}

// Update persists the full state of a model
func (r *model3DRepository) Update(ctx context.Context, m *models.Model3D) error {
	query := `
		UPDATE models_3d
		SET title = ?, discipline = ?, embryo_day = ?, description = ?, status = ?, published_at = ?
		WHERE model_id = ?
	`

	// MySQL reports zero affected rows for no-op updates, so existence is
	// checked by the caller, not here.
	_, err := r.db.ExecContext(ctx, query,
		m.Title,
		m.Discipline,
		m.EmbryoDay,
		m.Description,
		m.Status.String(),
		m.PublishedAt,
		m.ModelID,
	)
	if err != nil {
		return fmt.Errorf("failed to update model: %w", err)
	}

	return nil
}

// Delete removes a model by ID. Returns false when no row matched.
func (r *model3DRepository) Delete(ctx context.Context, modelID string) (bool, error) {
	query := "DELETE FROM models_3d WHERE model_id = ?"

	result, err := r.db.ExecContext(ctx, query, modelID)
	if err != nil {
		return false, fmt.Errorf("failed to delete model: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// Count returns the total number of models
func (r *model3DRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM models_3d").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count models: %w", err)
	}
	return count, nil
}
