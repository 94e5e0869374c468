package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/embryolab/backend/internal/models"
)

type modelMediaRepository struct {
	db *sql.DB
}

// NewModelMediaRepository creates a new model media repository
func NewModelMediaRepository(db *sql.DB) *modelMediaRepository {
	return &modelMediaRepository{
		db: db,
	}
}

// GetByID retrieves a media item by its ID.
// Returns nil without error when the media does not exist.
func (r *modelMediaRepository) GetByID(ctx context.Context, mediaID string) (*models.ModelMedia, error) {
	query := `
		SELECT media_id, url, media_type, legende, position, is_primary, created_at, model_id
		FROM model_media
		WHERE media_id = ?
		LIMIT 1
	`

	var m models.ModelMedia
	err := r.db.QueryRowContext(ctx, query, mediaID).Scan(
		&m.MediaID,
		&m.URL,
		&m.MediaType,
		&m.Legende,
		&m.Position,
		&m.IsPrimary,
		&m.CreatedAt,
		&m.ModelID,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get media by id: %w", err)
	}

	return &m, nil
}

// ListByModel retrieves the media of one model with pagination, positionless
// rows last, primary first within equal positions
func (r *modelMediaRepository) ListByModel(ctx context.Context, q models.ModelMediaListQuery) ([]models.ModelMedia, int, error) {
	var total int
	countQuery := "SELECT COUNT(*) FROM model_media WHERE model_id = ?"
	if err := r.db.QueryRowContext(ctx, countQuery, q.ModelID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count media: %w", err)
	}

	query := `
		SELECT media_id, url, media_type, legende, position, is_primary, created_at, model_id
		FROM model_media
		WHERE model_id = ?
		ORDER BY (position IS NULL), position ASC, is_primary DESC, media_id ASC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, q.ModelID, q.PageSize, q.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query media: %w", err)
	}
	defer rows.Close()

	var items []models.ModelMedia
	for rows.Next() {
		var m models.ModelMedia
		err := rows.Scan(
			&m.MediaID,
			&m.URL,
			&m.MediaType,
			&m.Legende,
			&m.Position,
			&m.IsPrimary,
			&m.CreatedAt,
			&m.ModelID,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan media: %w", err)
		}
		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, total, nil
}

// Create inserts a new media item, clearing the primary flag on siblings in
// the same transaction when the new item is primary
func (r *modelMediaRepository) Create(ctx context.Context, m *models.ModelMedia) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if m.IsPrimary {
		clearQuery := "UPDATE model_media SET is_primary = FALSE WHERE model_id = ? AND is_primary = TRUE"
		if _, err := tx.ExecContext(ctx, clearQuery, m.ModelID); err != nil {
			return fmt.Errorf("failed to clear primary flag: %w", err)
		}
	}

	insertQuery := `
		INSERT INTO model_media (media_id, url, media_type, legende, position, is_primary, created_at, model_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, insertQuery,
		m.MediaID,
		m.URL,
		m.MediaType.String(),
		m.Legende,
		m.Position,
		m.IsPrimary,
		m.CreatedAt,
		m.ModelID,
	)
	if err != nil {
		return fmt.Errorf("failed to create media: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateMeta persists media metadata, clearing other siblings' primary flag
// in the same transaction when makePrimary is true
func (r *modelMediaRepository) UpdateMeta(ctx context.Context, m *models.ModelMedia, makePrimary bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if makePrimary {
		clearQuery := "UPDATE model_media SET is_primary = FALSE WHERE model_id = ? AND media_id <> ? AND is_primary = TRUE"
		if _, err := tx.ExecContext(ctx, clearQuery, m.ModelID, m.MediaID); err != nil {
			return fmt.Errorf("failed to clear primary flag: %w", err)
		}
	}

	updateQuery := `
		UPDATE model_media
		SET legende = ?, position = ?, is_primary = ?
		WHERE media_id = ?
	`
	if _, err := tx.ExecContext(ctx, updateQuery, m.Legende, m.Position, m.IsPrimary, m.MediaID); err != nil {
		return fmt.Errorf("failed to update media: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Delete removes a media row by ID. Returns false when no row matched.
func (r *modelMediaRepository) Delete(ctx context.Context, mediaID string) (bool, error) {
	query := "DELETE FROM model_media WHERE media_id = ?"

	result, err := r.db.ExecContext(ctx, query, mediaID)
	if err != nil {
		return false, fmt.Errorf("failed to delete media: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}
