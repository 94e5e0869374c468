package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/embryolab/backend/internal/models"
)

type modelFileRepository struct {
	db *sql.DB
}

// NewModelFileRepository creates a new model file repository
func NewModelFileRepository(db *sql.DB) *modelFileRepository {
	return &modelFileRepository{
		db: db,
	}
}

// GetByID retrieves a file by its ID.
// Returns nil without error when the file does not exist.
func (r *modelFileRepository) GetByID(ctx context.Context, fileID string) (*models.ModelFile, error) {
	query := `
		SELECT file_id, path, file_type, file_role, is_primary, position, created_at, model_id
		FROM model_files
		WHERE file_id = ?
		LIMIT 1
	`

	var f models.ModelFile
	err := r.db.QueryRowContext(ctx, query, fileID).Scan(
		&f.FileID,
		&f.Path,
		&f.FileType,
		&f.FileRole,
		&f.IsPrimary,
		&f.Position,
		&f.CreatedAt,
		&f.ModelID,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get file by id: %w", err)
	}

	return &f, nil
}

// ListByModel retrieves the files of one model with pagination. Rows without
// a position sort last; the primary file sorts first within equal positions.
func (r *modelFileRepository) ListByModel(ctx context.Context, q models.ModelFileListQuery) ([]models.ModelFile, int, error) {
	var total int
	countQuery := "SELECT COUNT(*) FROM model_files WHERE model_id = ?"
	if err := r.db.QueryRowContext(ctx, countQuery, q.ModelID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count files: %w", err)
	}

	query := `
		SELECT file_id, path, file_type, file_role, is_primary, position, created_at, model_id
		FROM model_files
		WHERE model_id = ?
		ORDER BY (position IS NULL), position ASC, is_primary DESC, file_id ASC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, q.ModelID, q.PageSize, q.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query files: %w", err)
	}
	defer rows.Close()

	var items []models.ModelFile
	for rows.Next() {
		var f models.ModelFile
		err := rows.Scan(
			&f.FileID,
			&f.Path,
			&f.FileType,
			&f.FileRole,
			&f.IsPrimary,
			&f.Position,
			&f.CreatedAt,
			&f.ModelID,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan file: %w", err)
		}
		items = append(items, f)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, total, nil
}

// Create inserts a new file. When the file is flagged primary, the flag is
// first cleared on every sibling of the same model inside the same
// transaction, so at most one primary file per model survives the commit.
func (r *modelFileRepository) Create(ctx context.Context, f *models.ModelFile) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if f.IsPrimary {
		clearQuery := "UPDATE model_files SET is_primary = FALSE WHERE model_id = ? AND is_primary = TRUE"
		if _, err := tx.ExecContext(ctx, clearQuery, f.ModelID); err != nil {
			return fmt.Errorf("failed to clear primary flag: %w", err)
		}
	}

	insertQuery := `
		INSERT INTO model_files (file_id, path, file_type, file_role, is_primary, position, created_at, model_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, insertQuery,
		f.FileID,
		f.Path,
		f.FileType,
		f.FileRole,
		f.IsPrimary,
		f.Position,
		f.CreatedAt,
		f.ModelID,
	)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateMeta persists the metadata of a file. When makePrimary is true the
// primary flag is cleared on every other sibling first, inside the same
// transaction.
func (r *modelFileRepository) UpdateMeta(ctx context.Context, f *models.ModelFile, makePrimary bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if makePrimary {
		clearQuery := "UPDATE model_files SET is_primary = FALSE WHERE model_id = ? AND file_id <> ? AND is_primary = TRUE"
		if _, err := tx.ExecContext(ctx, clearQuery, f.ModelID, f.FileID); err != nil {
			return fmt.Errorf("failed to clear primary flag: %w", err)
		}
	}

	updateQuery := `
		UPDATE model_files
		SET file_role = ?, position = ?, is_primary = ?
		WHERE file_id = ?
	`
	if _, err := tx.ExecContext(ctx, updateQuery, f.FileRole, f.Position, f.IsPrimary, f.FileID); err != nil {
		return fmt.Errorf("failed to update file: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Delete removes a file row by ID. Returns false when no row matched.
func (r *modelFileRepository) Delete(ctx context.Context, fileID string) (bool, error) {
	query := "DELETE FROM model_files WHERE file_id = ?"

	result, err := r.db.ExecContext(ctx, query, fileID)
	if err != nil {
		return false, fmt.Errorf("failed to delete file: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}
