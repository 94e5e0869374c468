package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/embryolab/backend/internal/models"
)

type eventLogRepository struct {
	db *sql.DB
}

// NewEventLogRepository creates a new event log repository
func NewEventLogRepository(db *sql.DB) *eventLogRepository {
	return &eventLogRepository{
		db: db,
	}
}

// GetByID retrieves an event log entry by its ID.
// Returns nil without error when the entry does not exist.
func (r *eventLogRepository) GetByID(ctx context.Context, eventID string) (*models.EventLog, error) {
	query := `
		SELECT event_log_id, event_type, payload, created_at, user_id
		FROM event_logs
		WHERE event_log_id = ?
		LIMIT 1
	`

	var e models.EventLog
	err := r.db.QueryRowContext(ctx, query, eventID).Scan(
		&e.EventLogID,
		&e.EventType,
		&e.Payload,
		&e.CreatedAt,
		&e.UserID,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event by id: %w", err)
	}

	return &e, nil
}

// List retrieves event log entries with filtering and pagination, newest first
func (r *eventLogRepository) List(ctx context.Context, q models.EventLogListQuery) ([]models.EventLog, int, error) {
	var whereClauses []string
	var args []any

	if q.EventType != "" {
		whereClauses = append(whereClauses, "event_type = ?")
		args = append(args, q.EventType)
	}
	if q.UserID != "" {
		whereClauses = append(whereClauses, "user_id = ?")
		args = append(args, q.UserID)
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM event_logs %s", whereClause)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT event_log_id, event_type, payload, created_at, user_id
		FROM event_logs
		%s
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, whereClause)

	args = append(args, q.PageSize, q.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var items []models.EventLog
	for rows.Next() {
		var e models.EventLog
		err := rows.Scan(
			&e.EventLogID,
			&e.EventType,
			&e.Payload,
			&e.CreatedAt,
			&e.UserID,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan event: %w", err)
		}
		items = append(items, e)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, total, nil
}

// Create inserts a new event log entry
func (r *eventLogRepository) Create(ctx context.Context, e *models.EventLog) error {
	query := `
		INSERT INTO event_logs (event_log_id, event_type, payload, created_at, user_id)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		e.EventLogID,
		e.EventType,
		e.Payload,
		e.CreatedAt,
		e.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}
