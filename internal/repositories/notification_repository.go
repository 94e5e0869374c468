package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/embryolab/backend/internal/models"
)

type notificationRepository struct {
	db *sql.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *sql.DB) *notificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// GetByID retrieves a notification by its ID.
// Returns nil without error when the notification does not exist.
func (r *notificationRepository) GetByID(ctx context.Context, notificationID string) (*models.Notification, error) {
	query := `
		SELECT notification_id, title, body, sent_at, is_read, user_id
		FROM notifications
		WHERE notification_id = ?
		LIMIT 1
	`

	var n models.Notification
	err := r.db.QueryRowContext(ctx, query, notificationID).Scan(
		&n.NotificationID,
		&n.Title,
		&n.Body,
		&n.SentAt,
		&n.IsRead,
		&n.UserID,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notification by id: %w", err)
	}

	return &n, nil
}

// List retrieves notifications with filtering and pagination, newest first
func (r *notificationRepository) List(ctx context.Context, q models.NotificationListQuery) ([]models.Notification, int, error) {
	var whereClauses []string
	var args []any

	if q.UserID != "" {
		whereClauses = append(whereClauses, "user_id = ?")
		args = append(args, q.UserID)
	}
	if q.UnreadOnly {
		whereClauses = append(whereClauses, "is_read = FALSE")
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM notifications %s", whereClause)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT notification_id, title, body, sent_at, is_read, user_id
		FROM notifications
		%s
		ORDER BY sent_at DESC, notification_id DESC
		LIMIT ? OFFSET ?
	`, whereClause)

	args = append(args, q.PageSize, q.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var items []models.Notification
	for rows.Next() {
		var n models.Notification
		err := rows.Scan(
			&n.NotificationID,
			&n.Title,
			&n.Body,
			&n.SentAt,
			&n.IsRead,
			&n.UserID,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		items = append(items, n)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, total, nil
}

// Create inserts a new notification
func (r *notificationRepository) Create(ctx context.Context, n *models.Notification) error {
	query := `
		INSERT INTO notifications (notification_id, title, body, sent_at, is_read, user_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		n.NotificationID,
		n.Title,
		n.Body,
		n.SentAt,
		n.IsRead,
		n.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// MarkRead flags one notification as read. Marking an already-read
// notification is a no-op, so RowsAffected is not checked here;
// existence is checked by the caller.
func (r *notificationRepository) MarkRead(ctx context.Context, notificationID string) error {
	query := "UPDATE notifications SET is_read = TRUE WHERE notification_id = ?"

	_, err := r.db.ExecContext(ctx, query, notificationID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}

// MarkAllRead flags every unread notification of a user as read and
// returns how many rows changed
func (r *notificationRepository) MarkAllRead(ctx context.Context, userID string) (int, error) {
	query := "UPDATE notifications SET is_read = TRUE WHERE user_id = ? AND is_read = FALSE"

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rowsAffected), nil
}

// Delete removes a notification by ID. Returns false when no row matched.
func (r *notificationRepository) Delete(ctx context.Context, notificationID string) (bool, error) {
	query := "DELETE FROM notifications WHERE notification_id = ?"

	result, err := r.db.ExecContext(ctx, query, notificationID)
	if err != nil {
		return false, fmt.Errorf("failed to delete notification: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}
