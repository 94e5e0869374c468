package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embryolab/backend/internal/models"
)

var notificationColumns = []string{"notification_id", "title", "body", "sent_at", "is_read", "user_id"}

// setupNotificationTestRepository creates a notification repository with a mock database
func setupNotificationTestRepository(t *testing.T) (*notificationRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewNotificationRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNotificationRepository_GetByID(t *testing.T) {
	sentAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupNotificationTestRepository(t)
		defer cleanup()

		rows := sqlmock.NewRows(notificationColumns).
			AddRow("notification-1", "Quiz graded", "Your quiz was graded.", sentAt, false, "student-1")
		mock.ExpectQuery(`SELECT.*FROM notifications.*WHERE notification_id = \?`).
			WithArgs("notification-1").
			WillReturnRows(rows)

		result, err := repo.GetByID(context.Background(), "notification-1")

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "Quiz graded", result.Title)
		assert.False(t, result.IsRead)
	})

	t.Run("not found returns nil", func(t *testing.T) {
		repo, mock, cleanup := setupNotificationTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT.*FROM notifications.*WHERE notification_id = \?`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		result, err := repo.GetByID(context.Background(), "missing")

		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestNotificationRepository_List(t *testing.T) {
	sentAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	t.Run("unread only for one user", func(t *testing.T) {
		repo, mock, cleanup := setupNotificationTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM notifications WHERE user_id = \? AND is_read = FALSE`).
			WithArgs("student-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := sqlmock.NewRows(notificationColumns).
			AddRow("notification-1", "Quiz graded", "Body", sentAt, false, "student-1")
		mock.ExpectQuery(`SELECT.*FROM notifications.*WHERE user_id = \? AND is_read = FALSE.*ORDER BY sent_at DESC.*LIMIT \? OFFSET \?`).
			WithArgs("student-1", 20, 0).
			WillReturnRows(rows)

		items, total, err := repo.List(context.Background(), models.NotificationListQuery{
			UserID:     "student-1",
			UnreadOnly: true,
			PageQuery:  models.PageQuery{Page: 1, PageSize: 20},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, "notification-1", items[0].NotificationID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNotificationRepository_Create(t *testing.T) {
	repo, mock, cleanup := setupNotificationTestRepository(t)
	defer cleanup()

	sentAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	n := &models.Notification{
		NotificationID: "notification-1",
		Title:          "Quiz graded",
		Body:           "Your quiz was graded.",
		SentAt:         sentAt,
		IsRead:         false,
		UserID:         "student-1",
	}

	mock.ExpectExec(`INSERT INTO notifications`).
		WithArgs("notification-1", "Quiz graded", "Your quiz was graded.", sentAt, false, "student-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), n))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	repo, mock, cleanup := setupNotificationTestRepository(t)
	defer cleanup()

	mock.ExpectExec(`UPDATE notifications SET is_read = TRUE WHERE notification_id = \?`).
		WithArgs("notification-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkRead(context.Background(), "notification-1"))
}

func TestNotificationRepository_MarkAllRead(t *testing.T) {
	t.Run("returns the changed count", func(t *testing.T) {
		repo, mock, cleanup := setupNotificationTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`UPDATE notifications SET is_read = TRUE WHERE user_id = \? AND is_read = FALSE`).
			WithArgs("student-1").
			WillReturnResult(sqlmock.NewResult(0, 3))

		count, err := repo.MarkAllRead(context.Background(), "student-1")

		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock, cleanup := setupNotificationTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`UPDATE notifications SET is_read = TRUE`).
			WithArgs("student-1").
			WillReturnError(errors.New("database error"))

		count, err := repo.MarkAllRead(context.Background(), "student-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to mark notifications read")
		assert.Zero(t, count)
	})
}

func TestNotificationRepository_Delete(t *testing.T) {
	t.Run("row deleted", func(t *testing.T) {
		repo, mock, cleanup := setupNotificationTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`DELETE FROM notifications WHERE notification_id = \?`).
			WithArgs("notification-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		deleted, err := repo.Delete(context.Background(), "notification-1")

		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("no row matched", func(t *testing.T) {
		repo, mock, cleanup := setupNotificationTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`DELETE FROM notifications WHERE notification_id = \?`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		deleted, err := repo.Delete(context.Background(), "missing")

		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
