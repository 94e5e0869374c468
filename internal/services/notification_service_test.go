package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embryolab/backend/internal/models"
)

func newNotificationService(notifications *mockNotificationRepository, userExists bool) *notificationService {
	svc := NewNotificationService(notifications, &mockUserLookup{exists: userExists})
	svc.now = fixedNow
	return svc
}

func TestNotificationService_List(t *testing.T) {
	t.Run("students are pinned to their own notifications", func(t *testing.T) {
		notifications := &mockNotificationRepository{}
		svc := newNotificationService(notifications, true)

		_, err := svc.List(context.Background(), studentPrincipal("student-1"), models.NotificationListQuery{
			UserID: "someone-else",
		})

		require.NoError(t, err)
		assert.Equal(t, "student-1", notifications.lastListQuery.UserID)
	})

	t.Run("professors keep the requested filter", func(t *testing.T) {
		notifications := &mockNotificationRepository{}
		svc := newNotificationService(notifications, true)

		_, err := svc.List(context.Background(), professorPrincipal("prof-1"), models.NotificationListQuery{
			UserID:     "student-1",
			UnreadOnly: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "student-1", notifications.lastListQuery.UserID)
		assert.True(t, notifications.lastListQuery.UnreadOnly)
	})
}

func TestNotificationService_Create(t *testing.T) {
	t.Run("sends to an existing user", func(t *testing.T) {
		notifications := &mockNotificationRepository{}
		svc := newNotificationService(notifications, true)

		result, err := svc.Create(context.Background(), &models.CreateNotificationRequest{
			Title:  "  Quiz graded  ",
			Body:   "Your cardiac looping quiz was graded.",
			UserID: "student-1",
		})

		require.NoError(t, err)
		assert.Equal(t, "Quiz graded", result.Title)
		assert.False(t, result.IsRead)
		assert.Equal(t, fixedNow(), result.SentAt)
		assert.Equal(t, result, notifications.created)
	})

	t.Run("blank title", func(t *testing.T) {
		svc := newNotificationService(&mockNotificationRepository{}, true)

		result, err := svc.Create(context.Background(), &models.CreateNotificationRequest{
			Title:  "   ",
			Body:   "Body",
			UserID: "student-1",
		})

		assert.ErrorIs(t, err, ErrValidation)
		assert.Nil(t, result)
	})

	t.Run("blank body", func(t *testing.T) {
		svc := newNotificationService(&mockNotificationRepository{}, true)

		result, err := svc.Create(context.Background(), &models.CreateNotificationRequest{
			Title:  "Quiz graded",
			Body:   "   ",
			UserID: "student-1",
		})

		assert.ErrorIs(t, err, ErrValidation)
		assert.Nil(t, result)
	})

	t.Run("unknown target user", func(t *testing.T) {
		svc := newNotificationService(&mockNotificationRepository{}, false)

		result, err := svc.Create(context.Background(), &models.CreateNotificationRequest{
			Title:  "Quiz graded",
			Body:   "Body",
			UserID: "ghost",
		})

		assert.ErrorIs(t, err, ErrParentNotFound)
		assert.Nil(t, result)
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	stored := func(read bool) *models.Notification {
		return &models.Notification{
			NotificationID: "notification-1",
			Title:          "Quiz graded",
			Body:           "Body",
			IsRead:         read,
			UserID:         "student-1",
		}
	}

	t.Run("owner marks unread as read", func(t *testing.T) {
		notifications := &mockNotificationRepository{notification: stored(false)}
		svc := newNotificationService(notifications, true)

		result, err := svc.MarkRead(context.Background(), studentPrincipal("student-1"), "notification-1")

		require.NoError(t, err)
		assert.True(t, result.IsRead)
		assert.True(t, notifications.markReadCalled)
	})

	t.Run("already read skips the write", func(t *testing.T) {
		notifications := &mockNotificationRepository{notification: stored(true)}
		svc := newNotificationService(notifications, true)

		result, err := svc.MarkRead(context.Background(), studentPrincipal("student-1"), "notification-1")

		require.NoError(t, err)
		assert.True(t, result.IsRead)
		assert.False(t, notifications.markReadCalled)
	})

	t.Run("other student is refused", func(t *testing.T) {
		notifications := &mockNotificationRepository{notification: stored(false)}
		svc := newNotificationService(notifications, true)

		result, err := svc.MarkRead(context.Background(), studentPrincipal("student-2"), "notification-1")

		assert.ErrorIs(t, err, ErrForbidden)
		assert.Nil(t, result)
		assert.False(t, notifications.markReadCalled)
	})

	t.Run("not found", func(t *testing.T) {
		svc := newNotificationService(&mockNotificationRepository{}, true)

		result, err := svc.MarkRead(context.Background(), studentPrincipal("student-1"), "missing")

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, result)
	})
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	t.Run("empty target defaults to self", func(t *testing.T) {
		notifications := &mockNotificationRepository{markAllCount: 4}
		svc := newNotificationService(notifications, true)

		count, err := svc.MarkAllRead(context.Background(), studentPrincipal("student-1"), "")

		require.NoError(t, err)
		assert.Equal(t, 4, count)
		assert.Equal(t, "student-1", notifications.markAllUserID)
	})

	t.Run("student targeting another user is refused", func(t *testing.T) {
		notifications := &mockNotificationRepository{}
		svc := newNotificationService(notifications, true)

		count, err := svc.MarkAllRead(context.Background(), studentPrincipal("student-1"), "student-2")

		assert.ErrorIs(t, err, ErrForbidden)
		assert.Zero(t, count)
		assert.Empty(t, notifications.markAllUserID)
	})

	t.Run("professor targeting an unknown user fails", func(t *testing.T) {
		notifications := &mockNotificationRepository{}
		svc := newNotificationService(notifications, false)

		count, err := svc.MarkAllRead(context.Background(), professorPrincipal("prof-1"), "ghost")

		assert.ErrorIs(t, err, ErrParentNotFound)
		assert.Zero(t, count)
		assert.Empty(t, notifications.markAllUserID)
	})

	t.Run("professor targets any user", func(t *testing.T) {
		notifications := &mockNotificationRepository{markAllCount: 2}
		svc := newNotificationService(notifications, true)

		count, err := svc.MarkAllRead(context.Background(), professorPrincipal("prof-1"), "student-1")

		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Equal(t, "student-1", notifications.markAllUserID)
	})
}

func TestNotificationService_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc := newNotificationService(&mockNotificationRepository{deleted: true}, true)

		assert.NoError(t, svc.Delete(context.Background(), "notification-1"))
	})

	t.Run("not found", func(t *testing.T) {
		svc := newNotificationService(&mockNotificationRepository{}, true)

		assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), ErrNotFound)
	})
}
