package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/embryolab/backend/internal/models"
	"github.com/embryolab/backend/libs/auth"
)

// UserLookupRepository checks user existence against the identity tables
type UserLookupRepository interface {
	ExistsByID(ctx context.Context, userID string) (bool, error)
}

// NotificationRepository defines methods for notification data access
type NotificationRepository interface {
	// GetByID retrieves a notification by ID, nil when absent
	GetByID(ctx context.Context, notificationID string) (*models.Notification, error)
	// List retrieves notifications with filtering and pagination
	List(ctx context.Context, q models.NotificationListQuery) ([]models.Notification, int, error)
	// Create inserts a notification
	Create(ctx context.Context, n *models.Notification) error
	// MarkRead flags one notification as read
	MarkRead(ctx context.Context, notificationID string) error
	// MarkAllRead flags a user's unread notifications as read, returning the count
	MarkAllRead(ctx context.Context, userID string) (int, error)
	// Delete removes a notification, reporting whether a row matched
	Delete(ctx context.Context, notificationID string) (bool, error)
}

type notificationService struct {
	notifications NotificationRepository
	users         UserLookupRepository
	now           func() time.Time
}

// NewNotificationService creates a new notification service
func NewNotificationService(notifications NotificationRepository, users UserLookupRepository) *notificationService {
	return &notificationService{
		notifications: notifications,
		users:         users,
		now:           time.Now,
	}
}

// List retrieves notifications. Non-professors only ever see their own: the
// owner filter is silently forced to the caller's ID, whatever was requested.
func (s *notificationService) List(ctx context.Context, principal auth.Principal, q models.NotificationListQuery) (*models.PagedResult[models.Notification], error) {
	if !principal.IsProfessor() {
		q.UserID = principal.UserID
	}

	q.PageQuery = q.PageQuery.Normalize()

	items, total, err := s.notifications.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Notification{}
	}

	return &models.PagedResult[models.Notification]{Total: total, Items: items}, nil
}

// GetByID retrieves a notification, requiring the Professor role or ownership
func (s *notificationService) GetByID(ctx context.Context, principal auth.Principal, notificationID string) (*models.Notification, error) {
	n, err := s.notifications.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, ErrNotFound
	}
	if !principal.IsProfessor() && n.UserID != principal.UserID {
		return nil, ErrForbidden
	}
	return n, nil
}

// Create sends a notification to one user, who must exist
func (s *notificationService) Create(ctx context.Context, req *models.CreateNotificationRequest) (*models.Notification, error) {
	title := trimmed(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	body := trimmed(req.Body)
	if body == "" {
		return nil, fmt.Errorf("%w: body is required", ErrValidation)
	}

	exists, err := s.users.ExistsByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrParentNotFound
	}

	n := &models.Notification{
		NotificationID: uuid.NewString(),
		Title:          title,
		Body:           body,
		SentAt:         s.now().UTC(),
		IsRead:         false,
		UserID:         req.UserID,
	}

	if err := s.notifications.Create(ctx, n); err != nil {
		return nil, err
	}

	return n, nil
}

// MarkRead flags one notification as read, requiring the Professor role or
// ownership. An already-read notification stays read without error.
func (s *notificationService) MarkRead(ctx context.Context, principal auth.Principal, notificationID string) (*models.Notification, error) {
	n, err := s.notifications.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, ErrNotFound
	}
	if !principal.IsProfessor() && n.UserID != principal.UserID {
		return nil, ErrForbidden
	}

	if !n.IsRead {
		if err := s.notifications.MarkRead(ctx, notificationID); err != nil {
			return nil, err
		}
		n.IsRead = true
	}

	return n, nil
}

// MarkAllRead flags a user's unread notifications as read and returns how
// many changed. Non-professors can only target themselves.
func (s *notificationService) MarkAllRead(ctx context.Context, principal auth.Principal, userID string) (int, error) {
	if userID == "" {
		userID = principal.UserID
	}
	if !principal.IsProfessor() && userID != principal.UserID {
		return 0, ErrForbidden
	}
	if userID != principal.UserID {
		exists, err := s.users.ExistsByID(ctx, userID)
		if err != nil {
			return 0, err
		}
		if !exists {
			return 0, ErrParentNotFound
		}
	}

	return s.notifications.MarkAllRead(ctx, userID)
}

// Delete deletes a notification
func (s *notificationService) Delete(ctx context.Context, notificationID string) error {
	deleted, err := s.notifications.Delete(ctx, notificationID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
