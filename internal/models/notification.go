package models

import "time"

// Notification targets a single user
type Notification struct {
	NotificationID string    `json:"notificationId"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	SentAt         time.Time `json:"sentAt"`
	IsRead         bool      `json:"isRead"`
	UserID         string    `json:"userId"`
}

// CreateNotificationRequest represents a request to send a notification
type CreateNotificationRequest struct {
	Title  string `json:"title" validate:"required,max=180"`
	Body   string `json:"body" validate:"required,max=4000"`
	UserID string `json:"userId" validate:"required"`
}

// NotificationListQuery filters the notification list
type NotificationListQuery struct {
	UserID     string
	UnreadOnly bool
	PageQuery
}
