package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSendNotification   = "notification sent to all users"
	MessageSuccessGetNotifications   = "notifications retrieved successfully"
	MessageSuccessMarkAsRead         = "notification marked as read"
	MessageSuccessDeleteNotification = "notification deleted successfully"

	MessageFailedSendNotification   = "failed to send notification"
	MessageFailedGetNotifications   = "failed to retrieve notifications"
	MessageFailedMarkAsRead         = "failed to mark notification as read"
	MessageFailedDeleteNotification = "failed to delete notification"

	ErrNotificationNotFound = errors.New("notification not found")
	ErrEmptyMessage         = errors.New("message must not be empty")
)

type (
	SendNotificationRequest struct {
		Message string `json:"message" validate:"required"`
	}

	SendNotificationResponse struct {
		NotificationID string `json:"notification_id"`
		Recipients     int    `json:"recipients"`
	}

	UserNotificationResponse struct {
		ID             string    `json:"id"`
		NotificationID string    `json:"notification_id"`
		Message        string    `json:"message"`
		Type           string    `json:"type"`
		SenderUserID   string    `json:"sender_user_id"`
		Read           bool      `json:"read"`
		CreatedAt      time.Time `json:"created_at"`
	}
)
