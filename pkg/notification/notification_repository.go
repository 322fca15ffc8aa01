package notification

import (
	"context"

	"github.com/ljubanOpacic10/tiac-food-ordering/entities"

	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		CreateNotification(ctx context.Context, notification *entities.Notification) error
		UpdateNotificationStatus(ctx context.Context, id string, status string) error
		CreateUserNotifications(ctx context.Context, userNotifications []*entities.UserNotification) error
		GetUserNotifications(ctx context.Context, userID string) ([]*entities.UserNotification, error)
		MarkAsRead(ctx context.Context, id string, userID string) error
		DeleteUserNotification(ctx context.Context, id string, userID string) error
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) UpdateNotificationStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *notificationRepository) CreateUserNotifications(ctx context.Context, userNotifications []*entities.UserNotification) error {
	if len(userNotifications) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(userNotifications, 100).Error
}

func (r *notificationRepository) GetUserNotifications(ctx context.Context, userID string) ([]*entities.UserNotification, error) {
	var userNotifications []*entities.UserNotification
	if err := r.db.WithContext(ctx).
		Preload("Notification").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&userNotifications).Error; err != nil {
		return nil, err
	}
	return userNotifications, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id string, userID string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.UserNotification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *notificationRepository) DeleteUserNotification(ctx context.Context, id string, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.UserNotification{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
