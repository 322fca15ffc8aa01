package entities

import (
	"github.com/google/uuid"
)

type Notification struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Message      string    `gorm:"type:text" json:"message"`
	Type         string    `json:"type"`
	SenderUserID uuid.UUID `json:"sender_user_id"`
	Status       string    `json:"status"` // sending, sent

	Sender            *User               `gorm:"foreignKey:SenderUserID"`
	UserNotifications []*UserNotification `gorm:"foreignKey:NotificationID"`
	Timestamp
}

type UserNotification struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	NotificationID uuid.UUID `json:"notification_id"`
	Read           bool      `json:"read"`

	User         *User         `gorm:"foreignKey:UserID"`
	Notification *Notification `gorm:"foreignKey:NotificationID"`
	Timestamp
}
