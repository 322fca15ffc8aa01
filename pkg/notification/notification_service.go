package notification

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ljubanOpacic10/tiac-food-ordering/domain"
	"github.com/ljubanOpacic10/tiac-food-ordering/entities"
	"github.com/ljubanOpacic10/tiac-food-ordering/internal/utils/mailing"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationTypeBroadcast = "broadcast"

	NotificationStatusSending = "sending"
	NotificationStatusSent    = "sent"
)

type (
	NotificationService interface {
		Broadcast(ctx context.Context, req domain.SendNotificationRequest, senderUserID string) (domain.SendNotificationResponse, error)
		GetMyNotifications(ctx context.Context, userID string) ([]domain.UserNotificationResponse, error)
		MarkAsRead(ctx context.Context, id string, userID string) error
		DeleteUserNotification(ctx context.Context, id string, userID string) error
	}

	notificationService struct {
		notificationRepository NotificationRepository
		userRepository         user.UserRepository
	}
)

func NewNotificationService(notificationRepository NotificationRepository, userRepository user.UserRepository) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		userRepository:         userRepository,
	}
}

// Broadcast creates one notification row and fans it out to every
// regular user. Email delivery runs in the background and is best
// effort, the notification rows are the source of truth.
func (s *notificationService) Broadcast(ctx context.Context, req domain.SendNotificationRequest, senderUserID string) (domain.SendNotificationResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return domain.SendNotificationResponse{}, domain.ErrEmptyMessage
	}

	senderUUID, err := uuid.Parse(senderUserID)
	if err != nil {
		return domain.SendNotificationResponse{}, domain.ErrParseUUID
	}

	notification := &entities.Notification{
		ID:           uuid.New(),
		Message:      req.Message,
		Type:         NotificationTypeBroadcast,
		SenderUserID: senderUUID,
		Status:       NotificationStatusSending,
	}
	if err := s.notificationRepository.CreateNotification(ctx, notification); err != nil {
		return domain.SendNotificationResponse{}, err
	}

	recipients, err := s.userRepository.GetUsersByType(ctx, domain.RoleUser)
	if err != nil {
		return domain.SendNotificationResponse{}, err
	}

	userNotifications := make([]*entities.UserNotification, 0, len(recipients))
	emails := make([]string, 0, len(recipients))
	for _, recipient := range recipients {
		userNotifications = append(userNotifications, &entities.UserNotification{
			ID:             uuid.New(),
			UserID:         recipient.ID,
			NotificationID: notification.ID,
		})
		emails = append(emails, recipient.Email)
	}

	if err := s.notificationRepository.CreateUserNotifications(ctx, userNotifications); err != nil {
		return domain.SendNotificationResponse{}, err
	}

	if err := s.notificationRepository.UpdateNotificationStatus(ctx, notification.ID.String(), NotificationStatusSent); err != nil {
		return domain.SendNotificationResponse{}, err
	}

	go func(message string, emails []string) {
		body := fmt.Sprintf("<p>%s</p>", message)
		for _, email := range emails {
			if err := mailing.SendMail(email, "Cafeteria announcement", body); err != nil {
				log.Printf("notification mail to %s failed: %v", email, err)
			}
		}
	}(req.Message, emails)

	return domain.SendNotificationResponse{
		NotificationID: notification.ID.String(),
		Recipients:     len(recipients),
	}, nil
}

func (s *notificationService) GetMyNotifications(ctx context.Context, userID string) ([]domain.UserNotificationResponse, error) {
	userNotifications, err := s.notificationRepository.GetUserNotifications(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.UserNotificationResponse, 0, len(userNotifications))
	for _, un := range userNotifications {
		entry := domain.UserNotificationResponse{
			ID:             un.ID.String(),
			NotificationID: un.NotificationID.String(),
			Read:           un.Read,
			CreatedAt:      un.CreatedAt,
		}
		if un.Notification != nil {
			entry.Message = un.Notification.Message
			entry.Type = un.Notification.Type
			entry.SenderUserID = un.Notification.SenderUserID.String()
		}
		responses = append(responses, entry)
	}
	return responses, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, id string, userID string) error {
	if err := s.notificationRepository.MarkAsRead(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotificationNotFound
		}
		return err
	}
	return nil
}

func (s *notificationService) DeleteUserNotification(ctx context.Context, id string, userID string) error {
	if err := s.notificationRepository.DeleteUserNotification(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotificationNotFound
		}
		return err
	}
	return nil
}
