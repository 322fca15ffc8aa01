package handlers

import (
	"github.com/ljubanOpacic10/tiac-food-ordering/domain"
	"github.com/ljubanOpacic10/tiac-food-ordering/internal/api/presenters"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/notification"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		SendNotification(c *fiber.Ctx) error
		GetMyNotifications(c *fiber.Ctx) error
		MarkAsRead(c *fiber.Ctx) error
		DeleteNotification(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
		validator           *validator.Validate
	}
)

func NewNotificationHandler(notificationService notification.NotificationService, validator *validator.Validate) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
		validator:           validator,
	}
}

func (h *notificationHandler) SendNotification(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SendNotificationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendNotification, err)
	}

	res, err := h.notificationService.Broadcast(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendNotification, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSendNotification)
}

func (h *notificationHandler) GetMyNotifications(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.notificationService.GetMyNotifications(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNotifications, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *notificationHandler) MarkAsRead(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	notificationID := c.Params("id")

	if err := h.notificationService.MarkAsRead(c.Context(), notificationID, userID); err != nil {
		if err == domain.ErrNotificationNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedMarkAsRead, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkAsRead, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkAsRead)
}

func (h *notificationHandler) DeleteNotification(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	notificationID := c.Params("id")

	if err := h.notificationService.DeleteUserNotification(c.Context(), notificationID, userID); err != nil {
		if err == domain.ErrNotificationNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteNotification, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteNotification, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteNotification)
}
