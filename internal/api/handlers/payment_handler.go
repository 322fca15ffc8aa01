package handlers

import (
	"errors"

	"github.com/ljubanOpacic10/tiac-food-ordering/domain"
	"github.com/ljubanOpacic10/tiac-food-ordering/internal/api/presenters"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/payment"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PaymentHandler interface {
		CreateDebtPayment(c *fiber.Ctx) error
		MidtransWebhookHandler(c *fiber.Ctx) error
	}

	paymentHandler struct {
		paymentService payment.PaymentService
		validator      *validator.Validate
	}
)

func NewPaymentHandler(paymentService payment.PaymentService, validator *validator.Validate) PaymentHandler {
	return &paymentHandler{
		paymentService: paymentService,
		validator:      validator,
	}
}

func (h *paymentHandler) CreateDebtPayment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateDebtPaymentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePayment, err)
	}

	res, err := h.paymentService.CreateDebtPayment(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePayment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePayment)
}

func (h *paymentHandler) MidtransWebhookHandler(c *fiber.Ctx) error {
	req := new(domain.MidtransWebhookRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.paymentService.HandleWebhook(c.Context(), *req); err != nil {
		if errors.Is(err, domain.ErrInvalidWebhookSignature) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedWebhook, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWebhook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessWebhook)
}
