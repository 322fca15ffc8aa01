package handlers

import (
	"github.com/ljubanOpacic10/tiac-food-ordering/domain"
	"github.com/ljubanOpacic10/tiac-food-ordering/internal/api/presenters"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type (
	SessionHandler interface {
		GetActiveVotingSession(c *fiber.Ctx) error
		StartVotingSession(c *fiber.Ctx) error
		EndVotingSession(c *fiber.Ctx) error
		GetActiveOrderingSession(c *fiber.Ctx) error
		StartOrderingSession(c *fiber.Ctx) error
		EndOrderingSession(c *fiber.Ctx) error
	}

	sessionHandler struct {
		sessionService session.SessionService
	}
)

func NewSessionHandler(sessionService session.SessionService) SessionHandler {
	return &sessionHandler{sessionService: sessionService}
}

func (h *sessionHandler) GetActiveVotingSession(c *fiber.Ctx) error {
	res, err := h.sessionService.GetActiveVotingSession(c.Context())
	if err != nil {
		if err == domain.ErrNoActiveSession {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNoActiveSession, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetActiveSession, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetActiveSession)
}

func (h *sessionHandler) StartVotingSession(c *fiber.Ctx) error {
	res, err := h.sessionService.StartVotingSession(c.Context())
	if err != nil {
		if err == domain.ErrSessionAlreadyActive {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedStartSession, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedStartSession, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessStartSession)
}

func (h *sessionHandler) EndVotingSession(c *fiber.Ctx) error {
	if err := h.sessionService.EndVotingSession(c.Context()); err != nil {
		if err == domain.ErrNoActiveSession {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNoActiveSession, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEndSession, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessEndSession)
}

func (h *sessionHandler) GetActiveOrderingSession(c *fiber.Ctx) error {
	res, err := h.sessionService.GetActiveOrderingSession(c.Context())
	if err != nil {
		if err == domain.ErrNoActiveSession {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNoActiveSession, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetActiveSession, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetActiveSession)
}

func (h *sessionHandler) StartOrderingSession(c *fiber.Ctx) error {
	res, err := h.sessionService.StartOrderingSession(c.Context())
	if err != nil {
		if err == domain.ErrSessionAlreadyActive {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedStartSession, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedStartSession, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessStartSession)
}

func (h *sessionHandler) EndOrderingSession(c *fiber.Ctx) error {
	if err := h.sessionService.EndOrderingSession(c.Context()); err != nil {
		if err == domain.ErrNoActiveSession {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNoActiveSession, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEndSession, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessEndSession)
}
