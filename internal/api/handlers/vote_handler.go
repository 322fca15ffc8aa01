package handlers

import (
	"github.com/ljubanOpacic10/tiac-food-ordering/domain"
	"github.com/ljubanOpacic10/tiac-food-ordering/internal/api/presenters"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/vote"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	VoteHandler interface {
		GetMyVotes(c *fiber.Ctx) error
		SubmitVotes(c *fiber.Ctx) error
		GetVoteTally(c *fiber.Ctx) error
	}

	voteHandler struct {
		voteService vote.VoteService
		validator   *validator.Validate
	}
)

func NewVoteHandler(voteService vote.VoteService, validator *validator.Validate) VoteHandler {
	return &voteHandler{
		voteService: voteService,
		validator:   validator,
	}
}

func (h *voteHandler) GetMyVotes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.voteService.LoadUserVotes(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUserVotes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUserVotes)
}

func (h *voteHandler) SubmitVotes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SubmitVotesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitVotes, err)
	}

	if err := h.voteService.SubmitVotes(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitVotes, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSubmitVotes)
}

func (h *voteHandler) GetVoteTally(c *fiber.Ctx) error {
	res, err := h.voteService.GetVoteTally(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTally, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTally)
}
