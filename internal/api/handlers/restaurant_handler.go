package handlers

import (
	"strconv"

	"github.com/ljubanOpacic10/tiac-food-ordering/domain"
	"github.com/ljubanOpacic10/tiac-food-ordering/internal/api/presenters"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/restaurant"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RestaurantHandler interface {
		AddRestaurant(c *fiber.Ctx) error
		UpdateRestaurant(c *fiber.Ctx) error
		DeleteRestaurant(c *fiber.Ctx) error
		GetRestaurants(c *fiber.Ctx) error
		GetRestaurantDetails(c *fiber.Ctx) error
		GetTopRestaurants(c *fiber.Ctx) error
		AddFoodType(c *fiber.Ctx) error
		GetFoodTypes(c *fiber.Ctx) error
		DeleteFoodType(c *fiber.Ctx) error
	}

	restaurantHandler struct {
		restaurantService restaurant.RestaurantService
		validator         *validator.Validate
	}
)

func NewRestaurantHandler(restaurantService restaurant.RestaurantService, validator *validator.Validate) RestaurantHandler {
	return &restaurantHandler{
		restaurantService: restaurantService,
		validator:         validator,
	}
}

func (h *restaurantHandler) AddRestaurant(c *fiber.Ctx) error {
	req := new(domain.AddRestaurantRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRestaurant, err)
	}

	res, err := h.restaurantService.AddRestaurant(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRestaurant, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddRestaurant)
}

func (h *restaurantHandler) UpdateRestaurant(c *fiber.Ctx) error {
	restaurantID := c.Params("id")
	req := new(domain.UpdateRestaurantRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRestaurant, err)
	}

	if err := h.restaurantService.UpdateRestaurant(c.Context(), restaurantID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRestaurant, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateRestaurant)
}

func (h *restaurantHandler) DeleteRestaurant(c *fiber.Ctx) error {
	restaurantID := c.Params("id")

	if err := h.restaurantService.DeleteRestaurant(c.Context(), restaurantID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRestaurant, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRestaurant)
}

func (h *restaurantHandler) GetRestaurants(c *fiber.Ctx) error {
	onlyOrderingAvailable := c.QueryBool("ordering_available", false)

	res, err := h.restaurantService.GetRestaurants(c.Context(), onlyOrderingAvailable)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRestaurants, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRestaurants)
}

func (h *restaurantHandler) GetRestaurantDetails(c *fiber.Ctx) error {
	restaurantID := c.Params("id")

	res, err := h.restaurantService.GetRestaurantByID(c.Context(), restaurantID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRestaurants, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRestaurants)
}

func (h *restaurantHandler) GetTopRestaurants(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "3"))
	if err != nil || limit < 1 {
		limit = 3
	}

	res, err := h.restaurantService.GetTopRestaurants(c.Context(), limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRestaurants, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRestaurants)
}

func (h *restaurantHandler) AddFoodType(c *fiber.Ctx) error {
	req := new(domain.AddFoodTypeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodType, err)
	}

	res, err := h.restaurantService.AddFoodType(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodType, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFoodType)
}

func (h *restaurantHandler) GetFoodTypes(c *fiber.Ctx) error {
	res, err := h.restaurantService.GetFoodTypes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodTypes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoodTypes)
}

func (h *restaurantHandler) DeleteFoodType(c *fiber.Ctx) error {
	foodTypeID := c.Params("id")

	if err := h.restaurantService.DeleteFoodType(c.Context(), foodTypeID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFoodType, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodType)
}
