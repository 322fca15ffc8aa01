package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessAddRestaurant    = "restaurant added successfully"
	MessageSuccessUpdateRestaurant = "restaurant updated successfully"
	MessageSuccessDeleteRestaurant = "restaurant deleted successfully"
	MessageSuccessGetRestaurants   = "restaurants retrieved successfully"
	MessageSuccessAddFoodType      = "food type added successfully"
	MessageSuccessGetFoodTypes     = "food types retrieved successfully"
	MessageSuccessDeleteFoodType   = "food type deleted successfully"

	MessageFailedAddRestaurant    = "failed to add restaurant"
	MessageFailedUpdateRestaurant = "failed to update restaurant"
	MessageFailedDeleteRestaurant = "failed to delete restaurant"
	MessageFailedGetRestaurants   = "failed to retrieve restaurants"
	MessageFailedAddFoodType      = "failed to add food type"
	MessageFailedGetFoodTypes     = "failed to retrieve food types"
	MessageFailedDeleteFoodType   = "failed to delete food type"

	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrFoodTypeNotFound   = errors.New("food type not found")
)

type (
	AddRestaurantRequest struct {
		Name              string                `json:"name" form:"name" validate:"required"`
		Address           string                `json:"address" form:"address" validate:"omitempty"`
		FoodTypeID        string                `json:"food_type_id" form:"food_type_id" validate:"omitempty,uuid"`
		OrderingAvailable bool                  `json:"ordering_available" form:"ordering_available"`
		Image             *multipart.FileHeader `json:"image" form:"image" validate:"omitempty"`
	}

	UpdateRestaurantRequest struct {
		Name              string                `json:"name" form:"name" validate:"omitempty"`
		Address           string                `json:"address" form:"address" validate:"omitempty"`
		FoodTypeID        string                `json:"food_type_id" form:"food_type_id" validate:"omitempty,uuid"`
		OrderingAvailable *bool                 `json:"ordering_available" form:"ordering_available" validate:"omitempty"`
		Image             *multipart.FileHeader `json:"image" form:"image" validate:"omitempty"`
	}

	RestaurantResponse struct {
		ID                string `json:"id"`
		Name              string `json:"name"`
		Address           string `json:"address,omitempty"`
		FoodTypeID        string `json:"food_type_id,omitempty"`
		FoodTypeName      string `json:"food_type_name,omitempty"`
		ImageURL          string `json:"image_url,omitempty"`
		Votes             int    `json:"votes"`
		OrderingAvailable bool   `json:"ordering_available"`
	}

	AddFoodTypeRequest struct {
		Name  string                `json:"name" form:"name" validate:"required"`
		Image *multipart.FileHeader `json:"image" form:"image" validate:"omitempty"`
	}

	FoodTypeResponse struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		ImageURL string `json:"image_url,omitempty"`
	}
)
