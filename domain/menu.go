package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessAddMenuItem      = "menu item added successfully"
	MessageSuccessUpdateMenuItem   = "menu item updated successfully"
	MessageSuccessDeleteMenuItem   = "menu item deleted successfully"
	MessageSuccessGetMenuItems     = "menu items retrieved successfully"
	MessageSuccessAddMenuItemType  = "menu item type added successfully"
	MessageSuccessGetMenuItemTypes = "menu item types retrieved successfully"

	MessageFailedAddMenuItem      = "failed to add menu item"
	MessageFailedUpdateMenuItem   = "failed to update menu item"
	MessageFailedDeleteMenuItem   = "failed to delete menu item"
	MessageFailedGetMenuItems     = "failed to retrieve menu items"
	MessageFailedAddMenuItemType  = "failed to add menu item type"
	MessageFailedGetMenuItemTypes = "failed to retrieve menu item types"

	ErrMenuItemNotFound     = errors.New("menu item not found")
	ErrMenuItemTypeNotFound = errors.New("menu item type not found")
	ErrInvalidPrice         = errors.New("price must be positive")
)

type (
	AddMenuItemRequest struct {
		RestaurantID   string                `json:"restaurant_id" form:"restaurant_id" validate:"required,uuid"`
		Name           string                `json:"name" form:"name" validate:"required"`
		Description    string                `json:"description" form:"description" validate:"required"`
		Price          float64               `json:"price" form:"price" validate:"required,gt=0"`
		MenuItemTypeID string                `json:"menu_item_type_id" form:"menu_item_type_id" validate:"omitempty,uuid"`
		Image          *multipart.FileHeader `json:"image" form:"image" validate:"omitempty"`
	}

	UpdateMenuItemRequest struct {
		Name           string                `json:"name" form:"name" validate:"omitempty"`
		Description    string                `json:"description" form:"description" validate:"omitempty"`
		Price          float64               `json:"price" form:"price" validate:"omitempty,gt=0"`
		MenuItemTypeID string                `json:"menu_item_type_id" form:"menu_item_type_id" validate:"omitempty,uuid"`
		Image          *multipart.FileHeader `json:"image" form:"image" validate:"omitempty"`
	}

	MenuItemResponse struct {
		ID             string  `json:"id"`
		RestaurantID   string  `json:"restaurant_id"`
		Name           string  `json:"name"`
		Description    string  `json:"description"`
		Price          float64 `json:"price"`
		ImageURL       string  `json:"image_url,omitempty"`
		MenuItemTypeID string  `json:"menu_item_type_id,omitempty"`
	}

	AddMenuItemTypeRequest struct {
		Name string `json:"name" validate:"required"`
	}

	MenuItemTypeResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
)
