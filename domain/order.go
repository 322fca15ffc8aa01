package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSubmitOrder       = "order submitted successfully"
	MessageSuccessUpdateOrder       = "order updated successfully"
	MessageSuccessGetOrders         = "orders retrieved successfully"
	MessageSuccessUpdateOrderStatus = "order status updated"

	MessageFailedSubmitOrder       = "failed to submit order"
	MessageFailedUpdateOrder       = "failed to update order"
	MessageFailedGetOrders         = "failed to retrieve orders"
	MessageFailedUpdateOrderStatus = "failed to update order status"

	ErrOrderNotFound           = errors.New("order not found")
	ErrNoOrderingSession       = errors.New("no active ordering session")
	ErrOrderingNotAvailable    = errors.New("restaurant is not available for ordering")
	ErrEmptyOrder              = errors.New("order must contain at least one menu item")
	ErrInvalidOrderStatus      = errors.New("invalid order status")
	ErrMenuItemWrongRestaurant = errors.New("menu item does not belong to the chosen restaurant")
)

type (
	SubmitOrderRequest struct {
		RestaurantID string   `json:"restaurant_id" validate:"required,uuid"`
		MenuItemIDs  []string `json:"menu_item_ids" validate:"required,min=1,dive,uuid"`
		Description  string   `json:"description" validate:"omitempty"`
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=pending in_progress completed canceled paid"`
	}

	OrderItemResponse struct {
		MenuItemID string  `json:"menu_item_id"`
		Name       string  `json:"name"`
		Price      float64 `json:"price"`
		Quantity   int     `json:"quantity"`
	}

	OrderResponse struct {
		ID           string              `json:"id"`
		UserID       string              `json:"user_id"`
		RestaurantID string              `json:"restaurant_id"`
		Items        []OrderItemResponse `json:"items"`
		MenuItemIDs  string              `json:"menu_item_ids"`
		TotalPrice   float64             `json:"total_price"`
		Description  string              `json:"description,omitempty"`
		Status       string              `json:"status"`
		CreatedAt    time.Time           `json:"created_at"`
	}
)
