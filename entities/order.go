package entities

import (
	"github.com/google/uuid"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCanceled   = "canceled"
	OrderStatusPaid       = "paid"
)

type Order struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	// Legacy export column kept for older clients, shaped as
	// {"menu_item_ids":["...","..."]}. Order items are the authoritative source.
	MenuItemIDs string  `gorm:"type:text" json:"menu_item_ids,omitempty"`
	TotalPrice  float64 `json:"total_price"`
	Description string  `json:"description,omitempty"`
	Status      string  `json:"status"` // pending, in_progress, completed, canceled, paid

	User       *User        `gorm:"foreignKey:UserID"`
	Restaurant *Restaurant  `gorm:"foreignKey:RestaurantID"`
	Items      []*OrderItem `gorm:"foreignKey:OrderID"`
	Timestamp
}

type OrderItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID    uuid.UUID `json:"order_id"`
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Quantity   int       `json:"quantity"`

	Order    *Order    `gorm:"foreignKey:OrderID"`
	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID"`
	Timestamp
}
