package entities

import (
	"github.com/google/uuid"
)

type MenuItemType struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `json:"name"`

	MenuItems []*MenuItem `gorm:"foreignKey:MenuItemTypeID"`
	Timestamp
}

type MenuItem struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RestaurantID   uuid.UUID  `json:"restaurant_id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Price          float64    `json:"price"`
	ImageURL       string     `json:"image_url,omitempty"`
	MenuItemTypeID *uuid.UUID `json:"menu_item_type_id,omitempty"`

	Restaurant   *Restaurant   `gorm:"foreignKey:RestaurantID"`
	MenuItemType *MenuItemType `gorm:"foreignKey:MenuItemTypeID"`
	Timestamp
}
