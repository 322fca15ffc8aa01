package entities

import (
	"github.com/google/uuid"
)

type FoodType struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"image_url,omitempty"`

	Restaurants []*Restaurant `gorm:"foreignKey:FoodTypeID"`
	Timestamp
}

type Restaurant struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name              string     `json:"name"`
	Address           string     `json:"address,omitempty"`
	FoodTypeID        *uuid.UUID `json:"food_type_id,omitempty"`
	ImageURL          string     `json:"image_url,omitempty"`
	Votes             int        `json:"votes"`
	OrderingAvailable bool       `json:"ordering_available"`

	FoodType  *FoodType   `gorm:"foreignKey:FoodTypeID"`
	MenuItems []*MenuItem `gorm:"foreignKey:RestaurantID"`
	Timestamp
}
