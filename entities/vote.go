package entities

import (
	"github.com/google/uuid"
)

const (
	PickFirst  = "first"
	PickSecond = "second"
	PickThird  = "third"
)

type UserVote struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `gorm:"uniqueIndex:idx_user_votes_user_pick" json:"user_id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Pick         string    `gorm:"uniqueIndex:idx_user_votes_user_pick" json:"pick"` // first, second, third

	User       *User       `gorm:"foreignKey:UserID"`
	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
	Timestamp
}

// PickWeight returns the points a rank contributes to a restaurant's
// vote counter: 3 for first, 2 for second, 1 for third.
func PickWeight(pick string) int {
	switch pick {
	case PickFirst:
		return 3
	case PickSecond:
		return 2
	case PickThird:
		return 1
	}
	return 0
}
