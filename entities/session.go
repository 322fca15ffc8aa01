package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	SessionStatusActive   = "active"
	SessionStatusInactive = "inactive"
)

// At most one row per table may carry status = 'active'. Enforced by a
// partial unique index created in the migration, not by application checks.
type VotingSession struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Status    string     `json:"status"` // active, inactive

	Timestamp
}

type OrderingSession struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Status    string     `json:"status"` // active, inactive

	Timestamp
}
