package entities

import (
	"github.com/google/uuid"
)

const (
	TransactionStatusPending    = "pending"
	TransactionStatusSettlement = "settlement"
	TransactionStatusExpire     = "expire"
	TransactionStatusCancel     = "cancel"
	TransactionStatusDeny       = "deny"
)

type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"` // pending, settlement, expire, cancel
	PaymentLink string    `json:"payment_link,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
