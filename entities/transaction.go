package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is an append-only stock movement. Rows are never updated or
// deleted; the item's stored amount must always match a replay of its log.
type Transaction struct {
	ID     uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ItemID uuid.UUID       `gorm:"not null;index" json:"item_id"`
	UserID uuid.UUID       `gorm:"not null" json:"user_id"`
	Type   string          `gorm:"not null" json:"type"` // "inbound" or "outbound"
	Amount decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
