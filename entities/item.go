package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AmountKind is the single active amount slot of an item. It is chosen from
// the category at creation and never changes afterwards.
type AmountKind string

const (
	AmountKindWeight   AmountKind = "weight"   // continuous, fresh produce
	AmountKindQuantity AmountKind = "quantity" // discrete, everything else
)

type Item struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID       `gorm:"not null" json:"user_id"`
	Name           string          `gorm:"not null" json:"name"`
	Category       string          `gorm:"not null" json:"category"`
	ProductionDate *time.Time      `json:"production_date,omitempty"`
	ExpirationDate time.Time       `gorm:"not null" json:"expiration_date"`
	AmountKind     AmountKind      `gorm:"not null" json:"amount_kind"`
	Amount         decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	Unit           string          `json:"unit"`

	User         *User          `gorm:"foreignKey:UserID" json:"-"`
	Transactions []*Transaction `gorm:"foreignKey:ItemID" json:"-"`
	Timestamp
}
