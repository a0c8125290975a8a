package domain

import (
	"errors"
	"os"
)

const (
	RoleUser = "user"

	TransactionInbound  = "inbound"
	TransactionOutbound = "outbound"

	CategoryFood      = "food"
	CategoryMedicine  = "medicine"
	CategoryVegetable = "vegetable"
	CategoryFruit     = "fruit"

	DefaultReminderDays = 7
)

var (
	MessageFailedBodyRequest    = "failed to process body request"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	JwtSecret = os.Getenv("JWT_SECRET")

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
)

// Categories lists the recognized item categories. Fresh produce categories
// track a continuous weight; the rest track a discrete quantity.
var Categories = []string{CategoryFood, CategoryMedicine, CategoryVegetable, CategoryFruit}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

func IsFreshProduce(category string) bool {
	return category == CategoryVegetable || category == CategoryFruit
}
