package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessAddItem       = "item added successfully"
	MessageSuccessUpdateItem    = "item updated successfully"
	MessageSuccessDeleteItem    = "item deleted successfully"
	MessageSuccessGetItems      = "items retrieved successfully"
	MessageSuccessGetItemAmount = "item amount retrieved successfully"

	MessageFailedAddItem       = "failed to add item"
	MessageFailedUpdateItem    = "failed to update item"
	MessageFailedDeleteItem    = "failed to delete item"
	MessageFailedGetItems      = "failed to retrieve items"
	MessageFailedGetItemAmount = "failed to retrieve item amount"

	ErrItemNotFound          = errors.New("item not found")
	ErrInvalidCategory       = errors.New("unrecognized item category")
	ErrInvalidExpirationDate = errors.New("invalid expiration date")
	ErrInvalidProductionDate = errors.New("invalid production date")
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrAmountKindImmutable   = errors.New("category change would switch the amount slot")
)

type (
	AddItemRequest struct {
		Name           string          `json:"name" validate:"required"`
		Category       string          `json:"category" validate:"required"`
		ProductionDate string          `json:"production_date" validate:"omitempty"`
		ExpirationDate string          `json:"expiration_date" validate:"required"`
		Unit           string          `json:"unit" validate:"required"`
		InitialAmount  decimal.Decimal `json:"initial_amount" validate:"required"`
	}

	UpdateItemRequest struct {
		Name           string           `json:"name" validate:"omitempty"`
		Category       string           `json:"category" validate:"omitempty"`
		ProductionDate string           `json:"production_date" validate:"omitempty"`
		ExpirationDate string           `json:"expiration_date" validate:"omitempty"`
		Unit           string           `json:"unit" validate:"omitempty"`
		Amount         *decimal.Decimal `json:"amount" validate:"omitempty"`
	}

	ItemResponse struct {
		ID             string           `json:"id"`
		Name           string           `json:"name"`
		Category       string           `json:"category"`
		ProductionDate *time.Time       `json:"production_date,omitempty"`
		ExpirationDate time.Time        `json:"expiration_date"`
		Weight         *decimal.Decimal `json:"weight,omitempty"`
		Quantity       *decimal.Decimal `json:"quantity,omitempty"`
		Unit           string           `json:"unit"`
		CreatedAt      time.Time        `json:"created_at"`
	}

	ItemAmountResponse struct {
		ItemID string          `json:"item_id"`
		Amount decimal.Decimal `json:"amount"`
		Unit   string          `json:"unit"`
	}
)
