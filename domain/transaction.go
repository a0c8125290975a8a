package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessRecordTransaction = "transaction recorded successfully"
	MessageSuccessGetTransactions   = "transactions retrieved successfully"

	MessageFailedRecordTransaction = "failed to record transaction"
	MessageFailedGetTransactions   = "failed to retrieve transactions"

	ErrInvalidTransactionType = errors.New("invalid transaction type")
)

type (
	RecordTransactionRequest struct {
		ItemID string          `json:"item_id" validate:"required,uuid"`
		Type   string          `json:"type" validate:"required,oneof=inbound outbound"`
		Amount decimal.Decimal `json:"amount" validate:"required"`
	}

	RecordTransactionResponse struct {
		ID        string          `json:"id"`
		ItemID    string          `json:"item_id"`
		Type      string          `json:"type"`
		Amount    decimal.Decimal `json:"amount"`
		NewAmount decimal.Decimal `json:"new_amount"`
	}

	TransactionResponse struct {
		ID        string          `json:"id"`
		ItemID    string          `json:"item_id"`
		Type      string          `json:"type"`
		Amount    decimal.Decimal `json:"amount"`
		CreatedAt time.Time       `json:"created_at"`
	}
)
