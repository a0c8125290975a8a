package handlers

import (
	"Home-Inventory-Backend/domain"
	"Home-Inventory-Backend/internal/api/presenters"
	"Home-Inventory-Backend/pkg/inventory"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TransactionHandler interface {
		RecordTransaction(c *fiber.Ctx) error
		GetItemTransactions(c *fiber.Ctx) error
	}

	transactionHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewTransactionHandler(inventoryService inventory.InventoryService, validator *validator.Validate) TransactionHandler {
	return &transactionHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *transactionHandler) RecordTransaction(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.RecordTransactionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordTransaction, err)
	}

	res, err := h.inventoryService.RecordTransaction(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRecordTransaction, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordTransaction, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRecordTransaction)
}

func (h *transactionHandler) GetItemTransactions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("item_id")

	transactions, err := h.inventoryService.GetItemTransactions(c.Context(), itemID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetTransactions, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTransactions, err)
	}

	return presenters.SuccessResponse(c, transactions, fiber.StatusOK, domain.MessageSuccessGetTransactions)
}
