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
	ItemHandler interface {
		AddItem(c *fiber.Ctx) error
		GetItems(c *fiber.Ctx) error
		GetItemAmount(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
	}

	itemHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewItemHandler(inventoryService inventory.InventoryService, validator *validator.Validate) ItemHandler {
	return &itemHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *itemHandler) AddItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddItem, err)
	}

	res, err := h.inventoryService.CreateItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddItem)
}

func (h *itemHandler) GetItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	items, err := h.inventoryService.ListItems(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetItems)
}

func (h *itemHandler) GetItemAmount(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	res, err := h.inventoryService.GetCurrentAmount(c.Context(), itemID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetItemAmount, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetItemAmount, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetItemAmount)
}

func (h *itemHandler) UpdateItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	req := new(domain.UpdateItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateItem, err)
	}

	if err := h.inventoryService.UpdateItem(c.Context(), itemID, *req, userID); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateItem)
}

func (h *itemHandler) DeleteItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.inventoryService.DeleteItem(c.Context(), itemID, userID); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteItem)
}
