package inventory

import (
	"Home-Inventory-Backend/domain"
	"Home-Inventory-Backend/entities"
	"Home-Inventory-Backend/pkg/events"
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	InventoryService interface {
		CreateItem(ctx context.Context, req domain.AddItemRequest, userID string) (domain.ItemResponse, error)
		RecordTransaction(ctx context.Context, req domain.RecordTransactionRequest, userID string) (domain.RecordTransactionResponse, error)
		GetCurrentAmount(ctx context.Context, itemID string, userID string) (domain.ItemAmountResponse, error)
		ListItems(ctx context.Context, userID string) ([]domain.ItemResponse, error)
		GetItemTransactions(ctx context.Context, itemID string, userID string) ([]domain.TransactionResponse, error)
		UpdateItem(ctx context.Context, itemID string, req domain.UpdateItemRequest, userID string) error
		DeleteItem(ctx context.Context, itemID string, userID string) error
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		publisher           events.Publisher

		itemLocks map[string]*sync.Mutex
		locksMu   sync.Mutex
	}
)

func NewInventoryService(inventoryRepository InventoryRepository, publisher events.Publisher) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		publisher:           publisher,
		itemLocks:           make(map[string]*sync.Mutex),
	}
}

// itemLock returns the mutex serializing writes to one item. Two concurrent
// transactions on the same item must not both read the same stale amount;
// different items proceed in parallel.
func (s *inventoryService) itemLock(itemID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	if _, exists := s.itemLocks[itemID]; !exists {
		s.itemLocks[itemID] = &sync.Mutex{}
	}
	return s.itemLocks[itemID]
}

func (s *inventoryService) CreateItem(ctx context.Context, req domain.AddItemRequest, userID string) (domain.ItemResponse, error) {
	if !domain.ValidCategory(req.Category) {
		return domain.ItemResponse{}, domain.ErrInvalidCategory
	}

	if req.InitialAmount.Sign() <= 0 {
		return domain.ItemResponse{}, domain.ErrInvalidAmount
	}

	expirationDate, err := time.Parse("2006-01-02", req.ExpirationDate)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrInvalidExpirationDate
	}

	var productionDate *time.Time
	if req.ProductionDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ProductionDate)
		if err != nil {
			return domain.ItemResponse{}, domain.ErrInvalidProductionDate
		}
		productionDate = &parsed
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrParseUUID
	}

	item := &entities.Item{
		ID:             uuid.New(),
		UserID:         userUUID,
		Name:           req.Name,
		Category:       req.Category,
		ProductionDate: productionDate,
		ExpirationDate: expirationDate,
		AmountKind:     amountKindForCategory(req.Category),
		Amount:         req.InitialAmount,
		Unit:           req.Unit,
	}

	initial := &entities.Transaction{
		ID:     uuid.New(),
		ItemID: item.ID,
		UserID: userUUID,
		Type:   domain.TransactionInbound,
		Amount: req.InitialAmount,
	}

	if err := s.inventoryRepository.AddItem(ctx, item, initial); err != nil {
		return domain.ItemResponse{}, err
	}

	return toItemResponse(item), nil
}

func (s *inventoryService) RecordTransaction(ctx context.Context, req domain.RecordTransactionRequest, userID string) (domain.RecordTransactionResponse, error) {
	if req.Type != domain.TransactionInbound && req.Type != domain.TransactionOutbound {
		return domain.RecordTransactionResponse{}, domain.ErrInvalidTransactionType
	}

	if req.Amount.Sign() <= 0 {
		return domain.RecordTransactionResponse{}, domain.ErrInvalidAmount
	}

	lock := s.itemLock(req.ItemID)
	lock.Lock()
	defer lock.Unlock()

	item, err := s.getOwnedItem(ctx, req.ItemID, userID)
	if err != nil {
		return domain.RecordTransactionResponse{}, err
	}

	var newAmount decimal.Decimal
	if req.Type == domain.TransactionInbound {
		newAmount = item.Amount.Add(req.Amount)
	} else {
		newAmount = applyOutbound(item.Amount, req.Amount)
	}

	transaction := &entities.Transaction{
		ID:     uuid.New(),
		ItemID: item.ID,
		UserID: item.UserID,
		Type:   req.Type,
		Amount: req.Amount,
	}

	if err := s.inventoryRepository.AppendTransaction(ctx, transaction, newAmount); err != nil {
		return domain.RecordTransactionResponse{}, err
	}

	if err := s.publisher.PublishTransactionRecorded(ctx, events.TransactionRecorded{
		TransactionID: transaction.ID.String(),
		ItemID:        item.ID.String(),
		UserID:        userID,
		Type:          req.Type,
		Amount:        req.Amount,
		NewAmount:     newAmount,
		OccurredAt:    time.Now(),
	}); err != nil {
		log.Printf("failed to publish transaction event for item %s: %v", item.ID, err)
	}

	return domain.RecordTransactionResponse{
		ID:        transaction.ID.String(),
		ItemID:    item.ID.String(),
		Type:      req.Type,
		Amount:    req.Amount,
		NewAmount: newAmount,
	}, nil
}

func (s *inventoryService) GetCurrentAmount(ctx context.Context, itemID string, userID string) (domain.ItemAmountResponse, error) {
	item, err := s.getOwnedItem(ctx, itemID, userID)
	if err != nil {
		return domain.ItemAmountResponse{}, err
	}

	return domain.ItemAmountResponse{
		ItemID: item.ID.String(),
		Amount: item.Amount,
		Unit:   item.Unit,
	}, nil
}

func (s *inventoryService) ListItems(ctx context.Context, userID string) ([]domain.ItemResponse, error) {
	items, err := s.inventoryRepository.GetItemsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toItemResponse(item))
	}

	return response, nil
}

func (s *inventoryService) GetItemTransactions(ctx context.Context, itemID string, userID string) ([]domain.TransactionResponse, error) {
	if _, err := s.getOwnedItem(ctx, itemID, userID); err != nil {
		return nil, err
	}

	transactions, err := s.inventoryRepository.GetTransactionsByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		response = append(response, domain.TransactionResponse{
			ID:        tx.ID.String(),
			ItemID:    tx.ItemID.String(),
			Type:      tx.Type,
			Amount:    tx.Amount,
			CreatedAt: tx.CreatedAt,
		})
	}

	return response, nil
}

// UpdateItem is the administrative full-field edit outside the ledger. The
// active amount slot is fixed at creation; a category change that would move
// the item to the other slot is rejected.
func (s *inventoryService) UpdateItem(ctx context.Context, itemID string, req domain.UpdateItemRequest, userID string) error {
	lock := s.itemLock(itemID)
	lock.Lock()
	defer lock.Unlock()

	item, err := s.getOwnedItem(ctx, itemID, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		item.Name = req.Name
	}

	if req.Category != "" {
		if !domain.ValidCategory(req.Category) {
			return domain.ErrInvalidCategory
		}
		if amountKindForCategory(req.Category) != item.AmountKind {
			return domain.ErrAmountKindImmutable
		}
		item.Category = req.Category
	}

	if req.ExpirationDate != "" {
		expirationDate, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return domain.ErrInvalidExpirationDate
		}
		item.ExpirationDate = expirationDate
	}

	if req.ProductionDate != "" {
		productionDate, err := time.Parse("2006-01-02", req.ProductionDate)
		if err != nil {
			return domain.ErrInvalidProductionDate
		}
		item.ProductionDate = &productionDate
	}

	if req.Unit != "" {
		item.Unit = req.Unit
	}

	if req.Amount != nil {
		if req.Amount.Sign() < 0 {
			return domain.ErrInvalidAmount
		}
		item.Amount = *req.Amount
	}

	return s.inventoryRepository.UpdateItem(ctx, item)
}

// DeleteItem removes the item; its transactions stay behind as orphaned
// audit history.
func (s *inventoryService) DeleteItem(ctx context.Context, itemID string, userID string) error {
	if _, err := s.getOwnedItem(ctx, itemID, userID); err != nil {
		return err
	}

	return s.inventoryRepository.DeleteItem(ctx, itemID)
}

// getOwnedItem resolves the item and enforces ownership. An item owned by
// another user is reported as not found, same as an absent one.
func (s *inventoryService) getOwnedItem(ctx context.Context, itemID string, userID string) (*entities.Item, error) {
	item, err := s.inventoryRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	if item.UserID.String() != userID {
		return nil, domain.ErrItemNotFound
	}

	return item, nil
}

// applyOutbound subtracts an outbound amount, flooring the result at zero.
// Removing more than is present drives the amount to exactly zero and the
// excess is discarded. Over-withdrawal semantics live here and nowhere else.
func applyOutbound(current, amount decimal.Decimal) decimal.Decimal {
	next := current.Sub(amount)
	if next.Sign() < 0 {
		return decimal.Zero
	}
	return next
}

func amountKindForCategory(category string) entities.AmountKind {
	if domain.IsFreshProduce(category) {
		return entities.AmountKindWeight
	}
	return entities.AmountKindQuantity
}

func toItemResponse(item *entities.Item) domain.ItemResponse {
	response := domain.ItemResponse{
		ID:             item.ID.String(),
		Name:           item.Name,
		Category:       item.Category,
		ProductionDate: item.ProductionDate,
		ExpirationDate: item.ExpirationDate,
		Unit:           item.Unit,
		CreatedAt:      item.CreatedAt,
	}

	amount := item.Amount
	if item.AmountKind == entities.AmountKindWeight {
		response.Weight = &amount
	} else {
		response.Quantity = &amount
	}

	return response
}
