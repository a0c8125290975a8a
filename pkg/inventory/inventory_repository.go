package inventory

import (
	"Home-Inventory-Backend/entities"
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	InventoryRepository interface {
		AddItem(ctx context.Context, item *entities.Item, initial *entities.Transaction) error
		GetItemByID(ctx context.Context, id string) (*entities.Item, error)
		UpdateItem(ctx context.Context, item *entities.Item) error
		DeleteItem(ctx context.Context, id string) error
		GetItemsByUser(ctx context.Context, userID string) ([]*entities.Item, error)
		AppendTransaction(ctx context.Context, transaction *entities.Transaction, newAmount decimal.Decimal) error
		GetTransactionsByItem(ctx context.Context, itemID string) ([]*entities.Transaction, error)
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

// AddItem persists the item together with its synthesized initial inbound
// transaction, so the log and the stored amount agree from the first moment.
func (r *inventoryRepository) AddItem(ctx context.Context, item *entities.Item, initial *entities.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		return tx.Create(initial).Error
	})
}

func (r *inventoryRepository) GetItemByID(ctx context.Context, id string) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) UpdateItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Item{}).Error
}

// GetItemsByUser returns the user's items soonest-expiring first; the
// presentation layer relies on this ordering.
func (r *inventoryRepository) GetItemsByUser(ctx context.Context, userID string) ([]*entities.Item, error) {
	var items []*entities.Item
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expiration_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AppendTransaction commits the transaction row and the denormalized amount
// update as one unit. The item row is locked for the duration so a reader
// never observes one write without the other.
func (r *inventoryRepository) AppendTransaction(ctx context.Context, transaction *entities.Transaction, newAmount decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item entities.Item
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", transaction.ItemID).
			First(&item).Error; err != nil {
			return err
		}

		if err := tx.Model(&entities.Item{}).
			Where("id = ?", transaction.ItemID).
			Update("amount", newAmount).Error; err != nil {
			return err
		}

		return tx.Create(transaction).Error
	})
}

func (r *inventoryRepository) GetTransactionsByItem(ctx context.Context, itemID string) ([]*entities.Transaction, error) {
	var transactions []*entities.Transaction
	if err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at desc").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}
