package ledger

import (
	"context"
	"errors"
	"fmt"

	"party-ledger/core/apperr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogGuard answers whether an item key exists in the catalog. The
// items feature implements it; the indirection keeps the ledger free of
// a dependency on the catalog tables.
type CatalogGuard interface {
	ItemExists(ctx context.Context, key string) (bool, error)
}

// Ledger enforces the quantity invariants over inventory and party
// storage lines. Every mutation is a single conditional statement per
// row; concurrent removes on the same line race on the database's
// row-level atomicity, not on any in-process lock.
type Ledger struct {
	db    *gorm.DB
	guard CatalogGuard
}

// New creates a ledger over db, guarding adds with the given catalog.
func New(db *gorm.DB, guard CatalogGuard) *Ledger {
	return &Ledger{db: db, guard: guard}
}

// AddToInventory increments the caller's line for itemKey by qty,
// creating it when absent. Unknown item keys fail with ErrNotFound.
func (l *Ledger) AddToInventory(ctx context.Context, accountID uint, itemKey string, qty int) (InventoryLine, error) {
	if err := l.checkAdd(ctx, itemKey, qty); err != nil {
		return InventoryLine{}, err
	}

	line := InventoryLine{AccountID: accountID, ItemKey: itemKey, Quantity: qty}
	err := l.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}, {Name: "item_key"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity": gorm.Expr("quantity + ?", qty),
		}),
	}).Create(&line).Error
	if err != nil {
		return InventoryLine{}, apperr.Wrap(apperr.ErrStorage, err)
	}

	return l.inventoryLine(ctx, accountID, itemKey)
}

// RemoveFromInventory decrements the caller's line by qty. The line must
// currently hold at least qty, otherwise ErrInsufficientQuantity and no
// state change. A line reaching zero is deleted, never stored at zero.
func (l *Ledger) RemoveFromInventory(ctx context.Context, accountID uint, itemKey string, qty int) (InventoryLine, error) {
	if qty <= 0 {
		return InventoryLine{}, fmt.Errorf("%w: quantity must be positive", apperr.ErrBadRequest)
	}

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Conditional decrement: zero rows affected means the line is
		// absent or short, and nothing was changed.
		res := tx.Model(&InventoryLine{}).
			Where("account_id = ? AND item_key = ? AND quantity >= ?", accountID, itemKey, qty).
			Update("quantity", gorm.Expr("quantity - ?", qty))
		if res.Error != nil {
			return apperr.Wrap(apperr.ErrStorage, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.ErrInsufficientQuantity
		}
		if err := tx.Where("account_id = ? AND item_key = ? AND quantity <= 0", accountID, itemKey).
			Delete(&InventoryLine{}).Error; err != nil {
			return apperr.Wrap(apperr.ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		return InventoryLine{}, err
	}

	return l.inventoryLine(ctx, accountID, itemKey)
}

// AddToStorage increments the shared stash line for itemKey by qty.
func (l *Ledger) AddToStorage(ctx context.Context, itemKey string, qty int) (StorageLine, error) {
	if err := l.checkAdd(ctx, itemKey, qty); err != nil {
		return StorageLine{}, err
	}

	line := StorageLine{ItemKey: itemKey, Quantity: qty}
	err := l.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "item_key"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity": gorm.Expr("quantity + ?", qty),
		}),
	}).Create(&line).Error
	if err != nil {
		return StorageLine{}, apperr.Wrap(apperr.ErrStorage, err)
	}

	return l.storageLine(ctx, itemKey)
}

// RemoveFromStorage decrements the shared stash line by qty, with the
// same strict precondition as RemoveFromInventory.
func (l *Ledger) RemoveFromStorage(ctx context.Context, itemKey string, qty int) (StorageLine, error) {
	if qty <= 0 {
		return StorageLine{}, fmt.Errorf("%w: quantity must be positive", apperr.ErrBadRequest)
	}

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&StorageLine{}).
			Where("item_key = ? AND quantity >= ?", itemKey, qty).
			Update("quantity", gorm.Expr("quantity - ?", qty))
		if res.Error != nil {
			return apperr.Wrap(apperr.ErrStorage, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.ErrInsufficientQuantity
		}
		if err := tx.Where("item_key = ? AND quantity <= 0", itemKey).
			Delete(&StorageLine{}).Error; err != nil {
			return apperr.Wrap(apperr.ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		return StorageLine{}, err
	}

	return l.storageLine(ctx, itemKey)
}

// InventoryOf lists an account's lines ordered by item key.
func (l *Ledger) InventoryOf(ctx context.Context, accountID uint) ([]InventoryLine, error) {
	var lines []InventoryLine
	err := l.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("item_key").
		Find(&lines).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	return lines, nil
}

// Storage lists the shared stash ordered by item key.
func (l *Ledger) Storage(ctx context.Context) ([]StorageLine, error) {
	var lines []StorageLine
	err := l.db.WithContext(ctx).Order("item_key").Find(&lines).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	return lines, nil
}

// PurgeItem removes every inventory and stash line referencing itemKey.
// Called from the catalog's delete transaction so a removed item never
// leaves dangling lines behind.
func PurgeItem(tx *gorm.DB, itemKey string) error {
	if err := tx.Where("item_key = ?", itemKey).Delete(&InventoryLine{}).Error; err != nil {
		return apperr.Wrap(apperr.ErrStorage, err)
	}
	if err := tx.Where("item_key = ?", itemKey).Delete(&StorageLine{}).Error; err != nil {
		return apperr.Wrap(apperr.ErrStorage, err)
	}
	return nil
}

func (l *Ledger) checkAdd(ctx context.Context, itemKey string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: quantity must be positive", apperr.ErrBadRequest)
	}
	exists, err := l.guard.ItemExists(ctx, itemKey)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: item %q", apperr.ErrNotFound, itemKey)
	}
	return nil
}

// inventoryLine reports the post-mutation state; an absent row comes
// back with quantity 0.
func (l *Ledger) inventoryLine(ctx context.Context, accountID uint, itemKey string) (InventoryLine, error) {
	var line InventoryLine
	err := l.db.WithContext(ctx).
		Where("account_id = ? AND item_key = ?", accountID, itemKey).
		First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return InventoryLine{AccountID: accountID, ItemKey: itemKey}, nil
	}
	if err != nil {
		return InventoryLine{}, apperr.Wrap(apperr.ErrStorage, err)
	}
	return line, nil
}

func (l *Ledger) storageLine(ctx context.Context, itemKey string) (StorageLine, error) {
	var line StorageLine
	err := l.db.WithContext(ctx).Where("item_key = ?", itemKey).First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return StorageLine{ItemKey: itemKey}, nil
	}
	if err != nil {
		return StorageLine{}, apperr.Wrap(apperr.ErrStorage, err)
	}
	return line, nil
}
