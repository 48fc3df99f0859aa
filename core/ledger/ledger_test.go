package ledger

import (
	"context"
	"testing"

	"party-ledger/core/apperr"
	"party-ledger/core/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// staticGuard treats a fixed set of keys as the catalog.
type staticGuard map[string]bool

func (g staticGuard) ItemExists(_ context.Context, key string) (bool, error) {
	return g[key], nil
}

func setupLedger(t *testing.T) (*Ledger, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&InventoryLine{}, &StorageLine{}))

	guard := staticGuard{"stimpak": true, "rope": true}
	return New(db, guard), db
}

func TestAddToInventoryAccumulates(t *testing.T) {
	l, _ := setupLedger(t)
	ctx := context.Background()

	line, err := l.AddToInventory(ctx, 1, "stimpak", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, line.Quantity)

	line, err = l.AddToInventory(ctx, 1, "stimpak", 2)
	require.NoError(t, err)
	assert.Equal(t, 5, line.Quantity)

	// Another account's line is independent.
	line, err = l.AddToInventory(ctx, 2, "stimpak", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)
}

func TestAddToInventoryRejectsUnknownItem(t *testing.T) {
	l, _ := setupLedger(t)

	_, err := l.AddToInventory(context.Background(), 1, "plasma-rifle", 1)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAddToInventoryRejectsNonPositiveQuantity(t *testing.T) {
	l, _ := setupLedger(t)

	_, err := l.AddToInventory(context.Background(), 1, "stimpak", 0)
	assert.ErrorIs(t, err, apperr.ErrBadRequest)

	_, err = l.AddToInventory(context.Background(), 1, "stimpak", -4)
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
}

func TestRemoveFromInventoryDeletesDrainedLine(t *testing.T) {
	l, db := setupLedger(t)
	ctx := context.Background()

	_, err := l.AddToInventory(ctx, 1, "stimpak", 2)
	require.NoError(t, err)

	line, err := l.RemoveFromInventory(ctx, 1, "stimpak", 2)
	require.NoError(t, err)
	assert.Equal(t, 0, line.Quantity)

	// The row is gone, not stored at zero.
	var count int64
	db.Model(&InventoryLine{}).Where("account_id = ? AND item_key = ?", 1, "stimpak").Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestRemoveFromInventoryStrictPrecondition(t *testing.T) {
	l, _ := setupLedger(t)
	ctx := context.Background()

	_, err := l.AddToInventory(ctx, 1, "stimpak", 1)
	require.NoError(t, err)

	// More than available: fails, state unchanged.
	_, err = l.RemoveFromInventory(ctx, 1, "stimpak", 2)
	assert.ErrorIs(t, err, apperr.ErrInsufficientQuantity)

	line, err := l.RemoveFromInventory(ctx, 1, "stimpak", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, line.Quantity)

	// Absent line: same failure.
	_, err = l.RemoveFromInventory(ctx, 1, "stimpak", 1)
	assert.ErrorIs(t, err, apperr.ErrInsufficientQuantity)
}

func TestQuantityNeverNegative(t *testing.T) {
	l, db := setupLedger(t)
	ctx := context.Background()

	ops := []struct {
		add bool
		qty int
	}{
		{true, 3}, {false, 1}, {false, 1}, {true, 2}, {false, 4},
		{false, 3}, {false, 1}, {true, 1},
	}

	for _, op := range ops {
		if op.add {
			_, err := l.AddToInventory(ctx, 1, "rope", op.qty)
			require.NoError(t, err)
		} else {
			// Failures are allowed; negative persisted state is not.
			_, _ = l.RemoveFromInventory(ctx, 1, "rope", op.qty)
		}

		var lines []InventoryLine
		require.NoError(t, db.Find(&lines).Error)
		for _, line := range lines {
			assert.Greater(t, line.Quantity, 0)
		}
	}
}

func TestStorageSharedAcrossAccounts(t *testing.T) {
	l, _ := setupLedger(t)
	ctx := context.Background()

	line, err := l.AddToStorage(ctx, "stimpak", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)

	line, err = l.AddToStorage(ctx, "stimpak", 3)
	require.NoError(t, err)
	assert.Equal(t, 5, line.Quantity)

	line, err = l.RemoveFromStorage(ctx, "stimpak", 5)
	require.NoError(t, err)
	assert.Equal(t, 0, line.Quantity)

	_, err = l.RemoveFromStorage(ctx, "stimpak", 1)
	assert.ErrorIs(t, err, apperr.ErrInsufficientQuantity)
}

func TestStorageRejectsUnknownItem(t *testing.T) {
	l, _ := setupLedger(t)

	_, err := l.AddToStorage(context.Background(), "plasma-rifle", 1)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestLastUnitGoesToExactlyOneRemover(t *testing.T) {
	l, _ := setupLedger(t)
	ctx := context.Background()

	_, err := l.AddToStorage(ctx, "stimpak", 1)
	require.NoError(t, err)

	// Two removes race for a single unit: one wins, one fails, the line
	// ends absent and never negative.
	_, err1 := l.RemoveFromStorage(ctx, "stimpak", 1)
	_, err2 := l.RemoveFromStorage(ctx, "stimpak", 1)

	if err1 == nil {
		assert.ErrorIs(t, err2, apperr.ErrInsufficientQuantity)
	} else {
		assert.ErrorIs(t, err1, apperr.ErrInsufficientQuantity)
		assert.NoError(t, err2)
	}

	lines, err := l.Storage(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestListOrdering(t *testing.T) {
	l, _ := setupLedger(t)
	ctx := context.Background()

	_, err := l.AddToInventory(ctx, 1, "stimpak", 1)
	require.NoError(t, err)
	_, err = l.AddToInventory(ctx, 1, "rope", 1)
	require.NoError(t, err)

	lines, err := l.InventoryOf(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "rope", lines[0].ItemKey)
	assert.Equal(t, "stimpak", lines[1].ItemKey)
}

func TestPurgeItem(t *testing.T) {
	l, db := setupLedger(t)
	ctx := context.Background()

	_, err := l.AddToInventory(ctx, 1, "stimpak", 2)
	require.NoError(t, err)
	_, err = l.AddToInventory(ctx, 2, "stimpak", 1)
	require.NoError(t, err)
	_, err = l.AddToInventory(ctx, 1, "rope", 1)
	require.NoError(t, err)
	_, err = l.AddToStorage(ctx, "stimpak", 4)
	require.NoError(t, err)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return PurgeItem(tx, "stimpak")
	}))

	var invCount, stashCount int64
	db.Model(&InventoryLine{}).Where("item_key = ?", "stimpak").Count(&invCount)
	db.Model(&StorageLine{}).Where("item_key = ?", "stimpak").Count(&stashCount)
	assert.EqualValues(t, 0, invCount)
	assert.EqualValues(t, 0, stashCount)

	// Unrelated lines survive.
	lines, err := l.InventoryOf(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "rope", lines[0].ItemKey)
}
