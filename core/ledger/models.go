package ledger

// InventoryLine is one (account, item, quantity) record in a player's
// inventory. A persisted line always has quantity > 0; removing the last
// unit deletes the row instead of writing zero.
type InventoryLine struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	AccountID uint   `gorm:"column:account_id;uniqueIndex:idx_inventory_account_item;not null" json:"account_id"`
	ItemKey   string `gorm:"column:item_key;size:191;uniqueIndex:idx_inventory_account_item;not null" json:"item"`
	Quantity  int    `gorm:"column:quantity;not null" json:"quantity"`
}

// TableName overrides the table name.
func (InventoryLine) TableName() string {
	return "inventory_lines"
}

// StorageLine is one (item, quantity) record in the shared party stash.
// Same non-zero invariant as InventoryLine, but without an owner.
type StorageLine struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	ItemKey  string `gorm:"column:item_key;size:191;uniqueIndex:idx_storage_item;not null" json:"item"`
	Quantity int    `gorm:"column:quantity;not null" json:"quantity"`
}

// TableName overrides the table name.
func (StorageLine) TableName() string {
	return "storage_lines"
}
