package inventory

import (
	"context"

	"party-ledger/core/ledger"

	"go.uber.org/zap"
)

// Service exposes the caller-scoped inventory operations over the ledger.
// Inventory mutations are private to the owning account and broadcast
// nothing.
type Service struct {
	ledger *ledger.Ledger
	logger *zap.Logger
}

// NewService creates a new inventory service.
func NewService(l *ledger.Ledger, logger *zap.Logger) *Service {
	return &Service{ledger: l, logger: logger}
}

// List returns the account's lines.
func (s *Service) List(ctx context.Context, accountID uint) ([]ledger.InventoryLine, error) {
	return s.ledger.InventoryOf(ctx, accountID)
}

// Add increments the account's line for itemKey by qty.
func (s *Service) Add(ctx context.Context, accountID uint, itemKey string, qty int) (ledger.InventoryLine, error) {
	return s.ledger.AddToInventory(ctx, accountID, itemKey, qty)
}

// Remove decrements the account's line for itemKey by qty.
func (s *Service) Remove(ctx context.Context, accountID uint, itemKey string, qty int) (ledger.InventoryLine, error) {
	return s.ledger.RemoveFromInventory(ctx, accountID, itemKey, qty)
}
