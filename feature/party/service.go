package party

import (
	"context"

	"party-ledger/core/bus"
	"party-ledger/core/ledger"

	"go.uber.org/zap"
)

// Service exposes the shared party stash. Unlike personal inventories,
// every successful mutation here broadcasts STORAGE_UPDATED so all
// connected viewers refresh.
type Service struct {
	ledger *ledger.Ledger
	bus    *bus.Bus
	logger *zap.Logger
}

// NewService creates a new party-storage service.
func NewService(l *ledger.Ledger, b *bus.Bus, logger *zap.Logger) *Service {
	return &Service{ledger: l, bus: b, logger: logger}
}

// List returns the stash lines.
func (s *Service) List(ctx context.Context) ([]ledger.StorageLine, error) {
	return s.ledger.Storage(ctx)
}

// Add increments the stash line for itemKey by qty.
func (s *Service) Add(ctx context.Context, itemKey string, qty int) (ledger.StorageLine, error) {
	line, err := s.ledger.AddToStorage(ctx, itemKey, qty)
	if err != nil {
		return line, err
	}
	s.bus.Publish(bus.EventStorageUpdated, line)
	return line, nil
}

// Remove decrements the stash line for itemKey by qty.
func (s *Service) Remove(ctx context.Context, itemKey string, qty int) (ledger.StorageLine, error) {
	line, err := s.ledger.RemoveFromStorage(ctx, itemKey, qty)
	if err != nil {
		return line, err
	}
	s.bus.Publish(bus.EventStorageUpdated, line)
	return line, nil
}
