package worldmap

import (
	"context"
	"fmt"
	"strings"

	"party-ledger/core/apperr"
	"party-ledger/core/bus"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles world-map marker operations.
type Service struct {
	db     *gorm.DB
	bus    *bus.Bus
	logger *zap.Logger
}

// NewService creates a new world-map service.
func NewService(db *gorm.DB, b *bus.Bus, logger *zap.Logger) *Service {
	return &Service{db: db, bus: b, logger: logger}
}

// List returns every marker, oldest first.
func (s *Service) List(ctx context.Context) ([]Marker, error) {
	var markers []Marker
	if err := s.db.WithContext(ctx).Order("id").Find(&markers).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	return markers, nil
}

// Create places a marker and broadcasts the map change.
func (s *Service) Create(ctx context.Context, req CreateMarkerRequest) (*Marker, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", apperr.ErrBadRequest)
	}

	marker := Marker{Name: req.Name, X: req.X, Y: req.Y}
	if err := s.db.WithContext(ctx).Create(&marker).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}

	s.bus.Publish(bus.EventMapUpdated, marker)
	return &marker, nil
}

// Delete removes a marker and broadcasts the map change.
func (s *Service) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&Marker{}, id)
	if res.Error != nil {
		return apperr.Wrap(apperr.ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: marker %d", apperr.ErrNotFound, id)
	}

	s.bus.Publish(bus.EventMapUpdated, map[string]uint{"removed": id})
	return nil
}
