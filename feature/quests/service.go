package quests

import (
	"context"
	"errors"
	"fmt"

	"party-ledger/core/apperr"
	"party-ledger/core/bus"
	"party-ledger/core/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles quest-log operations.
type Service struct {
	db     *gorm.DB
	bus    *bus.Bus
	logger *zap.Logger
}

// NewService creates a new quest service.
func NewService(db *gorm.DB, b *bus.Bus, logger *zap.Logger) *Service {
	return &Service{db: db, bus: b, logger: logger}
}

// ListActive returns the active quests, newest first.
func (s *Service) ListActive(ctx context.Context) ([]Quest, error) {
	var quests []Quest
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&quests).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	return quests, nil
}

// Get returns one quest by key, active or not.
func (s *Service) Get(ctx context.Context, key string) (*Quest, error) {
	var quest Quest
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&quest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: quest %q", apperr.ErrNotFound, key)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	return &quest, nil
}

// Create derives the key from the name, persists the quest as active
// and broadcasts it.
func (s *Service) Create(ctx context.Context, req CreateQuestRequest) (*Quest, error) {
	key := utils.Slug(req.Name)
	if key == "" {
		return nil, fmt.Errorf("%w: name is required", apperr.ErrBadRequest)
	}

	quest := Quest{
		Key:         key,
		Name:        req.Name,
		Description: req.Description,
		ImageRef:    req.ImageRef,
		Active:      true,
	}

	err := s.db.WithContext(ctx).Create(&quest).Error
	if utils.IsUniqueViolation(err) {
		return nil, fmt.Errorf("%w: quest %q already exists", apperr.ErrConflict, key)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}

	s.bus.Publish(bus.EventQuestAdded, quest)
	return &quest, nil
}

// SetActive flips the active flag and broadcasts the updated quest.
func (s *Service) SetActive(ctx context.Context, key string, active bool) (*Quest, error) {
	quest, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).
		Model(quest).
		Update("active", active).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}

	s.bus.Publish(bus.EventQuestUpdated, *quest)
	return quest, nil
}

// Delete removes a quest for good and broadcasts the removal.
func (s *Service) Delete(ctx context.Context, key string) error {
	res := s.db.WithContext(ctx).Where("key = ?", key).Delete(&Quest{})
	if res.Error != nil {
		return apperr.Wrap(apperr.ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: quest %q", apperr.ErrNotFound, key)
	}

	s.bus.Publish(bus.EventQuestDeleted, map[string]string{"key": key})
	return nil
}
