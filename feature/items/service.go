package items

import (
	"context"
	"errors"
	"fmt"
	"io"

	"party-ledger/core/apperr"
	"party-ledger/core/bus"
	"party-ledger/core/ledger"
	"party-ledger/core/storage"
	"party-ledger/core/utils"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles catalog operations.
type Service struct {
	db     *gorm.DB
	bus    *bus.Bus
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(db *gorm.DB, b *bus.Bus, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		bus:    b,
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// List returns the catalog ordered by display name.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := s.db.WithContext(ctx).Order("name").Find(&items).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	return items, nil
}

// Get returns one catalog entry by key.
func (s *Service) Get(ctx context.Context, key string) (*Item, error) {
	var item Item
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: item %q", apperr.ErrNotFound, key)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	return &item, nil
}

// Create derives the key from the display name and persists the entry.
// Names that collapse to an existing key conflict.
func (s *Service) Create(ctx context.Context, req CreateItemRequest) (*Item, error) {
	key := utils.Slug(req.Name)
	if key == "" {
		return nil, fmt.Errorf("%w: name is required", apperr.ErrBadRequest)
	}

	item := Item{
		Key:         key,
		Name:        req.Name,
		Description: req.Description,
		ImageRef:    req.ImageRef,
	}

	if err := s.insertUnique(ctx, &item); err != nil {
		return nil, err
	}

	s.bus.Publish(bus.EventItemAdded, item)
	return &item, nil
}

// Delete removes a catalog entry and cascades to every inventory and
// stash line referencing it, all in one transaction.
func (s *Service) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("key = ?", key).Delete(&Item{})
		if res.Error != nil {
			return apperr.Wrap(apperr.ErrStorage, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: item %q", apperr.ErrNotFound, key)
		}
		return ledger.PurgeItem(tx, key)
	})
	if err != nil {
		return err
	}

	s.bus.Publish(bus.EventItemDeleted, map[string]string{"key": key})
	return nil
}

// AttachImage stores the uploaded bytes and records the object as the
// item's image reference.
func (s *Service) AttachImage(ctx context.Context, key, contentType string, r io.Reader, size int64) (*Item, error) {
	item, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("items/%s/%s", key, uuid.NewString())
	_, err = s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}

	// Replace before overwrite so a failed update doesn't strand the old
	// object reference.
	old := item.ImageRef
	item.ImageRef = objectName
	if err := s.db.WithContext(ctx).Model(&Item{}).Where("key = ?", key).
		Update("image_ref", objectName).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	if old != "" {
		if err := s.client.RemoveObject(ctx, s.bucket, old, minio.RemoveObjectOptions{}); err != nil {
			s.logger.Warn("failed to remove replaced image object",
				zap.String("object", old), zap.Error(err))
		}
	}

	s.bus.Publish(bus.EventItemUpdated, item)
	return item, nil
}

// OpenImage streams the stored image object for an item.
func (s *Service) OpenImage(ctx context.Context, key string) (io.ReadCloser, error) {
	item, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if item.ImageRef == "" {
		return nil, fmt.Errorf("%w: item %q has no image", apperr.ErrNotFound, key)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, item.ImageRef, minio.GetObjectOptions{})
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}
	return obj, nil
}

// ItemExists implements ledger.CatalogGuard.
func (s *Service) ItemExists(ctx context.Context, key string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&Item{}).Where("key = ?", key).Count(&count).Error; err != nil {
		return false, apperr.Wrap(apperr.ErrStorage, err)
	}
	return count > 0, nil
}

func (s *Service) insertUnique(ctx context.Context, item *Item) error {
	// Pre-check gives the clean Conflict answer; the unique index stays
	// authoritative under concurrent creates.
	var count int64
	if err := s.db.WithContext(ctx).Model(&Item{}).Where("key = ?", item.Key).Count(&count).Error; err != nil {
		return apperr.Wrap(apperr.ErrStorage, err)
	}
	if count > 0 {
		return fmt.Errorf("%w: key %q", apperr.ErrConflict, item.Key)
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			return fmt.Errorf("%w: key %q", apperr.ErrConflict, item.Key)
		}
		return apperr.Wrap(apperr.ErrStorage, err)
	}
	return nil
}
