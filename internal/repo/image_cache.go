package repo

import (
	"context"
	"errors"
	"time"

	"qrserve/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ImageCacheRepository — кеш отрендеренных изображений QR-кодов.
// Самые крупные SVG (версия 40) достигают ~800 КБ и заметно нагружают CPU,
// поэтому повторные запросы отдаются из кеша.
type ImageCacheRepository interface {
	// Get возвращает живую запись по ключу; (nil, nil) — записи нет или она истекла.
	Get(ctx context.Context, key string) (*model.CachedImage, error)

	// Put сохраняет запись, перезаписывая существующую с тем же ключом.
	Put(ctx context.Context, key, contentType string, payload []byte, ttl time.Duration) error

	// PurgeExpired удаляет истёкшие записи и возвращает их количество.
	PurgeExpired(ctx context.Context) (int64, error)
}

type imageCacheRepo struct {
	db *gorm.DB
}

// NewImageCacheRepository создаёт реализацию кеша изображений.
func NewImageCacheRepository(db *gorm.DB) ImageCacheRepository {
	return &imageCacheRepo{db: db}
}

func (r *imageCacheRepo) Get(ctx context.Context, key string) (*model.CachedImage, error) {
	var row model.CachedImage
	err := r.db.WithContext(ctx).
		Where("key = ? AND expires_at > ?", key, time.Now()).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *imageCacheRepo) Put(ctx context.Context, key, contentType string, payload []byte, ttl time.Duration) error {
	row := &model.CachedImage{
		ID:          uuid.NewString(),
		Key:         key,
		ContentType: contentType,
		Payload:     payload,
		ExpiresAt:   time.Now().Add(ttl),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"content_type", "payload", "expires_at"}),
	}).Create(row).Error
}

func (r *imageCacheRepo) PurgeExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&model.CachedImage{})
	return res.RowsAffected, res.Error
}
