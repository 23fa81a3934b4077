// Package settings exposes store configuration with an optional
// read-through cache in front of the settings table.
package settings

import (
	"context"
	stdErrors "errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/khadihouse/pos-backend/internal/repo"
	"github.com/khadihouse/pos-backend/pkg/db/models"
	"github.com/khadihouse/pos-backend/pkg/enums"
	pkgerrors "github.com/khadihouse/pos-backend/pkg/errors"
	"github.com/khadihouse/pos-backend/pkg/logger"
	pkgredis "github.com/khadihouse/pos-backend/pkg/redis"
)

// Cache is the subset of the redis client the service uses. A nil cache
// turns the service into a straight table lookup.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// Service reads and writes settings, keeping the cache coherent on writes.
type Service struct {
	repo  repo.Settings
	cache Cache
	ttl   time.Duration
	log   *logger.Logger
}

// NewService builds a settings service. cache may be nil.
func NewService(db *gorm.DB, cache Cache, ttl time.Duration, log *logger.Logger) *Service {
	return &Service{
		repo:  repo.NewSettings(db),
		cache: cache,
		ttl:   ttl,
		log:   log,
	}
}

// Value returns the setting's value, serving from cache when possible.
func (s *Service) Value(ctx context.Context, key string) (string, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, pkgredis.SettingKey(key))
		if err == nil {
			return cached, nil
		}
		if !stdErrors.Is(err, pkgredis.Nil) {
			s.warn(ctx, key, "settings cache read failed")
		}
	}

	setting, err := s.repo.Get(ctx, key)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, pkgredis.SettingKey(key), setting.Value, s.ttl); err != nil {
			s.warn(ctx, key, "settings cache write failed")
		}
	}
	return setting.Value, nil
}

// DecimalValue returns a numeric setting such as the default GST rate or
// the low-stock threshold.
func (s *Service) DecimalValue(ctx context.Context, key string) (decimal.Decimal, error) {
	raw, err := s.Value(ctx, key)
	if err != nil {
		return decimal.Zero, err
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "setting is not numeric").
			WithDetails(map[string]string{"key": key, "value": raw})
	}
	return value, nil
}

// Set upserts a setting and drops the stale cache entry.
func (s *Service) Set(ctx context.Context, setting *models.Setting) error {
	if err := s.repo.Upsert(ctx, setting); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Del(ctx, pkgredis.SettingKey(setting.Key)); err != nil {
			s.warn(ctx, setting.Key, "settings cache invalidation failed")
		}
	}
	return nil
}

// ListByCategory returns the settings filed under a category, straight from
// the table.
func (s *Service) ListByCategory(ctx context.Context, category enums.SettingCategory) ([]models.Setting, error) {
	return s.repo.ListByCategory(ctx, category)
}

func (s *Service) warn(ctx context.Context, key, msg string) {
	if s.log == nil {
		return
	}
	s.log.Warn(s.log.WithField(ctx, "setting_key", key), msg)
}
