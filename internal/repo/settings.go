package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/khadihouse/pos-backend/pkg/db/models"
	"github.com/khadihouse/pos-backend/pkg/enums"
	pkgerrors "github.com/khadihouse/pos-backend/pkg/errors"
)

// Settings manages the key/value configuration table.
type Settings struct {
	Base
}

// NewSettings builds a Settings repository bound to the provided DB.
func NewSettings(db *gorm.DB) Settings {
	return Settings{Base: NewBase(db)}
}

func (r Settings) Get(ctx context.Context, key string) (*models.Setting, error) {
	var setting models.Setting
	if err := r.DB(ctx).Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, fetchErr(err, "fetching setting")
	}
	return &setting, nil
}

func (r Settings) ListByCategory(ctx context.Context, category enums.SettingCategory) ([]models.Setting, error) {
	var settings []models.Setting
	err := r.DB(ctx).
		Where("category = ?", category).
		Order("key ASC").
		Find(&settings).Error
	if err != nil {
		return nil, pkgerrors.FromStorage(err, "listing settings")
	}
	return settings, nil
}

// Upsert writes a setting, replacing the value of an existing key.
func (r Settings) Upsert(ctx context.Context, setting *models.Setting) error {
	err := r.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "description", "category"}),
		}).
		Create(setting).Error
	if err != nil {
		return pkgerrors.FromStorage(err, "upserting setting")
	}
	return nil
}
