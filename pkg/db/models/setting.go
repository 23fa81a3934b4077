package models

import (
	"github.com/khadihouse/pos-backend/pkg/enums"
)

// Setting is a generic key/value row for store configuration.
type Setting struct {
	ID          uint                  `gorm:"column:id;primaryKey;autoIncrement"`
	Key         string                `gorm:"column:key;size:50;not null;uniqueIndex:uq_settings_key"`
	Value       string                `gorm:"column:value;size:255;not null"`
	Description string                `gorm:"column:description;size:255"`
	Category    enums.SettingCategory `gorm:"column:category;size:20;not null;default:'store';index"`
}
