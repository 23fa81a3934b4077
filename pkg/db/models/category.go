package models

import (
	"time"
)

// Category groups products for browsing and reporting. Categories with live
// products cannot be deleted.
type Category struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;size:100;not null;uniqueIndex:uq_categories_name"`
	Description string    `gorm:"column:description;size:255"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true;index"`
	Products    []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}
