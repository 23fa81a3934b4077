package models

import (
	"time"

	"github.com/khadihouse/pos-backend/pkg/enums"
)

// User is a staff identity. The credential is stored as a one-way hash only.
type User struct {
	ID           uint           `gorm:"column:id;primaryKey;autoIncrement"`
	Username     string         `gorm:"column:username;size:50;not null;uniqueIndex:uq_users_username"`
	Email        string         `gorm:"column:email;size:100;not null;uniqueIndex:uq_users_email"`
	FullName     string         `gorm:"column:full_name;size:100;not null"`
	PasswordHash string         `gorm:"column:password_hash;size:255;not null"`
	Role         enums.UserRole `gorm:"column:role;size:10;not null;default:'cashier'"`
	IsActive     bool           `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
}
