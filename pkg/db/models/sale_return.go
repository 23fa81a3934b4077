package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/khadihouse/pos-backend/pkg/enums"
)

// Return is the header of a sales return. Return numbers are unique at the
// storage layer; deleting a return removes its items but never the sale
// items or products they reference.
type Return struct {
	ID             uint               `gorm:"column:id;primaryKey;autoIncrement"`
	ReturnNumber   string             `gorm:"column:return_number;size:20;not null;uniqueIndex:uq_returns_return_number" validate:"required,max=20"`
	ReturnDate     time.Time          `gorm:"column:return_date;not null;index"`
	SaleID         uint               `gorm:"column:sale_id;not null;index" validate:"required"`
	Sale           *Sale              `gorm:"foreignKey:SaleID"`
	Subtotal       decimal.Decimal    `gorm:"column:subtotal;type:numeric(18,2);not null;default:0"`
	GSTAmount      decimal.Decimal    `gorm:"column:gst_amount;type:numeric(18,2);not null;default:0"`
	DiscountAmount decimal.Decimal    `gorm:"column:discount_amount;type:numeric(18,2);not null;default:0"`
	TotalAmount    decimal.Decimal    `gorm:"column:total_amount;type:numeric(18,2);not null;default:0"`
	Status         enums.ReturnStatus `gorm:"column:status;size:10;not null;default:'completed';index"`
	Items          []ReturnItem       `gorm:"foreignKey:ReturnID;constraint:OnDelete:CASCADE" validate:"min=1,dive"`
	CreatedAt      time.Time          `gorm:"column:created_at;autoCreateTime"`
}

// TableName keeps the plural form GORM would not derive for "Return".
func (Return) TableName() string {
	return "returns"
}
