package models

import (
	"github.com/shopspring/decimal"

	"github.com/khadihouse/pos-backend/pkg/enums"
)

// SaleItem is a line of a sale with the product name snapshotted at sale
// time. Discount fields are range-checked at the storage layer; writes
// outside the range fail, they are never clamped.
type SaleItem struct {
	ID                  uint                `gorm:"column:id;primaryKey;autoIncrement"`
	SaleID              uint                `gorm:"column:sale_id;not null;index"`
	ProductID           uint                `gorm:"column:product_id;not null;index" validate:"required"`
	Product             *Product            `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	ProductName         string              `gorm:"column:product_name;size:150;not null" validate:"required"`
	Quantity            decimal.Decimal     `gorm:"column:quantity;type:numeric(10,3);not null" validate:"gt=0"`
	UnitPrice           decimal.Decimal     `gorm:"column:unit_price;type:numeric(18,2);not null"`
	GSTRate             decimal.Decimal     `gorm:"column:gst_rate;type:numeric(5,2);not null;default:0"`
	GSTAmount           decimal.Decimal     `gorm:"column:gst_amount;type:numeric(18,2);not null;default:0"`
	LineTotal           decimal.Decimal     `gorm:"column:line_total;type:numeric(18,2);not null"`
	UnitOfMeasure       enums.UnitOfMeasure `gorm:"column:unit_of_measure;size:10;not null;default:'pcs'"`
	ItemDiscountPercent decimal.Decimal     `gorm:"column:item_discount_percent;type:numeric(5,2);not null;default:0;check:chk_sale_items_discount_percent,item_discount_percent >= 0 AND item_discount_percent <= 100" validate:"gte=0,lte=100"`
	ItemDiscountAmount  decimal.Decimal     `gorm:"column:item_discount_amount;type:numeric(18,2);not null;default:0;check:chk_sale_items_discount_amount,item_discount_amount >= 0" validate:"gte=0"`
	ReturnItems         []ReturnItem        `gorm:"foreignKey:SaleItemID;constraint:OnDelete:RESTRICT"`
}
