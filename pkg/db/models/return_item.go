package models

import (
	"github.com/shopspring/decimal"
)

// ReturnItem links a returned quantity back to the original sale item and
// product. Both references are restrict-delete so return lineage is never
// silently orphaned.
type ReturnItem struct {
	ID             uint            `gorm:"column:id;primaryKey;autoIncrement"`
	ReturnID       uint            `gorm:"column:return_id;not null;index"`
	SaleItemID     uint            `gorm:"column:sale_item_id;not null;index" validate:"required"`
	SaleItem       *SaleItem       `gorm:"foreignKey:SaleItemID"`
	ProductID      uint            `gorm:"column:product_id;not null;index" validate:"required"`
	Product        *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	ReturnQuantity decimal.Decimal `gorm:"column:return_quantity;type:numeric(10,3);not null" validate:"gt=0"`
	UnitPrice      decimal.Decimal `gorm:"column:unit_price;type:numeric(18,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"column:discount_amount;type:numeric(18,2);not null;default:0"`
	GSTRate        decimal.Decimal `gorm:"column:gst_rate;type:numeric(5,2);not null;default:0"`
	GSTAmount      decimal.Decimal `gorm:"column:gst_amount;type:numeric(18,2);not null;default:0"`
	LineTotal      decimal.Decimal `gorm:"column:line_total;type:numeric(18,2);not null"`
}
