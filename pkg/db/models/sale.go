package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/khadihouse/pos-backend/pkg/enums"
)

// Sale is the transaction header. Invoice numbers are unique at the storage
// layer; deleting a sale removes its items.
type Sale struct {
	ID              uint                `gorm:"column:id;primaryKey;autoIncrement"`
	InvoiceNumber   string              `gorm:"column:invoice_number;size:20;not null;uniqueIndex:uq_sales_invoice_number" validate:"required,max=20"`
	SaleDate        time.Time           `gorm:"column:sale_date;not null;index"`
	CustomerID      uint                `gorm:"column:customer_id;not null;index" validate:"required"`
	Customer        *Customer           `gorm:"foreignKey:CustomerID"`
	PaymentMethod   enums.PaymentMethod `gorm:"column:payment_method;size:10;not null;default:'cash'"`
	Subtotal        decimal.Decimal     `gorm:"column:subtotal;type:numeric(18,2);not null;default:0"`
	GSTAmount       decimal.Decimal     `gorm:"column:gst_amount;type:numeric(18,2);not null;default:0"`
	DiscountPercent decimal.Decimal     `gorm:"column:discount_percent;type:numeric(5,2);not null;default:0"`
	DiscountAmount  decimal.Decimal     `gorm:"column:discount_amount;type:numeric(18,2);not null;default:0"`
	TotalAmount     decimal.Decimal     `gorm:"column:total_amount;type:numeric(18,2);not null;default:0"`
	Status          enums.SaleStatus    `gorm:"column:status;size:10;not null;default:'completed';index"`
	Items           []SaleItem          `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" validate:"min=1,dive"`
	CreatedAt       time.Time           `gorm:"column:created_at;autoCreateTime"`
}
