package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer tracks purchase aggregates alongside contact details. The
// aggregates are maintained by sale processing, not derived on read.
type Customer struct {
	ID               uint            `gorm:"column:id;primaryKey;autoIncrement"`
	Name             string          `gorm:"column:name;size:100;not null;index"`
	Phone            string          `gorm:"column:phone;size:15"`
	Email            string          `gorm:"column:email;size:100"`
	Address          string          `gorm:"column:address;size:255"`
	TotalOrders      int             `gorm:"column:total_orders;not null;default:0"`
	TotalPurchases   decimal.Decimal `gorm:"column:total_purchases;type:numeric(18,2);not null;default:0"`
	LastPurchaseDate *time.Time      `gorm:"column:last_purchase_date"`
}
