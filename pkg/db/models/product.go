package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/khadihouse/pos-backend/pkg/enums"
)

// Product is a sellable garment or fabric variant. Prices carry two decimal
// places, stock quantities three (fabrics sell by fractional metre).
type Product struct {
	ID            uint                `gorm:"column:id;primaryKey;autoIncrement"`
	Name          string              `gorm:"column:name;size:150;not null;index"`
	Description   string              `gorm:"column:description;size:500"`
	CategoryID    uint                `gorm:"column:category_id;not null;index"`
	Category      *Category           `gorm:"foreignKey:CategoryID"`
	PurchasePrice decimal.Decimal     `gorm:"column:purchase_price;type:numeric(18,2);not null"`
	SalePrice     decimal.Decimal     `gorm:"column:sale_price;type:numeric(18,2);not null"`
	GSTRate       decimal.Decimal     `gorm:"column:gst_rate;type:numeric(5,2);not null"`
	StockQuantity decimal.Decimal     `gorm:"column:stock_quantity;type:numeric(10,3);not null;default:0"`
	MinimumStock  decimal.Decimal     `gorm:"column:minimum_stock;type:numeric(10,3);not null;default:0"`
	SKU           string              `gorm:"column:sku;size:50;index"`
	Fabric        string              `gorm:"column:fabric;size:50"`
	Color         string              `gorm:"column:color;size:30"`
	Size          string              `gorm:"column:size;size:20"`
	Pattern       string              `gorm:"column:pattern;size:30"`
	UnitOfMeasure enums.UnitOfMeasure `gorm:"column:unit_of_measure;size:10;not null;default:'pcs'"`
	IsActive      bool                `gorm:"column:is_active;not null;default:true;index"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
