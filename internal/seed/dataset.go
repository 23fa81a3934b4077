package seed

import (
	"github.com/shopspring/decimal"

	"github.com/khadihouse/pos-backend/pkg/db/models"
	"github.com/khadihouse/pos-backend/pkg/enums"
)

// The dataset carries explicit identifiers so repeated applies land on the
// same rows.

func categories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Kurtas", Description: "Men's and women's khadi kurtas", IsActive: true},
		{ID: 2, Name: "Sarees", Description: "Handwoven khadi and silk sarees", IsActive: true},
		{ID: 3, Name: "Fabrics", Description: "Khadi fabric sold by the metre", IsActive: true},
		{ID: 4, Name: "Dupattas", Description: "Dupattas and stoles", IsActive: true},
		{ID: 5, Name: "Bedsheets", Description: "Bedsheets and bed linen", IsActive: true},
		{ID: 6, Name: "Towels", Description: "Khadi towels and napkins", IsActive: true},
		{ID: 7, Name: "Accessories", Description: "Bags, caps and other accessories", IsActive: true},
	}
}

func settings() []models.Setting {
	return []models.Setting{
		{ID: 1, Key: "store_name", Value: "Khadi House", Description: "Store display name", Category: enums.SettingCategoryStore},
		{ID: 2, Key: "store_address", Value: "14 MG Road, Ahmedabad, Gujarat 380001", Description: "Printed on invoices", Category: enums.SettingCategoryStore},
		{ID: 3, Key: "store_phone", Value: "+91-9876543210", Description: "Store contact number", Category: enums.SettingCategoryStore},
		{ID: 4, Key: "gst_number", Value: "24AAACK1234F1Z5", Description: "GST registration number", Category: enums.SettingCategoryBilling},
		{ID: 5, Key: "invoice_prefix", Value: "KHD", Description: "Prefix for sale invoice numbers", Category: enums.SettingCategoryBilling},
		{ID: 6, Key: "return_prefix", Value: "KHR", Description: "Prefix for return numbers", Category: enums.SettingCategoryBilling},
		{ID: 7, Key: "default_gst_rate", Value: "5.00", Description: "Default GST percentage for new products", Category: enums.SettingCategoryBilling},
		{ID: 8, Key: "low_stock_threshold", Value: "10", Description: "Stock level that flags a product for reorder", Category: enums.SettingCategoryInventory},
		{ID: 9, Key: "currency", Value: "INR", Description: "Billing currency", Category: enums.SettingCategoryStore},
	}
}

func products() []models.Product {
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	qty := func(n int64) decimal.Decimal { return decimal.NewFromInt(n) }
	return []models.Product{
		{
			ID: 1, Name: "Cotton Kurta - White", CategoryID: 1,
			PurchasePrice: price("400.00"), SalePrice: price("650.00"), GSTRate: price("5.00"),
			StockQuantity: qty(25), MinimumStock: qty(5),
			SKU: "KRT-WHT-M", Fabric: "Cotton Khadi", Color: "White", Size: "M",
			UnitOfMeasure: enums.UnitPiece, IsActive: true,
		},
		{
			ID: 2, Name: "Cotton Kurta - Blue", CategoryID: 1,
			PurchasePrice: price("420.00"), SalePrice: price("680.00"), GSTRate: price("5.00"),
			StockQuantity: qty(18), MinimumStock: qty(5),
			SKU: "KRT-BLU-M", Fabric: "Cotton Khadi", Color: "Indigo Blue", Size: "M",
			UnitOfMeasure: enums.UnitPiece, IsActive: true,
		},
		{
			ID: 3, Name: "Silk Kurta - Cream", CategoryID: 1,
			PurchasePrice: price("900.00"), SalePrice: price("1450.00"), GSTRate: price("5.00"),
			StockQuantity: qty(10), MinimumStock: qty(3),
			SKU: "KRT-CRM-L", Fabric: "Khadi Silk", Color: "Cream", Size: "L",
			UnitOfMeasure: enums.UnitPiece, IsActive: true,
		},
		{
			ID: 4, Name: "Linen Kurta - Olive", CategoryID: 1,
			PurchasePrice: price("750.00"), SalePrice: price("1200.00"), GSTRate: price("5.00"),
			StockQuantity: qty(12), MinimumStock: qty(3),
			SKU: "KRT-OLV-XL", Fabric: "Linen", Color: "Olive", Size: "XL",
			UnitOfMeasure: enums.UnitPiece, IsActive: true,
		},
		{
			ID: 5, Name: "Khadi Saree - Red Border", CategoryID: 2,
			PurchasePrice: price("1100.00"), SalePrice: price("1850.00"), GSTRate: price("5.00"),
			StockQuantity: qty(8), MinimumStock: qty(2),
			SKU: "SAR-RED", Fabric: "Cotton Khadi", Color: "Off-white/Red", Pattern: "Woven border",
			UnitOfMeasure: enums.UnitPiece, IsActive: true,
		},
		{
			ID: 6, Name: "Silk Saree - Peacock", CategoryID: 2,
			PurchasePrice: price("2400.00"), SalePrice: price("3900.00"), GSTRate: price("5.00"),
			StockQuantity: qty(5), MinimumStock: qty(2),
			SKU: "SAR-PCK", Fabric: "Khadi Silk", Color: "Peacock Green", Pattern: "Zari",
			UnitOfMeasure: enums.UnitPiece, IsActive: true,
		},
		{
			ID: 7, Name: "Tussar Saree - Natural", CategoryID: 2,
			PurchasePrice: price("1900.00"), SalePrice: price("3100.00"), GSTRate: price("5.00"),
			StockQuantity: qty(6), MinimumStock: qty(2),
			SKU: "SAR-TSR", Fabric: "Tussar Silk", Color: "Natural", Pattern: "Plain",
			UnitOfMeasure: enums.UnitPiece, IsActive: true,
		},
		{
			ID: 8, Name: "Single Bedsheet - Striped", CategoryID: 5,
			PurchasePrice: price("350.00"), SalePrice: price("560.00"), GSTRate: price("5.00"),
			StockQuantity: qty(30), MinimumStock: qty(8),
			SKU: "BED-SGL-STR", Fabric: "Cotton Khadi", Color: "Multi", Size: "Single", Pattern: "Striped",
			UnitOfMeasure: enums.UnitPiece, IsActive: true,
		},
		{
			ID: 9, Name: "Double Bedsheet Set - Floral", CategoryID: 5,
			PurchasePrice: price("620.00"), SalePrice: price("980.00"), GSTRate: price("5.00"),
			StockQuantity: qty(20), MinimumStock: qty(5),
			SKU: "BED-DBL-FLR", Fabric: "Cotton Khadi", Color: "Multi", Size: "Double", Pattern: "Floral",
			UnitOfMeasure: enums.UnitSet, IsActive: true,
		},
	}
}

func customers() []models.Customer {
	return []models.Customer{
		{ID: 1, Name: "Walk-in Customer", TotalPurchases: decimal.Zero},
		{
			ID: 2, Name: "Ramesh Patel", Phone: "+91-9825012345",
			Email: "ramesh.patel@example.com", Address: "22 Ashram Road, Ahmedabad",
			TotalPurchases: decimal.Zero,
		},
	}
}
