package repo

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/khadihouse/pos-backend/internal/testdb"
	"github.com/khadihouse/pos-backend/pkg/db/models"
	"github.com/khadihouse/pos-backend/pkg/enums"
	pkgerrors "github.com/khadihouse/pos-backend/pkg/errors"
)

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, IsActive: true}
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedProduct(t *testing.T, db *gorm.DB, categoryID uint, name string) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:          name,
		CategoryID:    categoryID,
		PurchasePrice: decimal.NewFromInt(400),
		SalePrice:     decimal.NewFromInt(650),
		GSTRate:       decimal.NewFromInt(5),
		StockQuantity: decimal.NewFromInt(20),
		UnitOfMeasure: enums.UnitPiece,
		IsActive:      true,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) *models.Customer {
	t.Helper()
	customer := &models.Customer{Name: name, TotalPurchases: decimal.Zero}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func buildSale(customerID, productID uint, invoice string) *models.Sale {
	return &models.Sale{
		InvoiceNumber: invoice,
		SaleDate:      time.Now(),
		CustomerID:    customerID,
		PaymentMethod: enums.PaymentMethodCash,
		Subtotal:      decimal.NewFromInt(650),
		GSTAmount:     decimal.RequireFromString("32.50"),
		TotalAmount:   decimal.RequireFromString("682.50"),
		Status:        enums.SaleStatusCompleted,
		Items: []models.SaleItem{
			{
				ProductID:     productID,
				ProductName:   "Cotton Kurta",
				Quantity:      decimal.NewFromInt(1),
				UnitPrice:     decimal.NewFromInt(650),
				GSTRate:       decimal.NewFromInt(5),
				GSTAmount:     decimal.RequireFromString("32.50"),
				LineTotal:     decimal.RequireFromString("682.50"),
				UnitOfMeasure: enums.UnitPiece,
			},
		},
	}
}

func seedSale(t *testing.T, db *gorm.DB, customerID, productID uint, invoice string) *models.Sale {
	t.Helper()
	sale := buildSale(customerID, productID, invoice)
	require.NoError(t, NewSales(db).Create(context.Background(), sale))
	return sale
}

func seedReturn(t *testing.T, db *gorm.DB, sale *models.Sale, number string) *models.Return {
	t.Helper()
	item := sale.Items[0]
	ret := &models.Return{
		ReturnNumber: number,
		ReturnDate:   time.Now(),
		SaleID:       sale.ID,
		Subtotal:     item.UnitPrice,
		GSTAmount:    item.GSTAmount,
		TotalAmount:  item.LineTotal,
		Status:       enums.ReturnStatusCompleted,
		Items: []models.ReturnItem{
			{
				SaleItemID:     item.ID,
				ProductID:      item.ProductID,
				ReturnQuantity: decimal.NewFromInt(1),
				UnitPrice:      item.UnitPrice,
				GSTRate:        item.GSTRate,
				GSTAmount:      item.GSTAmount,
				LineTotal:      item.LineTotal,
			},
		},
	}
	require.NoError(t, NewReturns(db).Create(context.Background(), ret))
	return ret
}

func TestSalesCreateRejectsDiscountOutOfRange(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	category := seedCategory(t, db, "Kurtas")
	product := seedProduct(t, db, category.ID, "Cotton Kurta")
	customer := seedCustomer(t, db, "Walk-in Customer")

	sale := buildSale(customer.ID, product.ID, "KHD000101")
	sale.Items[0].ItemDiscountPercent = decimal.NewFromInt(150)

	err := NewSales(db).Create(ctx, sale)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	sale = buildSale(customer.ID, product.ID, "KHD000102")
	sale.Items[0].ItemDiscountAmount = decimal.NewFromInt(-10)

	err = NewSales(db).Create(ctx, sale)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestSaleItemDiscountChecksEnforcedByStorage(t *testing.T) {
	db := testdb.Open(t)
	category := seedCategory(t, db, "Kurtas")
	product := seedProduct(t, db, category.ID, "Cotton Kurta")
	customer := seedCustomer(t, db, "Walk-in Customer")
	sale := seedSale(t, db, customer.ID, product.ID, "KHD000103")

	// Writes that skip the validator still hit the table constraints.
	err := db.Create(&models.SaleItem{
		SaleID:              sale.ID,
		ProductID:           product.ID,
		ProductName:         product.Name,
		Quantity:            decimal.NewFromInt(1),
		UnitPrice:           product.SalePrice,
		LineTotal:           product.SalePrice,
		UnitOfMeasure:       enums.UnitPiece,
		ItemDiscountPercent: decimal.NewFromInt(150),
	}).Error
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCheckViolation(err))

	err = db.Create(&models.SaleItem{
		SaleID:             sale.ID,
		ProductID:          product.ID,
		ProductName:        product.Name,
		Quantity:           decimal.NewFromInt(1),
		UnitPrice:          product.SalePrice,
		LineTotal:          product.SalePrice,
		UnitOfMeasure:      enums.UnitPiece,
		ItemDiscountAmount: decimal.NewFromInt(-5),
	}).Error
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCheckViolation(err))
}

func TestSalesCreateDuplicateInvoiceConflict(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	category := seedCategory(t, db, "Kurtas")
	product := seedProduct(t, db, category.ID, "Cotton Kurta")
	customer := seedCustomer(t, db, "Walk-in Customer")
	seedSale(t, db, customer.ID, product.ID, "KHD000104")

	err := NewSales(db).Create(ctx, buildSale(customer.ID, product.ID, "KHD000104"))
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())
	assert.True(t, pkgerrors.IsUniqueViolation(err, "invoice_number"))
}

func TestReturnsCreateDuplicateNumberConflict(t *testing.T) {
	db := testdb.Open(t)
	category := seedCategory(t, db, "Kurtas")
	product := seedProduct(t, db, category.ID, "Cotton Kurta")
	customer := seedCustomer(t, db, "Walk-in Customer")
	sale := seedSale(t, db, customer.ID, product.ID, "KHD000105")
	seedReturn(t, db, sale, "KHR000001")

	ret := &models.Return{
		ReturnNumber: "KHR000001",
		ReturnDate:   time.Now(),
		SaleID:       sale.ID,
		Items: []models.ReturnItem{
			{
				SaleItemID:     sale.Items[0].ID,
				ProductID:      product.ID,
				ReturnQuantity: decimal.NewFromInt(1),
				UnitPrice:      product.SalePrice,
				LineTotal:      product.SalePrice,
			},
		},
	}
	err := NewReturns(db).Create(context.Background(), ret)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())
	assert.True(t, pkgerrors.IsUniqueViolation(err, "return_number"))
}

func TestCategoriesDeleteRestrictedThenAllowed(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	categories := NewCategories(db)
	kurtas := seedCategory(t, db, "Kurtas")
	sarees := seedCategory(t, db, "Sarees")
	product := seedProduct(t, db, kurtas.ID, "Cotton Kurta")

	err := categories.Delete(ctx, kurtas.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())

	product.CategoryID = sarees.ID
	require.NoError(t, NewProducts(db).Update(ctx, product))

	require.NoError(t, categories.Delete(ctx, kurtas.ID))

	_, err = categories.GetByID(ctx, kurtas.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestSalesDeleteCascadesItems(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	category := seedCategory(t, db, "Kurtas")
	product := seedProduct(t, db, category.ID, "Cotton Kurta")
	customer := seedCustomer(t, db, "Walk-in Customer")
	sale := seedSale(t, db, customer.ID, product.ID, "KHD000106")

	require.NoError(t, NewSales(db).Delete(ctx, sale.ID))

	var itemCount int64
	require.NoError(t, db.Model(&models.SaleItem{}).Where("sale_id = ?", sale.ID).Count(&itemCount).Error)
	assert.Zero(t, itemCount)
}

func TestReturnsDeleteCascadesItemsOnly(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	category := seedCategory(t, db, "Kurtas")
	product := seedProduct(t, db, category.ID, "Cotton Kurta")
	customer := seedCustomer(t, db, "Walk-in Customer")
	sale := seedSale(t, db, customer.ID, product.ID, "KHD000107")
	ret := seedReturn(t, db, sale, "KHR000002")

	require.NoError(t, NewReturns(db).Delete(ctx, ret.ID))

	var returnItems int64
	require.NoError(t, db.Model(&models.ReturnItem{}).Where("return_id = ?", ret.ID).Count(&returnItems).Error)
	assert.Zero(t, returnItems)

	// Original sale lines survive the return's removal.
	var saleItems int64
	require.NoError(t, db.Model(&models.SaleItem{}).Where("sale_id = ?", sale.ID).Count(&saleItems).Error)
	assert.EqualValues(t, 1, saleItems)
}

func TestSalesDeleteItemRestrictedByReturn(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	category := seedCategory(t, db, "Kurtas")
	product := seedProduct(t, db, category.ID, "Cotton Kurta")
	customer := seedCustomer(t, db, "Walk-in Customer")
	sale := seedSale(t, db, customer.ID, product.ID, "KHD000108")
	ret := seedReturn(t, db, sale, "KHR000003")

	sales := NewSales(db)
	err := sales.DeleteItem(ctx, sale.Items[0].ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())

	require.NoError(t, NewReturns(db).Delete(ctx, ret.ID))
	require.NoError(t, sales.DeleteItem(ctx, sale.Items[0].ID))
}

func TestProductsDeleteRestrictedBySaleHistory(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	category := seedCategory(t, db, "Kurtas")
	product := seedProduct(t, db, category.ID, "Cotton Kurta")
	customer := seedCustomer(t, db, "Walk-in Customer")
	seedSale(t, db, customer.ID, product.ID, "KHD000109")

	err := NewProducts(db).Delete(ctx, product.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())

	unsold := seedProduct(t, db, category.ID, "Silk Saree")
	require.NoError(t, NewProducts(db).Delete(ctx, unsold.ID))
}

func TestCustomersRecordPurchase(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	customers := NewCustomers(db)
	customer := seedCustomer(t, db, "Walk-in Customer")

	at := time.Now()
	total := decimal.RequireFromString("682.50")
	require.NoError(t, customers.RecordPurchase(ctx, customer.ID, total, at))

	got, err := customers.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalOrders)
	assert.True(t, got.TotalPurchases.Equal(total), "total purchases = %s", got.TotalPurchases)
	require.NotNil(t, got.LastPurchaseDate)

	err = customers.RecordPurchase(ctx, 9999, total, at)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestSettingsUpsertAndGet(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	settings := NewSettings(db)

	require.NoError(t, settings.Upsert(ctx, &models.Setting{
		Key:      "invoice_prefix",
		Value:    "KHD",
		Category: enums.SettingCategoryBilling,
	}))
	require.NoError(t, settings.Upsert(ctx, &models.Setting{
		Key:      "invoice_prefix",
		Value:    "KHX",
		Category: enums.SettingCategoryBilling,
	}))

	got, err := settings.Get(ctx, "invoice_prefix")
	require.NoError(t, err)
	assert.Equal(t, "KHX", got.Value)

	_, err = settings.Get(ctx, "missing_key")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestUsersUniqueUsername(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	users := NewUsers(db)

	require.NoError(t, users.Create(ctx, &models.User{
		Username:     "admin",
		Email:        "admin@khadihouse.in",
		FullName:     "Administrator",
		PasswordHash: "x",
		Role:         enums.UserRoleAdmin,
		IsActive:     true,
	}))
	err := users.Create(ctx, &models.User{
		Username:     "admin",
		Email:        "admin2@khadihouse.in",
		FullName:     "Administrator",
		PasswordHash: "x",
		Role:         enums.UserRoleAdmin,
		IsActive:     true,
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())

	got, err := users.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin@khadihouse.in", got.Email)
}
