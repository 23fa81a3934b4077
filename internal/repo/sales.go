package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/khadihouse/pos-backend/pkg/db/models"
	pkgerrors "github.com/khadihouse/pos-backend/pkg/errors"
)

// Sales manages sale headers and their line items.
type Sales struct {
	Base
}

// NewSales builds a Sales repository bound to the provided DB.
func NewSales(db *gorm.DB) Sales {
	return Sales{Base: NewBase(db)}
}

// Create validates the sale and writes the header and all items in one
// transaction. A duplicate invoice number surfaces as a conflict.
func (r Sales) Create(ctx context.Context, sale *models.Sale) error {
	if err := validateStruct(sale); err != nil {
		return err
	}
	err := r.DB(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(sale).Error
	})
	if err != nil {
		return pkgerrors.FromStorage(err, "creating sale")
	}
	return nil
}

func (r Sales) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB(ctx).Model(&models.Sale{}).Count(&count).Error; err != nil {
		return 0, pkgerrors.FromStorage(err, "counting sales")
	}
	return count, nil
}

func (r Sales) GetByID(ctx context.Context, id uint) (*models.Sale, error) {
	var sale models.Sale
	err := r.DB(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&sale).Error
	if err != nil {
		return nil, fetchErr(err, "fetching sale")
	}
	return &sale, nil
}

func (r Sales) GetByInvoice(ctx context.Context, invoiceNumber string) (*models.Sale, error) {
	var sale models.Sale
	err := r.DB(ctx).
		Preload("Items").
		Where("invoice_number = ?", invoiceNumber).
		First(&sale).Error
	if err != nil {
		return nil, fetchErr(err, "fetching sale by invoice")
	}
	return &sale, nil
}

// Delete removes a sale header; its items go with it at the storage layer.
func (r Sales) Delete(ctx context.Context, id uint) error {
	res := r.DB(ctx).Where("id = ?", id).Delete(&models.Sale{})
	if res.Error != nil {
		return pkgerrors.FromStorage(res.Error, "deleting sale")
	}
	if res.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "sale not found")
	}
	return nil
}

// DeleteItem removes a single sale line. Lines already referenced by a
// return carry its lineage and cannot be removed.
func (r Sales) DeleteItem(ctx context.Context, itemID uint) error {
	var returnRefs int64
	err := r.DB(ctx).Model(&models.ReturnItem{}).
		Where("sale_item_id = ?", itemID).
		Count(&returnRefs).Error
	if err != nil {
		return pkgerrors.FromStorage(err, "checking sale item return references")
	}
	if returnRefs > 0 {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "sale item is referenced by a return").
			WithDetails(map[string]any{"sale_item_id": itemID, "return_items": returnRefs})
	}

	res := r.DB(ctx).Where("id = ?", itemID).Delete(&models.SaleItem{})
	if res.Error != nil {
		return pkgerrors.FromStorage(res.Error, "deleting sale item")
	}
	if res.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "sale item not found")
	}
	return nil
}
