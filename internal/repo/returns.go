package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/khadihouse/pos-backend/pkg/db/models"
	pkgerrors "github.com/khadihouse/pos-backend/pkg/errors"
)

// Returns manages sales returns and their line items.
type Returns struct {
	Base
}

// NewReturns builds a Returns repository bound to the provided DB.
func NewReturns(db *gorm.DB) Returns {
	return Returns{Base: NewBase(db)}
}

// Create validates the return and writes the header and all items in one
// transaction. A duplicate return number surfaces as a conflict.
func (r Returns) Create(ctx context.Context, ret *models.Return) error {
	if err := validateStruct(ret); err != nil {
		return err
	}
	err := r.DB(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(ret).Error
	})
	if err != nil {
		return pkgerrors.FromStorage(err, "creating return")
	}
	return nil
}

func (r Returns) GetByID(ctx context.Context, id uint) (*models.Return, error) {
	var ret models.Return
	err := r.DB(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&ret).Error
	if err != nil {
		return nil, fetchErr(err, "fetching return")
	}
	return &ret, nil
}

func (r Returns) GetByNumber(ctx context.Context, returnNumber string) (*models.Return, error) {
	var ret models.Return
	err := r.DB(ctx).
		Preload("Items").
		Where("return_number = ?", returnNumber).
		First(&ret).Error
	if err != nil {
		return nil, fetchErr(err, "fetching return by number")
	}
	return &ret, nil
}

// ListBySale returns all returns raised against a sale.
func (r Returns) ListBySale(ctx context.Context, saleID uint) ([]models.Return, error) {
	var rets []models.Return
	err := r.DB(ctx).
		Preload("Items").
		Where("sale_id = ?", saleID).
		Order("return_date ASC").
		Find(&rets).Error
	if err != nil {
		return nil, pkgerrors.FromStorage(err, "listing returns by sale")
	}
	return rets, nil
}

// Delete removes a return header; its items go with it at the storage layer.
// The original sale items stay untouched.
func (r Returns) Delete(ctx context.Context, id uint) error {
	res := r.DB(ctx).Where("id = ?", id).Delete(&models.Return{})
	if res.Error != nil {
		return pkgerrors.FromStorage(res.Error, "deleting return")
	}
	if res.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "return not found")
	}
	return nil
}
