package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/khadihouse/pos-backend/pkg/db/models"
	pkgerrors "github.com/khadihouse/pos-backend/pkg/errors"
)

// Products manages the product catalog.
type Products struct {
	Base
}

// NewProducts builds a Products repository bound to the provided DB.
func NewProducts(db *gorm.DB) Products {
	return Products{Base: NewBase(db)}
}

func (r Products) Create(ctx context.Context, product *models.Product) error {
	if err := r.DB(ctx).Create(product).Error; err != nil {
		return pkgerrors.FromStorage(err, "creating product")
	}
	return nil
}

func (r Products) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, fetchErr(err, "fetching product")
	}
	return &product, nil
}

func (r Products) ListActive(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.DB(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&products).Error
	if err != nil {
		return nil, pkgerrors.FromStorage(err, "listing products")
	}
	return products, nil
}

// ListByCategory returns the products filed under a category.
func (r Products) ListByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.DB(ctx).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&products).Error
	if err != nil {
		return nil, pkgerrors.FromStorage(err, "listing products by category")
	}
	return products, nil
}

func (r Products) Update(ctx context.Context, product *models.Product) error {
	if err := r.DB(ctx).Save(product).Error; err != nil {
		return pkgerrors.FromStorage(err, "updating product")
	}
	return nil
}

// Delete removes a product. Products referenced by sale or return lines are
// sale history and cannot be deleted.
func (r Products) Delete(ctx context.Context, id uint) error {
	var saleRefs int64
	err := r.DB(ctx).Model(&models.SaleItem{}).
		Where("product_id = ?", id).
		Count(&saleRefs).Error
	if err != nil {
		return pkgerrors.FromStorage(err, "checking product sale references")
	}
	var returnRefs int64
	err = r.DB(ctx).Model(&models.ReturnItem{}).
		Where("product_id = ?", id).
		Count(&returnRefs).Error
	if err != nil {
		return pkgerrors.FromStorage(err, "checking product return references")
	}
	if saleRefs > 0 || returnRefs > 0 {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "product is referenced by sale history").
			WithDetails(map[string]any{"product_id": id, "sale_items": saleRefs, "return_items": returnRefs})
	}

	res := r.DB(ctx).Where("id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return pkgerrors.FromStorage(res.Error, "deleting product")
	}
	if res.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return nil
}
