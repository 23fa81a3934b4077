package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/khadihouse/pos-backend/pkg/db/models"
	pkgerrors "github.com/khadihouse/pos-backend/pkg/errors"
)

// Categories manages the product category table.
type Categories struct {
	Base
}

// NewCategories builds a Categories repository bound to the provided DB.
func NewCategories(db *gorm.DB) Categories {
	return Categories{Base: NewBase(db)}
}

func (r Categories) Create(ctx context.Context, category *models.Category) error {
	if err := r.DB(ctx).Create(category).Error; err != nil {
		return pkgerrors.FromStorage(err, "creating category")
	}
	return nil
}

func (r Categories) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.DB(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, fetchErr(err, "fetching category")
	}
	return &category, nil
}

func (r Categories) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.DB(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, pkgerrors.FromStorage(err, "listing categories")
	}
	return categories, nil
}

func (r Categories) Update(ctx context.Context, category *models.Category) error {
	if err := r.DB(ctx).Save(category).Error; err != nil {
		return pkgerrors.FromStorage(err, "updating category")
	}
	return nil
}

// Delete removes a category. Categories still referenced by products cannot
// be deleted; the caller must reassign or remove the products first. The
// existence query runs ahead of the delete so the error names the category
// instead of surfacing a bare driver message.
func (r Categories) Delete(ctx context.Context, id uint) error {
	var productCount int64
	err := r.DB(ctx).Model(&models.Product{}).
		Where("category_id = ?", id).
		Count(&productCount).Error
	if err != nil {
		return pkgerrors.FromStorage(err, "checking category references")
	}
	if productCount > 0 {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "category has products").
			WithDetails(map[string]any{"category_id": id, "product_count": productCount})
	}

	res := r.DB(ctx).Where("id = ?", id).Delete(&models.Category{})
	if res.Error != nil {
		return pkgerrors.FromStorage(res.Error, "deleting category")
	}
	if res.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
	}
	return nil
}
