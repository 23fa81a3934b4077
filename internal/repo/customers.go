package repo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/khadihouse/pos-backend/pkg/db/models"
	pkgerrors "github.com/khadihouse/pos-backend/pkg/errors"
)

// Customers manages the customer table and its purchase aggregates.
type Customers struct {
	Base
}

// NewCustomers builds a Customers repository bound to the provided DB.
func NewCustomers(db *gorm.DB) Customers {
	return Customers{Base: NewBase(db)}
}

func (r Customers) Create(ctx context.Context, customer *models.Customer) error {
	if err := r.DB(ctx).Create(customer).Error; err != nil {
		return pkgerrors.FromStorage(err, "creating customer")
	}
	return nil
}

func (r Customers) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.DB(ctx).Where("id = ?", id).First(&customer).Error; err != nil {
		return nil, fetchErr(err, "fetching customer")
	}
	return &customer, nil
}

func (r Customers) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.DB(ctx).Order("name ASC").Find(&customers).Error; err != nil {
		return nil, pkgerrors.FromStorage(err, "listing customers")
	}
	return customers, nil
}

// RecordPurchase folds a completed sale into the customer's aggregates:
// order count up by one, total purchases up by the sale total, last
// purchase date stamped.
func (r Customers) RecordPurchase(ctx context.Context, id uint, total decimal.Decimal, at time.Time) error {
	res := r.DB(ctx).Model(&models.Customer{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"total_orders":       gorm.Expr("total_orders + 1"),
			"total_purchases":    gorm.Expr("total_purchases + ?", total),
			"last_purchase_date": at,
		})
	if res.Error != nil {
		return pkgerrors.FromStorage(res.Error, "recording purchase")
	}
	if res.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "customer not found").
			WithDetails(map[string]any{"customer_id": id})
	}
	return nil
}
