// Package seed installs the fixed reference dataset a fresh store starts
// with: categories, settings, the admin account, a small catalog and two
// customers.
package seed

import (
	"context"

	"go.uber.org/multierr"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/khadihouse/pos-backend/pkg/config"
	"github.com/khadihouse/pos-backend/pkg/db/models"
	"github.com/khadihouse/pos-backend/pkg/enums"
	pkgerrors "github.com/khadihouse/pos-backend/pkg/errors"
	"github.com/khadihouse/pos-backend/pkg/logger"
	"github.com/khadihouse/pos-backend/pkg/security"
)

// Loader applies the seed dataset.
type Loader struct {
	db  *gorm.DB
	cfg *config.Config
	log *logger.Logger
}

// New builds a Loader.
func New(db *gorm.DB, cfg *config.Config, log *logger.Logger) *Loader {
	return &Loader{db: db, cfg: cfg, log: log}
}

// Apply ensures every seed row exists, keyed by its fixed identifier.
// Existing rows are left untouched, so the operation is safe to run on
// every startup. Row-level failures are collected rather than aborting
// the whole pass.
func (l *Loader) Apply(ctx context.Context) error {
	var errs error

	for _, category := range categories() {
		errs = multierr.Append(errs, l.ensure(ctx, &category, "category", category.Name))
	}
	for _, setting := range settings() {
		errs = multierr.Append(errs, l.ensure(ctx, &setting, "setting", setting.Key))
	}

	admin, err := l.adminUser()
	if err != nil {
		errs = multierr.Append(errs, err)
	} else {
		errs = multierr.Append(errs, l.ensure(ctx, admin, "user", admin.Username))
	}

	for _, product := range products() {
		errs = multierr.Append(errs, l.ensure(ctx, &product, "product", product.Name))
	}
	for _, customer := range customers() {
		errs = multierr.Append(errs, l.ensure(ctx, &customer, "customer", customer.Name))
	}

	if errs == nil && l.log != nil {
		l.log.Info(ctx, "seed dataset applied")
	}
	return errs
}

// ensure inserts the row unless a row with its identifier already exists.
func (l *Loader) ensure(ctx context.Context, row any, kind, name string) error {
	err := l.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row).Error
	if err != nil {
		return pkgerrors.FromStorage(err, "seeding "+kind+" "+name)
	}
	return nil
}

func (l *Loader) adminUser() (*models.User, error) {
	hash, err := security.HashPassword(l.cfg.Store.DefaultAdminPassword, l.cfg.Password)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing default admin password")
	}
	return &models.User{
		ID:           1,
		Username:     "admin",
		Email:        "admin@khadihouse.in",
		FullName:     "Store Administrator",
		PasswordHash: hash,
		Role:         enums.UserRoleAdmin,
		IsActive:     true,
	}, nil
}
