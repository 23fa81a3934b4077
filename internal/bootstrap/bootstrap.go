// Package bootstrap brings a store online: schema at the latest version,
// reference data present, and optionally one demonstration sale.
package bootstrap

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/khadihouse/pos-backend/internal/repo"
	"github.com/khadihouse/pos-backend/internal/seed"
	"github.com/khadihouse/pos-backend/pkg/config"
	"github.com/khadihouse/pos-backend/pkg/db"
	"github.com/khadihouse/pos-backend/pkg/db/models"
	"github.com/khadihouse/pos-backend/pkg/enums"
	pkgerrors "github.com/khadihouse/pos-backend/pkg/errors"
	"github.com/khadihouse/pos-backend/pkg/logger"
	"github.com/khadihouse/pos-backend/pkg/metrics"
	"github.com/khadihouse/pos-backend/pkg/migrate"
)

const (
	demoInvoiceNumber = "KHD000001"
	demoCustomerID    = 1
	demoProductID     = 1
)

// Initializer wires schema migration, seeding and the demo sale.
type Initializer struct {
	client        *db.Client
	cfg           *config.Config
	log           *logger.Logger
	metrics       *metrics.BootstrapMetrics
	migrationsDir string
}

// New builds an Initializer using the shipped migrations directory.
func New(client *db.Client, cfg *config.Config, log *logger.Logger, m *metrics.BootstrapMetrics) *Initializer {
	return &Initializer{
		client:        client,
		cfg:           cfg,
		log:           log,
		metrics:       m,
		migrationsDir: migrate.DefaultDir,
	}
}

// WithMigrationsDir points the initializer at a different migrations
// directory.
func (i *Initializer) WithMigrationsDir(dir string) *Initializer {
	i.migrationsDir = dir
	return i
}

// EnsureSchema applies any unapplied migrations and is a no-op when the
// schema is already at the latest version. Errors here are fatal to
// startup.
func (i *Initializer) EnsureSchema(ctx context.Context) error {
	return i.timed(ctx, "ensure_schema", i.ensureSchema)
}

// EnsureSchemaAsync runs EnsureSchema off the calling goroutine. The
// caller awaits the returned channel; semantics are identical to the
// blocking variant.
func (i *Initializer) EnsureSchemaAsync(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- i.EnsureSchema(ctx)
	}()
	return done
}

func (i *Initializer) ensureSchema(ctx context.Context) error {
	sqlDB, err := i.client.SQLDB()
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "acquiring database handle")
	}
	dialect := migrate.Dialect(i.cfg.DB)

	pending, err := migrate.HasPending(ctx, sqlDB, dialect, i.migrationsDir)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "checking schema version")
	}
	if !pending {
		i.info(ctx, "schema already at latest version")
		return nil
	}

	if err := migrate.UpToLatest(ctx, sqlDB, dialect, i.migrationsDir); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "applying migrations")
	}
	i.info(ctx, "schema migrated to latest version")
	return nil
}

// ApplySeed installs the reference dataset.
func (i *Initializer) ApplySeed(ctx context.Context) error {
	return i.timed(ctx, "seed_dataset", func(ctx context.Context) error {
		return seed.New(i.client.DB(), i.cfg, i.log).Apply(ctx)
	})
}

// SeedDemoSale inserts one demonstration sale when the sales table is
// empty: invoice KHD000001 against the walk-in customer for the first
// catalog product, with the customer's aggregates updated to match. The
// whole write runs in one transaction, so a missing customer or product
// leaves nothing behind. Any existing sale makes this a no-op.
func (i *Initializer) SeedDemoSale(ctx context.Context) error {
	return i.timed(ctx, "demo_sale", i.seedDemoSale)
}

func (i *Initializer) seedDemoSale(ctx context.Context) error {
	return i.client.WithTx(ctx, func(tx *gorm.DB) error {
		sales := repo.NewSales(tx)

		count, err := sales.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			i.info(ctx, "sales exist, demo sale skipped")
			return nil
		}

		product, err := repo.NewProducts(tx).GetByID(ctx, demoProductID)
		if err != nil {
			return err
		}

		saleDate := time.Now()
		subtotal := product.SalePrice
		gst := subtotal.Mul(product.GSTRate).Div(decimal.NewFromInt(100)).Round(2)
		total := subtotal.Add(gst)

		sale := &models.Sale{
			InvoiceNumber: demoInvoiceNumber,
			SaleDate:      saleDate,
			CustomerID:    demoCustomerID,
			PaymentMethod: enums.PaymentMethodCash,
			Subtotal:      subtotal,
			GSTAmount:     gst,
			TotalAmount:   total,
			Status:        enums.SaleStatusCompleted,
			Items: []models.SaleItem{
				{
					ProductID:     product.ID,
					ProductName:   product.Name,
					Quantity:      decimal.NewFromInt(1),
					UnitPrice:     product.SalePrice,
					GSTRate:       product.GSTRate,
					GSTAmount:     gst,
					LineTotal:     total,
					UnitOfMeasure: product.UnitOfMeasure,
				},
			},
		}
		if err := sales.Create(ctx, sale); err != nil {
			return err
		}

		return repo.NewCustomers(tx).RecordPurchase(ctx, demoCustomerID, total, saleDate)
	})
}

func (i *Initializer) timed(ctx context.Context, step string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	if i.metrics != nil {
		i.metrics.ObserveDuration(step, time.Since(start))
		if err != nil {
			i.metrics.IncFailure(step)
		} else {
			i.metrics.IncSuccess(step)
		}
	}
	return err
}

func (i *Initializer) info(ctx context.Context, msg string) {
	if i.log != nil {
		i.log.Info(ctx, msg)
	}
}
