// Package testdb opens throwaway in-memory sqlite databases carrying the
// store schema, for repository and bootstrap tests.
package testdb

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open returns a fresh in-memory database with the full schema applied.
// Each test gets its own named database so parallel packages do not share
// state. Foreign keys are switched on via the DSN so cascade and restrict
// actions behave like the real deployment.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	ApplySchema(t, db)
	return db
}

// ApplySchema installs the store schema on an already-open connection.
func ApplySchema(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, stmt := range schemaStatements {
		require.NoError(t, db.Exec(stmt).Error)
	}
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME
);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_categories_name ON categories (name);`,
	`CREATE TABLE IF NOT EXISTS products (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT,
  category_id INTEGER NOT NULL,
  purchase_price NUMERIC NOT NULL,
  sale_price NUMERIC NOT NULL,
  gst_rate NUMERIC NOT NULL,
  stock_quantity NUMERIC NOT NULL DEFAULT 0,
  minimum_stock NUMERIC NOT NULL DEFAULT 0,
  sku TEXT,
  fabric TEXT,
  color TEXT,
  size TEXT,
  pattern TEXT,
  unit_of_measure TEXT NOT NULL DEFAULT 'pcs',
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME,
  CONSTRAINT fk_products_category FOREIGN KEY (category_id) REFERENCES categories (id) ON DELETE RESTRICT
);`,
	`CREATE TABLE IF NOT EXISTS customers (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  phone TEXT,
  email TEXT,
  address TEXT,
  total_orders INTEGER NOT NULL DEFAULT 0,
  total_purchases NUMERIC NOT NULL DEFAULT 0,
  last_purchase_date DATETIME
);`,
	`CREATE TABLE IF NOT EXISTS sales (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  invoice_number TEXT NOT NULL,
  sale_date DATETIME NOT NULL,
  customer_id INTEGER NOT NULL,
  payment_method TEXT NOT NULL DEFAULT 'cash',
  subtotal NUMERIC NOT NULL DEFAULT 0,
  gst_amount NUMERIC NOT NULL DEFAULT 0,
  discount_percent NUMERIC NOT NULL DEFAULT 0,
  discount_amount NUMERIC NOT NULL DEFAULT 0,
  total_amount NUMERIC NOT NULL DEFAULT 0,
  status TEXT NOT NULL DEFAULT 'completed',
  created_at DATETIME,
  CONSTRAINT fk_sales_customer FOREIGN KEY (customer_id) REFERENCES customers (id) ON DELETE RESTRICT
);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_sales_invoice_number ON sales (invoice_number);`,
	`CREATE TABLE IF NOT EXISTS sale_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  sale_id INTEGER NOT NULL,
  product_id INTEGER NOT NULL,
  product_name TEXT NOT NULL,
  quantity NUMERIC NOT NULL,
  unit_price NUMERIC NOT NULL,
  gst_rate NUMERIC NOT NULL DEFAULT 0,
  gst_amount NUMERIC NOT NULL DEFAULT 0,
  line_total NUMERIC NOT NULL,
  unit_of_measure TEXT NOT NULL DEFAULT 'pcs',
  item_discount_percent NUMERIC NOT NULL DEFAULT 0,
  item_discount_amount NUMERIC NOT NULL DEFAULT 0,
  CONSTRAINT fk_sale_items_sale FOREIGN KEY (sale_id) REFERENCES sales (id) ON DELETE CASCADE,
  CONSTRAINT fk_sale_items_product FOREIGN KEY (product_id) REFERENCES products (id) ON DELETE RESTRICT,
  CONSTRAINT chk_sale_items_discount_percent CHECK (item_discount_percent >= 0 AND item_discount_percent <= 100),
  CONSTRAINT chk_sale_items_discount_amount CHECK (item_discount_amount >= 0)
);`,
	`CREATE TABLE IF NOT EXISTS returns (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  return_number TEXT NOT NULL,
  return_date DATETIME NOT NULL,
  sale_id INTEGER NOT NULL,
  subtotal NUMERIC NOT NULL DEFAULT 0,
  gst_amount NUMERIC NOT NULL DEFAULT 0,
  discount_amount NUMERIC NOT NULL DEFAULT 0,
  total_amount NUMERIC NOT NULL DEFAULT 0,
  status TEXT NOT NULL DEFAULT 'completed',
  created_at DATETIME,
  CONSTRAINT fk_returns_sale FOREIGN KEY (sale_id) REFERENCES sales (id) ON DELETE RESTRICT
);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_returns_return_number ON returns (return_number);`,
	`CREATE TABLE IF NOT EXISTS return_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  return_id INTEGER NOT NULL,
  sale_item_id INTEGER NOT NULL,
  product_id INTEGER NOT NULL,
  return_quantity NUMERIC NOT NULL,
  unit_price NUMERIC NOT NULL,
  discount_amount NUMERIC NOT NULL DEFAULT 0,
  gst_rate NUMERIC NOT NULL DEFAULT 0,
  gst_amount NUMERIC NOT NULL DEFAULT 0,
  line_total NUMERIC NOT NULL,
  CONSTRAINT fk_return_items_return FOREIGN KEY (return_id) REFERENCES returns (id) ON DELETE CASCADE,
  CONSTRAINT fk_return_items_sale_item FOREIGN KEY (sale_item_id) REFERENCES sale_items (id) ON DELETE RESTRICT,
  CONSTRAINT fk_return_items_product FOREIGN KEY (product_id) REFERENCES products (id) ON DELETE RESTRICT
);`,
	`CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT NOT NULL,
  email TEXT NOT NULL,
  full_name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'cashier',
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME
);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_username ON users (username);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_email ON users (email);`,
	`CREATE TABLE IF NOT EXISTS settings (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  key TEXT NOT NULL,
  value TEXT NOT NULL,
  description TEXT,
  category TEXT NOT NULL DEFAULT 'store'
);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_settings_key ON settings (key);`,
}
