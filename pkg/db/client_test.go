package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/khadihouse/pos-backend/pkg/config"
	"gorm.io/gorm"
)

func sqliteConfig(name string) config.DBConfig {
	return config.DBConfig{
		Driver: config.DriverSQLite,
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	}
}

func TestNew_RequiresDSN(t *testing.T) {
	if _, err := New(context.Background(), config.DBConfig{}, nil); err == nil {
		t.Fatal("expected missing DSN to error")
	}
}

func TestNew_SQLiteAndPing(t *testing.T) {
	client, err := New(context.Background(), sqliteConfig("client_ping"), nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer client.Close()

	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	client, err := New(context.Background(), sqliteConfig("client_tx"), nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	if err := client.Exec(ctx, "CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT)").Error; err != nil {
		t.Fatalf("create table: %v", err)
	}

	wantErr := fmt.Errorf("abort")
	err = client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Exec("INSERT INTO items (id, name) VALUES (1, 'kurta')").Error; err != nil {
			return err
		}
		return wantErr
	})
	if err != wantErr {
		t.Fatalf("expected fn error to propagate, got %v", err)
	}

	var count int64
	if err := client.Raw(ctx, "SELECT COUNT(*) FROM items").Scan(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rollback to discard the insert, found %d rows", count)
	}
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	client, err := New(context.Background(), sqliteConfig("client_tx_commit"), nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	if err := client.Exec(ctx, "CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT)").Error; err != nil {
		t.Fatalf("create table: %v", err)
	}

	err = client.WithTx(ctx, func(tx *gorm.DB) error {
		return tx.Exec("INSERT INTO items (id, name) VALUES (1, 'saree')").Error
	})
	if err != nil {
		t.Fatalf("WithTx returned error: %v", err)
	}

	var count int64
	if err := client.Raw(ctx, "SELECT COUNT(*) FROM items").Scan(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected committed row, found %d", count)
	}
}
