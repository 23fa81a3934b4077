package repo

import (
	"context"
	stdErrors "errors"

	"gorm.io/gorm"

	pkgerrors "github.com/khadihouse/pos-backend/pkg/errors"
)

// Base provides a shared foundation for domain repositories.
type Base struct {
	db *gorm.DB
}

// NewBase constructs a Base repository backed by the provided GORM connection.
func NewBase(db *gorm.DB) Base {
	return Base{db: db}
}

// DB returns the GORM connection bound to the supplied context (if any).
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}

// fetchErr maps a read failure onto the shared taxonomy.
func fetchErr(err error, message string) error {
	if stdErrors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, message)
	}
	return pkgerrors.FromStorage(err, message)
}
