package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/khadihouse/pos-backend/pkg/db/models"
	pkgerrors "github.com/khadihouse/pos-backend/pkg/errors"
)

// Users manages staff accounts.
type Users struct {
	Base
}

// NewUsers builds a Users repository bound to the provided DB.
func NewUsers(db *gorm.DB) Users {
	return Users{Base: NewBase(db)}
}

func (r Users) Create(ctx context.Context, user *models.User) error {
	if err := r.DB(ctx).Create(user).Error; err != nil {
		return pkgerrors.FromStorage(err, "creating user")
	}
	return nil
}

func (r Users) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, fetchErr(err, "fetching user")
	}
	return &user, nil
}
