package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"questdo/internal/model"
)

// UserRepository persists the single user record as whole-object snapshots.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Load returns the stored user record. Absence is not an error: the second
// return value is false and the caller initializes defaults.
func (r *UserRepository) Load(ctx context.Context) (model.User, bool, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user).Error
	switch {
	case err == nil:
		return user, true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return model.NewUser(), false, nil
	default:
		return model.User{}, false, fmt.Errorf("load user: %w", err)
	}
}

// Save replaces the stored user record with the given snapshot.
func (r *UserRepository) Save(ctx context.Context, user model.User) error {
	if user.ID == 0 {
		user.ID = 1
	}
	if err := r.db.WithContext(ctx).Save(&user).Error; err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}
