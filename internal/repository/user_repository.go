package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"worktray/internal/model"
)

// UserRepository appends to the users table. Rows are write-only: the
// tracker never queries them, it only records created identities.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create records a new identity.
func (r *UserRepository) Create(ctx context.Context, id model.Identity) error {
	user := model.User{Name: id.Name, UserNumber: id.UserNumber}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}
