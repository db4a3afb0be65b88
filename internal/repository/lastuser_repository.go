package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"worktray/internal/model"
)

// LastUserRepository holds the single auto-resume identity.
type LastUserRepository struct {
	db *gorm.DB
}

func NewLastUserRepository(db *gorm.DB) *LastUserRepository {
	return &LastUserRepository{db: db}
}

// Get returns the stored identity, or nil when no user has logged in yet.
func (r *LastUserRepository) Get(ctx context.Context) (*model.Identity, error) {
	var row model.LastUser
	err := r.db.WithContext(ctx).First(&row).Error
	switch {
	case err == nil:
		id := row.Identity()
		return &id, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, fmt.Errorf("load last user: %w", err)
	}
}

// Replace overwrites the stored identity wholesale: delete everything, then
// insert the new row. The two statements are sequential, matching the
// historical sqlite layout.
func (r *LastUserRepository) Replace(ctx context.Context, id model.Identity) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("1 = 1").Delete(&model.LastUser{}).Error; err != nil {
		return fmt.Errorf("clear last user: %w", err)
	}
	row := model.LastUser{Name: id.Name, UserNumber: id.UserNumber}
	if err := db.Create(&row).Error; err != nil {
		return fmt.Errorf("store last user: %w", err)
	}
	return nil
}
