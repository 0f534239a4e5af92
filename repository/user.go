package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"schooldir/consts"
	"schooldir/database"
)

// CreateUser creates a user
func CreateUser(ctx context.Context, user *database.User) error {
	if err := database.DB.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("username '%s': %w", user.Username, consts.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByUsername gets a user by username
func GetUserByUsername(ctx context.Context, username string) (*database.User, error) {
	var user database.User
	if err := database.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user '%s': %w", username, consts.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
