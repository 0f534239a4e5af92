package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"schooldir/database"
)

// QueryBuilder composes filter predicates onto a base query.
type QueryBuilder func(*gorm.DB) *gorm.DB

// Count counts records of T matching the builder's predicate.
func Count[T any](ctx context.Context, builder QueryBuilder) (int64, error) {
	var model T
	var total int64
	query := builder(database.DB.WithContext(ctx).Model(&model))
	if err := query.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count error: %w", err)
	}
	return total, nil
}

// FindPage fetches one ordered page of T matching the builder's predicate.
func FindPage[T any](ctx context.Context, builder QueryBuilder, order string, skip, take int) ([]T, error) {
	var records []T
	query := builder(database.DB.WithContext(ctx).Model(new(T))).
		Scopes(database.Sort(order)).
		Offset(skip).
		Limit(take)
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to find records: %w", err)
	}
	return records, nil
}
