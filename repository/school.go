package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"schooldir/consts"
	"schooldir/database"
)

// SchoolFilter builds the list predicate from the optional filters: exact
// program membership and case-insensitive location substring.
func SchoolFilter(program, location string) QueryBuilder {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Scopes(database.ProgramMatch(program)).
			Scopes(database.KeywordSearch(location, "location"))
	}
}

// GetSchoolByID gets a trade school by ID
func GetSchoolByID(ctx context.Context, id int) (*database.TradeSchool, error) {
	var school database.TradeSchool
	if err := database.DB.WithContext(ctx).First(&school, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("school with id %d: %w", id, consts.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get school: %w", err)
	}
	return &school, nil
}

// CreateSchool inserts a new trade school
func CreateSchool(ctx context.Context, school *database.TradeSchool) error {
	if err := database.DB.WithContext(ctx).Create(school).Error; err != nil {
		return fmt.Errorf("failed to create school: %w", err)
	}
	return nil
}

// UpdateSchool applies a partial update. A missing target surfaces as
// consts.ErrNotFound, the distinguished signal translated by the service.
func UpdateSchool(ctx context.Context, id int, fields map[string]any) (*database.TradeSchool, error) {
	school, err := GetSchoolByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name, ok := fields["name"].(string); ok {
		school.Name = name
	}
	if location, ok := fields["location"].(string); ok {
		school.Location = location
	}
	if programs, ok := fields["programs"].([]string); ok {
		school.Programs = programs
	}
	if website, ok := fields["website"].(string); ok {
		school.Website = website
	}
	if accredited, ok := fields["accredited"].(bool); ok {
		school.Accredited = accredited
	}

	if err := database.DB.WithContext(ctx).Save(school).Error; err != nil {
		return nil, fmt.Errorf("failed to update school: %w", err)
	}
	return school, nil
}

// DeleteSchool removes a trade school; a missing target surfaces as
// consts.ErrNotFound.
func DeleteSchool(ctx context.Context, id int) error {
	result := database.DB.WithContext(ctx).Delete(&database.TradeSchool{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete school: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("school with id %d: %w", id, consts.ErrNotFound)
	}
	return nil
}

// ListAllPrograms fetches the programs column across all schools.
func ListAllPrograms(ctx context.Context) ([][]string, error) {
	var schools []database.TradeSchool
	if err := database.DB.WithContext(ctx).Select("programs").Find(&schools).Error; err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	programs := make([][]string, 0, len(schools))
	for _, school := range schools {
		programs = append(programs, school.Programs)
	}
	return programs, nil
}

// CountSchools counts schools matching the builder; a nil builder counts all.
func CountSchools(ctx context.Context, builder QueryBuilder) (int64, error) {
	if builder == nil {
		builder = func(db *gorm.DB) *gorm.DB { return db }
	}
	return Count[database.TradeSchool](ctx, builder)
}
