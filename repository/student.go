package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"schooldir/consts"
	"schooldir/database"
)

// StudentFilter builds the student list predicate: case-insensitive program
// substring and exact status.
func StudentFilter(enrolledProgram, status string) QueryBuilder {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Scopes(database.KeywordSearch(enrolledProgram, "enrolled_program"))
		if status != "" {
			db = db.Where("status = ?", status)
		}
		return db
	}
}

// StudentsBySchool builds the predicate for one school's students.
func StudentsBySchool(schoolID int) QueryBuilder {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("school_id = ?", schoolID)
	}
}

// CreateStudent inserts a new student
func CreateStudent(ctx context.Context, student *database.Student) error {
	if err := database.DB.WithContext(ctx).Create(student).Error; err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

// GetStudentByUUID gets a student by public UUID
func GetStudentByUUID(ctx context.Context, id string) (*database.Student, error) {
	var student database.Student
	if err := database.DB.WithContext(ctx).Where("uuid = ?", id).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("student %s: %w", id, consts.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return &student, nil
}
