package service

import (
	"context"
	"errors"

	"schooldir/config"
	"schooldir/consts"
	"schooldir/database"
	"schooldir/dto"
	"schooldir/pagination"
	"schooldir/repository"
)

// ListStudents returns one page of students matching the optional program
// and status filters, ordered by last then first name.
func ListStudents(ctx context.Context, filters dto.StudentFilters, page, limit int) (*pagination.Result[database.Student], error) {
	page, limit = pagination.ClampParams(page, limit, config.GetInt("pagination.max_limit"))
	builder := repository.StudentFilter(filters.EnrolledProgram, filters.Status)

	return pagination.ExecutePaginatedQuery(ctx,
		func(ctx context.Context) (int64, error) {
			return repository.Count[database.Student](ctx, builder)
		},
		func(ctx context.Context) ([]database.Student, error) {
			return repository.FindPage[database.Student](ctx, builder, "last_name asc, first_name asc", pagination.Skip(page, limit), limit)
		},
		page, limit)
}

// GetStudentByUUID returns nil when the student does not exist.
func GetStudentByUUID(ctx context.Context, id string) (*database.Student, error) {
	student, err := repository.GetStudentByUUID(ctx, id)
	if err != nil {
		if errors.Is(err, consts.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return student, nil
}

// ListStudentsBySchool returns one page of a single school's students.
func ListStudentsBySchool(ctx context.Context, schoolID int, page, limit int) (*pagination.Result[database.Student], error) {
	page, limit = pagination.ClampParams(page, limit, config.GetInt("pagination.max_limit"))
	builder := repository.StudentsBySchool(schoolID)

	return pagination.ExecutePaginatedQuery(ctx,
		func(ctx context.Context) (int64, error) {
			return repository.Count[database.Student](ctx, builder)
		},
		func(ctx context.Context) ([]database.Student, error) {
			return repository.FindPage[database.Student](ctx, builder, "last_name asc, first_name asc", pagination.Skip(page, limit), limit)
		},
		page, limit)
}
