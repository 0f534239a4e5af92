package service

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"schooldir/config"
	"schooldir/consts"
	"schooldir/database"
	"schooldir/dto"
	"schooldir/pagination"
	"schooldir/repository"
)

// ListSchools returns one page of schools matching the optional program and
// location filters, ordered by name ascending. Count and data are fetched
// concurrently by the pagination engine.
func ListSchools(ctx context.Context, filters dto.SchoolFilters, page, limit int) (*pagination.Result[database.TradeSchool], error) {
	page, limit = pagination.ClampParams(page, limit, config.GetInt("pagination.max_limit"))
	builder := repository.SchoolFilter(filters.Program, filters.Location)

	return pagination.ExecutePaginatedQuery(ctx,
		func(ctx context.Context) (int64, error) {
			return repository.Count[database.TradeSchool](ctx, builder)
		},
		func(ctx context.Context) ([]database.TradeSchool, error) {
			return repository.FindPage[database.TradeSchool](ctx, builder, "name asc", pagination.Skip(page, limit), limit)
		},
		page, limit)
}

// GetSchoolByID returns nil when the school does not exist.
func GetSchoolByID(ctx context.Context, id int) (*database.TradeSchool, error) {
	school, err := repository.GetSchoolByID(ctx, id)
	if err != nil {
		if errors.Is(err, consts.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return school, nil
}

// CreateSchool inserts a new school. Accreditation defaults to true when the
// field was omitted.
func CreateSchool(ctx context.Context, in dto.CreateSchoolInput) (*database.TradeSchool, error) {
	accredited := true
	if in.Accredited != nil {
		accredited = *in.Accredited
	}

	school := &database.TradeSchool{
		Name:       in.Name,
		Location:   in.Location,
		Programs:   in.Programs,
		Website:    in.Website,
		Accredited: accredited,
	}
	if err := repository.CreateSchool(ctx, school); err != nil {
		return nil, err
	}
	return school, nil
}

// UpdateSchool applies a partial update and returns nil when the target does
// not exist. The repository's not-found signal never reaches the global
// error boundary.
func UpdateSchool(ctx context.Context, id int, in dto.UpdateSchoolInput) (*database.TradeSchool, error) {
	school, err := repository.UpdateSchool(ctx, id, in.Fields())
	if err != nil {
		if errors.Is(err, consts.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return school, nil
}

// DeleteSchool reports true if a record was removed, false if absent.
func DeleteSchool(ctx context.Context, id int) (bool, error) {
	if err := repository.DeleteSchool(ctx, id); err != nil {
		if errors.Is(err, consts.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListPrograms flattens the multi-value programs field across all schools,
// deduplicates, and sorts lexicographically.
func ListPrograms(ctx context.Context) ([]string, error) {
	lists, err := repository.ListAllPrograms(ctx)
	if err != nil {
		return nil, err
	}
	return dedupePrograms(lists), nil
}

// GetStats returns directory-wide aggregates.
func GetStats(ctx context.Context) (*dto.StatsResp, error) {
	totalSchools, err := repository.CountSchools(ctx, nil)
	if err != nil {
		return nil, err
	}

	accredited, err := repository.CountSchools(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("accredited = ?", true)
	})
	if err != nil {
		return nil, err
	}

	lists, err := repository.ListAllPrograms(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResp{
		TotalSchools:      totalSchools,
		AccreditedSchools: accredited,
		TotalPrograms:     len(dedupePrograms(lists)),
	}, nil
}

// HealthCheck reports whether the datastore answers a trivial probe.
func HealthCheck(ctx context.Context) bool {
	return database.Ping(ctx) == nil
}

func dedupePrograms(lists [][]string) []string {
	seen := map[string]struct{}{}
	unique := []string{}
	for _, list := range lists {
		for _, program := range list {
			if _, ok := seen[program]; ok {
				continue
			}
			seen[program] = struct{}{}
			unique = append(unique, program)
		}
	}
	sort.Strings(unique)
	return unique
}
