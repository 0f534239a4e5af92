// Package pagination implements offset pagination: parameter clamping, skip
// computation, page metadata, and the concurrent count+data query combinator.
package pagination

import (
	"context"

	"golang.org/x/sync/errgroup"

	"schooldir/consts"
)

// Meta describes the position of a page within the full result set.
type Meta struct {
	Total           int64 `json:"total"`
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	LastPage        int   `json:"lastPage"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// Result is a single page of records plus its metadata.
type Result[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// ClampParams corrects out-of-range page and limit values instead of
// rejecting them. Page is raised to at least 1; limit is forced into
// [1, maxLimit]. maxLimit <= 0 selects the default of 100.
func ClampParams(page, limit, maxLimit int) (int, int) {
	if maxLimit <= 0 {
		maxLimit = consts.DefaultMaxLimit
	}
	validPage := max(1, page)
	validLimit := min(max(1, limit), maxLimit)
	return validPage, validLimit
}

// Skip returns the offset for the given page. Callers must clamp first.
func Skip(page, limit int) int {
	return (page - 1) * limit
}

// Metadata computes page metadata for a total record count.
func Metadata(total int64, page, limit int) Meta {
	lastPage := 0
	if limit > 0 {
		lastPage = int((total + int64(limit) - 1) / int64(limit))
	}
	return Meta{
		Total:           total,
		Page:            page,
		Limit:           limit,
		LastPage:        lastPage,
		HasNextPage:     page < lastPage,
		HasPreviousPage: page > 1,
	}
}

// CountFunc returns the total number of records matching a query.
type CountFunc func(ctx context.Context) (int64, error)

// DataFunc returns one page of records.
type DataFunc[T any] func(ctx context.Context) ([]T, error)

// ExecutePaginatedQuery runs the count and data queries concurrently and
// assembles the result once both complete. Both are independent reads, so
// ordering between them is irrelevant; if either fails the whole operation
// fails with that error and no partial result is returned.
func ExecutePaginatedQuery[T any](ctx context.Context, count CountFunc, data DataFunc[T], page, limit int) (*Result[T], error) {
	var (
		total   int64
		records []T
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = data(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if records == nil {
		records = []T{}
	}
	return &Result[T]{
		Data: records,
		Meta: Metadata(total, page, limit),
	}, nil
}
