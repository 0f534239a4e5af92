package pagination

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampParams(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		maxLimit  int
		wantPage  int
		wantLimit int
	}{
		{name: "valid values pass through", page: 2, limit: 15, maxLimit: 100, wantPage: 2, wantLimit: 15},
		{name: "zero page becomes one", page: 0, limit: 15, maxLimit: 100, wantPage: 1, wantLimit: 15},
		{name: "negative page becomes one", page: -5, limit: 15, maxLimit: 100, wantPage: 1, wantLimit: 15},
		{name: "zero limit becomes one", page: 1, limit: 0, maxLimit: 100, wantPage: 1, wantLimit: 1},
		{name: "negative limit becomes one", page: 1, limit: -3, maxLimit: 100, wantPage: 1, wantLimit: 1},
		{name: "limit above max is clamped", page: 1, limit: 500, maxLimit: 100, wantPage: 1, wantLimit: 100},
		{name: "limit at max is kept", page: 1, limit: 100, maxLimit: 100, wantPage: 1, wantLimit: 100},
		{name: "default max limit applies", page: 1, limit: 500, maxLimit: 0, wantPage: 1, wantLimit: 100},
		{name: "custom max limit applies", page: 1, limit: 50, maxLimit: 25, wantPage: 1, wantLimit: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := ClampParams(tt.page, tt.limit, tt.maxLimit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestSkip(t *testing.T) {
	assert.Equal(t, 0, Skip(1, 15))
	assert.Equal(t, 15, Skip(2, 15))
	assert.Equal(t, 90, Skip(10, 10))
	assert.Equal(t, 297, Skip(100, 3))
}

func TestMetadata(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		page     int
		limit    int
		lastPage int
		hasNext  bool
		hasPrev  bool
	}{
		{name: "first of three pages", total: 42, page: 1, limit: 15, lastPage: 3, hasNext: true, hasPrev: false},
		{name: "middle page", total: 42, page: 2, limit: 15, lastPage: 3, hasNext: true, hasPrev: true},
		{name: "last page", total: 42, page: 3, limit: 15, lastPage: 3, hasNext: false, hasPrev: true},
		{name: "exact division", total: 30, page: 2, limit: 15, lastPage: 2, hasNext: false, hasPrev: true},
		{name: "single record", total: 1, page: 1, limit: 15, lastPage: 1, hasNext: false, hasPrev: false},
		{name: "empty result set", total: 0, page: 1, limit: 15, lastPage: 0, hasNext: false, hasPrev: false},
		{name: "empty result set beyond first page", total: 0, page: 3, limit: 15, lastPage: 0, hasNext: false, hasPrev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := Metadata(tt.total, tt.page, tt.limit)
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, tt.limit, meta.Limit)
			assert.Equal(t, tt.lastPage, meta.LastPage)
			assert.Equal(t, tt.hasNext, meta.HasNextPage)
			assert.Equal(t, tt.hasPrev, meta.HasPreviousPage)
		})
	}
}

func TestExecutePaginatedQuery(t *testing.T) {
	items := make([]string, 15)
	for i := range items {
		items[i] = "school"
	}

	result, err := ExecutePaginatedQuery(context.Background(),
		func(ctx context.Context) (int64, error) { return 42, nil },
		func(ctx context.Context) ([]string, error) { return items, nil },
		2, 15)
	require.NoError(t, err)

	assert.Len(t, result.Data, 15)
	assert.Equal(t, Meta{
		Total:           42,
		Page:            2,
		Limit:           15,
		LastPage:        3,
		HasNextPage:     true,
		HasPreviousPage: true,
	}, result.Meta)
}

func TestExecutePaginatedQueryEmpty(t *testing.T) {
	result, err := ExecutePaginatedQuery(context.Background(),
		func(ctx context.Context) (int64, error) { return 0, nil },
		func(ctx context.Context) ([]int, error) { return nil, nil },
		1, 15)
	require.NoError(t, err)

	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
	assert.Equal(t, 0, result.Meta.LastPage)
	assert.False(t, result.Meta.HasNextPage)
}

func TestExecutePaginatedQueryErrors(t *testing.T) {
	countErr := errors.New("count failed")
	dataErr := errors.New("data failed")

	t.Run("count failure fails the whole operation", func(t *testing.T) {
		result, err := ExecutePaginatedQuery(context.Background(),
			func(ctx context.Context) (int64, error) { return 0, countErr },
			func(ctx context.Context) ([]int, error) { return []int{1}, nil },
			1, 15)
		assert.ErrorIs(t, err, countErr)
		assert.Nil(t, result)
	})

	t.Run("data failure fails the whole operation", func(t *testing.T) {
		result, err := ExecutePaginatedQuery(context.Background(),
			func(ctx context.Context) (int64, error) { return 10, nil },
			func(ctx context.Context) ([]int, error) { return nil, dataErr },
			1, 15)
		assert.ErrorIs(t, err, dataErr)
		assert.Nil(t, result)
	})
}
