package tally_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

// pagedLister serves items in pages of perPage and can fail on one page.
type pagedLister struct {
	items   []string
	failOn  int
	calls   []int
	perPage []int
}

func (l *pagedLister) List(_ context.Context, params *tally.ListParams) (*tally.ListResponse[string], error) {
	l.calls = append(l.calls, params.Page)
	l.perPage = append(l.perPage, params.PerPage)

	if params.Page == l.failOn {
		return nil, errBoom
	}

	size := params.PerPage
	if size == 0 {
		size = 2
	}

	totalPages := (len(l.items) + size - 1) / size
	start := (params.Page - 1) * size

	end := start + size
	if end > len(l.items) {
		end = len(l.items)
	}

	var page []string
	if start < len(l.items) {
		page = l.items[start:end]
	}

	return &tally.ListResponse[string]{
		Resources: page,
		Pagination: tally.Pagination{
			Page:         params.Page,
			PerPage:      size,
			TotalPages:   totalPages,
			TotalResults: len(l.items),
		},
	}, nil
}

func items(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("item-%d", i+1)
	}

	return out
}

func TestFetchAllPages(t *testing.T) {
	t.Parallel()

	t.Run("collects every page", func(t *testing.T) {
		t.Parallel()

		lister := &pagedLister{items: items(5)}

		all, err := tally.FetchAllPages[string](context.Background(), lister, nil, &tally.PaginationOptions{PerPage: 2})
		require.NoError(t, err)

		assert.Equal(t, items(5), all)
		assert.Equal(t, []int{1, 2, 3}, lister.calls)
		assert.Equal(t, []int{2, 2, 2}, lister.perPage)
	})

	t.Run("default options", func(t *testing.T) {
		t.Parallel()

		lister := &pagedLister{items: items(3)}

		all, err := tally.FetchAllPages[string](context.Background(), lister, tally.NewListParams(), nil)
		require.NoError(t, err)

		assert.Len(t, all, 3)
		assert.Equal(t, []int{50}, lister.perPage)
	})

	t.Run("max pages", func(t *testing.T) {
		t.Parallel()

		lister := &pagedLister{items: items(10)}

		all, err := tally.FetchAllPages[string](context.Background(), lister, nil, &tally.PaginationOptions{PerPage: 2, MaxPages: 2})
		require.NoError(t, err)

		assert.Equal(t, items(4), all)
	})

	t.Run("returns what it has on failure", func(t *testing.T) {
		t.Parallel()

		lister := &pagedLister{items: items(6), failOn: 2}

		all, err := tally.FetchAllPages[string](context.Background(), lister, nil, &tally.PaginationOptions{PerPage: 2})
		require.ErrorIs(t, err, errBoom)
		assert.Contains(t, err.Error(), "fetching page 2")
		assert.Equal(t, items(2), all)
	})

	t.Run("does not modify params", func(t *testing.T) {
		t.Parallel()

		params := tally.NewListParams().WithPerPage(3)
		lister := &pagedLister{items: items(7)}

		_, err := tally.FetchAllPages[string](context.Background(), lister, params, nil)
		require.NoError(t, err)

		assert.Equal(t, 0, params.Page)
		assert.Equal(t, []int{1, 2, 3}, lister.calls)
	})
}

func TestPaginationIterator(t *testing.T) {
	t.Parallel()

	t.Run("walks across pages", func(t *testing.T) {
		t.Parallel()

		lister := &pagedLister{items: items(5)}
		it := tally.NewPaginationIterator[string](context.Background(), lister, tally.NewListParams().WithPerPage(2))

		var got []string

		for it.HasNext() {
			item, err := it.Next()
			require.NoError(t, err)

			got = append(got, item)
		}

		assert.Equal(t, items(5), got)

		_, err := it.Next()
		require.ErrorIs(t, err, tally.ErrNoMoreItems)
	})

	t.Run("empty resource", func(t *testing.T) {
		t.Parallel()

		it := tally.NewPaginationIterator[string](context.Background(), &pagedLister{}, nil)

		assert.False(t, it.HasNext())

		_, err := it.Next()
		require.ErrorIs(t, err, tally.ErrNoMoreItems)
	})

	t.Run("surfaces errors from Next", func(t *testing.T) {
		t.Parallel()

		lister := &pagedLister{items: items(4), failOn: 2}
		it := tally.NewPaginationIterator[string](context.Background(), lister, tally.NewListParams().WithPerPage(2))

		for range 2 {
			require.True(t, it.HasNext())

			_, err := it.Next()
			require.NoError(t, err)
		}

		assert.True(t, it.HasNext())

		_, err := it.Next()
		require.ErrorIs(t, err, errBoom)
		assert.Equal(t, []int{1, 2}, lister.calls, "a failed page is requested once")
	})
}
