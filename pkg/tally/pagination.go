package tally

import (
	"context"
	"fmt"
)

// PageLister lists one page of a resource.
type PageLister[T any] interface {
	List(ctx context.Context, params *ListParams) (*ListResponse[T], error)
}

// PaginationOptions bounds FetchAllPages.
type PaginationOptions struct {
	PerPage int
	// MaxPages stops after this many pages. Zero means no limit.
	MaxPages int
}

// DefaultPaginationOptions returns the default pagination options.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{
		PerPage:  50,
		MaxPages: 0,
	}
}

// PaginationIterator walks a paginated resource item by item.
type PaginationIterator[T any] struct {
	ctx     context.Context
	lister  PageLister[T]
	params  *ListParams
	items   []T
	index   int
	page    int
	hasMore bool
	err     error
}

// NewPaginationIterator creates an iterator starting at params.Page (or 1).
func NewPaginationIterator[T any](ctx context.Context, lister PageLister[T], params *ListParams) *PaginationIterator[T] {
	p := params.Clone()
	if p.Page < 1 {
		p.Page = 1
	}

	return &PaginationIterator[T]{
		ctx:     ctx,
		lister:  lister,
		params:  p,
		page:    p.Page,
		hasMore: true,
	}
}

// HasNext reports whether another item can be fetched.
func (it *PaginationIterator[T]) HasNext() bool {
	if it.index < len(it.items) {
		return true
	}

	if !it.hasMore {
		return false
	}

	it.err = it.fetch()
	if it.err != nil {
		return true
	}

	return it.index < len(it.items)
}

// Next returns the next item. A page that failed to load in HasNext is
// reported here without being requested again.
func (it *PaginationIterator[T]) Next() (T, error) {
	var zero T

	if it.err != nil {
		err := it.err
		it.err = nil

		return zero, err
	}

	if it.index >= len(it.items) {
		if !it.hasMore {
			return zero, ErrNoMoreItems
		}

		err := it.fetch()
		if err != nil {
			return zero, err
		}

		if it.index >= len(it.items) {
			return zero, ErrNoMoreItems
		}
	}

	item := it.items[it.index]
	it.index++

	return item, nil
}

func (it *PaginationIterator[T]) fetch() error {
	for it.hasMore && it.index >= len(it.items) {
		it.params.Page = it.page

		resp, err := it.lister.List(it.ctx, it.params)
		if err != nil {
			return fmt.Errorf("fetching page %d: %w", it.page, err)
		}

		it.items = resp.Resources
		it.index = 0
		it.hasMore = resp.Pagination.HasNext() && len(resp.Resources) > 0
		it.page++
	}

	return nil
}

// FetchAllPages collects every item of a paginated resource.
func FetchAllPages[T any](ctx context.Context, lister PageLister[T], params *ListParams, opts *PaginationOptions) ([]T, error) {
	if opts == nil {
		opts = DefaultPaginationOptions()
	}

	p := params.Clone()
	if p.Page < 1 {
		p.Page = 1
	}

	if p.PerPage == 0 {
		p.PerPage = opts.PerPage
	}

	var all []T

	for pages := 0; opts.MaxPages == 0 || pages < opts.MaxPages; pages++ {
		resp, err := lister.List(ctx, p)
		if err != nil {
			return all, fmt.Errorf("fetching page %d: %w", p.Page, err)
		}

		all = append(all, resp.Resources...)

		if !resp.Pagination.HasNext() || len(resp.Resources) == 0 {
			break
		}

		p.Page++
	}

	return all, nil
}
