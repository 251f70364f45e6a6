package tally

import (
	"net/url"
	"strconv"
	"strings"
)

// Pagination represents pagination information.
type Pagination struct {
	Page         int `json:"page"          yaml:"page"`
	PerPage      int `json:"per_page"      yaml:"per_page"`
	TotalPages   int `json:"total_pages"   yaml:"total_pages"`
	TotalResults int `json:"total_results" yaml:"total_results"`
}

// HasNext reports whether a page follows this one.
func (p Pagination) HasNext() bool {
	return p.Page < p.TotalPages
}

// ListResponse represents a paginated list response.
type ListResponse[T any] struct {
	Pagination Pagination `json:"pagination" yaml:"pagination"`
	Resources  []T        `json:"resources"  yaml:"resources"`
}

// ListParams expresses common list options.
type ListParams struct {
	Page    int
	PerPage int
	// Sort is a field name, prefixed with "-" for descending order.
	Sort    string
	Search  string
	Filters map[string][]string
}

// NewListParams creates empty list params.
func NewListParams() *ListParams {
	return &ListParams{
		Filters: make(map[string][]string),
	}
}

// WithPage sets the page number.
func (p *ListParams) WithPage(page int) *ListParams {
	p.Page = page

	return p
}

// WithPerPage sets the page size.
func (p *ListParams) WithPerPage(perPage int) *ListParams {
	p.PerPage = perPage

	return p
}

// WithSort sets the sort field.
func (p *ListParams) WithSort(sort string) *ListParams {
	p.Sort = sort

	return p
}

// WithSearch sets the free-text search term.
func (p *ListParams) WithSearch(search string) *ListParams {
	p.Search = search

	return p
}

// WithFilter adds values for a filter key.
func (p *ListParams) WithFilter(key string, values ...string) *ListParams {
	if p.Filters == nil {
		p.Filters = make(map[string][]string)
	}

	p.Filters[key] = append(p.Filters[key], values...)

	return p
}

// Clone returns a deep copy.
func (p *ListParams) Clone() *ListParams {
	if p == nil {
		return NewListParams()
	}

	clone := *p
	clone.Filters = make(map[string][]string, len(p.Filters))

	for key, values := range p.Filters {
		clone.Filters[key] = append([]string(nil), values...)
	}

	return &clone
}

// ToValues converts the params to query values. Filters are sent as
// filter[key]=v1,v2.
func (p *ListParams) ToValues() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}

	if p.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(p.PerPage))
	}

	if p.Sort != "" {
		values.Set("sort", p.Sort)
	}

	if p.Search != "" {
		values.Set("q", p.Search)
	}

	for key, filterValues := range p.Filters {
		if len(filterValues) == 0 {
			continue
		}

		values.Set("filter["+key+"]", strings.Join(filterValues, ","))
	}

	return values
}
