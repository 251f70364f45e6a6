package client

import (
	"github.com/fivetwenty-io/tally-client/pkg/models"
	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

// toListResponse converts a generated list envelope into a tally.ListResponse.
func toListResponse[T any](data []T, meta *models.PageMeta) *tally.ListResponse[T] {
	list := &tally.ListResponse[T]{
		Resources: data,
	}

	if list.Resources == nil {
		list.Resources = []T{}
	}

	if meta != nil {
		list.Pagination = tally.Pagination{
			Page:         int(meta.Page),
			PerPage:      int(meta.PerPage),
			TotalPages:   int(meta.TotalPages),
			TotalResults: int(meta.TotalCount),
		}
	}

	return list
}
