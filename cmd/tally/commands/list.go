package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/tally-client/internal/constants"
	"github.com/fivetwenty-io/tally-client/pkg/models"
	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

var (
	ErrInvalidFilter = errors.New("invalid filter, expected key=value")
	ErrFileRequired  = errors.New("--file is required")
)

// listFlags are the flags shared by every list command.
type listFlags struct {
	page     int
	perPage  int
	allPages bool
	sort     string
	search   string
	filters  []string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", 1, "page to fetch")
	cmd.Flags().IntVar(&f.perPage, "per-page", constants.DefaultPageSize, "results per page")
	cmd.Flags().BoolVar(&f.allPages, "all", false, "fetch all pages")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort field, prefix with - for descending")
	cmd.Flags().StringVar(&f.search, "search", "", "free-text search")
	cmd.Flags().StringSliceVar(&f.filters, "filter", nil, "filter as key=value, repeatable")
}

func (f *listFlags) params() (*tally.ListParams, error) {
	params := tally.NewListParams().
		WithPage(f.page).
		WithPerPage(f.perPage).
		WithSort(f.sort).
		WithSearch(f.search)

	for _, filter := range f.filters {
		key, value, ok := strings.Cut(filter, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
		}

		params.WithFilter(key, value)
	}

	return params, nil
}

// list fetches one page, or every page with --all. The pagination is nil for
// --all.
func list[T any](ctx context.Context, lister tally.PageLister[T], flags *listFlags) ([]T, *tally.Pagination, error) {
	params, err := flags.params()
	if err != nil {
		return nil, nil, err
	}

	if flags.allPages {
		items, err := tally.FetchAllPages(ctx, lister, params, &tally.PaginationOptions{PerPage: flags.perPage})
		if err != nil {
			return nil, nil, err
		}

		return items, nil, nil
	}

	resp, err := lister.List(ctx, params)
	if err != nil {
		return nil, nil, err
	}

	return resp.Resources, &resp.Pagination, nil
}

// decodeFile reads a JSON or YAML document into a new T. YAML is picked by
// the .yml/.yaml extension.
func decodeFile[T any](path string) (*T, error) {
	if path == "" {
		return nil, ErrFileRequired
	}

	// #nosec G304 -- the path is supplied by the user on purpose
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		var generic interface{}

		err = yaml.Unmarshal(data, &generic)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}

		data, err = json.Marshal(generic)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	value := new(T)

	err = json.Unmarshal(data, value)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return value, nil
}

// runBatch executes operations with bounded concurrency. Failures are reported
// on stderr and joined into the returned error. The successful results are
// returned in input order.
func runBatch(ctx context.Context, s *session, concurrency int, operations []tally.BatchOperation) ([]tally.BatchResult, error) {
	results := tally.NewBatchExecutor(concurrency).Execute(ctx, operations)

	succeeded := make([]tally.BatchResult, 0, len(results))

	for _, result := range results {
		if !result.Success {
			_, _ = fmt.Fprintf(s.stderr, "Failed to %s %s: %v\n", result.Type, result.ID, result.Error)

			continue
		}

		succeeded = append(succeeded, result)
	}

	return succeeded, tally.JoinBatchErrors(results)
}

func invoicesOf(results []tally.BatchResult) []*models.Invoice {
	invoices := make([]*models.Invoice, 0, len(results))

	for _, result := range results {
		if invoice, ok := result.Data.(*models.Invoice); ok {
			invoices = append(invoices, invoice)
		}
	}

	return invoices
}
