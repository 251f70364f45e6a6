package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/go-openapi/strfmt"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/tally-client/internal/constants"
	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

const defaultJSONIndent = 2

// tableFiller writes rows into a table whose header it also sets.
type tableFiller func(table *tablewriter.Table) error

func validateOutputFormat(format string) error {
	switch format {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, format)
	}
}

// render writes data in the requested format. fill is only used for tables.
func render(w io.Writer, format string, data interface{}, fill tableFiller) error {
	switch format {
	case constants.FormatJSON:
		return renderJSON(w, data)
	case constants.FormatYAML:
		return renderYAML(w, data)
	case constants.FormatTable:
		table := tablewriter.NewWriter(w)

		err := fill(table)
		if err != nil {
			return err
		}

		err = table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, format)
	}
}

func renderJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// renderYAML goes through JSON first so the models keep their wire field
// names; they carry no yaml tags.
func renderYAML(w io.Writer, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	var generic interface{}

	err = yaml.Unmarshal(raw, &generic)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(defaultJSONIndent)

	err = encoder.Encode(generic)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

func paginationFooter(w io.Writer, pagination *tally.Pagination) {
	if pagination == nil || pagination.TotalPages <= 1 {
		return
	}

	_, _ = fmt.Fprintf(w, "\nPage %d of %d (%d total). Use --all to fetch every page.\n",
		pagination.Page, pagination.TotalPages, pagination.TotalResults)
}

func orNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func dateOrNA(date *strfmt.Date) string {
	if date == nil {
		return constants.NotAvailable
	}

	return date.String()
}

func dateTimeOrNA(dateTime *strfmt.DateTime) string {
	if dateTime == nil {
		return constants.NotAvailable
	}

	return dateTime.String()
}

func money(amount float64, currency string) string {
	formatted := strconv.FormatFloat(amount, 'f', 2, 64)
	if currency == "" {
		return formatted
	}

	return formatted + " " + currency
}
