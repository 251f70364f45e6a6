package commands

import (
	"context"
	"fmt"

	"github.com/go-openapi/swag"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/tally-client/internal/constants"
	"github.com/fivetwenty-io/tally-client/pkg/models"
	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

// NewEstimatesCommand creates the estimates command group.
func NewEstimatesCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "estimates",
		Aliases: []string{"estimate", "est"},
		Short:   "Manage estimates",
		Long:    "List, inspect and create estimates, and convert accepted ones into invoices",
	}

	cmd.AddCommand(newEstimatesListCommand(v))
	cmd.AddCommand(newEstimatesGetCommand(v))
	cmd.AddCommand(newEstimatesCreateCommand(v))
	cmd.AddCommand(newEstimatesConvertCommand(v))

	return cmd
}

func newEstimatesListCommand(v *viper.Viper) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List estimates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, v, func(ctx context.Context, s *session) error {
				estimates, pagination, err := list[*models.Estimate](ctx, s.client.Estimates(), flags)
				if err != nil {
					return fmt.Errorf("failed to list estimates: %w", err)
				}

				return s.renderEstimates(estimates, pagination)
			})
		},
	}

	flags.register(cmd)

	return cmd
}

func newEstimatesGetCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show an estimate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, v, func(ctx context.Context, s *session) error {
				estimate, err := s.client.Estimates().Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get estimate: %w", err)
				}

				return s.renderEstimate(estimate)
			})
		},
	}
}

func newEstimatesCreateCommand(v *viper.Viper) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an estimate from a JSON or YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			estimate, err := decodeFile[models.Estimate](file)
			if err != nil {
				return err
			}

			return withSession(cmd, v, func(ctx context.Context, s *session) error {
				created, err := s.client.Estimates().Create(ctx, estimate)
				if err != nil {
					return fmt.Errorf("failed to create estimate: %w", err)
				}

				return s.renderEstimate(created)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "estimate document")

	return cmd
}

func newEstimatesConvertCommand(v *viper.Viper) *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "convert <id>...",
		Short: "Convert estimates into draft invoices",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, v, func(ctx context.Context, s *session) error {
				if len(args) == 1 {
					invoice, err := s.client.Estimates().Convert(ctx, args[0])
					if err != nil {
						return fmt.Errorf("failed to convert estimate: %w", err)
					}

					return s.renderInvoice(invoice)
				}

				builder := tally.NewBatchBuilder(s.client)
				for _, id := range args {
					builder.AddConvertEstimate(id)
				}

				converted, batchErr := runBatch(ctx, s, concurrency, builder.Build())

				if len(converted) > 0 {
					err := s.renderInvoices(invoicesOf(converted), nil)
					if err != nil {
						return err
					}
				}

				return batchErr
			})
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", tally.DefaultBatchConcurrency, "estimates converted in parallel")

	return cmd
}

func (s *session) renderEstimates(estimates []*models.Estimate, pagination *tally.Pagination) error {
	if s.output == constants.FormatTable && len(estimates) == 0 {
		_, _ = fmt.Fprintln(s.stdout, "No estimates found")

		return nil
	}

	err := s.render(estimates, func(table *tablewriter.Table) error {
		table.Header("Number", "ID", "Status", "Contact", "Total", "Expires")

		for _, estimate := range estimates {
			_ = table.Append(
				orNA(estimate.Number),
				estimate.ID,
				orNA(estimate.Status),
				orNA(swag.StringValue(estimate.ContactID)),
				money(estimate.Total, estimate.Currency),
				dateOrNA(estimate.ExpiryDate),
			)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if s.output == constants.FormatTable {
		paginationFooter(s.stdout, pagination)
	}

	return nil
}

func (s *session) renderEstimate(estimate *models.Estimate) error {
	return s.render(estimate, func(table *tablewriter.Table) error {
		table.Header("Property", "Value")

		_ = table.Append("ID", estimate.ID)
		_ = table.Append("Number", orNA(estimate.Number))
		_ = table.Append("Status", orNA(estimate.Status))
		_ = table.Append("Contact", orNA(swag.StringValue(estimate.ContactID)))
		_ = table.Append("Issued", dateOrNA(estimate.IssueDate))
		_ = table.Append("Expires", dateOrNA(estimate.ExpiryDate))
		_ = table.Append("Lines", fmt.Sprint(len(estimate.LineItems)))
		_ = table.Append("Total", money(estimate.Total, estimate.Currency))
		_ = table.Append("Invoice", orNA(estimate.InvoiceID))

		return nil
	})
}
