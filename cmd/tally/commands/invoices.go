package commands

import (
	"context"
	"fmt"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/tally-client/internal/constants"
	"github.com/fivetwenty-io/tally-client/pkg/models"
	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

// NewInvoicesCommand creates the invoices command group.
func NewInvoicesCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invoices",
		Aliases: []string{"invoice", "inv"},
		Short:   "Manage invoices",
		Long:    "List, inspect, create, send and void invoices",
	}

	cmd.AddCommand(newInvoicesListCommand(v))
	cmd.AddCommand(newInvoicesGetCommand(v))
	cmd.AddCommand(newInvoicesCreateCommand(v))
	cmd.AddCommand(newInvoicesSendCommand(v))
	cmd.AddCommand(newInvoicesVoidCommand(v))
	cmd.AddCommand(newInvoicesDeleteCommand(v))

	return cmd
}

func newInvoicesListCommand(v *viper.Viper) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, v, func(ctx context.Context, s *session) error {
				invoices, pagination, err := list[*models.Invoice](ctx, s.client.Invoices(), flags)
				if err != nil {
					return fmt.Errorf("failed to list invoices: %w", err)
				}

				return s.renderInvoices(invoices, pagination)
			})
		},
	}

	flags.register(cmd)

	return cmd
}

func newInvoicesGetCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, v, func(ctx context.Context, s *session) error {
				invoice, err := s.client.Invoices().Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get invoice: %w", err)
				}

				return s.renderInvoice(invoice)
			})
		},
	}
}

func newInvoicesCreateCommand(v *viper.Viper) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an invoice from a JSON or YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			invoice, err := decodeFile[models.Invoice](file)
			if err != nil {
				return err
			}

			return withSession(cmd, v, func(ctx context.Context, s *session) error {
				created, err := s.client.Invoices().Create(ctx, invoice)
				if err != nil {
					return fmt.Errorf("failed to create invoice: %w", err)
				}

				return s.renderInvoice(created)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "invoice document")

	return cmd
}

func newInvoicesSendCommand(v *viper.Viper) *cobra.Command {
	var (
		recipients []string
		subject    string
		message    string
	)

	cmd := &cobra.Command{
		Use:   "send <id>",
		Short: "Email an invoice to one or more recipients",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(recipients) == 0 {
				return constants.ErrRecipientRequired
			}

			request := &models.SendInvoiceRequest{
				Subject: subject,
				Message: message,
			}

			for _, recipient := range recipients {
				request.To = append(request.To, strfmt.Email(recipient))
			}

			return withSession(cmd, v, func(ctx context.Context, s *session) error {
				invoice, err := s.client.Invoices().Send(ctx, args[0], request)
				if err != nil {
					return fmt.Errorf("failed to send invoice: %w", err)
				}

				return s.renderInvoice(invoice)
			})
		},
	}

	cmd.Flags().StringSliceVar(&recipients, "to", nil, "recipient email, repeatable")
	cmd.Flags().StringVar(&subject, "subject", "", "email subject")
	cmd.Flags().StringVar(&message, "message", "", "email body")

	return cmd
}

func newInvoicesVoidCommand(v *viper.Viper) *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "void <id>...",
		Short: "Void one or more invoices",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, v, func(ctx context.Context, s *session) error {
				builder := tally.NewBatchBuilder(s.client)
				for _, id := range args {
					builder.AddVoidInvoice(id)
				}

				voided, batchErr := runBatch(ctx, s, concurrency, builder.Build())

				if len(voided) > 0 {
					err := s.renderInvoices(invoicesOf(voided), nil)
					if err != nil {
						return err
					}
				}

				return batchErr
			})
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", tally.DefaultBatchConcurrency, "invoices voided in parallel")

	return cmd
}

func newInvoicesDeleteCommand(v *viper.Viper) *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete one or more draft invoices",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, v, func(ctx context.Context, s *session) error {
				builder := tally.NewBatchBuilder(s.client)
				for _, id := range args {
					builder.AddDeleteInvoice(id)
				}

				deleted, err := runBatch(ctx, s, concurrency, builder.Build())

				for _, result := range deleted {
					_, _ = fmt.Fprintf(s.stdout, "Deleted invoice %s\n", result.ID)
				}

				return err
			})
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", tally.DefaultBatchConcurrency, "invoices deleted in parallel")

	return cmd
}

func (s *session) renderInvoices(invoices []*models.Invoice, pagination *tally.Pagination) error {
	if s.output == constants.FormatTable && len(invoices) == 0 {
		_, _ = fmt.Fprintln(s.stdout, "No invoices found")

		return nil
	}

	err := s.render(invoices, func(table *tablewriter.Table) error {
		table.Header("Number", "ID", "Status", "Contact", "Total", "Due")

		for _, invoice := range invoices {
			err := table.Append(
				orNA(invoice.Number),
				invoice.ID,
				orNA(invoice.Status),
				orNA(swag.StringValue(invoice.ContactID)),
				money(invoice.Total, invoice.Currency),
				dateOrNA(invoice.DueDate),
			)
			if err != nil {
				return fmt.Errorf("failed to append table row: %w", err)
			}
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

func (s *session) renderInvoice(invoice *models.Invoice) error {
	return s.render(invoice, func(table *tablewriter.Table) error {
		table.Header("Property", "Value")

		rows := [][]string{
			{"ID", invoice.ID},
			{"Number", orNA(invoice.Number)},
			{"Status", orNA(invoice.Status)},
			{"Contact", orNA(swag.StringValue(invoice.ContactID))},
			{"Issued", dateOrNA(invoice.IssueDate)},
			{"Due", dateOrNA(invoice.DueDate)},
			{"Lines", fmt.Sprint(len(invoice.LineItems))},
			{"Subtotal", money(invoice.Subtotal, invoice.Currency)},
			{"Tax", money(invoice.TaxTotal, invoice.Currency)},
			{"Total", money(invoice.Total, invoice.Currency)},
			{"Amount Due", money(invoice.AmountDue, invoice.Currency)},
			{"Created", dateTimeOrNA(invoice.CreatedAt)},
		}

		for _, row := range rows {
			err := table.Append(row)
			if err != nil {
				return fmt.Errorf("failed to append table row: %w", err)
			}
		}

		return nil
	})
}
