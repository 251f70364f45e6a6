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

// NewContactsCommand creates the contacts command group.
func NewContactsCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contacts",
		Aliases: []string{"contact"},
		Short:   "Manage contacts",
		Long:    "List, inspect, create and delete customers and vendors",
	}

	cmd.AddCommand(newContactsListCommand(v))
	cmd.AddCommand(newContactsGetCommand(v))
	cmd.AddCommand(newContactsCreateCommand(v))
	cmd.AddCommand(newContactsDeleteCommand(v))

	return cmd
}

func newContactsListCommand(v *viper.Viper) *cobra.Command {
	flags := &listFlags{}

	var contactType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if contactType != "" {
				flags.filters = append(flags.filters, "type="+contactType)
			}

			return withSession(cmd, v, func(ctx context.Context, s *session) error {
				contacts, pagination, err := list[*models.Contact](ctx, s.client.Contacts(), flags)
				if err != nil {
					return fmt.Errorf("failed to list contacts: %w", err)
				}

				return s.renderContacts(contacts, pagination)
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&contactType, "type", "", "only customer or vendor contacts")

	return cmd
}

func newContactsGetCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, v, func(ctx context.Context, s *session) error {
				contact, err := s.client.Contacts().Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get contact: %w", err)
				}

				return s.renderContact(contact)
			})
		},
	}
}

func newContactsCreateCommand(v *viper.Viper) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a contact from a JSON or YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			contact, err := decodeFile[models.Contact](file)
			if err != nil {
				return err
			}

			return withSession(cmd, v, func(ctx context.Context, s *session) error {
				created, err := s.client.Contacts().Create(ctx, contact)
				if err != nil {
					return fmt.Errorf("failed to create contact: %w", err)
				}

				return s.renderContact(created)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "contact document")

	return cmd
}

func newContactsDeleteCommand(v *viper.Viper) *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete one or more contacts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, v, func(ctx context.Context, s *session) error {
				builder := tally.NewBatchBuilder(s.client)
				for _, id := range args {
					builder.AddDeleteContact(id)
				}

				deleted, err := runBatch(ctx, s, concurrency, builder.Build())

				for _, result := range deleted {
					_, _ = fmt.Fprintf(s.stdout, "Deleted contact %s\n", result.ID)
				}

				return err
			})
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", tally.DefaultBatchConcurrency, "contacts deleted in parallel")

	return cmd
}

func (s *session) renderContacts(contacts []*models.Contact, pagination *tally.Pagination) error {
	if s.output == constants.FormatTable && len(contacts) == 0 {
		_, _ = fmt.Fprintln(s.stdout, "No contacts found")

		return nil
	}

	err := s.render(contacts, func(table *tablewriter.Table) error {
		table.Header("Name", "ID", "Type", "Email", "Company")

		for _, contact := range contacts {
			_ = table.Append(
				swag.StringValue(contact.Name),
				contact.ID,
				orNA(contact.Type),
				orNA(contact.Email.String()),
				orNA(contact.CompanyName),
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

func (s *session) renderContact(contact *models.Contact) error {
	return s.render(contact, func(table *tablewriter.Table) error {
		table.Header("Property", "Value")

		_ = table.Append("ID", contact.ID)
		_ = table.Append("Name", swag.StringValue(contact.Name))
		_ = table.Append("Type", orNA(contact.Type))
		_ = table.Append("Email", orNA(contact.Email.String()))
		_ = table.Append("Phone", orNA(contact.Phone))
		_ = table.Append("Company", orNA(contact.CompanyName))
		_ = table.Append("Tax Number", orNA(contact.TaxNumber))
		_ = table.Append("Created", dateTimeOrNA(contact.CreatedAt))

		return nil
	})
}
