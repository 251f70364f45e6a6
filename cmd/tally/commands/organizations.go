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

// NewOrganizationsCommand creates the organizations command group.
func NewOrganizationsCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "organizations",
		Aliases: []string{"orgs", "org"},
		Short:   "Inspect organizations",
		Long:    "List and inspect the organizations the API key has access to",
	}

	cmd.AddCommand(newOrganizationsListCommand(v))
	cmd.AddCommand(newOrganizationsGetCommand(v))

	return cmd
}

func newOrganizationsListCommand(v *viper.Viper) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List organizations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, v, func(ctx context.Context, s *session) error {
				orgs, pagination, err := list[*models.Organization](ctx, s.client.Organizations(), flags)
				if err != nil {
					return fmt.Errorf("failed to list organizations: %w", err)
				}

				return s.renderOrganizations(orgs, pagination)
			})
		},
	}

	flags.register(cmd)

	return cmd
}

func newOrganizationsGetCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, v, func(ctx context.Context, s *session) error {
				org, err := s.client.Organizations().Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get organization: %w", err)
				}

				return s.render(org, func(table *tablewriter.Table) error {
					table.Header("Property", "Value")

					_ = table.Append("ID", org.ID)
					_ = table.Append("Name", swag.StringValue(org.Name))
					_ = table.Append("Legal Name", orNA(org.LegalName))
					_ = table.Append("Currency", orNA(org.Currency))
					_ = table.Append("Timezone", orNA(org.Timezone))
					_ = table.Append("Tax Number", orNA(org.TaxNumber))
					_ = table.Append("Created", dateTimeOrNA(org.CreatedAt))

					return nil
				})
			})
		},
	}
}

func (s *session) renderOrganizations(orgs []*models.Organization, pagination *tally.Pagination) error {
	if s.output == constants.FormatTable && len(orgs) == 0 {
		_, _ = fmt.Fprintln(s.stdout, "No organizations found")

		return nil
	}

	err := s.render(orgs, func(table *tablewriter.Table) error {
		table.Header("Name", "ID", "Currency", "Timezone")

		for _, org := range orgs {
			_ = table.Append(swag.StringValue(org.Name), org.ID, orNA(org.Currency), orNA(org.Timezone))
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
