package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/tally-client/pkg/models"
	"github.com/fivetwenty-io/tally-client/pkg/services"
	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

// OrganizationsClient implements tally.OrganizationsClient.
type OrganizationsClient struct {
	transport tally.Doer
}

// NewOrganizationsClient creates a new organizations client.
func NewOrganizationsClient(transport tally.Doer) *OrganizationsClient {
	return &OrganizationsClient{
		transport: transport,
	}
}

// List implements tally.OrganizationsClient.List.
func (c *OrganizationsClient) List(ctx context.Context, params *tally.ListParams) (*tally.ListResponse[*models.Organization], error) {
	list, err := services.ListOrganizations(ctx, c.transport, params)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}

	return toListResponse(list.Data, list.Meta), nil
}

// Get implements tally.OrganizationsClient.Get.
func (c *OrganizationsClient) Get(ctx context.Context, id string) (*models.Organization, error) {
	org, err := services.GetOrganization(ctx, c.transport, id)
	if err != nil {
		return nil, fmt.Errorf("getting organization: %w", err)
	}

	return org, nil
}

// Update implements tally.OrganizationsClient.Update.
func (c *OrganizationsClient) Update(ctx context.Context, id string, organization *models.Organization) (*models.Organization, error) {
	updated, err := services.UpdateOrganization(ctx, c.transport, id, organization)
	if err != nil {
		return nil, fmt.Errorf("updating organization: %w", err)
	}

	return updated, nil
}
