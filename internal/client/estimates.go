package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/tally-client/pkg/models"
	"github.com/fivetwenty-io/tally-client/pkg/services"
	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

// EstimatesClient implements tally.EstimatesClient.
type EstimatesClient struct {
	transport tally.Doer
}

// NewEstimatesClient creates a new estimates client.
func NewEstimatesClient(transport tally.Doer) *EstimatesClient {
	return &EstimatesClient{
		transport: transport,
	}
}

// List implements tally.EstimatesClient.List.
func (c *EstimatesClient) List(ctx context.Context, params *tally.ListParams) (*tally.ListResponse[*models.Estimate], error) {
	list, err := services.ListEstimates(ctx, c.transport, params)
	if err != nil {
		return nil, fmt.Errorf("listing estimates: %w", err)
	}

	return toListResponse(list.Data, list.Meta), nil
}

// Get implements tally.EstimatesClient.Get.
func (c *EstimatesClient) Get(ctx context.Context, id string) (*models.Estimate, error) {
	estimate, err := services.GetEstimate(ctx, c.transport, id)
	if err != nil {
		return nil, fmt.Errorf("getting estimate: %w", err)
	}

	return estimate, nil
}

// Create implements tally.EstimatesClient.Create.
func (c *EstimatesClient) Create(ctx context.Context, estimate *models.Estimate) (*models.Estimate, error) {
	created, err := services.CreateEstimate(ctx, c.transport, estimate)
	if err != nil {
		return nil, fmt.Errorf("creating estimate: %w", err)
	}

	return created, nil
}

// Update implements tally.EstimatesClient.Update.
func (c *EstimatesClient) Update(ctx context.Context, id string, estimate *models.Estimate) (*models.Estimate, error) {
	updated, err := services.UpdateEstimate(ctx, c.transport, id, estimate)
	if err != nil {
		return nil, fmt.Errorf("updating estimate: %w", err)
	}

	return updated, nil
}

// Delete implements tally.EstimatesClient.Delete.
func (c *EstimatesClient) Delete(ctx context.Context, id string) error {
	err := services.DeleteEstimate(ctx, c.transport, id)
	if err != nil {
		return fmt.Errorf("deleting estimate: %w", err)
	}

	return nil
}

// Convert implements tally.EstimatesClient.Convert.
func (c *EstimatesClient) Convert(ctx context.Context, id string) (*models.Invoice, error) {
	invoice, err := services.ConvertEstimate(ctx, c.transport, id)
	if err != nil {
		return nil, fmt.Errorf("converting estimate: %w", err)
	}

	return invoice, nil
}
