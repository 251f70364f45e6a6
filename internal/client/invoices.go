package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/tally-client/pkg/models"
	"github.com/fivetwenty-io/tally-client/pkg/services"
	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

// InvoicesClient implements tally.InvoicesClient.
type InvoicesClient struct {
	transport tally.Doer
}

// NewInvoicesClient creates a new invoices client.
func NewInvoicesClient(transport tally.Doer) *InvoicesClient {
	return &InvoicesClient{
		transport: transport,
	}
}

// List implements tally.InvoicesClient.List.
func (c *InvoicesClient) List(ctx context.Context, params *tally.ListParams) (*tally.ListResponse[*models.Invoice], error) {
	list, err := services.ListInvoices(ctx, c.transport, params)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}

	return toListResponse(list.Data, list.Meta), nil
}

// Get implements tally.InvoicesClient.Get.
func (c *InvoicesClient) Get(ctx context.Context, id string) (*models.Invoice, error) {
	invoice, err := services.GetInvoice(ctx, c.transport, id)
	if err != nil {
		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	return invoice, nil
}

// Create implements tally.InvoicesClient.Create.
func (c *InvoicesClient) Create(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	created, err := services.CreateInvoice(ctx, c.transport, invoice)
	if err != nil {
		return nil, fmt.Errorf("creating invoice: %w", err)
	}

	return created, nil
}

// Update implements tally.InvoicesClient.Update.
func (c *InvoicesClient) Update(ctx context.Context, id string, invoice *models.Invoice) (*models.Invoice, error) {
	updated, err := services.UpdateInvoice(ctx, c.transport, id, invoice)
	if err != nil {
		return nil, fmt.Errorf("updating invoice: %w", err)
	}

	return updated, nil
}

// Delete implements tally.InvoicesClient.Delete.
func (c *InvoicesClient) Delete(ctx context.Context, id string) error {
	err := services.DeleteInvoice(ctx, c.transport, id)
	if err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	return nil
}

// Send implements tally.InvoicesClient.Send.
func (c *InvoicesClient) Send(ctx context.Context, id string, request *models.SendInvoiceRequest) (*models.Invoice, error) {
	invoice, err := services.SendInvoice(ctx, c.transport, id, request)
	if err != nil {
		return nil, fmt.Errorf("sending invoice: %w", err)
	}

	return invoice, nil
}

// Void implements tally.InvoicesClient.Void.
func (c *InvoicesClient) Void(ctx context.Context, id string) (*models.Invoice, error) {
	invoice, err := services.VoidInvoice(ctx, c.transport, id)
	if err != nil {
		return nil, fmt.Errorf("voiding invoice: %w", err)
	}

	return invoice, nil
}
