package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/tally-client/pkg/models"
	"github.com/fivetwenty-io/tally-client/pkg/services"
	"github.com/fivetwenty-io/tally-client/pkg/tally"
)

// ContactsClient implements tally.ContactsClient.
type ContactsClient struct {
	transport tally.Doer
}

// NewContactsClient creates a new contacts client.
func NewContactsClient(transport tally.Doer) *ContactsClient {
	return &ContactsClient{
		transport: transport,
	}
}

// List implements tally.ContactsClient.List.
func (c *ContactsClient) List(ctx context.Context, params *tally.ListParams) (*tally.ListResponse[*models.Contact], error) {
	list, err := services.ListContacts(ctx, c.transport, params)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}

	return toListResponse(list.Data, list.Meta), nil
}

// Get implements tally.ContactsClient.Get.
func (c *ContactsClient) Get(ctx context.Context, id string) (*models.Contact, error) {
	contact, err := services.GetContact(ctx, c.transport, id)
	if err != nil {
		return nil, fmt.Errorf("getting contact: %w", err)
	}

	return contact, nil
}

// Create implements tally.ContactsClient.Create.
func (c *ContactsClient) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	created, err := services.CreateContact(ctx, c.transport, contact)
	if err != nil {
		return nil, fmt.Errorf("creating contact: %w", err)
	}

	return created, nil
}

// Update implements tally.ContactsClient.Update.
func (c *ContactsClient) Update(ctx context.Context, id string, contact *models.Contact) (*models.Contact, error) {
	updated, err := services.UpdateContact(ctx, c.transport, id, contact)
	if err != nil {
		return nil, fmt.Errorf("updating contact: %w", err)
	}

	return updated, nil
}

// Delete implements tally.ContactsClient.Delete.
func (c *ContactsClient) Delete(ctx context.Context, id string) error {
	err := services.DeleteContact(ctx, c.transport, id)
	if err != nil {
		return fmt.Errorf("deleting contact: %w", err)
	}

	return nil
}
