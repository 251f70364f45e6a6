package models_test

import (
	"encoding/json"
	"testing"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/tally-client/pkg/models"
)

func validLineItem() *models.LineItem {
	return &models.LineItem{
		Description: swag.String("Consulting"),
		Quantity:    swag.Float64(2),
		UnitPrice:   swag.Float64(150),
		TaxRate:     20,
	}
}

func TestInvoiceValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		invoice *models.Invoice
		wantErr string
	}{
		{
			name: "valid",
			invoice: &models.Invoice{
				ContactID: swag.String("con_1"),
				Currency:  "EUR",
				LineItems: []*models.LineItem{validLineItem()},
			},
		},
		{
			name:    "missing contact",
			invoice: &models.Invoice{LineItems: []*models.LineItem{validLineItem()}},
			wantErr: "contact_id",
		},
		{
			name:    "missing line items",
			invoice: &models.Invoice{ContactID: swag.String("con_1")},
			wantErr: "line_items",
		},
		{
			name: "lower case currency",
			invoice: &models.Invoice{
				ContactID: swag.String("con_1"),
				Currency:  "eur",
				LineItems: []*models.LineItem{validLineItem()},
			},
			wantErr: "currency",
		},
		{
			name: "zero quantity",
			invoice: &models.Invoice{
				ContactID: swag.String("con_1"),
				LineItems: []*models.LineItem{{
					Description: swag.String("Consulting"),
					Quantity:    swag.Float64(0),
					UnitPrice:   swag.Float64(10),
				}},
			},
			wantErr: "line_items.0.quantity",
		},
		{
			name: "tax rate above 100",
			invoice: &models.Invoice{
				ContactID: swag.String("con_1"),
				LineItems: []*models.LineItem{{
					Description: swag.String("Consulting"),
					Quantity:    swag.Float64(1),
					UnitPrice:   swag.Float64(10),
					TaxRate:     120,
				}},
			},
			wantErr: "line_items.0.tax_rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.invoice.Validate(strfmt.Default)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEstimateValidate(t *testing.T) {
	t.Parallel()

	valid := &models.Estimate{
		ContactID: swag.String("con_1"),
		LineItems: []*models.LineItem{validLineItem()},
	}
	require.NoError(t, valid.Validate(strfmt.Default))

	invalid := &models.Estimate{ContactID: swag.String("con_1"), Currency: "EURO"}
	err := invalid.Validate(strfmt.Default)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line_items")
	assert.Contains(t, err.Error(), "currency")
}

func TestContactValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		contact *models.Contact
		wantErr string
	}{
		{
			name: "valid",
			contact: &models.Contact{
				Name:           swag.String("Acme"),
				Email:          "billing@acme.test",
				Type:           models.ContactTypeCustomer,
				BillingAddress: &models.Address{Country: "DE"},
			},
		},
		{name: "missing name", contact: &models.Contact{}, wantErr: "name"},
		{name: "empty name", contact: &models.Contact{Name: swag.String("")}, wantErr: "name"},
		{name: "bad email", contact: &models.Contact{Name: swag.String("Acme"), Email: "not-an-email"}, wantErr: "email"},
		{name: "unknown type", contact: &models.Contact{Name: swag.String("Acme"), Type: "partner"}, wantErr: "type"},
		{
			name:    "bad billing country",
			contact: &models.Contact{Name: swag.String("Acme"), BillingAddress: &models.Address{Country: "Germany"}},
			wantErr: "billing_address.country",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.contact.Validate(strfmt.Default)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOrganizationValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, (&models.Organization{Name: swag.String("Acme"), Currency: "USD"}).Validate(strfmt.Default))

	err := (&models.Organization{Currency: "usd"}).Validate(strfmt.Default)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "currency")
}

func TestSendInvoiceRequestValidate(t *testing.T) {
	t.Parallel()

	valid := &models.SendInvoiceRequest{To: []strfmt.Email{"billing@acme.test"}}
	require.NoError(t, valid.Validate(strfmt.Default))

	err := (&models.SendInvoiceRequest{}).Validate(strfmt.Default)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "to")

	err = (&models.SendInvoiceRequest{To: []strfmt.Email{"billing@acme.test", "nope"}}).Validate(strfmt.Default)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "to.1")
}

func TestInvoiceListDecode(t *testing.T) {
	t.Parallel()

	body := `{
		"data": [{"id": "inv_1", "contact_id": "con_1", "due_date": "2026-03-31", "total": 99.5, "line_items": []}],
		"meta": {"page": 2, "per_page": 1, "total_count": 7, "total_pages": 7}
	}`

	var list models.InvoiceList
	require.NoError(t, json.Unmarshal([]byte(body), &list))

	require.Len(t, list.Data, 1)
	assert.Equal(t, "inv_1", list.Data[0].ID)
	assert.Equal(t, "con_1", swag.StringValue(list.Data[0].ContactID))
	assert.Equal(t, "2026-03-31", list.Data[0].DueDate.String())
	assert.InDelta(t, 99.5, list.Data[0].Total, 0.001)
	assert.Equal(t, int64(7), list.Meta.TotalPages)

	raw, err := list.Data[0].MarshalBinary()
	require.NoError(t, err)

	var roundTrip models.Invoice
	require.NoError(t, roundTrip.UnmarshalBinary(raw))
	assert.Equal(t, list.Data[0].ID, roundTrip.ID)
}
