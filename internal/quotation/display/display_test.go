package display

import (
	"testing"

	"github.com/smallbiznis/quotation/internal/quotation/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromQuotation(t *testing.T) {
	q := domain.Quotation{
		ID: 1234567890,
		Company: domain.PartyDetails{
			Name:    "Acme Traders",
			Address: "12 MG Road",
			Phone:   "+91 98765 43210",
			Email:   "sales@acme.example",
			TaxID:   "29ABCDE1234F1Z5",
		},
		Client: domain.PartyDetails{Name: "Globex"},
		Items: []domain.LineItem{
			{Description: "Widget", Quantity: 3, Rate: 50, Amount: 150},
			{Description: "Gadget", Quantity: 2, Rate: 25, Amount: 50},
		},
		TotalAmount: 200,
		Date:        "28-02-2026",
		Status:      domain.QuotationStatusPending,
	}

	model := FromQuotation(q)

	assert.Equal(t, "1234567890", model.ID)
	assert.Equal(t, "Acme Traders", model.Company.Name)
	assert.Equal(t, "29ABCDE1234F1Z5", model.Company.TaxID)
	assert.Equal(t, "Globex", model.Client.Name)
	assert.Equal(t, "₹200.00", model.TotalAmount)
	assert.Equal(t, "28-02-2026", model.Date)
	assert.Equal(t, "pending", model.Status)

	require.Len(t, model.Items, 2)
	assert.Equal(t, ItemRow{Description: "Widget", Quantity: "3", Rate: "₹50.00", Amount: "₹150.00"}, model.Items[0])
	assert.Equal(t, ItemRow{Description: "Gadget", Quantity: "2", Rate: "₹25.00", Amount: "₹50.00"}, model.Items[1])
}

func TestFromQuotation_EmptyItems(t *testing.T) {
	model := FromQuotation(domain.Quotation{})

	assert.Empty(t, model.Items)
	assert.Equal(t, "₹0.00", model.TotalAmount)
}

func TestFromQuotation_DoesNotMutateSource(t *testing.T) {
	q := domain.Quotation{
		Items: []domain.LineItem{{Description: "Widget", Quantity: 3, Rate: 50, Amount: 150}},
	}

	_ = FromQuotation(q)

	assert.Equal(t, "Widget", q.Items[0].Description)
	assert.Equal(t, 150.0, q.Items[0].Amount)
}
