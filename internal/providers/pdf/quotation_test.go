package pdf

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() QuotationData {
	return QuotationData{
		CompanyName:    "Acme Traders",
		CompanyAddress: "12 MG Road, Bengaluru",
		CompanyPhone:   "+91 98765 43210",
		CompanyEmail:   "sales@acme.example",
		CompanyGSTIN:   "29ABCDE1234F1Z5",

		ClientName:    "Globex",
		ClientAddress: "4 Ring Road, Pune",
		ClientPhone:   "+91 91234 56789",
		ClientEmail:   "purchasing@globex.example",

		QuotationNumber: "1234567890",
		Date:            "28-02-2026",

		Items: []QuotationItem{
			{Description: "Widget", Quantity: "3", Rate: "₹50.00", Amount: "₹150.00"},
			{Description: "Gadget", Quantity: "2", Rate: "₹25.00", Amount: "₹50.00"},
		},
		Total: "₹200.00",
	}
}

func TestGenerateQuotation(t *testing.T) {
	provider := New()

	reader, err := provider.GenerateQuotation(context.Background(), sampleData())
	require.NoError(t, err)

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.True(t, len(content) > 4)
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestGenerateQuotation_WithoutGSTIN(t *testing.T) {
	provider := New()

	data := sampleData()
	data.CompanyGSTIN = ""

	reader, err := provider.GenerateQuotation(context.Background(), data)
	require.NoError(t, err)

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}
