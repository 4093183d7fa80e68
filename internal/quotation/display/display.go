// Package display maps stored quotations to read-only view models.
package display

import (
	"github.com/smallbiznis/quotation/internal/quotation/domain"
	"github.com/smallbiznis/quotation/internal/quotation/format"
)

type PartyBlock struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	TaxID   string `json:"tax_id,omitempty"`
}

type ItemRow struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`
	Amount      string `json:"amount"`
}

// Model is the display form of a quotation: currency amounts formatted with
// the ₹ glyph and two decimals, items in stored order.
type Model struct {
	ID          string     `json:"id"`
	Company     PartyBlock `json:"company"`
	Client      PartyBlock `json:"client"`
	Items       []ItemRow  `json:"items"`
	TotalAmount string     `json:"total_amount"`
	Date        string     `json:"date"`
	Status      string     `json:"status"`
}

// FromQuotation is a pure mapping; it never mutates the source record.
func FromQuotation(q domain.Quotation) Model {
	items := make([]ItemRow, 0, len(q.Items))
	for _, item := range q.Items {
		items = append(items, ItemRow{
			Description: item.Description,
			Quantity:    format.FormatQuantity(item.Quantity),
			Rate:        format.FormatAmount(item.Rate),
			Amount:      format.FormatAmount(item.Amount),
		})
	}

	return Model{
		ID:          q.ID.String(),
		Company:     partyBlock(q.Company),
		Client:      partyBlock(q.Client),
		Items:       items,
		TotalAmount: format.FormatAmount(q.TotalAmount),
		Date:        q.Date,
		Status:      string(q.Status),
	}
}

func partyBlock(p domain.PartyDetails) PartyBlock {
	return PartyBlock{
		Name:    p.Name,
		Address: p.Address,
		Phone:   p.Phone,
		Email:   p.Email,
		TaxID:   p.TaxID,
	}
}
