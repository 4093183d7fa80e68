// Package ledger implements the in-memory line-item ledger a quotation is
// built from before it is persisted.
package ledger

import (
	"math"
	"strings"
	"time"

	"github.com/smallbiznis/quotation/internal/quotation/domain"
	"github.com/smallbiznis/quotation/internal/quotation/format"
	"gorm.io/datatypes"
)

// Ledger owns an ordered sequence of line items and the derived running
// total. All mutation goes through its methods; validation failures never
// change state.
type Ledger struct {
	items []domain.LineItem
	total float64
}

func New() *Ledger {
	return &Ledger{}
}

// AddItem validates and appends a line item. The description is trimmed and
// must be non-empty; quantity and rate must be finite and strictly positive.
// Amount is derived as quantity*rate and the total is recomputed.
func (l *Ledger) AddItem(description string, quantity, rate float64) (domain.LineItem, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return domain.LineItem{}, domain.ErrEmptyDescription
	}
	if !validNumber(quantity) {
		return domain.LineItem{}, domain.ErrInvalidQuantity
	}
	if !validNumber(rate) {
		return domain.LineItem{}, domain.ErrInvalidRate
	}

	item := domain.LineItem{
		Position:    len(l.items),
		Description: description,
		Quantity:    quantity,
		Rate:        rate,
		Amount:      quantity * rate,
	}
	l.items = append(l.items, item)
	l.recomputeTotal()
	return item, nil
}

// RemoveItem removes exactly the item at index, keeping the relative order
// of the remaining items, and recomputes the total.
func (l *Ledger) RemoveItem(index int) error {
	if index < 0 || index >= len(l.items) {
		return domain.ErrIndexOutOfRange
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	for i := range l.items {
		l.items[i].Position = i
	}
	l.recomputeTotal()
	return nil
}

// Total returns the derived total, recomputed after every mutation.
func (l *Ledger) Total() float64 {
	return l.total
}

// Items returns a copy of the current sequence in insertion order.
func (l *Ledger) Items() []domain.LineItem {
	out := make([]domain.LineItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger) Len() int {
	return len(l.items)
}

// Assemble snapshots the ledger into a quotation ready for persistence.
// It requires at least one item and non-blank company and client names.
// The snapshot copies the item sequence, so further ledger mutation does not
// affect an assembled quotation. The ledger itself is left intact; a failed
// save can be retried without re-entering items.
func (l *Ledger) Assemble(company, client domain.PartyDetails) (domain.Quotation, error) {
	if len(l.items) == 0 {
		return domain.Quotation{}, domain.ErrNoItems
	}
	if strings.TrimSpace(company.Name) == "" {
		return domain.Quotation{}, domain.ErrMissingCompanyName
	}
	if strings.TrimSpace(client.Name) == "" {
		return domain.Quotation{}, domain.ErrMissingClientName
	}

	return domain.Quotation{
		Company:     company,
		Client:      client,
		Items:       l.Items(),
		TotalAmount: l.total,
		Date:        format.FormatDate(time.Now()),
		Status:      domain.QuotationStatusPending,
		Metadata:    datatypes.JSONMap{},
	}, nil
}

func (l *Ledger) recomputeTotal() {
	sum := 0.0
	for _, item := range l.items {
		sum += item.Amount
	}
	l.total = sum
}

func validNumber(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
