// Package domain contains the quotation data model and service contracts.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// QuotationStatus tags a stored quotation. The source system writes
// "pending" at creation and never transitions it; the value is kept as an
// opaque tag.
type QuotationStatus string

const (
	QuotationStatusPending QuotationStatus = "pending"
)

// PartyDetails describes one side of a quotation (company or client).
// Name is the only field required to finalize a quotation. TaxID carries the
// company GST number and is optional.
type PartyDetails struct {
	Name    string `gorm:"type:text" json:"name"`
	Address string `gorm:"type:text" json:"address,omitempty"`
	Phone   string `gorm:"type:text" json:"phone,omitempty"`
	Email   string `gorm:"type:text" json:"email,omitempty"`
	TaxID   string `gorm:"type:text" json:"tax_id,omitempty"`
}

// Quotation is the finalized document combining company, client, ordered
// line items and the derived total. Saved quotations are immutable; there
// are no update or delete operations.
type Quotation struct {
	ID          snowflake.ID      `gorm:"primaryKey" json:"id"`
	Company     PartyDetails      `gorm:"embedded;embeddedPrefix:company_" json:"company"`
	Client      PartyDetails      `gorm:"embedded;embeddedPrefix:client_" json:"client"`
	Items       []LineItem        `gorm:"foreignKey:QuotationID" json:"items"`
	TotalAmount float64           `gorm:"not null;default:0" json:"total_amount"`
	Date        string            `gorm:"type:text;not null" json:"date"`
	Status      QuotationStatus   `gorm:"type:text;not null;default:'pending'" json:"status"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"metadata,omitempty"`
	CreatedAt   time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Quotation) TableName() string { return "quotations" }

// LineItem is one billable row. Amount is always Quantity*Rate; Position
// records insertion order, which is also display and print order.
type LineItem struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"-"`
	QuotationID snowflake.ID `gorm:"not null;index" json:"-"`
	Position    int          `gorm:"not null" json:"-"`
	Description string       `gorm:"type:text;not null" json:"description"`
	Quantity    float64      `gorm:"not null" json:"quantity"`
	Rate        float64      `gorm:"not null" json:"rate"`
	Amount      float64      `gorm:"not null" json:"amount"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (LineItem) TableName() string { return "quotation_items" }
