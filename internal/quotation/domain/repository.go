package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/quotation/pkg/db/pagination"
	"gorm.io/gorm"
)

// Repository is the document store for finalized quotations. Insert assigns
// nothing; callers hand over a fully assembled quotation with IDs set.
// FindByID returns nil when no record matches.
type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, q *Quotation) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Quotation, error)
	List(ctx context.Context, db *gorm.DB, filter ListQuotationFilter, page pagination.Pagination) ([]*Quotation, error)
}
