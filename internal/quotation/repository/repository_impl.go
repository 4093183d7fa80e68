package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/quotation/internal/quotation/domain"
	"github.com/smallbiznis/quotation/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

// Insert persists the quotation and its items in one transaction. A failed
// save leaves nothing behind.
func (r *repo) Insert(ctx context.Context, db *gorm.DB, q *domain.Quotation) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(q).Error; err != nil {
			return err
		}
		if len(q.Items) == 0 {
			return nil
		}
		return tx.Create(&q.Items).Error
	})
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Quotation, error) {
	var q domain.Quotation
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&q).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	err = db.WithContext(ctx).
		Where("quotation_id = ?", id).
		Order("position asc").
		Find(&q.Items).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// List pages quotations newest first. Snowflake IDs are time ordered, so the
// cursor rides on the id column alone.
func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListQuotationFilter, page pagination.Pagination) ([]*domain.Quotation, error) {
	stmt := db.WithContext(ctx).Model(&domain.Quotation{})
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	if filter.ClientName != "" {
		stmt = stmt.Where("client_name = ?", filter.ClientName)
	}

	if page.PageToken != "" {
		cursor, err := pagination.DecodeCursor(page.PageToken)
		if err != nil {
			return nil, err
		}
		cursorID, err := snowflake.ParseString(cursor.ID)
		if err != nil {
			return nil, err
		}
		stmt = stmt.Where("id < ?", cursorID)
	}

	size := page.PageSize
	if size <= 0 {
		size = 10
	}

	var quotations []*domain.Quotation
	err := stmt.
		Order("id desc").
		Limit(size + 1).
		Find(&quotations).Error
	if err != nil {
		return nil, err
	}
	return quotations, nil
}
