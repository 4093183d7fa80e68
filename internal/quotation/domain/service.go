package domain

import (
	"context"
	"errors"

	"github.com/smallbiznis/quotation/pkg/db/pagination"
)

// ItemInput is a submitted line item before validation.
type ItemInput struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
}

type CreateQuotationRequest struct {
	Company PartyDetails `json:"company"`
	Client  PartyDetails `json:"client"`
	Items   []ItemInput  `json:"items"`
}

type ListQuotationRequest struct {
	PageToken  string
	PageSize   int
	Status     QuotationStatus
	ClientName string
}

type ListQuotationFilter struct {
	Status     QuotationStatus
	ClientName string
}

type ListQuotationResponse struct {
	pagination.PageInfo
	Quotations []Quotation `json:"quotations"`
}

// PDFDocument is a rendered quotation ready for download.
type PDFDocument struct {
	Filename string
	Content  []byte
}

type Service interface {
	Create(context.Context, CreateQuotationRequest) (Quotation, error)
	List(context.Context, ListQuotationRequest) (ListQuotationResponse, error)
	GetByID(ctx context.Context, id string) (Quotation, error)
	ExportPDF(ctx context.Context, id string) (PDFDocument, error)
}

var (
	ErrEmptyDescription   = errors.New("empty_description")
	ErrInvalidQuantity    = errors.New("invalid_quantity")
	ErrInvalidRate        = errors.New("invalid_rate")
	ErrIndexOutOfRange    = errors.New("index_out_of_range")
	ErrMissingCompanyName = errors.New("missing_company_name")
	ErrMissingClientName  = errors.New("missing_client_name")
	ErrNoItems            = errors.New("no_items")
	ErrInvalidQuotationID = errors.New("invalid_quotation_id")
	ErrQuotationNotFound  = errors.New("quotation_not_found")
)
