package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/quotation/internal/providers/pdf"
	"github.com/smallbiznis/quotation/internal/quotation/domain"
	"github.com/smallbiznis/quotation/internal/quotation/format"
	"github.com/smallbiznis/quotation/internal/quotation/ledger"
	"github.com/smallbiznis/quotation/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
	PDF   pdf.Provider
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
	pdf   pdf.Provider
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("quotation.service"),
		genID: p.GenID,
		repo:  p.Repo,
		pdf:   p.PDF,
	}
}

// Create replays the submitted items through a fresh ledger so a batch
// submission passes exactly the validation interactive adds would, then
// assembles and persists the quotation. Validation failures happen before
// any write; a failed save persists nothing and can be retried.
func (s *Service) Create(ctx context.Context, req domain.CreateQuotationRequest) (domain.Quotation, error) {
	led := ledger.New()
	for _, item := range req.Items {
		if _, err := led.AddItem(item.Description, item.Quantity, item.Rate); err != nil {
			return domain.Quotation{}, err
		}
	}

	q, err := led.Assemble(req.Company, req.Client)
	if err != nil {
		return domain.Quotation{}, err
	}

	now := time.Now().UTC()
	q.ID = s.genID.Generate()
	q.CreatedAt = now
	q.UpdatedAt = now
	for i := range q.Items {
		q.Items[i].ID = s.genID.Generate()
		q.Items[i].QuotationID = q.ID
		q.Items[i].CreatedAt = now
	}

	if err := s.repo.Insert(ctx, s.db, &q); err != nil {
		s.log.Error("save quotation", zap.Error(err))
		return domain.Quotation{}, fmt.Errorf("save quotation: %w", err)
	}

	s.log.Info("quotation created",
		zap.String("quotation_id", q.ID.String()),
		zap.Int("items", len(q.Items)),
		zap.Float64("total_amount", q.TotalAmount),
	)
	return q, nil
}

func (s *Service) List(ctx context.Context, req domain.ListQuotationRequest) (domain.ListQuotationResponse, error) {
	page := pagination.Pagination{PageToken: req.PageToken, PageSize: req.PageSize}
	if page.PageSize <= 0 {
		page.PageSize = 10
	}

	rows, err := s.repo.List(ctx, s.db, domain.ListQuotationFilter{
		Status:     req.Status,
		ClientName: req.ClientName,
	}, page)
	if err != nil {
		return domain.ListQuotationResponse{}, err
	}

	rows, info := pagination.BuildCursorPageInfo(rows, page.PageSize, func(q *domain.Quotation) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{ID: q.ID.String()})
		if err != nil {
			return ""
		}
		return token
	})

	resp := domain.ListQuotationResponse{PageInfo: info}
	resp.Quotations = make([]domain.Quotation, 0, len(rows))
	for _, row := range rows {
		resp.Quotations = append(resp.Quotations, *row)
	}
	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Quotation, error) {
	parsed, err := parseID(id)
	if err != nil {
		return domain.Quotation{}, err
	}

	q, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		s.log.Error("fetch quotation", zap.String("quotation_id", id), zap.Error(err))
		return domain.Quotation{}, fmt.Errorf("fetch quotation: %w", err)
	}
	if q == nil {
		return domain.Quotation{}, domain.ErrQuotationNotFound
	}
	return *q, nil
}

// ExportPDF fetches a stored quotation and renders it with the same layout
// used at save time. The filename is derived from the quotation id.
func (s *Service) ExportPDF(ctx context.Context, id string) (domain.PDFDocument, error) {
	q, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.PDFDocument{}, err
	}

	items := make([]pdf.QuotationItem, 0, len(q.Items))
	for _, item := range q.Items {
		items = append(items, pdf.QuotationItem{
			Description: item.Description,
			Quantity:    format.FormatQuantity(item.Quantity),
			Rate:        format.FormatAmount(item.Rate),
			Amount:      format.FormatAmount(item.Amount),
		})
	}

	reader, err := s.pdf.GenerateQuotation(ctx, pdf.QuotationData{
		CompanyName:    q.Company.Name,
		CompanyAddress: q.Company.Address,
		CompanyPhone:   q.Company.Phone,
		CompanyEmail:   q.Company.Email,
		CompanyGSTIN:   q.Company.TaxID,

		ClientName:    q.Client.Name,
		ClientAddress: q.Client.Address,
		ClientPhone:   q.Client.Phone,
		ClientEmail:   q.Client.Email,

		QuotationNumber: q.ID.String(),
		Date:            q.Date,

		Items: items,
		Total: format.FormatAmount(q.TotalAmount),
	})
	if err != nil {
		s.log.Error("render quotation pdf", zap.String("quotation_id", id), zap.Error(err))
		return domain.PDFDocument{}, fmt.Errorf("render quotation pdf: %w", err)
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return domain.PDFDocument{}, err
	}

	return domain.PDFDocument{
		Filename: fmt.Sprintf("Quotation_%s.pdf", q.ID.String()),
		Content:  content,
	}, nil
}

func parseID(raw string) (snowflake.ID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, domain.ErrInvalidQuotationID
	}
	id, err := snowflake.ParseString(raw)
	if err != nil {
		return 0, domain.ErrInvalidQuotationID
	}
	return id, nil
}
