package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// QuotationData carries preformatted display strings; the renderer does no
// currency math of its own.
type QuotationData struct {
	CompanyName    string
	CompanyAddress string
	CompanyPhone   string
	CompanyEmail   string
	CompanyGSTIN   string

	ClientName    string
	ClientAddress string
	ClientPhone   string
	ClientEmail   string

	QuotationNumber string
	Date            string

	Items []QuotationItem
	Total string
}

type QuotationItem struct {
	Description string
	Quantity    string
	Rate        string
	Amount      string
}

var termsAndConditions = []string{
	"Terms and Conditions:",
	"1. Payment is due within 30 days",
	"2. Prices are subject to change without notice",
	"3. Goods once sold will not be taken back",
	"4. Interest @ 18% p.a. will be charged on overdue payments",
}

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateQuotation(ctx context.Context, data QuotationData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(15,
		text.NewCol(12, "QUOTATION", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)

	m.AddRow(12,
		col.New(6).Add(
			text.New("Quotation No: "+data.QuotationNumber, props.Text{Size: 9}),
			text.New("Date: "+data.Date, props.Text{Size: 9, Top: 4}),
		),
		col.New(6),
	)

	// From / To blocks
	m.AddRow(45,
		col.New(6).Add(
			text.New("From:", props.Text{Style: fontstyle.Bold}),
			text.New(data.CompanyName, props.Text{Top: 6}),
			text.New(data.CompanyAddress, props.Text{Top: 11}),
			text.New("Phone: "+data.CompanyPhone, props.Text{Top: 20}),
			text.New("Email: "+data.CompanyEmail, props.Text{Top: 25}),
			text.New(gstLine(data.CompanyGSTIN), props.Text{Top: 30}),
		),
		col.New(6).Add(
			text.New("To:", props.Text{Style: fontstyle.Bold}),
			text.New(data.ClientName, props.Text{Top: 6}),
			text.New(data.ClientAddress, props.Text{Top: 11}),
			text.New("Phone: "+data.ClientPhone, props.Text{Top: 20}),
			text.New("Email: "+data.ClientEmail, props.Text{Top: 25}),
		),
	)

	// Table header
	m.AddRow(10,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Quantity", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Rate", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range data.Items {
		m.AddRow(8,
			text.NewCol(6, item.Description, props.Text{Size: 9}),
			text.NewCol(2, item.Quantity, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.Rate, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.Amount, props.Text{Size: 9, Align: align.Right}),
		)
	}

	// Totals footer
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, data.Total, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, term := range termsAndConditions {
		m.AddRow(6,
			text.NewCol(12, term, props.Text{Size: 8}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}

func gstLine(gstin string) string {
	if gstin == "" {
		return ""
	}
	return "GST: " + gstin
}
