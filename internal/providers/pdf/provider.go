package pdf

import (
	"context"
	"io"
)

// Provider renders a quotation into a paginated PDF document.
type Provider interface {
	GenerateQuotation(ctx context.Context, data QuotationData) (io.Reader, error)
}
