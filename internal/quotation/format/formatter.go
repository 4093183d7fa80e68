// Package format holds pure display formatting helpers shared by the API
// responses and the PDF renderer.
package format

import (
	"fmt"
	"strconv"
	"time"
)

const currencySymbol = "₹"

// FormatAmount renders a monetary value with the currency glyph and exactly
// two decimal places, e.g. 200 -> "₹200.00".
func FormatAmount(v float64) string {
	return fmt.Sprintf("%s%.2f", currencySymbol, v)
}

// FormatQuantity renders a quantity without trailing zeros, e.g. 3 -> "3",
// 2.5 -> "2.5".
func FormatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatDate renders the quotation creation date, e.g. "28-02-2026".
func FormatDate(t time.Time) string {
	return t.Format("02-01-2006")
}
