package extract

import (
	"strings"

	texops "github.com/bhavya-learner/tex-ops"
	"github.com/bhavya-learner/tex-ops/date"
)

// Invoice normalizes the result into a captured invoice, defaulting every
// missing field: blank vendor and GST number, zero amounts, an empty item
// list. It reports false when the result is not an invoice analysis.
func (r *Result) Invoice() (texops.CapturedInvoice, bool) {
	if r.Category != CategoryInvoice || r.InvoiceData == nil {
		return texops.CapturedInvoice{}, false
	}
	d := r.InvoiceData

	var day date.Date
	if d.Date != nil {
		// A malformed date is recovered as the zero date, which defaults
		// to the saving day downstream.
		day, _ = date.Parse(strings.TrimSpace(*d.Date))
	}

	items := make([]texops.InvoiceItem, 0, len(d.Items))
	for _, line := range d.Items {
		items = append(items, texops.InvoiceItem{
			Name:      str(line.Name),
			Quantity:  int(num(line.Quantity)),
			UnitPrice: texops.M(num(line.UnitPrice)),
			Total:     texops.M(num(line.Total)),
		})
	}

	return texops.CapturedInvoice{
		VendorName:  str(d.VendorName),
		GSTNumber:   str(d.GSTNumber),
		Date:        day,
		Items:       items,
		TaxAmount:   texops.M(num(d.TaxAmount)),
		TotalAmount: texops.M(num(d.TotalAmount)),
	}, true
}

// Shelf normalizes the result into a shelf detection. The name falls back
// from the detected item type to a summary prefix to a fixed label, the
// color to the first dominant color or "Mixed". It reports false when the
// result is not a shelf analysis.
func (r *Result) Shelf() (texops.ShelfDetection, bool) {
	if r.Category != CategoryShelf || r.ShelfData == nil {
		return texops.ShelfDetection{}, false
	}
	d := r.ShelfData

	name := str(d.ItemType)
	if name == "" {
		name = summaryPrefix(r.Summary, 30)
	}
	if name == "" {
		name = "Shelf Item"
	}

	color := "Mixed"
	if len(d.DominantColors) > 0 && d.DominantColors[0] != "" {
		color = d.DominantColors[0]
	}

	var count int
	if d.ItemCount != nil {
		count = *d.ItemCount
	}

	return texops.ShelfDetection{
		Name:      name,
		Quantity:  count,
		Color:     color,
		ColorCode: str(d.ColorCode),
	}, true
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func num(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func summaryPrefix(s string, n int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}
