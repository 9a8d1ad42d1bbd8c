package renderer

import (
	"fmt"
	"strings"

	"github.com/bhavya-learner/tex-ops/extract"
)

// Analysis renders an extraction result per category. Sketches are
// render-only and never touch the bookkeeping state.
func Analysis(res *extract.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Scan Result: %s\n\n%s\n\n", res.Category, res.Summary)

	switch res.Category {
	case extract.CategoryInvoice:
		if record, ok := res.Invoice(); ok {
			fmt.Fprintf(&b, "Vendor: %s", orDash(record.VendorName))
			if record.GSTNumber != "" {
				fmt.Fprintf(&b, " (GST %s)", record.GSTNumber)
			}
			b.WriteString("\n\n")
			if len(record.Items) > 0 {
				b.WriteString("| Item | Qty | Unit Price | Line Total |\n")
				b.WriteString("|---|---:|---:|---:|\n")
				for _, item := range record.Items {
					fmt.Fprintf(&b, "| %s | %d | %s | %s |\n",
						item.Name, item.Quantity, item.UnitPrice, item.Total)
				}
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "Tax %s, **Total %s**\n", record.TaxAmount, record.TotalAmount)
		}
	case extract.CategoryShelf:
		if det, ok := res.Shelf(); ok {
			fmt.Fprintf(&b, "- Item: %s\n- Count: %d\n- Color: %s\n", det.Name, det.Quantity, det.Color)
			if det.ColorCode != "" {
				fmt.Fprintf(&b, "- Color code: %s\n", det.ColorCode)
			}
			if res.ShelfData.QuantityEstimate != nil {
				fmt.Fprintf(&b, "- Stock estimate: %s\n", *res.ShelfData.QuantityEstimate)
			}
		}
	case extract.CategorySketch:
		if d := res.SketchData; d != nil {
			if d.DesignConcept != nil {
				fmt.Fprintf(&b, "- Design: %s\n", *d.DesignConcept)
			}
			if d.FabricSuggestion != nil {
				fmt.Fprintf(&b, "- Fabric: %s\n", *d.FabricSuggestion)
			}
		}
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
