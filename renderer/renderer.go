// Package renderer turns the bookkeeping collections into markdown, ready
// to be printed through a terminal markdown renderer.
package renderer

import (
	"fmt"
	"strings"

	texops "github.com/bhavya-learner/tex-ops"
)

// Inventory renders the stock as a markdown table.
func Inventory(items []texops.InventoryItem) string {
	var b strings.Builder
	b.WriteString("# Inventory\n\n")
	if len(items) == 0 {
		b.WriteString("No items in stock.\n")
		return b.String()
	}
	b.WriteString("| Name | Qty | Color | Code | Updated | ID |\n")
	b.WriteString("|---|---:|---|---|---|---|\n")
	for _, it := range items {
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s |\n",
			it.Name, it.Quantity, it.Color, it.ColorCode, it.LastUpdated, it.ID)
	}
	fmt.Fprintf(&b, "\n%d unit(s) across %d item(s).\n", texops.TotalUnits(items), len(items))
	return b.String()
}

// Ledger renders the purchase ledger, one section per invoice.
func Ledger(invoices []texops.InvoiceRecord) string {
	var b strings.Builder
	b.WriteString("# Purchases Ledger\n\n")
	if len(invoices) == 0 {
		b.WriteString("No invoices found. Start by scanning one.\n")
		return b.String()
	}
	for _, inv := range invoices {
		fmt.Fprintf(&b, "## %s — %s\n\n", inv.VendorName, inv.Date)
		fmt.Fprintf(&b, "Invoice `%s`", inv.ID)
		if inv.GSTNumber != "" {
			fmt.Fprintf(&b, ", GST %s", inv.GSTNumber)
		}
		b.WriteString("\n\n")
		if len(inv.Items) > 0 {
			b.WriteString("| Item | Qty | Unit Price | Line Total |\n")
			b.WriteString("|---|---:|---:|---:|\n")
			for _, item := range inv.Items {
				fmt.Fprintf(&b, "| %s | %d | %s | %s |\n",
					item.Name, item.Quantity, item.UnitPrice, item.Total)
			}
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Tax %s, **Total %s**\n\n", inv.TaxAmount, inv.TotalAmount)
	}
	fmt.Fprintf(&b, "Total spend: **%s** over %d invoice(s).\n", texops.TotalSpend(invoices), len(invoices))
	return b.String()
}

// Orders renders the order backlog.
func Orders(orders []texops.Order) string {
	var b strings.Builder
	b.WriteString("# Orders\n\n")
	if len(orders) == 0 {
		b.WriteString("No orders saved.\n")
		return b.String()
	}
	for _, o := range orders {
		fmt.Fprintf(&b, "## %s (%s)\n\n", o.CustomerName, o.Status)
		fmt.Fprintf(&b, "Order `%s`, created %s\n\n", o.ID, o.CreatedAt.Format("2006-01-02"))
		b.WriteString("| Material | Needed |\n|---|---:|\n")
		for _, req := range o.Requirements {
			fmt.Fprintf(&b, "| %s | %d |\n", req.InventoryItemName, req.AmountNeeded)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Plan renders the outcome of an availability check.
func Plan(result texops.PlanResult) string {
	var b strings.Builder
	if result.Sufficient {
		b.WriteString("**Stock available.** Ready to fulfill this order.\n")
		return b.String()
	}
	b.WriteString("## Shortage Detected\n\n")
	b.WriteString("| Material | Needed | Have | Short |\n|---|---:|---:|---:|\n")
	for _, s := range result.Shortages {
		fmt.Fprintf(&b, "| %s | %d | %d | %d |\n", s.Name, s.Needed, s.Have, s.Diff)
	}
	return b.String()
}

// Summary renders the dashboard numbers.
func Summary(totalSpend texops.Money, units, items, lowStock, threshold int) string {
	var b strings.Builder
	b.WriteString("# TexOps Summary\n\n")
	fmt.Fprintf(&b, "- Total spend: **%s**\n", totalSpend)
	fmt.Fprintf(&b, "- In stock: **%d unit(s)** across %d item(s)\n", units, items)
	if lowStock > 0 {
		fmt.Fprintf(&b, "- Alerts: **%d item(s)** below %d units\n", lowStock, threshold)
	} else {
		b.WriteString("- Alerts: none\n")
	}
	return b.String()
}
