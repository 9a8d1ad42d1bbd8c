package texops

import (
	"time"

	"github.com/google/uuid"

	"github.com/bhavya-learner/tex-ops/date"
)

// InvoiceItem is one line of a purchase invoice.
type InvoiceItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice Money  `json:"unitPrice"`
	Total     Money  `json:"total"`
}

// InvoiceRecord is one purchase transaction in the ledger.
//
// Its identity (ID, SavedAt) is fixed once saved; the content remains
// user-editable afterward. Totals are recomputed on the edit path, not
// re-verified on load.
type InvoiceRecord struct {
	ID          string        `json:"id"`
	VendorName  string        `json:"vendorName"`
	GSTNumber   string        `json:"gstNumber"`
	Date        date.Date     `json:"date"`
	Items       []InvoiceItem `json:"items"`
	TaxAmount   Money         `json:"taxAmount"`
	TotalAmount Money         `json:"totalAmount"`
	SavedAt     time.Time     `json:"savedAt"`
}

// Recompute refreshes every line total from quantity and unit price, and
// the grand total as the sum of line totals plus tax.
func (r *InvoiceRecord) Recompute() {
	subtotal := M(0)
	for i := range r.Items {
		r.Items[i].Total = r.Items[i].UnitPrice.MulQty(r.Items[i].Quantity)
		subtotal = subtotal.Add(r.Items[i].Total)
	}
	r.TotalAmount = subtotal.Add(r.TaxAmount)
}

// CapturedInvoice is the normalized form of an extracted invoice, after
// all boundary defaulting. Zero values are valid everywhere.
type CapturedInvoice struct {
	VendorName  string
	GSTNumber   string
	Date        date.Date
	Items       []InvoiceItem
	TaxAmount   Money
	TotalAmount Money
}

// RecordInvoice converts a captured invoice into a ledger record with a
// fresh identity. A missing vendor falls back to a sentinel and a missing
// date to the saving day.
func RecordInvoice(c CapturedInvoice, savedAt time.Time) InvoiceRecord {
	vendor := c.VendorName
	if vendor == "" {
		vendor = "Unknown Vendor"
	}
	day := c.Date
	if day.IsZero() {
		day = date.FromTime(savedAt)
	}
	items := make([]InvoiceItem, len(c.Items))
	copy(items, c.Items)
	return InvoiceRecord{
		ID:          uuid.NewString(),
		VendorName:  vendor,
		GSTNumber:   c.GSTNumber,
		Date:        day,
		Items:       items,
		TaxAmount:   c.TaxAmount,
		TotalAmount: c.TotalAmount,
		SavedAt:     savedAt,
	}
}

// FindInvoiceByID returns the index of the record with the given id, or -1.
func FindInvoiceByID(invoices []InvoiceRecord, id string) int {
	for i := range invoices {
		if invoices[i].ID == id {
			return i
		}
	}
	return -1
}

// UpdateInvoice returns a new ledger with the record matching updated.ID
// replaced. Identity fields are preserved from the stored record and all
// totals are recomputed. The ledger is unchanged if the id does not resolve.
func UpdateInvoice(invoices []InvoiceRecord, updated InvoiceRecord) []InvoiceRecord {
	out := make([]InvoiceRecord, len(invoices))
	copy(out, invoices)
	i := FindInvoiceByID(out, updated.ID)
	if i < 0 {
		return out
	}
	updated.ID = out[i].ID
	updated.SavedAt = out[i].SavedAt
	updated.Recompute()
	out[i] = updated
	return out
}

// TotalSpend sums the grand totals of all ledger records.
func TotalSpend(invoices []InvoiceRecord) Money {
	total := M(0)
	for _, inv := range invoices {
		total = total.Add(inv.TotalAmount)
	}
	return total
}
