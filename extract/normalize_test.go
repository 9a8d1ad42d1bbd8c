package extract

import (
	"testing"
	"time"

	"github.com/bhavya-learner/tex-ops/date"
)

func strp(s string) *string   { return &s }
func nump(f float64) *float64 { return &f }
func intp(i int) *int         { return &i }

func TestResultInvoice(t *testing.T) {
	t.Run("wrong category", func(t *testing.T) {
		r := &Result{Category: CategoryShelf, ShelfData: &ShelfDetails{}}
		if _, ok := r.Invoice(); ok {
			t.Error("got an invoice from a shelf result")
		}
	})

	t.Run("all fields missing default", func(t *testing.T) {
		r := &Result{Category: CategoryInvoice, InvoiceData: &InvoiceDetails{}}
		captured, ok := r.Invoice()
		if !ok {
			t.Fatal("expected an invoice")
		}
		if captured.VendorName != "" || captured.GSTNumber != "" {
			t.Errorf("header = %q/%q, want blank", captured.VendorName, captured.GSTNumber)
		}
		if !captured.Date.IsZero() {
			t.Errorf("date = %s, want zero", captured.Date)
		}
		if !captured.TaxAmount.IsZero() || !captured.TotalAmount.IsZero() {
			t.Error("amounts are not zero")
		}
		if len(captured.Items) != 0 {
			t.Errorf("items = %+v, want none", captured.Items)
		}
	})

	t.Run("populated", func(t *testing.T) {
		r := &Result{
			Category: CategoryInvoice,
			InvoiceData: &InvoiceDetails{
				VendorName:  strp("Acme Textiles"),
				Date:        strp("2026-04-28"),
				TaxAmount:   nump(10),
				TotalAmount: nump(310),
				Items: []InvoiceLine{
					{Name: strp("Blue Denim"), Quantity: nump(60), UnitPrice: nump(5), Total: nump(300)},
					{}, // a fully empty line normalizes to zero values
				},
			},
		}
		captured, ok := r.Invoice()
		if !ok {
			t.Fatal("expected an invoice")
		}
		if want := date.New(2026, time.April, 28); captured.Date != want {
			t.Errorf("date = %s, want %s", captured.Date, want)
		}
		if len(captured.Items) != 2 {
			t.Fatalf("items = %d, want 2", len(captured.Items))
		}
		if captured.Items[0].Quantity != 60 {
			t.Errorf("quantity = %d, want 60", captured.Items[0].Quantity)
		}
		if captured.Items[1].Name != "" || captured.Items[1].Quantity != 0 {
			t.Errorf("empty line = %+v, want zero values", captured.Items[1])
		}
	})

	t.Run("malformed date recovers as zero", func(t *testing.T) {
		r := &Result{Category: CategoryInvoice, InvoiceData: &InvoiceDetails{Date: strp("28/04/2026")}}
		captured, _ := r.Invoice()
		if !captured.Date.IsZero() {
			t.Errorf("date = %s, want zero", captured.Date)
		}
	})
}

func TestResultShelf(t *testing.T) {
	testCases := []struct {
		name string
		in   Result
		want string // expected item name
	}{
		{
			name: "item type wins",
			in: Result{Category: CategoryShelf, Summary: "A shelf of thread spools",
				ShelfData: &ShelfDetails{ItemType: strp("Thread Spools")}},
			want: "Thread Spools",
		},
		{
			name: "summary prefix fallback",
			in: Result{Category: CategoryShelf, Summary: "Rolls of assorted cotton fabrics on a shelf",
				ShelfData: &ShelfDetails{}},
			want: "Rolls of assorted cotton fabri",
		},
		{
			name: "fixed label fallback",
			in:   Result{Category: CategoryShelf, ShelfData: &ShelfDetails{}},
			want: "Shelf Item",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			det, ok := tc.in.Shelf()
			if !ok {
				t.Fatal("expected a shelf detection")
			}
			if det.Name != tc.want {
				t.Errorf("name = %q, want %q", det.Name, tc.want)
			}
		})
	}

	t.Run("colors and count", func(t *testing.T) {
		r := &Result{Category: CategoryShelf, ShelfData: &ShelfDetails{
			ItemType:       strp("Buttons"),
			ItemCount:      intp(25),
			DominantColors: []string{"Red", "White"},
			ColorCode:      strp("#ff0000"),
		}}
		det, _ := r.Shelf()
		if det.Quantity != 25 || det.Color != "Red" || det.ColorCode != "#ff0000" {
			t.Errorf("detection = %+v", det)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		r := &Result{Category: CategoryShelf, ShelfData: &ShelfDetails{ItemType: strp("Buttons")}}
		det, _ := r.Shelf()
		if det.Color != "Mixed" {
			t.Errorf("color = %q, want Mixed", det.Color)
		}
		if det.Quantity != 0 {
			t.Errorf("quantity = %d, want 0", det.Quantity)
		}
	})

	t.Run("wrong category", func(t *testing.T) {
		r := &Result{Category: CategorySketch, SketchData: &SketchDetails{}}
		if _, ok := r.Shelf(); ok {
			t.Error("got a shelf detection from a sketch result")
		}
	})
}
