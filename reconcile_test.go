package texops

import (
	"testing"
	"time"

	"github.com/bhavya-learner/tex-ops/date"
)

func TestMergeInvoiceIntoInventory(t *testing.T) {
	on := date.New(2026, time.March, 5)
	existing := []InventoryItem{
		{ID: "id-denim", Name: "Blue Denim", Quantity: 40, Color: "Blue", LastUpdated: date.New(2026, time.January, 1)},
		{ID: "id-silk", Name: "Silk", Quantity: 10, LastUpdated: date.New(2026, time.January, 1)},
	}

	testCases := []struct {
		name       string
		items      []InvoiceItem
		wantLen    int
		wantFirst  string
		wantDenim  int
	}{
		{
			name:      "exact name increments",
			items:     []InvoiceItem{{Name: "Blue Denim", Quantity: 60}},
			wantLen:   2,
			wantFirst: "Blue Denim",
			wantDenim: 100,
		},
		{
			name:      "case and whitespace insensitive match",
			items:     []InvoiceItem{{Name: "  blue DENIM ", Quantity: 5}},
			wantLen:   2,
			wantFirst: "Blue Denim",
			wantDenim: 45,
		},
		{
			name:      "unknown name creates a new item, prepended",
			items:     []InvoiceItem{{Name: "Red Cotton", Quantity: 30}},
			wantLen:   3,
			wantFirst: "Red Cotton",
			wantDenim: 40,
		},
		{
			name: "blank names and non-positive quantities are skipped",
			items: []InvoiceItem{
				{Name: "   ", Quantity: 10},
				{Name: "Blue Denim", Quantity: 0},
				{Name: "Blue Denim", Quantity: -3},
			},
			wantLen:   2,
			wantFirst: "Blue Denim",
			wantDenim: 40,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MergeInvoiceIntoInventory(tc.items, existing, on)
			if len(got) != tc.wantLen {
				t.Fatalf("got %d items, want %d", len(got), tc.wantLen)
			}
			if got[0].Name != tc.wantFirst {
				t.Errorf("first item is %q, want %q", got[0].Name, tc.wantFirst)
			}
			i := FindItemByID(got, "id-denim")
			if got[i].Quantity != tc.wantDenim {
				t.Errorf("Blue Denim quantity = %d, want %d", got[i].Quantity, tc.wantDenim)
			}
		})
	}
}

// Two lines with the same normalized name must land on one item, even when
// that item was created earlier in the same batch.
func TestMergeInvoiceIntoInventory_WithinBatch(t *testing.T) {
	items := []InvoiceItem{
		{Name: "Green Wool", Quantity: 10},
		{Name: "green wool", Quantity: 7},
	}
	got := MergeInvoiceIntoInventory(items, nil, date.Today())
	if len(got) != 1 {
		t.Fatalf("got %d items, want 1", len(got))
	}
	if got[0].Quantity != 17 {
		t.Errorf("quantity = %d, want 17", got[0].Quantity)
	}
	if got[0].Color != "N/A" {
		t.Errorf("color = %q, want %q", got[0].Color, "N/A")
	}
	if got[0].ID == "" {
		t.Error("created item has no id")
	}
}

func TestMergeInvoiceIntoInventory_DoesNotMutateInput(t *testing.T) {
	existing := []InventoryItem{{ID: "a", Name: "Silk", Quantity: 10}}
	MergeInvoiceIntoInventory([]InvoiceItem{{Name: "Silk", Quantity: 5}}, existing, date.Today())
	if existing[0].Quantity != 10 {
		t.Errorf("input inventory mutated: quantity = %d, want 10", existing[0].Quantity)
	}
}

func TestMergeShelfDetection(t *testing.T) {
	existing := []InventoryItem{{ID: "a", Name: "Buttons", Quantity: 3}}
	det := ShelfDetection{Name: "Buttons", Quantity: 25, Color: "Red", ColorCode: "#ff0000"}

	got := MergeShelfDetection(det, existing, date.Today())
	// Shelf detections always create, never merge.
	if len(got) != 2 {
		t.Fatalf("got %d items, want 2", len(got))
	}
	if got[0].Name != "Buttons" || got[0].Quantity != 25 {
		t.Errorf("prepended item = %q/%d, want Buttons/25", got[0].Name, got[0].Quantity)
	}
	if got[0].ID == got[1].ID {
		t.Error("created item reused an existing id")
	}
	if got[1].Quantity != 3 {
		t.Errorf("existing item quantity = %d, want 3", got[1].Quantity)
	}
}
