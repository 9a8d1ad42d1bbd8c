package texops

import (
	"strings"

	"github.com/bhavya-learner/tex-ops/date"
)

// MergeInvoiceIntoInventory merges captured invoice line items into the
// inventory and returns the new collection. Line items with a blank name
// or a non-positive quantity are ignored. A line whose normalized name
// matches an existing item increments that item's quantity; otherwise a
// new item is created with a fresh id. Matching also sees items created
// earlier in the same batch, so two lines with the same normalized name
// end up as one item.
func MergeInvoiceIntoInventory(items []InvoiceItem, inventory []InventoryItem, on date.Date) []InventoryItem {
	out := make([]InventoryItem, len(inventory))
	copy(out, inventory)

	for _, item := range items {
		if item.Quantity <= 0 || strings.TrimSpace(item.Name) == "" {
			continue
		}
		if i := FindItemByName(out, item.Name); i >= 0 {
			out[i].Quantity += item.Quantity
			out[i].LastUpdated = on
			continue
		}
		created := InventoryItem{
			ID:          NewItemID(),
			Name:        item.Name,
			Quantity:    item.Quantity,
			Color:       "N/A",
			ColorCode:   "",
			LastUpdated: on,
		}
		// Newest stock first, like user-visible inventory ordering.
		out = append([]InventoryItem{created}, out...)
	}
	return out
}

// ShelfDetection is the normalized result of a shelf photo analysis, after
// all boundary defaulting.
type ShelfDetection struct {
	Name      string
	Quantity  int
	Color     string
	ColorCode string
}

// MergeShelfDetection adds a shelf detection to the inventory as a single
// new item. Shelf detections always create and never merge: a detected
// name is not assumed comparable to existing stock.
func MergeShelfDetection(det ShelfDetection, inventory []InventoryItem, on date.Date) []InventoryItem {
	created := InventoryItem{
		ID:          NewItemID(),
		Name:        det.Name,
		Quantity:    det.Quantity,
		Color:       det.Color,
		ColorCode:   det.ColorCode,
		LastUpdated: on,
	}
	out := make([]InventoryItem, 0, len(inventory)+1)
	out = append(out, created)
	return append(out, inventory...)
}
