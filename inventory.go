package texops

import (
	"strings"

	"github.com/google/uuid"

	"github.com/bhavya-learner/tex-ops/date"
)

// InventoryItem is one stock-keeping line.
//
// Quantity is never negative: every deduction clamps at zero. Name is the
// natural-language matching key used during reconciliation (compared
// case-insensitively after trimming). Color and ColorCode are free-text
// descriptive fields with no uniqueness constraint.
type InventoryItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	Color       string    `json:"color"`
	ColorCode   string    `json:"colorCode"`
	LastUpdated date.Date `json:"lastUpdated"`
}

// NewItemID returns a fresh opaque identifier, never reused.
func NewItemID() string { return uuid.NewString() }

// NormalizeName lowercases and trims a display name for matching.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Deduct removes up to n units, clamping the quantity at zero, and stamps
// the mutation date.
func (it *InventoryItem) Deduct(n int, on date.Date) {
	it.Quantity -= n
	if it.Quantity < 0 {
		it.Quantity = 0
	}
	it.LastUpdated = on
}

// FindItemByID returns the index of the item with the given id, or -1.
func FindItemByID(inventory []InventoryItem, id string) int {
	for i := range inventory {
		if inventory[i].ID == id {
			return i
		}
	}
	return -1
}

// FindItemByName returns the index of the first item whose normalized name
// matches the normalized given name, or -1.
func FindItemByName(inventory []InventoryItem, name string) int {
	norm := NormalizeName(name)
	for i := range inventory {
		if NormalizeName(inventory[i].Name) == norm {
			return i
		}
	}
	return -1
}

// UpdateItem returns a new inventory with the item matching updated.ID
// replaced by updated, stamped with the mutation date. The inventory is
// unchanged if the id does not resolve.
func UpdateItem(inventory []InventoryItem, updated InventoryItem, on date.Date) []InventoryItem {
	out := make([]InventoryItem, len(inventory))
	copy(out, inventory)
	if i := FindItemByID(out, updated.ID); i >= 0 {
		updated.LastUpdated = on
		if updated.Quantity < 0 {
			updated.Quantity = 0
		}
		out[i] = updated
	}
	return out
}

// DeleteItem returns a new inventory without the item of the given id.
// Orders referencing the item keep their name snapshot; there is no
// cascading delete.
func DeleteItem(inventory []InventoryItem, id string) []InventoryItem {
	out := make([]InventoryItem, 0, len(inventory))
	for _, it := range inventory {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// TotalUnits sums the quantities of all items.
func TotalUnits(inventory []InventoryItem) int {
	var total int
	for _, it := range inventory {
		total += it.Quantity
	}
	return total
}

// LowStockCount counts items whose quantity is strictly below the threshold.
func LowStockCount(inventory []InventoryItem, threshold int) int {
	var count int
	for _, it := range inventory {
		if it.Quantity < threshold {
			count++
		}
	}
	return count
}
