package texops

import "fmt"

// MissingItemPolicy decides how an order requirement that no longer
// resolves to an inventory item is treated during an availability check.
type MissingItemPolicy int

const (
	// LenientMissing silently excludes unresolved requirements from the
	// shortage computation. This matches the historical behavior.
	LenientMissing MissingItemPolicy = iota
	// StrictMissing counts an unresolved requirement as a full shortage.
	StrictMissing
)

func (p MissingItemPolicy) String() string {
	switch p {
	case LenientMissing:
		return "lenient"
	case StrictMissing:
		return "strict"
	default:
		return "unknown"
	}
}

// ParseMissingItemPolicy parses a string into a MissingItemPolicy.
func ParseMissingItemPolicy(s string) (MissingItemPolicy, error) {
	switch s {
	case "lenient":
		return LenientMissing, nil
	case "strict":
		return StrictMissing, nil
	default:
		return 0, fmt.Errorf("unknown missing item policy: %q", s)
	}
}

// Shortage is the positive difference between a requirement and currently
// available stock.
type Shortage struct {
	Name   string `json:"name"`
	Needed int    `json:"needed"`
	Have   int    `json:"have"`
	Diff   int    `json:"diff"`
}

// PlanResult is the outcome of an availability check. Sufficient is true
// iff there are no shortages.
type PlanResult struct {
	Shortages  []Shortage `json:"shortages"`
	Sufficient bool       `json:"sufficient"`
}

// CheckAvailability evaluates whether the inventory can satisfy every
// requirement. A resolvable requirement whose amount exceeds the item's
// quantity produces a shortage; unresolved requirements are handled per
// the policy. The check does not reserve stock: a later save or
// completion re-checks against the inventory of that moment.
func CheckAvailability(requirements []OrderRequirement, inventory []InventoryItem, policy MissingItemPolicy) PlanResult {
	var shortages []Shortage
	for _, req := range requirements {
		i := FindItemByID(inventory, req.InventoryItemID)
		if i < 0 {
			if policy == StrictMissing {
				shortages = append(shortages, Shortage{
					Name:   req.InventoryItemName,
					Needed: req.AmountNeeded,
					Have:   0,
					Diff:   req.AmountNeeded,
				})
			}
			continue
		}
		item := inventory[i]
		if req.AmountNeeded > item.Quantity {
			shortages = append(shortages, Shortage{
				Name:   item.Name,
				Needed: req.AmountNeeded,
				Have:   item.Quantity,
				Diff:   req.AmountNeeded - item.Quantity,
			})
		}
	}
	return PlanResult{Shortages: shortages, Sufficient: len(shortages) == 0}
}
