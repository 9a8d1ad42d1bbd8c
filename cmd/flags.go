package cmd

import (
	"fmt"
	"strconv"
	"strings"

	texops "github.com/bhavya-learner/tex-ops"
)

// reqSpec is one "-r <item>=<amount>" value before resolution. The item
// part is an inventory item id or name.
type reqSpec struct {
	item   string
	amount int
}

// reqFlag collects repeatable -r flags.
type reqFlag []reqSpec

func (r *reqFlag) String() string {
	parts := make([]string, len(*r))
	for i, spec := range *r {
		parts[i] = fmt.Sprintf("%s=%d", spec.item, spec.amount)
	}
	return strings.Join(parts, ",")
}

func (r *reqFlag) Set(value string) error {
	item, amount, ok := strings.Cut(value, "=")
	if !ok {
		return fmt.Errorf("invalid requirement %q, want <item>=<amount>", value)
	}
	n, err := strconv.Atoi(strings.TrimSpace(amount))
	if err != nil {
		return fmt.Errorf("invalid amount in requirement %q: %w", value, err)
	}
	*r = append(*r, reqSpec{item: strings.TrimSpace(item), amount: n})
	return nil
}

// resolve turns the raw specs into order requirements against the current
// inventory, matching by id first and then by name. An item that resolves
// to nothing is an error: a requirement is only meaningful against stock
// that exists at creation time.
func (r reqFlag) resolve(inventory []texops.InventoryItem) ([]texops.OrderRequirement, error) {
	reqs := make([]texops.OrderRequirement, 0, len(r))
	for _, spec := range r {
		i := texops.FindItemByID(inventory, spec.item)
		if i < 0 {
			i = texops.FindItemByName(inventory, spec.item)
		}
		if i < 0 {
			return nil, fmt.Errorf("no inventory item matches %q", spec.item)
		}
		reqs = append(reqs, texops.OrderRequirement{
			InventoryItemID:   inventory[i].ID,
			InventoryItemName: inventory[i].Name,
			AmountNeeded:      spec.amount,
		})
	}
	return reqs, nil
}
