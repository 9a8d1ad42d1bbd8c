package texops

import (
	"errors"
	"fmt"

	"github.com/bhavya-learner/tex-ops/date"
)

var (
	// ErrOrderNotFound is returned when the order id does not resolve.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderNotPending is returned when completing an order that is not
	// in the pending state. Completion happens exactly once.
	ErrOrderNotPending = errors.New("order is not pending")
	// ErrInsufficientStock is returned when the completion-time
	// availability re-check finds a shortage.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// CompleteOptions tunes order completion.
type CompleteOptions struct {
	// Policy applies to the availability re-check.
	Policy MissingItemPolicy
	// Force skips the availability re-check; deductions still clamp at
	// zero, so over-deduction is truncated rather than going negative.
	Force bool
	// On stamps every touched inventory item.
	On date.Date
}

// CompleteOrder commits a pending order: it deducts each requirement's
// amount from the matching inventory item (clamped at zero) and marks the
// order completed. It returns the new inventory and order collections.
//
// The transition is guarded: the order must exist and be pending, and
// unless Force is set the current inventory must still satisfy the order.
// On any error both collections are returned unchanged.
func CompleteOrder(orderID string, inventory []InventoryItem, orders []Order, opts CompleteOptions) ([]InventoryItem, []Order, error) {
	oi := FindOrderByID(orders, orderID)
	if oi < 0 {
		return inventory, orders, fmt.Errorf("%w: %q", ErrOrderNotFound, orderID)
	}
	order := orders[oi]
	if order.Status != StatusPending {
		return inventory, orders, fmt.Errorf("%w: %q is %s", ErrOrderNotPending, orderID, order.Status)
	}
	if !opts.Force {
		if result := CheckAvailability(order.Requirements, inventory, opts.Policy); !result.Sufficient {
			return inventory, orders, fmt.Errorf("%w: %d item(s) short", ErrInsufficientStock, len(result.Shortages))
		}
	}

	newInventory := make([]InventoryItem, len(inventory))
	copy(newInventory, inventory)
	for _, req := range order.Requirements {
		if i := FindItemByID(newInventory, req.InventoryItemID); i >= 0 {
			newInventory[i].Deduct(req.AmountNeeded, opts.On)
		}
		// Requirements pointing at a deleted item are skipped; the order
		// keeps its name snapshot regardless.
	}

	newOrders := make([]Order, len(orders))
	copy(newOrders, orders)
	newOrders[oi].Status = StatusCompleted

	return newInventory, newOrders, nil
}
