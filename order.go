package texops

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order. The only transition is
// StatusPending to StatusCompleted, exactly once.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusCompleted OrderStatus = "COMPLETED"
)

// ParseOrderStatus parses a string into an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending:
		return StatusPending, nil
	case StatusCompleted:
		return StatusCompleted, nil
	default:
		return "", fmt.Errorf("unknown order status: %q", s)
	}
}

// OrderRequirement is one requested line of an order. InventoryItemName is
// a name snapshot taken at creation time; it does not track later renames
// or deletion of the referenced item.
type OrderRequirement struct {
	InventoryItemID   string `json:"inventoryItemId"`
	InventoryItemName string `json:"inventoryItemName"`
	AmountNeeded      int    `json:"amountNeeded"`
}

// Order is a customer or production requirement plan.
type Order struct {
	ID           string             `json:"id"`
	CustomerName string             `json:"customerName"`
	CreatedAt    time.Time          `json:"createdAt"`
	Status       OrderStatus        `json:"status"`
	Requirements []OrderRequirement `json:"requirements"`
}

// ErrEmptyOrder is returned when an order would be saved without a single
// valid requirement.
var ErrEmptyOrder = errors.New("order has no valid requirements")

// NewOrder builds a pending order from the given requirements. Only
// requirements with a non-empty item id and a positive amount are kept;
// if none remain the order is rejected with ErrEmptyOrder.
func NewOrder(customerName string, requirements []OrderRequirement, createdAt time.Time) (Order, error) {
	valid := make([]OrderRequirement, 0, len(requirements))
	for _, req := range requirements {
		if req.InventoryItemID != "" && req.AmountNeeded > 0 {
			valid = append(valid, req)
		}
	}
	if len(valid) == 0 {
		return Order{}, ErrEmptyOrder
	}
	return Order{
		ID:           uuid.NewString(),
		CustomerName: customerName,
		CreatedAt:    createdAt,
		Status:       StatusPending,
		Requirements: valid,
	}, nil
}

// FindOrderByID returns the index of the order with the given id, or -1.
func FindOrderByID(orders []Order, id string) int {
	for i := range orders {
		if orders[i].ID == id {
			return i
		}
	}
	return -1
}
