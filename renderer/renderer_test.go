package renderer

import (
	"strings"
	"testing"

	texops "github.com/bhavya-learner/tex-ops"
)

func TestInventory(t *testing.T) {
	if got := Inventory(nil); !strings.Contains(got, "No items in stock.") {
		t.Errorf("empty inventory rendering:\n%s", got)
	}

	got := Inventory([]texops.InventoryItem{
		{ID: "a", Name: "Blue Denim", Quantity: 70, Color: "Blue"},
	})
	for _, want := range []string{"| Blue Denim | 70 | Blue |", "70 unit(s) across 1 item(s)"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendering misses %q:\n%s", want, got)
		}
	}
}

func TestPlan(t *testing.T) {
	if got := Plan(texops.PlanResult{Sufficient: true}); !strings.Contains(got, "Stock available") {
		t.Errorf("sufficient rendering:\n%s", got)
	}

	got := Plan(texops.PlanResult{Shortages: []texops.Shortage{
		{Name: "Red Cotton", Needed: 50, Have: 30, Diff: 20},
	}})
	if !strings.Contains(got, "| Red Cotton | 50 | 30 | 20 |") {
		t.Errorf("shortage rendering:\n%s", got)
	}
}

func TestOrders(t *testing.T) {
	got := Orders([]texops.Order{{
		ID: "ord-1", CustomerName: "Acme", Status: texops.StatusPending,
		Requirements: []texops.OrderRequirement{
			{InventoryItemName: "Silk", AmountNeeded: 5},
		},
	}})
	for _, want := range []string{"Acme (PENDING)", "| Silk | 5 |"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendering misses %q:\n%s", want, got)
		}
	}
}
