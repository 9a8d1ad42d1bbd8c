package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	texops "github.com/bhavya-learner/tex-ops"
	"github.com/bhavya-learner/tex-ops/renderer"
)

// orderSaveCmd saves a pending order. A shortage at save time is a
// warning, not an error: the order stays in the backlog until stock
// arrives, and completion re-checks anyway.
type orderSaveCmd struct {
	customer string
	reqs     reqFlag
}

func (*orderSaveCmd) Name() string     { return "order-save" }
func (*orderSaveCmd) Synopsis() string { return "save a pending order" }
func (*orderSaveCmd) Usage() string {
	return `texops order-save -customer <name> -r <item>=<amount> [-r ...]

  Saves a pending order with the given requirements. Requirements with a
  non-positive amount are dropped; an order with no valid requirement is
  rejected. Stock is checked and a shortage reported, but the order is
  saved regardless.
`
}

func (c *orderSaveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.customer, "customer", "", "Customer or production run name.")
	f.Var(&c.reqs, "r", "Requirement as <item>=<amount>; <item> is an item id or name. Repeatable.")
}

func (c *orderSaveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.customer == "" {
		fmt.Fprintln(os.Stderr, "Error: -customer is required.")
		return subcommands.ExitUsageError
	}

	store, closer, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closer()

	inventory := store.Inventory()
	requirements, err := c.reqs.resolve(inventory)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	order, err := texops.NewOrder(c.customer, requirements, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	if result := texops.CheckAvailability(order.Requirements, inventory, missingPolicy()); !result.Sufficient {
		printMarkdown(renderer.Plan(result))
		fmt.Println("Saving the order anyway; complete it once stock arrives.")
	}

	orders := append([]texops.Order{order}, store.Orders()...)
	if err := store.ReplaceOrders(orders); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving orders: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Saved order %s for %s.\n", order.ID, order.CustomerName)
	return subcommands.ExitSuccess
}
