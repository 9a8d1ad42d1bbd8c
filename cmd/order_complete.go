package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	texops "github.com/bhavya-learner/tex-ops"
	"github.com/bhavya-learner/tex-ops/date"
)

// orderCompleteCmd completes a pending order, deducting its requirements
// from stock.
type orderCompleteCmd struct {
	id    string
	force bool
}

func (*orderCompleteCmd) Name() string     { return "order-complete" }
func (*orderCompleteCmd) Synopsis() string { return "complete a pending order and deduct stock" }
func (*orderCompleteCmd) Usage() string {
	return `texops order-complete -id <id> [-force]

  Deducts every requirement of the order from the inventory (never below
  zero) and marks the order completed. The order must still be pending,
  and stock is re-checked first; -force skips the re-check.
`
}

func (c *orderCompleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Order to complete.")
	f.BoolVar(&c.force, "force", false, "Skip the availability re-check. Deductions still stop at zero.")
}

func (c *orderCompleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	store, closer, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closer()

	inventory, orders, err := texops.CompleteOrder(c.id, store.Inventory(), store.Orders(), texops.CompleteOptions{
		Policy: missingPolicy(),
		Force:  c.force,
		On:     date.Today(),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := store.ApplyFulfillment(inventory, orders); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving fulfillment: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Completed order %s.\n", c.id)
	return subcommands.ExitSuccess
}
