package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	texops "github.com/bhavya-learner/tex-ops"
	"github.com/bhavya-learner/tex-ops/renderer"
)

// planCmd checks requirements against current stock without saving
// anything.
type planCmd struct {
	reqs reqFlag
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "check requirements against current stock" }
func (*planCmd) Usage() string {
	return `texops plan -r <item>=<amount> [-r ...]

  Compares each requirement with the inventory and reports per-item
  shortages. The check reserves nothing: saving or completing an order
  later re-checks against the stock of that moment.
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.reqs, "r", "Requirement as <item>=<amount>; <item> is an item id or name. Repeatable.")
}

func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(c.reqs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one -r requirement is needed.")
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

	result := texops.CheckAvailability(requirements, inventory, missingPolicy())
	printMarkdown(renderer.Plan(result))
	return subcommands.ExitSuccess
}
