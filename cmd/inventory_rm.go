package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	texops "github.com/bhavya-learner/tex-ops"
)

type inventoryRmCmd struct{}

func (*inventoryRmCmd) Name() string     { return "inventory-rm" }
func (*inventoryRmCmd) Synopsis() string { return "delete an inventory item" }
func (*inventoryRmCmd) Usage() string {
	return `texops inventory-rm <id>

  Deletes the item. Orders referencing it keep the name they recorded at
  creation time.
`
}

func (*inventoryRmCmd) SetFlags(f *flag.FlagSet) {}

func (c *inventoryRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one item id.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	store, closer, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closer()

	inventory := store.Inventory()
	if texops.FindItemByID(inventory, id) < 0 {
		fmt.Fprintf(os.Stderr, "Error: no item with id %q.\n", id)
		return subcommands.ExitFailure
	}
	if err := store.ReplaceInventory(texops.DeleteItem(inventory, id)); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving inventory: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted item %s.\n", id)
	return subcommands.ExitSuccess
}
