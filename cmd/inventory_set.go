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

// inventorySetCmd creates a new item or edits an existing one.
type inventorySetCmd struct {
	id        string
	name      string
	quantity  int
	color     string
	colorCode string
}

func (*inventorySetCmd) Name() string     { return "inventory-set" }
func (*inventorySetCmd) Synopsis() string { return "create or edit an inventory item" }
func (*inventorySetCmd) Usage() string {
	return `texops inventory-set [-id <id>] -name <name> [-q <quantity>] [-color <color>] [-code <code>]

  Without -id, creates a new item. With -id, replaces that item's fields.
  Quantities below zero are stored as zero.
`
}

func (c *inventorySetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Item to edit. Omit to create a new item.")
	f.StringVar(&c.name, "name", "", "Item name.")
	f.IntVar(&c.quantity, "q", 0, "Quantity in units.")
	f.StringVar(&c.color, "color", "N/A", "Descriptive color.")
	f.StringVar(&c.colorCode, "code", "", "Color code, if any.")
}

func (c *inventorySetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}

	store, closer, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closer()

	inventory := store.Inventory()
	today := date.Today()

	if c.id == "" {
		created := texops.InventoryItem{
			ID:          texops.NewItemID(),
			Name:        c.name,
			Quantity:    max(c.quantity, 0),
			Color:       c.color,
			ColorCode:   c.colorCode,
			LastUpdated: today,
		}
		inventory = append([]texops.InventoryItem{created}, inventory...)
		if err := store.ReplaceInventory(inventory); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving inventory: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Created item %s.\n", created.ID)
		return subcommands.ExitSuccess
	}

	if texops.FindItemByID(inventory, c.id) < 0 {
		fmt.Fprintf(os.Stderr, "Error: no item with id %q.\n", c.id)
		return subcommands.ExitFailure
	}
	inventory = texops.UpdateItem(inventory, texops.InventoryItem{
		ID:        c.id,
		Name:      c.name,
		Quantity:  c.quantity,
		Color:     c.color,
		ColorCode: c.colorCode,
	}, today)
	if err := store.ReplaceInventory(inventory); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving inventory: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated item %s.\n", c.id)
	return subcommands.ExitSuccess
}
