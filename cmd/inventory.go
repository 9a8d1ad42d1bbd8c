package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/bhavya-learner/tex-ops/renderer"
)

type inventoryCmd struct{}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "list the current stock" }
func (*inventoryCmd) Usage() string {
	return `texops inventory

  Lists every inventory item, newest first.
`
}

func (*inventoryCmd) SetFlags(f *flag.FlagSet) {}

func (c *inventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closer, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closer()

	printMarkdown(renderer.Inventory(store.Inventory()))
	return subcommands.ExitSuccess
}
