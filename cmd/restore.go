package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	texops "github.com/bhavya-learner/tex-ops"
)

// restoreCmd replaces all data with the content of a snapshot file.
type restoreCmd struct{}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "replace all data with a snapshot file" }
func (*restoreCmd) Usage() string {
	return `texops restore <file>

  Validates the snapshot and replaces the inventory, the ledger and the
  orders with its content. Nothing is applied from a file that fails
  validation.
`
}

func (*restoreCmd) SetFlags(f *flag.FlagSet) {}

func (c *restoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one snapshot file.")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	snapshot, err := texops.DecodeSnapshot(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	store, closer, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closer()

	if err := store.RestoreAll(snapshot.Inventory, snapshot.Invoices, snapshot.Orders); err != nil {
		fmt.Fprintf(os.Stderr, "Error restoring snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Restored %d item(s), %d invoice(s), %d order(s).\n",
		len(snapshot.Inventory), len(snapshot.Invoices), len(snapshot.Orders))
	return subcommands.ExitSuccess
}
