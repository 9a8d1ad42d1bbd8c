package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/bhavya-learner/tex-ops/renderer"
)

type ledgerCmd struct{}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "list recorded purchase invoices" }
func (*ledgerCmd) Usage() string {
	return `texops ledger

  Lists the purchase ledger, newest invoice first.
`
}

func (*ledgerCmd) SetFlags(f *flag.FlagSet) {}

func (c *ledgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closer, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closer()

	printMarkdown(renderer.Ledger(store.Invoices()))
	return subcommands.ExitSuccess
}
