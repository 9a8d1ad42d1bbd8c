package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/spf13/viper"

	texops "github.com/bhavya-learner/tex-ops"
	"github.com/bhavya-learner/tex-ops/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display spend, stock and alert totals" }
func (*summaryCmd) Usage() string {
	return `texops summary

  Displays total spend, units in stock and the number of low-stock items.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closer, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closer()

	inventory := store.Inventory()
	threshold := viper.GetInt("low_stock_threshold")
	printMarkdown(renderer.Summary(
		texops.TotalSpend(store.Invoices()),
		texops.TotalUnits(inventory),
		len(inventory),
		texops.LowStockCount(inventory, threshold),
		threshold,
	))
	return subcommands.ExitSuccess
}
