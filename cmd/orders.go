package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/bhavya-learner/tex-ops/renderer"
)

type ordersCmd struct{}

func (*ordersCmd) Name() string     { return "orders" }
func (*ordersCmd) Synopsis() string { return "list the order backlog" }
func (*ordersCmd) Usage() string {
	return `texops orders

  Lists every saved order with its status and requirements.
`
}

func (*ordersCmd) SetFlags(f *flag.FlagSet) {}

func (c *ordersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closer, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closer()

	printMarkdown(renderer.Orders(store.Orders()))
	return subcommands.ExitSuccess
}
