package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	texops "github.com/bhavya-learner/tex-ops"
)

// backupCmd exports a whole-state snapshot to a JSON file.
type backupCmd struct {
	output string
}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "export all data to a snapshot file" }
func (*backupCmd) Usage() string {
	return `texops backup [-o <file>]

  Writes the inventory, the ledger and the orders to a single JSON
  snapshot. The default file name carries today's date.
`
}

func (c *backupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to TexOps_Backup_<date>.json.")
}

func (c *backupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closer, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closer()

	now := time.Now()
	output := c.output
	if output == "" {
		output = fmt.Sprintf("TexOps_Backup_%s.json", now.Format("2006-01-02"))
	}

	file, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating backup file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	snapshot := texops.ExportSnapshot(store.Inventory(), store.Invoices(), store.Orders(), now)
	if err := texops.EncodeSnapshot(file, snapshot); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %s.\n", output)
	return subcommands.ExitSuccess
}
