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

// ledgerEditCmd edits a recorded invoice. Line totals and the grand total
// are recomputed from the stored lines after the edit.
type ledgerEditCmd struct {
	id     string
	vendor string
	gst    string
	day    string
	tax    string
}

func (*ledgerEditCmd) Name() string     { return "ledger-edit" }
func (*ledgerEditCmd) Synopsis() string { return "edit a recorded invoice" }
func (*ledgerEditCmd) Usage() string {
	return `texops ledger-edit -id <id> [-vendor <name>] [-gst <number>] [-d <date>] [-tax <amount>]

  Rewrites the given fields of an invoice and recomputes its totals. The
  invoice's identity and the recorded saving time are preserved. Stock
  already reconciled from the invoice is not adjusted.
`
}

func (c *ledgerEditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Invoice to edit.")
	f.StringVar(&c.vendor, "vendor", "", "New vendor name.")
	f.StringVar(&c.gst, "gst", "", "New GST number.")
	f.StringVar(&c.day, "d", "", "New invoice date (YYYY-MM-DD).")
	f.StringVar(&c.tax, "tax", "", "New tax amount.")
}

func (c *ledgerEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	invoices := store.Invoices()
	i := texops.FindInvoiceByID(invoices, c.id)
	if i < 0 {
		fmt.Fprintf(os.Stderr, "Error: no invoice with id %q.\n", c.id)
		return subcommands.ExitFailure
	}
	updated := invoices[i]

	if c.vendor != "" {
		updated.VendorName = c.vendor
	}
	if c.gst != "" {
		updated.GSTNumber = c.gst
	}
	if c.day != "" {
		day, err := date.Parse(c.day)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		updated.Date = day
	}
	if c.tax != "" {
		tax, err := texops.ParseMoney(c.tax)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing tax amount: %v\n", err)
			return subcommands.ExitUsageError
		}
		updated.TaxAmount = tax
	}

	if err := store.ReplaceInvoices(texops.UpdateInvoice(invoices, updated)); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated invoice %s.\n", c.id)
	return subcommands.ExitSuccess
}
