package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/spf13/viper"
	"google.golang.org/genai"

	texops "github.com/bhavya-learner/tex-ops"
	"github.com/bhavya-learner/tex-ops/date"
	"github.com/bhavya-learner/tex-ops/extract"
	"github.com/bhavya-learner/tex-ops/renderer"
)

// scanCmd holds the flags for the 'scan' subcommand.
type scanCmd struct {
	save bool
}

func (*scanCmd) Name() string     { return "scan" }
func (*scanCmd) Synopsis() string { return "analyze a document photo and reconcile it with stock" }
func (*scanCmd) Usage() string {
	return `texops scan [-save] <image-file>

  Sends the image to the extractor and prints the analysis. A detected
  shelf is added to the inventory. A detected invoice is recorded in the
  ledger and merged into the inventory when -save is set; without it the
  extraction is only displayed. Sketches are display-only.
`
}

func (c *scanCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.save, "save", false, "Record a detected invoice in the ledger and merge it into the inventory.")
}

func (c *scanCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one image file.")
		return subcommands.ExitUsageError
	}
	image, err := os.ReadFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading image: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating extractor client: %v\n", err)
		return subcommands.ExitFailure
	}
	extractor := extract.New(client, viper.GetString("model"))

	result, err := extractor.Analyze(ctx, image, http.DetectContentType(image))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing image: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Analysis(result))

	switch result.Category {
	case extract.CategoryShelf:
		det, ok := result.Shelf()
		if !ok {
			break
		}
		store, closer, err := openStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
			return subcommands.ExitFailure
		}
		defer closer()
		inventory := texops.MergeShelfDetection(det, store.Inventory(), date.Today())
		if err := store.ReplaceInventory(inventory); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving inventory: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Added %q (%d unit(s)) to the inventory.\n", det.Name, det.Quantity)

	case extract.CategoryInvoice:
		if !c.save {
			fmt.Println("Run again with -save to record this invoice.")
			break
		}
		captured, ok := result.Invoice()
		if !ok {
			fmt.Fprintln(os.Stderr, "Error: the analysis carries no invoice data.")
			return subcommands.ExitFailure
		}
		store, closer, err := openStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
			return subcommands.ExitFailure
		}
		defer closer()
		record, err := store.ApplyPurchase(captured, time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error recording invoice: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Recorded invoice %s from %s and updated the inventory.\n", record.ID, record.VendorName)
	}

	return subcommands.ExitSuccess
}
