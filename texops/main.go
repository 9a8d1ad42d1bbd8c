package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/bhavya-learner/tex-ops/cmd"
)

func main() {
	// The extractor API key is usually kept in a local .env file.
	godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands() {
		commander.Register(c, "")
	}

	// Shell completion: exits here when invoked by the shell.
	completion := &complete.Command{Sub: map[string]*complete.Command{
		"scan":           {Args: predict.Files("*"), Flags: map[string]complete.Predictor{"save": predict.Nothing}},
		"inventory":      {},
		"inventory-set":  {},
		"inventory-rm":   {},
		"ledger":         {},
		"ledger-edit":    {},
		"plan":           {},
		"order-save":     {},
		"orders":         {},
		"order-complete": {},
		"summary":        {},
		"backup":         {},
		"restore":        {Args: predict.Files("*.json")},
		"topic":          {},
	}}
	completion.Complete("texops")

	flag.Parse()
	cmd.InitConfig()
	os.Exit(int(commander.Execute(context.Background())))
}
