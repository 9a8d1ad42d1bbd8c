// Package cmd implements the CLI application to manage the factory's
// inventory, purchase ledger and order backlog.
package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/spf13/viper"

	texops "github.com/bhavya-learner/tex-ops"
	"github.com/bhavya-learner/tex-ops/extract"
)

// Commands lists all subcommands, in registration order.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&scanCmd{},
		&inventoryCmd{},
		&inventorySetCmd{},
		&inventoryRmCmd{},
		&ledgerCmd{},
		&ledgerEditCmd{},
		&planCmd{},
		&orderSaveCmd{},
		&ordersCmd{},
		&orderCompleteCmd{},
		&summaryCmd{},
		&backupCmd{},
		&restoreCmd{},
		&topicCmd{},
	}
}

// InitConfig loads the texops configuration: an optional texops.toml in
// the working directory or ~/.texops, overridden by TEXOPS_* environment
// variables.
func InitConfig() {
	viper.SetConfigName("texops")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".texops"))
	}
	viper.SetEnvPrefix("texops")
	viper.AutomaticEnv()

	viper.SetDefault("data_dir", ".texops")
	viper.SetDefault("storage", "dir")
	viper.SetDefault("model", extract.DefaultModel)
	viper.SetDefault("missing_policy", texops.LenientMissing.String())
	viper.SetDefault("low_stock_threshold", 50)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("warning: could not read config file: %v", err)
		}
	}
}

// openStore opens the configured storage backend and loads the three
// collections. The returned closer must be called when done.
func openStore() (*texops.Store, func(), error) {
	dataDir := viper.GetString("data_dir")
	switch backend := viper.GetString("storage"); backend {
	case "dir":
		store, err := texops.Open(texops.NewDirStorage(dataDir))
		return store, func() {}, err
	case "badger":
		bs, err := texops.OpenBadger(filepath.Join(dataDir, "badger"))
		if err != nil {
			return nil, nil, err
		}
		store, err := texops.Open(bs)
		if err != nil {
			bs.Close()
			return nil, nil, err
		}
		return store, func() {
			if err := bs.Close(); err != nil {
				log.Printf("warning: could not close store: %v", err)
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// missingPolicy returns the configured policy for order requirements that
// no longer resolve to an inventory item.
func missingPolicy() texops.MissingItemPolicy {
	policy, err := texops.ParseMissingItemPolicy(viper.GetString("missing_policy"))
	if err != nil {
		log.Printf("warning: %v, using %q", err, texops.LenientMissing)
		return texops.LenientMissing
	}
	return policy
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
