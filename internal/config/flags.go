package config

import (
	"flag"
	"os"

	"github.com/walterobrien/authsim/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-f string   path of the CSV file backing the account store
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageFile, "f", cfg.StorageFile, "path of the storage csv file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
