package config

import (
	"flag"
	"os"
	"time"

	"github.com/tdnguyen/luxauto/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-f string   path to the local store file (default from Config)
//	-l string   log level: debug, info, warn, error
//	-w int      submit processing pause in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-l", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "f", cfg.DatabasePath, "path to the local store file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	submitDelay := fs.Int("w", int(cfg.SubmitDelay.Seconds()), "submit processing pause (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SubmitDelay = time.Duration(*submitDelay) * time.Second
}
