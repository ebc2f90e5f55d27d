package config

import (
	"flag"
	"os"
	"time"

	"github.com/avasin/brewmart/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-f string   path to the local store file (default from Config)
//	-d int      login delay in milliseconds (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "f", cfg.DatabasePath, "path to the local store file")
	loginDelay := fs.Int("d", int(cfg.LoginDelay.Milliseconds()), "login delay (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.LoginDelay = time.Duration(*loginDelay) * time.Millisecond
}
