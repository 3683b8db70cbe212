package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/assessment/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string    backend base URL
//	-t duration  request timeout
//	-d string    local state database path
//	-r uint      bootstrap retries on network failure
//	-i int       session check interval in seconds (0 disables)
//	-l string    log level
//	-p string    start path
//
// Other arguments are filtered out first with flagx.FilterArgs.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-d", "-r", "-i", "-l", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "backend base URL")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.StateDBPath, "d", cfg.StateDBPath, "local state database path")
	fs.Uint64Var(&cfg.BootstrapRetries, "r", cfg.BootstrapRetries, "bootstrap retries on network failure")
	checkInterval := fs.Int("i", int(cfg.SessionCheckInterval.Seconds()), "session check interval (in seconds, 0 disables)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.StartPath, "p", cfg.StartPath, "path to open on start")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.SessionCheckInterval = time.Duration(*checkInterval) * time.Second
		}
	})
}
