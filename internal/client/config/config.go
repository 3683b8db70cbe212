package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the Assessment terminal client.
//
// Units: durations are time.Duration; BootstrapRetries counts retries after
// the first attempt, so 0 means a single profile fetch.
type Config struct {
	BaseURL              string        `env:"BASE_URL"`
	RequestTimeout       time.Duration `env:"REQUEST_TIMEOUT"`
	StateDBPath          string        `env:"STATE_DB"`
	JarPassphrase        string        `env:"JAR_PASSPHRASE"`
	BootstrapRetries     uint64        `env:"BOOTSTRAP_RETRIES"`
	RetryBaseDelay       time.Duration `env:"RETRY_BASE_DELAY"`
	SessionCheckInterval time.Duration `env:"SESSION_CHECK_INTERVAL"`
	LogLevel             string        `env:"LOG_LEVEL"`
	StartPath            string        `env:"START_PATH"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:7777"
	c.RequestTimeout = 15 * time.Second
	c.StateDBPath = "assessment.db"
	c.JarPassphrase = ""
	c.BootstrapRetries = 0
	c.RetryBaseDelay = 200 * time.Millisecond
	c.SessionCheckInterval = time.Minute
	c.LogLevel = "info"
	c.StartPath = "/feed"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones. Malformed input panics.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
