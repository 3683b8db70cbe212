package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/assessment/internal/flagx"
	"github.com/dmitrijs2005/assessment/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "3s" or as integer nanoseconds.
type JsonConfig struct {
	BaseURL              string          `json:"base_url"`
	RequestTimeout       timex.Duration  `json:"request_timeout"`
	StateDBPath          string          `json:"state_db"`
	JarPassphrase        string          `json:"jar_passphrase"`
	BootstrapRetries     *uint64         `json:"bootstrap_retries"`
	RetryBaseDelay       timex.Duration  `json:"retry_base_delay"`
	SessionCheckInterval *timex.Duration `json:"session_check_interval"`
	LogLevel             string          `json:"log_level"`
	StartPath            string          `json:"start_path"`
}

// parseJson overlays cfg with the fields present in the file named by -c or
// -config. Absent fields keep their current value. Read or unmarshal errors
// panic.
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.ConfigFile(args)
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.BaseURL, jc.BaseURL)
	setString(&cfg.StateDBPath, jc.StateDBPath)
	setString(&cfg.JarPassphrase, jc.JarPassphrase)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.StartPath, jc.StartPath)
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RetryBaseDelay.Duration > 0 {
		cfg.RetryBaseDelay = jc.RetryBaseDelay.Duration
	}
	// zero is meaningful for these two
	if jc.BootstrapRetries != nil {
		cfg.BootstrapRetries = *jc.BootstrapRetries
	}
	if jc.SessionCheckInterval != nil {
		cfg.SessionCheckInterval = jc.SessionCheckInterval.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
