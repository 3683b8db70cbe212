// Package config loads runtime configuration for the Assessment CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables prefixed with ASSESSMENT_.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string    backend base URL
//	-t duration  request timeout (e.g. 10s)
//	-d string    local state database path
//	-r uint      bootstrap retries on network failure
//	-i int       session check interval (seconds, 0 disables)
//	-l string    log level
//	-p string    start path
//
// # Environment
//
//	ASSESSMENT_BASE_URL, ASSESSMENT_REQUEST_TIMEOUT, ASSESSMENT_STATE_DB,
//	ASSESSMENT_JAR_PASSPHRASE, ASSESSMENT_BOOTSTRAP_RETRIES,
//	ASSESSMENT_RETRY_BASE_DELAY, ASSESSMENT_SESSION_CHECK_INTERVAL,
//	ASSESSMENT_LOG_LEVEL, ASSESSMENT_START_PATH
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "base_url": "http://localhost:7777",
//	  "request_timeout": "15s",
//	  "state_db": "assessment.db",
//	  "bootstrap_retries": 2,
//	  "retry_base_delay": "200ms",
//	  "session_check_interval": "1m",
//	  "log_level": "info"
//	}
//
// The jar passphrase has no flag; set it in the file or the environment.
package config
