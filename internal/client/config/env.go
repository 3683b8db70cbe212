package config

import (
	"github.com/caarlos0/env/v11"
)

const envPrefix = "ASSESSMENT_"

// parseEnv overlays cfg with ASSESSMENT_* variables. Unset variables leave
// the field alone.
func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		panic(err)
	}
}
