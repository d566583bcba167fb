// Package config loads ambient, environment-driven overrides for the CLI,
// layered on top of (never replacing) flag-driven configuration -- the way
// several tools in the retrieved example pack combine a flags struct with
// caarlos0/env for the knobs operators prefer to set once in their shell
// profile rather than type on every invocation.
package config

import "github.com/caarlos0/env/v6"

// Config holds environment-variable overrides for the CLI.
type Config struct {
	// Prompt is the REPL prompt string.
	Prompt string `env:"LOX_PROMPT" envDefault:"> "`

	// MaxCallDepth bounds recursive Function.Call nesting; 0 means
	// unlimited. See SPEC_FULL §6 on LOX_MAX_CALL_DEPTH.
	MaxCallDepth int `env:"LOX_MAX_CALL_DEPTH" envDefault:"0"`
}

// Load reads Config from the process environment.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
