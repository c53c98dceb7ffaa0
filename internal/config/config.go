// Package config loads game configuration from an HCL file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/kelseyhightower/envconfig"
)

// DefaultTurnDelayMs is the pause between a player's turns unless
// configured otherwise.
const DefaultTurnDelayMs = 5

// Config holds the game parameters shared by the CLI and the
// interactive setup. File values are overridden by CARDRACE_*
// environment variables, which are in turn overridden by flags.
//
// Players and PackFile may be left unset (zero), in which case the
// CLI collects them interactively.
type Config struct {
	Players     int    `hcl:"players,optional" envconfig:"players"`
	PackFile    string `hcl:"pack_file,optional" envconfig:"pack_file"`
	OutputDir   string `hcl:"output_dir,optional" envconfig:"output_dir"`
	Seed        int64  `hcl:"seed,optional" envconfig:"seed"`
	TurnDelayMs int    `hcl:"turn_delay_ms,optional" envconfig:"turn_delay_ms"`
	Debug       bool   `hcl:"debug,optional" envconfig:"debug"`
}

// Default returns the configuration used when no file, environment or
// flag values are present.
func Default() *Config {
	return &Config{
		OutputDir:   ".",
		TurnDelayMs: DefaultTurnDelayMs,
	}
}

// Load reads configuration from an HCL file, applies defaults for
// anything the file leaves unset, then applies environment
// overrides. A missing file is not an error; defaults are used.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := os.Stat(path); err == nil {
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("config: parse %s: %s", path, diags.Error())
		}
		if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
			return nil, fmt.Errorf("config: decode %s: %s", path, diags.Error())
		}
	}

	// Fill in anything the file left at its zero value.
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.TurnDelayMs == 0 {
		cfg.TurnDelayMs = DefaultTurnDelayMs
	}

	if err := envconfig.Process("cardrace", &cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values no game can run with. A zero player count
// is allowed here; it means "ask interactively".
func (c *Config) Validate() error {
	if c.Players < 0 {
		return fmt.Errorf("config: players cannot be negative, got %d", c.Players)
	}
	if c.TurnDelayMs < 0 {
		return fmt.Errorf("config: turn delay cannot be negative, got %dms", c.TurnDelayMs)
	}
	return nil
}

// TurnDelay returns the configured inter-turn pause as a duration.
func (c *Config) TurnDelay() time.Duration {
	return time.Duration(c.TurnDelayMs) * time.Millisecond
}
