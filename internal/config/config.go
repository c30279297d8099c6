// Package config loads engine configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete CLI configuration.
type Config struct {
	Game GameConfig `hcl:"game,block"`
	Log  LogConfig  `hcl:"log,block"`
}

// GameConfig controls the rules and the engine.
type GameConfig struct {
	SeedsPerPit int `hcl:"seeds_per_pit,optional"`
	SearchDepth int `hcl:"search_depth,optional"`
}

// LogConfig controls structured logging output.
type LogConfig struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the reference configuration: four seeds per pit and
// a depth-20 search.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			SeedsPerPit: 4,
			SearchDepth: 20,
		},
		Log: LogConfig{
			Level: "info",
			File:  "kalah.log",
		},
	}
}

// Load reads configuration from an HCL file, falling back to Default
// when the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Game.SeedsPerPit == 0 {
		config.Game.SeedsPerPit = 4
	}
	if config.Game.SearchDepth == 0 {
		config.Game.SearchDepth = 20
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.File == "" {
		config.Log.File = "kalah.log"
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	if c.Game.SeedsPerPit < 1 || c.Game.SeedsPerPit > 20 {
		return fmt.Errorf("seeds_per_pit must be between 1 and 20, got %d", c.Game.SeedsPerPit)
	}
	if c.Game.SearchDepth < 1 {
		return fmt.Errorf("search_depth must be positive, got %d", c.Game.SearchDepth)
	}
	return nil
}
