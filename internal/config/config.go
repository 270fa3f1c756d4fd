package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/moneymap-dev/moneymap/internal/leveling"
)

// Config represents the top-level moneymap.yaml configuration.
type Config struct {
	Layout LayoutConfig `yaml:"layout"`
	Graph  GraphConfig  `yaml:"graph"`
	Tiers  TiersConfig  `yaml:"tiers,omitempty"`
}

// LayoutConfig tunes the layered layout.
type LayoutConfig struct {
	Orientation string  `yaml:"orientation"` // "vertical" or "horizontal"
	RankSpacing float64 `yaml:"rank_spacing"`
	NodeSpacing float64 `yaml:"node_spacing"`
}

// GraphConfig controls graph construction policy.
type GraphConfig struct {
	// PrimaryAccountID pins the anchor account; empty means the first
	// account in input order.
	PrimaryAccountID string `yaml:"primary_account_id,omitempty"`
}

// TiersConfig optionally replaces the built-in tier tables.
type TiersConfig struct {
	Levels   leveling.Table `yaml:"levels,omitempty"`
	NetWorth leveling.Table `yaml:"net_worth,omitempty"`
}

// Load reads a moneymap.yaml file from disk and validates any tier
// table overrides it carries.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if len(cfg.Tiers.Levels) > 0 {
		if err := cfg.Tiers.Levels.Validate(1, 100); err != nil {
			return nil, fmt.Errorf("level tiers: %w", err)
		}
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the built-in defaults.
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{
			Orientation: "vertical",
			RankSpacing: 220,
			NodeSpacing: 200,
		},
	}
}

// LevelTiers returns the configured level table, falling back to the
// built-in one.
func (c *Config) LevelTiers() leveling.Table {
	if len(c.Tiers.Levels) > 0 {
		return c.Tiers.Levels
	}
	return leveling.LevelTiers
}

// NetWorthTiers returns the configured net-worth table, falling back to
// the built-in one.
func (c *Config) NetWorthTiers() leveling.Table {
	if len(c.Tiers.NetWorth) > 0 {
		return c.Tiers.NetWorth
	}
	return leveling.NetWorthTiers
}
