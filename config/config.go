// Package config loads updater settings from YAML files so applications can
// ship a declarative update policy instead of wiring the builder by hand.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/upcheck/provider/bukkit"
	"github.com/hupe1980/upcheck/provider/github"
	"github.com/hupe1980/upcheck/provider/polymart"
	"github.com/hupe1980/upcheck/updater"
)

// Settings holds the updater-level options. The booleans are pointers so an
// omitted key leaves the builder's current state alone instead of resetting
// it to the zero value.
type Settings struct {
	Enabled           *bool  `yaml:"enabled"`
	UnstablePreferred *bool  `yaml:"unstable_preferred"`
	Interval          string `yaml:"interval"`
	Permission        string `yaml:"permission"`
}

// ProviderEntry declares a single remote source. Type selects the adapter;
// the remaining fields are adapter specific.
type ProviderEntry struct {
	Type       string `yaml:"type"`
	Repo       string `yaml:"repo"`        // github
	ResourceID int    `yaml:"resource_id"` // polymart
	ProjectID  int    `yaml:"project_id"`  // bukkit
}

// Config is the top-level document.
type Config struct {
	Updater   Settings        `yaml:"updater"`
	Providers []ProviderEntry `yaml:"providers"`
}

// Load reads and parses a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML document into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Apply translates the settings and provider entries onto a builder. The
// builder is returned for chaining. An unknown provider type or an entry
// missing its adapter field is a configuration error.
func (c *Config) Apply(b *updater.Builder) (*updater.Builder, error) {
	if c.Updater.Enabled != nil {
		b.SetEnabled(*c.Updater.Enabled)
	}
	if c.Updater.UnstablePreferred != nil {
		b.SetUnstablePreferred(*c.Updater.UnstablePreferred)
	}
	if c.Updater.Interval != "" {
		b.SetInterval(c.Updater.Interval)
	}
	if c.Updater.Permission != "" {
		b.SetPermission(c.Updater.Permission)
	}

	for i, entry := range c.Providers {
		switch entry.Type {
		case "github":
			if entry.Repo == "" {
				return nil, fmt.Errorf("provider %d: github requires repo", i)
			}
			b.AddProvider(github.New(entry.Repo))
		case "polymart":
			if entry.ResourceID <= 0 {
				return nil, fmt.Errorf("provider %d: polymart requires resource_id", i)
			}
			b.AddProvider(polymart.New(entry.ResourceID))
		case "bukkit":
			if entry.ProjectID <= 0 {
				return nil, fmt.Errorf("provider %d: bukkit requires project_id", i)
			}
			b.AddProvider(bukkit.New(entry.ProjectID))
		default:
			return nil, fmt.Errorf("provider %d: unknown type %q", i, entry.Type)
		}
	}
	return b, nil
}
