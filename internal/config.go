package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultAlertWindows are the expiry windows offered by the alerts
// view, in days.
var DefaultAlertWindows = []int{3, 7, 20}

type Config struct {
	// ColumnAliases maps additional spreadsheet headers to record field
	// names, merged over the built-in column table. Lets a renamed
	// master-list column keep working without a code change.
	ColumnAliases map[string]string `yaml:"column_aliases,omitempty"`

	// AlertWindows overrides the default expiry windows (3, 7, 20 days).
	AlertWindows []int `yaml:"alert_windows,omitempty"`
}

// DefaultConfigPath returns the default config file path (~/.fleet-master/config.yaml)
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fleet-master", "config.yaml")
}

// LoadConfig reads and validates the config file. A missing file yields
// an empty config rather than an error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Aliases must point at real record fields.
	known := map[string]bool{}
	for _, field := range DefaultColumnMap() {
		known[field] = true
	}
	for header, field := range cfg.ColumnAliases {
		if !known[field] {
			return nil, fmt.Errorf("column alias %q maps to unknown field %q", header, field)
		}
	}

	for _, w := range cfg.AlertWindows {
		if w < 0 {
			return nil, fmt.Errorf("invalid alert window %d: must be non-negative", w)
		}
	}

	return &cfg, nil
}

// Save writes the config file, creating parent directories as needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ColumnMap returns the built-in column table with the configured
// aliases merged on top.
func (c *Config) ColumnMap() map[string]string {
	columns := DefaultColumnMap()
	if c != nil {
		for header, field := range c.ColumnAliases {
			columns[header] = field
		}
	}
	return columns
}

// Windows returns the configured alert windows, or the defaults.
func (c *Config) Windows() []int {
	if c != nil && len(c.AlertWindows) > 0 {
		return c.AlertWindows
	}
	return DefaultAlertWindows
}
