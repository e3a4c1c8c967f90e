// Package config handles configuration loading and validation for stylepanel
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/drewhinkson/stylepanel/internal/styler"
)

// FileName is the configuration file looked up in the project root.
const FileName = "stylepanel.yaml"

// Config represents the main configuration for stylepanel
type Config struct {
	// Project metadata
	Name string `yaml:"name"`

	// Path to the design document the panel operates on
	Document string `yaml:"document"`

	// UI preferences
	UI UIConfig `yaml:"ui"`

	// Extra dropdown entries merged after the built-in defaults
	Presets PresetConfig `yaml:"presets"`
}

// UIConfig holds terminal UI preferences
type UIConfig struct {
	Theme   string `yaml:"theme"`
	Dense   bool   `yaml:"dense"`
	NoColor bool   `yaml:"no_color"`
}

// PresetConfig holds user-defined dropdown entries
type PresetConfig struct {
	Colors    []ColorPreset `yaml:"colors"`
	FontSizes []string      `yaml:"font_sizes"`
}

// ColorPreset is a user-defined named color for the color dropdown
type ColorPreset struct {
	Name string `yaml:"name"`
	Hex  string `yaml:"hex"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() *Config {
	return &Config{
		Name:     "stylepanel",
		Document: "design.yaml",
		UI: UIConfig{
			Theme: "aurora",
		},
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.Document == "" {
		return fmt.Errorf("document is required")
	}
	for _, preset := range c.Presets.Colors {
		if preset.Name == "" {
			return fmt.Errorf("preset color %q needs a name", preset.Hex)
		}
		if !styler.IsHexColor(preset.Hex) {
			return fmt.Errorf("preset color %q has invalid hex value %q", preset.Name, preset.Hex)
		}
	}
	for _, size := range c.Presets.FontSizes {
		if strings.TrimSpace(size) == "" {
			return fmt.Errorf("preset font sizes must be non-empty")
		}
	}
	return nil
}

// ColorOptions returns the built-in preset colors followed by user presets.
func (c *Config) ColorOptions() []styler.ColorPreset {
	out := styler.ColorPresets()
	for _, p := range c.Presets.Colors {
		out = append(out, styler.ColorPreset{Name: p.Name, Hex: p.Hex})
	}
	return out
}

// FontSizeOptions returns the built-in sizes followed by user presets.
func (c *Config) FontSizeOptions() []string {
	out := styler.FontSizes()
	seen := make(map[string]bool, len(out))
	for _, s := range out {
		seen[s] = true
	}
	for _, s := range c.Presets.FontSizes {
		if !seen[s] {
			out = append(out, s)
			seen[s] = true
		}
	}
	return out
}

// DocumentPath resolves the design document path relative to the project root.
func (c *Config) DocumentPath(rootDir string) string {
	if filepath.IsAbs(c.Document) {
		return c.Document
	}
	return filepath.Join(rootDir, c.Document)
}

// FindProjectRoot finds the project root by looking for a config or document file
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return dir, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "design.yaml")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	// Fall back to current directory
	cwd, _ := os.Getwd()
	return cwd, nil
}

// GetConfigPath returns the path to stylepanel.yaml in the project root
func GetConfigPath() (string, error) {
	root, err := FindProjectRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, FileName), nil
}

// LoadFromProject loads configuration from the project root
func LoadFromProject() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}
