// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default configuration values.
const (
	DefaultStorageDirName = ".cv-generator"
	DefaultVariant        = "modern"
	DefaultBrowserTimeout = 30
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	StorageDir string `json:"storage_dir,omitempty"` // Directory holding the template catalogue
	DataFile   string `json:"data_file,omitempty"`   // Path to CV content JSON
	OutputDir  string `json:"output_dir,omitempty"`  // Directory export artifacts are written to

	// Rendering
	Template string `json:"template,omitempty"` // Template ID to render with
	Variant  string `json:"variant,omitempty"`  // Layout variant: modern, classic, minimal

	// Branding overrides
	PrimaryColor   string `json:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`
	Font           string `json:"font,omitempty"`
	Logo           string `json:"logo,omitempty"`

	// Behavior
	BrowserTimeoutSecs int  `json:"browser_timeout_secs,omitempty"` // Headless browser timeout for PDF export
	Verbose            bool `json:"verbose,omitempty"`              // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// WithDefaults fills unset fields with their defaults. The storage directory
// defaults to ~/.cv-generator, falling back to the working directory when the
// home directory cannot be resolved.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.StorageDir == "" {
		if env := os.Getenv("CVGEN_STORAGE_DIR"); env != "" {
			out.StorageDir = env
		} else if home, err := os.UserHomeDir(); err == nil {
			out.StorageDir = filepath.Join(home, DefaultStorageDirName)
		} else {
			out.StorageDir = DefaultStorageDirName
		}
	}
	if out.OutputDir == "" {
		out.OutputDir = "."
	}
	if out.Variant == "" {
		out.Variant = DefaultVariant
	}
	if out.BrowserTimeoutSecs <= 0 {
		out.BrowserTimeoutSecs = DefaultBrowserTimeout
	}
	return &out
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch c.Variant {
	case "", "modern", "classic", "minimal":
	default:
		return fmt.Errorf("invalid variant %q: must be modern, classic, or minimal", c.Variant)
	}
	if c.BrowserTimeoutSecs < 0 {
		return fmt.Errorf("browser_timeout_secs must not be negative")
	}
	return nil
}
