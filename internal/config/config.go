// Package config holds glaze's settings: the model to ask, where
// credentials come from, and where themes land.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vibejam/glaze/internal/platform"
)

// Config is the content of config.yaml. Zero values fall back to
// DefaultConfig at load time.
type Config struct {
	// Model settings
	Model   string `yaml:"model"`
	APIBase string `yaml:"api_base"`

	// Credential source
	EnvFile string `yaml:"env_file"`

	// Where generated theme JSON documents are kept
	LibraryDir string `yaml:"library_dir"`

	// Override for the Ghostty themes directory; empty means the
	// platform default
	GhosttyThemesDir string `yaml:"ghostty_themes_dir"`

	// UI preferences
	UI UIConfig `yaml:"ui"`
}

// UIConfig holds terminal output preferences.
type UIConfig struct {
	Theme   string `yaml:"theme"`
	Dense   bool   `yaml:"dense"`
	NoColor bool   `yaml:"no_color"`
}

// DefaultConfig returns the settings glaze runs with out of the box.
func DefaultConfig() *Config {
	return &Config{
		Model:      "gpt-4o",
		EnvFile:    "~/vibejam/.env",
		LibraryDir: filepath.Join("themes", "ghostty"),
	}
}

// Load reads path on top of the defaults. A missing file is not an
// error; broken YAML is.
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

// Save writes the config to path, creating parent directories.
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

// Validate rejects configs that would break every command.
func (c *Config) Validate() error {
	switch {
	case c.Model == "":
		return fmt.Errorf("model is required")
	case c.LibraryDir == "":
		return fmt.Errorf("library_dir is required")
	}
	return nil
}

// Dir is the glaze directory under the user config root.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(base, "glaze"), nil
}

// Path is where LoadDefault looks for config.yaml.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadDefault loads config.yaml from the user config directory.
func LoadDefault() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// ResolvedEnvFile is EnvFile with ~ expanded.
func (c *Config) ResolvedEnvFile() (string, error) {
	return ExpandHome(c.EnvFile)
}

// ResolvedLibraryDir is LibraryDir with ~ expanded.
func (c *Config) ResolvedLibraryDir() (string, error) {
	return ExpandHome(c.LibraryDir)
}

// ResolvedThemesDir is the Ghostty themes directory: the configured
// override when set, the platform default otherwise.
func (c *Config) ResolvedThemesDir() (string, error) {
	if c.GhosttyThemesDir != "" {
		return ExpandHome(c.GhosttyThemesDir)
	}
	return platform.ThemesDir()
}
