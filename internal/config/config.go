// Package config loads and validates converter configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-xhtml2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrUnknownPolicy  = errors.New("unknown namespace policy in config")
)

// Policy names accepted in config files.
const (
	PolicyPreserveFinancial = "preserve-financial"
	PolicyStripAll          = "strip-all"
)

// Config holds all configuration for document conversion.
type Config struct {
	Output     OutputConfig     `yaml:"output"`
	CSS        CSSConfig        `yaml:"css"`
	Namespaces NamespacesConfig `yaml:"namespaces"`
	Table      TableConfig      `yaml:"table"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = as given)
}

// CSSConfig defines extra styling options.
type CSSConfig struct {
	Path string `yaml:"path"` // Stylesheet appended to the aggregated style block
}

// NamespacesConfig selects the namespace rewrite policy.
type NamespacesConfig struct {
	Policy string `yaml:"policy"` // "preserve-financial" (default) or "strip-all"
}

// TableConfig defines table enhancement options.
type TableConfig struct {
	CSSPath string `yaml:"cssPath"` // Replacement for the built-in table CSS
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Namespaces: NamespacesConfig{Policy: PolicyPreserveFinancial},
	}
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the CLI user
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that configured values are usable.
func (c *Config) Validate() error {
	switch c.Namespaces.Policy {
	case "", PolicyPreserveFinancial, PolicyStripAll:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownPolicy, c.Namespaces.Policy)
}
