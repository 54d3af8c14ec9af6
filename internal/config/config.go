package config

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"mapcheck/internal/analyze"
	"mapcheck/internal/diagnostic"
	"mapcheck/internal/directive"
)

// FileName is the conventional configuration file name.
const FileName = ".mapcheck.yaml"

// Config is the root of a configuration file.
type Config struct {
	// Version of the configuration schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Directive is the comment directive marking mapping functions,
	// without the leading "//".
	Directive string `yaml:"directive,omitempty"`

	// CheckUnknownExemptions enables warnings for exempted names that are
	// not fields of the target type. Defaults to true.
	CheckUnknownExemptions *bool `yaml:"check_unknown_exemptions,omitempty"`

	// Ignore lists fields that are never required for a given target type.
	Ignore []TypeIgnore `yaml:"ignore,omitempty"`
}

// TypeIgnore exempts fields of one target type in every mapping function.
type TypeIgnore struct {
	// Type identifier (e.g., "dto.User" or full path).
	Type string `yaml:"type"`

	// Fields to exempt.
	Fields []string `yaml:"fields"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	if cfg.Directive == "" {
		cfg.Directive = directive.Default
	}

	cfg.Directive = strings.TrimPrefix(cfg.Directive, "//")

	if cfg.CheckUnknownExemptions == nil {
		enabled := true
		cfg.CheckUnknownExemptions = &enabled
	}
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// ReportUnknownExemptions reports whether unknown exemption warnings are enabled.
func (c *Config) ReportUnknownExemptions() bool {
	return c.CheckUnknownExemptions == nil || *c.CheckUnknownExemptions
}

// IgnoredFields returns the fields exempted for the target type id by the
// ignore list. Several entries may name the same type.
func (c *Config) IgnoredFields(id analyze.TypeID) []string {
	var out []string
	for _, ti := range c.Ignore {
		if id.Matches(ti.Type) {
			out = append(out, ti.Fields...)
		}
	}

	return out
}

// Validate checks the configuration for structural problems.
func Validate(cfg *Config) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cfg == nil {
		res.AddError(diagnostic.CodeInvalidConfig, "config is nil")
		return res
	}

	if cfg.Version != "1" {
		res.AddError(diagnostic.CodeInvalidConfig, fmt.Sprintf("unsupported version %q", cfg.Version))
	}

	if !validDirective(cfg.Directive) {
		res.AddError(diagnostic.CodeInvalidConfig,
			fmt.Sprintf("invalid directive %q: expected a name like mapcheck:complete", cfg.Directive))
	}

	for i, ti := range cfg.Ignore {
		if strings.TrimSpace(ti.Type) == "" {
			res.AddError(diagnostic.CodeInvalidConfig, fmt.Sprintf("ignore[%d]: type is empty", i))
			continue
		}

		if len(ti.Fields) == 0 {
			res.AddWarning(diagnostic.CodeInvalidConfig, fmt.Sprintf("ignore[%d]: no fields for type %s", i, ti.Type))
		}

		for _, f := range ti.Fields {
			if !isIdent(f) {
				res.AddError(diagnostic.CodeInvalidConfig,
					fmt.Sprintf("ignore[%d]: %q is not a field name", i, f))
			}
		}
	}

	return res
}

// validDirective accepts "prefix:name" made of letters, digits, '-', '_' and '.'.
func validDirective(s string) bool {
	prefix, name, ok := strings.Cut(s, ":")
	if !ok || prefix == "" || name == "" {
		return false
	}

	for _, r := range prefix + name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' && r != '.' {
			return false
		}
	}

	return true
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}

		return false
	}

	return true
}
