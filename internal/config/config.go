package config

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"component-derive/internal/derive"
)

// DefaultSuffix is appended to the snake-cased type name to form the file name.
const DefaultSuffix = "_component.go"

// CurrentVersion is the config file format version.
const CurrentVersion = "1"

// Config is the component-derive configuration file.
type Config struct {
	Version      string    `yaml:"version,omitempty"`
	Framework    Framework `yaml:"framework,omitempty"`
	DefaultField string    `yaml:"default_field,omitempty"`
	Suffix       string    `yaml:"suffix,omitempty"`
	// Output is the directory generated files are written to; empty means
	// next to the package sources.
	Output string   `yaml:"output,omitempty"`
	Types  []string `yaml:"types,omitempty"`
}

// Framework names the package that declares MockComponent.
type Framework struct {
	Path  string `yaml:"path,omitempty"`
	Alias string `yaml:"alias,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}

	if cfg.Framework.Path == "" {
		cfg.Framework.Path = derive.DefaultFrameworkPath
	}

	if cfg.DefaultField == "" {
		cfg.DefaultField = derive.DefaultField
	}

	if cfg.Suffix == "" {
		cfg.Suffix = DefaultSuffix
	}
}

// Validate checks that every value can be used in generated code.
func (c *Config) Validate() error {
	var errs []error

	if c.Version != CurrentVersion {
		errs = append(errs, fmt.Errorf("unsupported version %q", c.Version))
	}

	if c.Framework.Alias != "" && !isIdent(c.Framework.Alias) {
		errs = append(errs, fmt.Errorf("framework.alias %q is not a Go identifier", c.Framework.Alias))
	}

	if strings.ContainsAny(c.Framework.Path, " \t\"\\") {
		errs = append(errs, fmt.Errorf("framework.path %q is not an import path", c.Framework.Path))
	}

	if !isIdent(c.DefaultField) {
		errs = append(errs, fmt.Errorf("default_field %q is not a Go identifier", c.DefaultField))
	}

	if !strings.HasSuffix(c.Suffix, ".go") || strings.HasSuffix(c.Suffix, "_test.go") {
		errs = append(errs, fmt.Errorf("suffix %q must end in .go and not _test.go", c.Suffix))
	}

	for _, t := range c.Types {
		if !isIdent(t) {
			errs = append(errs, fmt.Errorf("types: %q is not a Go identifier", t))
		}
	}

	return errors.Join(errs...)
}

// Options converts the configuration into derive options.
func (c *Config) Options() derive.Options {
	return derive.Options{
		DefaultField: c.DefaultField,
		Framework: derive.Framework{
			Path:  c.Framework.Path,
			Alias: c.Framework.Alias,
		},
	}
}

func isIdent(s string) bool {
	return s != "_" && token.IsIdentifier(s)
}
