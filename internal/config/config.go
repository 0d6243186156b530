package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Serialization modes the CLI accepts for --canonicalize.
const (
	SerializeStandard  = "standard"
	SerializeCanonical = "canonical"
	SerializePreserve  = "preserve"
)

type Config struct {
	//===============
	// Input handling
	//===============
	// Encoding label applied to the query of special-scheme URLs.
	encoding string
	// Base URL that relative inputs are resolved against. Empty means
	// relative inputs are rejected.
	baseURL string

	//===============
	// Output
	//===============
	// How the serializer treats the syntactic shadow information:
	// "standard", "canonical" or "preserve".
	canonicalize string
	// Whether fragments are dropped from the output.
	excludeFragment bool
}

type fileConfig struct {
	Encoding        string `json:"encoding"`
	BaseURL         string `json:"base_url"`
	Canonicalize    string `json:"canonicalize"`
	ExcludeFragment bool   `json:"exclude_fragment"`
}

// WithDefault returns the default configuration: UTF-8, no base,
// preserve the input's syntactic choices, keep fragments.
func WithDefault() Config {
	return Config{
		encoding:     "utf-8",
		canonicalize: SerializePreserve,
	}
}

// WithConfigFile loads configuration from a JSON file, leaving
// defaults in place for absent fields.
func WithConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: reading %s: %v", ErrInvalidConfig, path, err)
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
	}
	cfg := WithDefault()
	if fc.Encoding != "" {
		cfg = cfg.WithEncoding(fc.Encoding)
	}
	if fc.BaseURL != "" {
		cfg = cfg.WithBaseURL(fc.BaseURL)
	}
	if fc.Canonicalize != "" {
		cfg, err = cfg.WithCanonicalize(fc.Canonicalize)
		if err != nil {
			return Config{}, err
		}
	}
	cfg = cfg.WithExcludeFragment(fc.ExcludeFragment)
	return cfg, nil
}

// WithEncoding overrides the encoding label.
func (c Config) WithEncoding(label string) Config {
	c.encoding = label
	return c
}

// WithBaseURL overrides the base URL.
func (c Config) WithBaseURL(base string) Config {
	c.baseURL = base
	return c
}

// WithCanonicalize overrides the serialization mode.
func (c Config) WithCanonicalize(mode string) (Config, error) {
	switch mode {
	case SerializeStandard, SerializeCanonical, SerializePreserve:
		c.canonicalize = mode
		return c, nil
	}
	return c, fmt.Errorf("%w: canonicalize must be standard, canonical or preserve, got %q", ErrInvalidConfig, mode)
}

// WithExcludeFragment overrides fragment handling.
func (c Config) WithExcludeFragment(exclude bool) Config {
	c.excludeFragment = exclude
	return c
}

// Encoding returns the encoding label.
func (c Config) Encoding() string { return c.encoding }

// BaseURL returns the base URL, empty when none is set.
func (c Config) BaseURL() string { return c.baseURL }

// Canonicalize returns the serialization mode.
func (c Config) Canonicalize() string { return c.canonicalize }

// ExcludeFragment returns whether fragments are dropped.
func (c Config) ExcludeFragment() bool { return c.excludeFragment }
