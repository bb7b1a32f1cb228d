// Package config holds typed YAML configuration for both tools plus the
// per-invocation CLI options. Files are decoded strictly (unknown fields
// are rejected) and validated at load time, before any external call.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// ParseColorMode validates a --color flag value.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case ColorAuto, ColorAlways, ColorNever:
		return ColorMode(s), nil
	}
	return "", fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
}

// Options carries per-invocation settings from CLI flags. It is passed
// explicitly to the packages that need it; there is no ambient global
// state.
type Options struct {
	ConfigPath string
	DryRun     bool
	Verbose    bool
	ColorMode  ColorMode
	LogFile    string
	CheckOnly  bool
}

// decodeStrict opens path and decodes its YAML into out, rejecting
// unknown fields so typos in the config surface as errors instead of
// silently ignored settings.
func decodeStrict(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file not found: %s", path)
		}
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
