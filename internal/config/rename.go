package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/labworks/dstools/internal/rules"
)

// RenameConfig is the dsrename configuration file.
type RenameConfig struct {
	ProjectID    string       `yaml:"project_id"`
	NameKeywords []string     `yaml:"name_keywords"`
	RulesRegexp  []rules.Rule `yaml:"rules_regexp"`
}

// LoadRename loads and validates a rename configuration. Validation
// includes compiling every rule pattern, so a malformed regex is caught
// here and never per-record.
func LoadRename(path string) (*RenameConfig, error) {
	var cfg RenameConfig
	if err := decodeStrict(path, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks required fields and that all rule patterns compile.
func (c *RenameConfig) Validate() error {
	if strings.TrimSpace(c.ProjectID) == "" {
		return errors.New("project_id must not be empty")
	}
	if len(c.NameKeywords) == 0 {
		return errors.New("name_keywords must list at least one keyword")
	}
	for i, kw := range c.NameKeywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("name_keywords[%d] must not be empty", i)
		}
	}
	if len(c.RulesRegexp) == 0 {
		return errors.New("rules_regexp must list at least one rule")
	}
	if _, err := rules.Compile(c.RulesRegexp); err != nil {
		return err
	}
	return nil
}
