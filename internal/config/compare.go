package config

import (
	"errors"
	"fmt"
	"strings"
)

// Compare-config defaults for the label band below each video.
const (
	defaultTextAreaHeight = 100
	defaultTextAreaColor  = "white"
	defaultFontSize       = 30
	defaultFontColor      = "black"
)

// maxCompareVideos bounds how many videos can be composited side by side.
const maxCompareVideos = 4

// VideoEntry is one input video and the description rendered beneath it.
// An empty description is allowed.
type VideoEntry struct {
	Path        string `yaml:"path"`
	Description string `yaml:"description"`
}

// CompareConfig is the vidcompare configuration file.
type CompareConfig struct {
	Videos         []VideoEntry `yaml:"videos"`
	OutputVideo    string       `yaml:"output_video"`
	TextAreaHeight int          `yaml:"text_area_height"`
	TextAreaColor  string       `yaml:"text_area_color"`
	FontSize       int          `yaml:"font_size"`
	FontColor      string       `yaml:"font_color"`
}

// LoadCompare loads a comparison configuration, applies label-band
// defaults, and validates it.
func LoadCompare(path string) (*CompareConfig, error) {
	cfg := CompareConfig{
		TextAreaHeight: defaultTextAreaHeight,
		TextAreaColor:  defaultTextAreaColor,
		FontSize:       defaultFontSize,
		FontColor:      defaultFontColor,
	}
	if err := decodeStrict(path, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the video list bounds, paths, output path, and label
// band parameters.
func (c *CompareConfig) Validate() error {
	if len(c.Videos) == 0 {
		return errors.New("videos must list at least one entry")
	}
	if len(c.Videos) > maxCompareVideos {
		return fmt.Errorf("too many videos: %d (maximum %d)", len(c.Videos), maxCompareVideos)
	}
	for i, v := range c.Videos {
		if strings.TrimSpace(v.Path) == "" {
			return fmt.Errorf("videos[%d]: path must not be empty", i)
		}
	}
	if strings.TrimSpace(c.OutputVideo) == "" {
		return errors.New("output_video must not be empty")
	}
	if c.TextAreaHeight < 0 {
		return fmt.Errorf("text_area_height must not be negative (got %d)", c.TextAreaHeight)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive (got %d)", c.FontSize)
	}
	if strings.TrimSpace(c.TextAreaColor) == "" {
		return errors.New("text_area_color must not be empty")
	}
	if strings.TrimSpace(c.FontColor) == "" {
		return errors.New("font_color must not be empty")
	}
	return nil
}
