// Package compose assembles the side-by-side comparison video: it
// verifies that the inputs share identical properties, plans the output
// geometry, builds a single ffmpeg filtergraph command, and executes it.
package compose

import (
	"github.com/labworks/dstools/internal/config"
	"github.com/labworks/dstools/internal/probe"
)

// Input is one video column of the composite and its label text.
type Input struct {
	Path  string
	Label string
}

// Plan holds everything the ffmpeg command builder needs. Geometry comes
// from the first (baseline) input; verification guarantees the others
// match.
type Plan struct {
	Inputs []Input

	Width  int
	Height int
	FPS    float64

	BandHeight int
	BandColor  string
	FontSize   int
	FontColor  string

	OutputPath string
}

// BuildPlan derives the composition plan from the validated config and
// the probed inputs. infos must be in config order with the baseline
// first.
func BuildPlan(cfg *config.CompareConfig, infos []*probe.VideoInfo) *Plan {
	p := &Plan{
		Width:      infos[0].Width,
		Height:     infos[0].Height,
		FPS:        infos[0].FPS,
		BandHeight: cfg.TextAreaHeight,
		BandColor:  cfg.TextAreaColor,
		FontSize:   cfg.FontSize,
		FontColor:  cfg.FontColor,
		OutputPath: cfg.OutputVideo,
	}
	for i, v := range cfg.Videos {
		p.Inputs = append(p.Inputs, Input{Path: infos[i].Path, Label: v.Description})
	}
	return p
}
