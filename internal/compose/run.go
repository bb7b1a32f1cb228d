package compose

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labworks/dstools/internal/config"
	"github.com/labworks/dstools/internal/display"
	"github.com/labworks/dstools/internal/logging"
	"github.com/labworks/dstools/internal/probe"
)

// Run is the vidcompare top-level flow: probe every input, verify their
// properties match, plan the composite, and run ffmpeg (or print the
// command in dry-run).
func Run(ctx context.Context, cfg *config.CompareConfig, opts *config.Options, log *logging.Logger) error {
	infos := make([]*probe.VideoInfo, 0, len(cfg.Videos))
	for i, v := range cfg.Videos {
		if _, err := os.Stat(v.Path); err != nil {
			return fmt.Errorf("video file not found: %s", v.Path)
		}
		info, err := probe.Probe(ctx, v.Path)
		if err != nil {
			return err
		}
		log.Info("[%d/%d] %s", i+1, len(cfg.Videos), filepath.Base(v.Path))
		log.Info("  %s | %s fps | %s | %s",
			info.Resolution(),
			display.FormatFPS(info.FPS),
			display.FormatDuration(info.Duration),
			info.Codec)
		infos = append(infos, info)
	}

	if err := VerifyMatch(infos); err != nil {
		return err
	}
	log.Info("All video properties match")

	plan := BuildPlan(cfg, infos)
	args := Build(plan, opts.Verbose)
	log.Debug("ffmpeg command: %s", strings.Join(args, " "))

	if err := os.MkdirAll(filepath.Dir(plan.OutputPath), 0o755); err != nil {
		return fmt.Errorf("cannot create output directory: %w", err)
	}

	if opts.DryRun {
		log.Success("[DRY] Would write %s", plan.OutputPath)
		log.Info("  %s", strings.Join(args, " "))
		return nil
	}

	log.Info("Compositing %d video(s) -> %s", len(plan.Inputs), plan.OutputPath)
	start := time.Now()
	result := Execute(ctx, args, opts.Verbose)
	if result.Err != nil {
		logStderrTail(log, result.Stderr)
		os.Remove(plan.OutputPath)
		return fmt.Errorf("ffmpeg failed: %w", result.Err)
	}

	log.Success("Wrote %s in %s", plan.OutputPath, display.FormatDuration(time.Since(start).Seconds()))
	return nil
}

// logStderrTail reports the last lines of ffmpeg stderr after a failure.
func logStderrTail(log *logging.Logger, stderr string) {
	if stderr == "" {
		return
	}
	log.Error("Last ffmpeg output:")
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	start := 0
	if len(lines) > 20 {
		start = len(lines) - 20
	}
	for _, l := range lines[start:] {
		log.Error("  %s", l)
	}
}
