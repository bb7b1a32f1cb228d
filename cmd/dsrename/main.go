// Command dsrename searches the external annotation-dataset service for
// datasets whose names contain configured keywords, applies the regex
// rename rules from a YAML config, and persists the renames unless run
// with --dry-run.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/labworks/dstools/internal/check"
	"github.com/labworks/dstools/internal/config"
	"github.com/labworks/dstools/internal/logging"
	"github.com/labworks/dstools/internal/pipeline"
	"github.com/labworks/dstools/internal/webauto"
)

// version and commit are set at build time via -ldflags (e.g. Makefile).
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	app := &cli.App{
		Name:    "dsrename",
		Usage:   "search and regex-rename annotation datasets",
		Version: fmt.Sprintf("%s (%s)", version, commit),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the rename configuration YAML",
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"d"},
				Usage:   "preview renames without updating anything",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "verbose output",
			},
			&cli.StringFlag{
				Name:    "log",
				Aliases: []string{"l"},
				Usage:   "append logs to `FILE`",
			},
			&cli.StringFlag{
				Name:  "color",
				Value: "auto",
				Usage: "colored output: auto | always | never",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "run system diagnostics and exit",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "dsrename: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	colorMode, err := config.ParseColorMode(c.String("color"))
	if err != nil {
		return err
	}
	opts := &config.Options{
		ConfigPath: c.String("config"),
		DryRun:     c.Bool("dry-run"),
		Verbose:    c.Bool("verbose"),
		ColorMode:  colorMode,
		LogFile:    c.String("log"),
		CheckOnly:  c.Bool("check"),
	}

	log, err := logging.NewLogger(opts)
	if err != nil {
		return err
	}
	defer log.Close()

	if opts.CheckOnly {
		check.RunCheck(log)
		return nil
	}
	if opts.ConfigPath == "" {
		return fmt.Errorf("--config is required")
	}

	// Fail fast before loading anything else if the external CLI is
	// missing; nothing in this tool works without it.
	if err := check.CheckRenameDeps(); err != nil {
		return err
	}

	cfg, err := config.LoadRename(opts.ConfigPath)
	if err != nil {
		return err
	}

	log.Info("=== dsrename v%s ===", version)
	log.Info("Project: %s", cfg.ProjectID)
	if opts.DryRun {
		log.Warn("DRY RUN")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := webauto.NewClient(cfg.ProjectID)
	stats, err := pipeline.Run(ctx, cfg, opts, client, log)
	if err != nil {
		return err
	}
	if stats.Failed > 0 {
		return fmt.Errorf("%d dataset(s) failed", stats.Failed)
	}
	return nil
}
