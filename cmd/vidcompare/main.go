// Command vidcompare composites 1-4 detector-output videos side by side
// with per-video description bands, driven by a YAML config given as the
// positional argument.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/labworks/dstools/internal/check"
	"github.com/labworks/dstools/internal/compose"
	"github.com/labworks/dstools/internal/config"
	"github.com/labworks/dstools/internal/logging"
)

// version and commit are set at build time via -ldflags (e.g. Makefile).
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	app := &cli.App{
		Name:      "vidcompare",
		Usage:     "composite comparison videos from detector outputs",
		ArgsUsage: "<config.yaml>",
		Version:   fmt.Sprintf("%s (%s)", version, commit),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"d"},
				Usage:   "print the ffmpeg command without running it",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "verbose output (tee ffmpeg stderr)",
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
		fmt.Fprintf(os.Stderr, "vidcompare: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	colorMode, err := config.ParseColorMode(c.String("color"))
	if err != nil {
		return err
	}
	opts := &config.Options{
		DryRun:    c.Bool("dry-run"),
		Verbose:   c.Bool("verbose"),
		ColorMode: colorMode,
		LogFile:   c.String("log"),
		CheckOnly: c.Bool("check"),
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

	if c.NArg() != 1 {
		return fmt.Errorf("need exactly one config path (got %d args)", c.NArg())
	}
	opts.ConfigPath = c.Args().First()

	if err := check.CheckCompareDeps(); err != nil {
		return err
	}

	cfg, err := config.LoadCompare(opts.ConfigPath)
	if err != nil {
		return err
	}

	log.Info("=== vidcompare v%s ===", version)
	if opts.DryRun {
		log.Warn("DRY RUN")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return compose.Run(ctx, cfg, opts, log)
}
