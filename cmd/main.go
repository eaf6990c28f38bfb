package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/smm/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)
	runner := NewRunner(RunnerOpts{Logger: logger})

	app := newApp(runner)
	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		}
		logger.Fatalf("application error: %v", err)
	}
}

// newApp builds the root command. Global flags are read by [Runner.Before] for every subcommand.
func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "smm",
		Usage:   "Submit social media profiles and pages for monitoring",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.StringFlag{
				Name:    "api-url",
				Usage:   "Base URL of the reporting API (overrides api.base_url)",
				Sources: cli.EnvVars("SMM_API_URL"),
			},
		},
		Before:   r.Before,
		After:    r.After,
		Commands: r.register(),
	}
}
