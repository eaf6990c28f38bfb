package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/smm/internal/dashboard"
	"github.com/desertthunder/smm/internal/repositories"
	"github.com/desertthunder/smm/internal/services"
	"github.com/desertthunder/smm/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	reporter   services.Reporter
	logger     *log.Logger
	output     io.Writer
	db         *sql.DB
	ownsDB     bool
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config   *shared.Config
	Reporter services.Reporter // Built from Config on first use when nil
	Logger   *log.Logger
	Output   io.Writer
	DB       *sql.DB // Opened from Config on first use when nil
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:   opts.Config,
		reporter: opts.Reporter,
		logger:   opts.Logger,
		output:   opts.Output,
		db:       opts.DB,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		submitCommand, tuiCommand, webCommand, historyCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// Before loads the configuration named by --config and applies global overrides.
//
// A missing file falls back to defaults so `setup config` can create it.
func (r *Runner) Before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	path := cmd.String("config")
	r.configPath = path

	if _, err := os.Stat(path); err == nil {
		config, err := shared.LoadConfig(path)
		if err != nil {
			return ctx, err
		}
		r.config = config
		r.logger.Debug("loaded config", "path", path)
	} else if cmd.IsSet("config") {
		r.logger.Warn("config file not found, using defaults", "path", path)
	}

	if u := cmd.String("api-url"); u != "" {
		r.config.API.BaseURL = u
	}

	if err := r.config.Validate(); err != nil {
		return ctx, err
	}

	level, err := shared.ParseLogLevel(r.config.Log.Level)
	if err != nil {
		return ctx, err
	}
	shared.SetLogLevel(r.logger, level)

	return ctx, nil
}

// After releases resources opened while running a command.
func (r *Runner) After(ctx context.Context, cmd *cli.Command) error {
	return r.Close()
}

// Close closes the journal database if the runner opened it.
func (r *Runner) Close() error {
	if r.db == nil || !r.ownsDB {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	r.ownsDB = false
	return err
}

// SetLogger replaces the runner's logger. Reporters built afterwards log through l.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// Reporter returns the reporting client for the configured API, journaling attempts when history is enabled.
func (r *Runner) Reporter() (services.Reporter, error) {
	if r.reporter != nil {
		return r.reporter, nil
	}

	var rep services.Reporter = services.NewReportingServiceFromConfig(r.config.API, r.logger)
	if r.config.History.Enabled {
		repo, err := r.submissions()
		if err != nil {
			return nil, err
		}
		rep = services.NewRecordingReporter(rep, repo, r.logger)
	}

	r.reporter = rep
	return rep, nil
}

func (r *Runner) submissions() (*repositories.SubmissionRepository, error) {
	db, err := r.openJournal()
	if err != nil {
		return nil, err
	}
	return repositories.NewSubmissionRepository(db), nil
}

func (r *Runner) openJournal() (*sql.DB, error) {
	if r.db != nil {
		return r.db, nil
	}

	db, err := shared.OpenJournal(r.config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	r.db = db
	r.ownsDB = true
	return db, nil
}

func (r *Runner) dashboardOptions() dashboard.Options {
	return dashboard.Options{ClearURLOnPlatformSwitch: r.config.Dashboard.ClearURLOnPlatformSwitch}
}

func (r *Runner) newDashboard() *dashboard.Dashboard {
	return dashboard.New(r.dashboardOptions())
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
