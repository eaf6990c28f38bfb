package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/desertthunder/smm/internal/server"
	"github.com/desertthunder/smm/internal/shared"
	"github.com/desertthunder/smm/internal/web"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 5 * time.Second

// Web serves the dashboard until interrupted.
func (r *Runner) Web(ctx context.Context, cmd *cli.Command) error {
	cfg := r.config.Server
	if cmd.IsSet("host") {
		cfg.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		cfg.Port = cmd.Int("port")
	}

	reporter, err := r.Reporter()
	if err != nil {
		return err
	}

	app, err := web.NewApp(web.AppOpts{
		Sessions: web.NewSessionStore(r.dashboardOptions(), 0),
		Reporter: reporter,
		Logger:   r.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	srv := server.New(cfg.Addr(), web.NewRouter(app), r.logger)
	if err := srv.Start(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	r.logger.Info("dashboard listening", "url", srv.URL(), "api", r.config.API.BaseURL)
	r.writePlain("Dashboard running at %s (ctrl+c to stop)\n", srv.URL())

	if cmd.Bool("open") {
		if err := shared.OpenBrowser(srv.URL()); err != nil {
			r.logger.Warn("failed to open browser", "error", err)
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var serveErr error
	select {
	case <-ctx.Done():
		r.logger.Info("shutting down")
	case err, ok := <-srv.Errors():
		if ok {
			serveErr = fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return serveErr
}
