package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/seoward-lab/seoward/pkg/cli/config"
	httpctrl "github.com/seoward-lab/seoward/pkg/controller/http"
	"github.com/seoward-lab/seoward/pkg/service/worker"
	"github.com/seoward-lab/seoward/pkg/usecase"
	"github.com/seoward-lab/seoward/pkg/utils/logging"
	"github.com/seoward-lab/seoward/pkg/utils/safe"
)

func cmdServe() *cli.Command {
	var addr string
	var crawlerSecret string
	var auditDeadline time.Duration
	var watchdogInterval time.Duration
	var repoCfg config.Repository
	var sopCfg config.SOP

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("SEOWARD_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "crawler-secret",
			Usage:       "Shared secret for crawler callback endpoints (disabled when empty)",
			Sources:     cli.EnvVars("SEOWARD_CRAWLER_SECRET"),
			Destination: &crawlerSecret,
		},
		&cli.DurationFlag{
			Name:        "audit-deadline",
			Usage:       "Fail running audits with no progress for this long",
			Value:       2 * time.Hour,
			Sources:     cli.EnvVars("SEOWARD_AUDIT_DEADLINE"),
			Destination: &auditDeadline,
		},
		&cli.DurationFlag{
			Name:        "watchdog-interval",
			Usage:       "How often the audit watchdog sweeps",
			Value:       5 * time.Minute,
			Sources:     cli.EnvVars("SEOWARD_WATCHDOG_INTERVAL"),
			Destination: &watchdogInterval,
		},
	}

	// Add shared config flags
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, sopCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			// Load SOP overrides
			sopOverrides, err := sopCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load sop configuration")
			}

			var ucOpts []usecase.Option
			if sopOverrides != nil {
				ucOpts = append(ucOpts, usecase.WithSOPLibrary(sopOverrides))
				logging.Default().Info("SOP overrides loaded", "count", len(sopOverrides))
			}

			uc := usecase.New(repo, ucOpts...)

			// Start the audit watchdog
			watchdog := worker.NewAuditWatchdog(repo, uc.Audit, auditDeadline, watchdogInterval)
			if err := watchdog.Start(ctx); err != nil {
				return goerr.Wrap(err, "failed to start audit watchdog")
			}

			var httpOpts []httpctrl.Options
			if crawlerSecret != "" {
				httpOpts = append(httpOpts, httpctrl.WithCrawlerSecret(crawlerSecret))
				logging.Default().Info("Crawler callback endpoints enabled")
			} else {
				logging.Default().Warn("Crawler secret not configured, callback endpoints disabled")
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(repo, uc, httpOpts...),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				watchdog.Stop()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
